// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juri Lents

package docfilter

import (
	"errors"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFilter struct {
	name string
	err  error
	runs *int
}

func (f *fakeFilter) Name() string { return f.name }

func (f *fakeFilter) Apply(_ *openapi3.T) error {
	if f.runs != nil {
		*f.runs++
	}
	return f.err
}

func TestChainApply(t *testing.T) {
	t.Run("runs all filters in order", func(t *testing.T) {
		var first, second int
		chain := Chain{
			&fakeFilter{name: "first", runs: &first},
			&fakeFilter{name: "second", runs: &second},
		}

		err := chain.Apply(&openapi3.T{})

		require.NoError(t, err)
		assert.Equal(t, 1, first)
		assert.Equal(t, 1, second)
	})

	t.Run("stops at the first failing filter", func(t *testing.T) {
		var ran int
		chain := Chain{
			&fakeFilter{name: "broken", err: errors.New("boom")},
			&fakeFilter{name: "after", runs: &ran},
		}

		err := chain.Apply(&openapi3.T{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "filter broken")
		assert.Equal(t, 0, ran)
	})

	t.Run("empty chain is a no-op", func(t *testing.T) {
		assert.NoError(t, Chain{}.Apply(&openapi3.T{}))
	})
}

func TestRegistry(t *testing.T) {
	Register("registry-test", func(_ BuildContext) (Filter, error) {
		return &fakeFilter{name: "registry-test"}, nil
	})

	t.Run("get returns registered factory", func(t *testing.T) {
		factory, err := Get("registry-test")
		require.NoError(t, err)

		f, err := factory(BuildContext{})
		require.NoError(t, err)
		assert.Equal(t, "registry-test", f.Name())
	})

	t.Run("get fails for unknown name", func(t *testing.T) {
		_, err := Get("no-such-filter")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown filter")
	})

	t.Run("available lists names sorted", func(t *testing.T) {
		Register("registry-test-b", func(_ BuildContext) (Filter, error) { return nil, nil })
		Register("registry-test-a", func(_ BuildContext) (Filter, error) { return nil, nil })

		names := Available()

		assert.Contains(t, names, "registry-test-a")
		assert.Contains(t, names, "registry-test-b")
		assert.IsIncreasing(t, names)
	})
}

func TestBuildContextStringSetting(t *testing.T) {
	ctx := BuildContext{Settings: map[string]any{
		"file":  "patch.json",
		"depth": 3,
	}}

	assert.Equal(t, "patch.json", ctx.StringSetting("file"))
	assert.Equal(t, "", ctx.StringSetting("depth"), "non-string settings read as empty")
	assert.Equal(t, "", ctx.StringSetting("missing"))
}

func TestPropertyOrderNames(t *testing.T) {
	props := openapi3.Schemas{
		"name": openapi3.NewSchemaRef("", openapi3.NewStringSchema()),
		"age":  openapi3.NewSchemaRef("", openapi3.NewIntegerSchema()),
		"tags": openapi3.NewSchemaRef("", openapi3.NewArraySchema()),
	}

	tests := []struct {
		name     string
		order    PropertyOrder
		key      string
		expected []string
	}{
		{
			name:     "declared order wins over alphabetical",
			order:    PropertyOrder{"User": {"name", "age", "tags"}},
			key:      "User",
			expected: []string{"name", "age", "tags"},
		},
		{
			name:     "missing hint falls back to sorted",
			order:    PropertyOrder{},
			key:      "User",
			expected: []string{"age", "name", "tags"},
		},
		{
			name:     "nil receiver falls back to sorted",
			order:    nil,
			key:      "User",
			expected: []string{"age", "name", "tags"},
		},
		{
			name:     "hinted names absent from props are dropped",
			order:    PropertyOrder{"User": {"name", "removed", "age"}},
			key:      "User",
			expected: []string{"name", "age", "tags"},
		},
		{
			name:     "props absent from hint are appended sorted",
			order:    PropertyOrder{"User": {"tags"}},
			key:      "User",
			expected: []string{"tags", "age", "name"},
		},
		{
			name:     "hint for a different key is ignored",
			order:    PropertyOrder{"Pet": {"tags", "name", "age"}},
			key:      "User",
			expected: []string{"age", "name", "tags"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.order.Names(tt.key, props))
		})
	}
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"b": 1, "a": 2, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(m))
	assert.Empty(t, SortedKeys(map[string]int{}))
}
