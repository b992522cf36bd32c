// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juri Lents

package docio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jurilents/light-core/docfilter"
	"github.com/jurilents/light-core/docfilter/patchdocs"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{name: "json document", file: "testdata/petstore.json"},
		{name: "yaml document", file: "testdata/petstore.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, order, err := Load(tt.file)
			require.NoError(t, err)

			require.NotNil(t, doc.Components)
			assert.Len(t, doc.Components.Schemas, 6)
			assert.Contains(t, doc.Components.Schemas, "PetPatchDocument")

			assert.Equal(t, []string{"name", "tag", "owner", "toys"}, order["Pet"])
			assert.Equal(t, []string{"nickname", "email"}, order["Pet.owner"])
			assert.Equal(t, []string{"label", "durability"}, order["Toy"])
			assert.Equal(t, []string{"operations", "contractResolver"}, order["PetPatchDocument"])
		})
	}

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc.toml")
		require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o644))

		_, _, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "format not supported")
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := Load(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("malformed document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"openapi": `), 0o644))

		_, _, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse document")
	})
}

func TestSaveRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		out  string
	}{
		{name: "json output", out: "out.json"},
		{name: "yaml output", out: "out.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, _, err := Load("testdata/petstore.json")
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), tt.out)
			require.NoError(t, Save(path, doc))

			reloaded, _, err := Load(path)
			require.NoError(t, err)
			assert.Len(t, reloaded.Components.Schemas, 6)
			assert.Equal(t, "Petstore", reloaded.Info.Title)
		})
	}

	t.Run("unsupported extension", func(t *testing.T) {
		doc, _, err := Load("testdata/petstore.json")
		require.NoError(t, err)

		err = Save(filepath.Join(t.TempDir(), "out.toml"), doc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "format not supported")
	})
}

// Loading and rewriting together must honor the declared property order from the
// raw document, not the alphabetical order of the parsed maps.
func TestLoadFeedsDeclaredOrderIntoRewrite(t *testing.T) {
	for _, file := range []string{"testdata/petstore.json", "testdata/petstore.yaml"} {
		t.Run(filepath.Base(file), func(t *testing.T) {
			doc, order, err := Load(file)
			require.NoError(t, err)

			require.NoError(t, patchdocs.New(patchdocs.WithPropertyOrder(order)).Apply(doc))

			path := doc.Components.Schemas["PetOperation"].Value.Properties["path"]
			assert.Equal(t, []any{
				"/name",
				"/tag",
				"/owner",
				"/owner/nickname",
				"/owner/email",
				"/toys",
				"/toys/{0}",
				"/toys/{0}/label",
				"/toys/{0}/durability",
			}, path.Value.Enum)
		})
	}
}

func TestExtractKeyOrderJSON(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected docfilter.PropertyOrder
	}{
		{
			name: "top level schema properties",
			doc: `{"components": {"schemas": {
				"User": {"type": "object", "properties": {"b": {}, "a": {}}}
			}}}`,
			expected: docfilter.PropertyOrder{"User": {"b", "a"}},
		},
		{
			name: "nested inline objects use dotted keys",
			doc: `{"components": {"schemas": {
				"User": {"properties": {
					"address": {"properties": {"street": {}, "city": {}}}
				}}
			}}}`,
			expected: docfilter.PropertyOrder{
				"User":         {"address"},
				"User.address": {"street", "city"},
			},
		},
		{
			name: "array items add no key segment",
			doc: `{"components": {"schemas": {
				"Order": {"properties": {
					"lines": {"type": "array", "items": {"properties": {"sku": {}, "qty": {}}}}
				}}
			}}}`,
			expected: docfilter.PropertyOrder{
				"Order":       {"lines"},
				"Order.lines": {"sku", "qty"},
			},
		},
		{
			name: "property named items is not confused with the keyword",
			doc: `{"components": {"schemas": {
				"Cart": {"properties": {
					"items": {"type": "array", "items": {"properties": {"name": {}}}}
				}}
			}}}`,
			expected: docfilter.PropertyOrder{
				"Cart":       {"items"},
				"Cart.items": {"name"},
			},
		},
		{
			name:     "schemas without properties record nothing",
			doc:      `{"components": {"schemas": {"Kind": {"type": "string"}}}}`,
			expected: docfilter.PropertyOrder{},
		},
		{
			name:     "no components section",
			doc:      `{"openapi": "3.0.3", "paths": {}}`,
			expected: docfilter.PropertyOrder{},
		},
		{
			name:     "truncated input yields a partial map",
			doc:      `{"components": {"schemas": {"User": {"properties": {"a": {}`,
			expected: docfilter.PropertyOrder{"User": {"a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractKeyOrderJSON([]byte(tt.doc)))
		})
	}
}

func TestExtractKeyOrderYAML(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected docfilter.PropertyOrder
	}{
		{
			name: "top level schema properties",
			doc: `
components:
  schemas:
    User:
      type: object
      properties:
        b: {}
        a: {}
`,
			expected: docfilter.PropertyOrder{"User": {"b", "a"}},
		},
		{
			name: "nested inline objects use dotted keys",
			doc: `
components:
  schemas:
    User:
      properties:
        address:
          properties:
            street: {}
            city: {}
`,
			expected: docfilter.PropertyOrder{
				"User":         {"address"},
				"User.address": {"street", "city"},
			},
		},
		{
			name: "array items add no key segment",
			doc: `
components:
  schemas:
    Order:
      properties:
        lines:
          type: array
          items:
            properties:
              sku: {}
              qty: {}
`,
			expected: docfilter.PropertyOrder{
				"Order":       {"lines"},
				"Order.lines": {"sku", "qty"},
			},
		},
		{
			name:     "no components section",
			doc:      "openapi: 3.0.3\npaths: {}\n",
			expected: docfilter.PropertyOrder{},
		},
		{
			name:     "invalid yaml yields an empty map",
			doc:      "components:\n\tschemas: bad",
			expected: docfilter.PropertyOrder{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractKeyOrderYAML([]byte(tt.doc)))
		})
	}
}
