// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juri Lents

// Package docfilter defines post-processing filters for generated OpenAPI documents.
//
// Filters run after a document has been fully generated and before it is emitted,
// and mutate the document in place. The host pipeline owns the document for the
// duration of a filter pass; no concurrent mutation is expected.
package docfilter

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"go.uber.org/zap"
)

// Filter rewrites an OpenAPI document in place.
type Filter interface {
	// Name returns the filter's identifier (e.g., "patch-documents", "overlay")
	Name() string

	// Apply mutates the document. Filters that repair generated output should
	// prefer skipping unknown shapes over returning an error, so that one bad
	// entry cannot abort document generation.
	Apply(doc *openapi3.T) error
}

// Chain applies filters in order. The first failing filter stops the chain.
type Chain []Filter

// Apply runs every filter in the chain against doc.
func (c Chain) Apply(doc *openapi3.T) error {
	for _, f := range c {
		if err := f.Apply(doc); err != nil {
			return fmt.Errorf("filter %s: %w", f.Name(), err)
		}
	}
	return nil
}

// BuildContext carries everything a filter factory may need besides its own settings.
type BuildContext struct {
	// Settings is the filter-specific configuration block from lightdoc.yaml.
	Settings map[string]any

	// Order holds declared property order hints extracted from the raw document.
	// May be nil; consumers fall back to sorted order.
	Order PropertyOrder

	// BaseDir resolves relative paths in Settings (e.g., the overlay patch file).
	BaseDir string

	// Logger receives diagnostic output. May be nil.
	Logger *zap.Logger
}

// StringSetting returns the named setting if it is a string, or "".
func (c BuildContext) StringSetting(key string) string {
	v, _ := c.Settings[key].(string)
	return v
}

// Factory builds a configured filter instance.
type Factory func(ctx BuildContext) (Filter, error)

var factories = make(map[string]Factory)

// Register adds a filter factory to the registry.
func Register(name string, f Factory) {
	factories[name] = f
}

// Get retrieves a filter factory by name.
func Get(name string) (Factory, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown filter: %s", name)
	}
	return f, nil
}

// Available returns all registered filter names, sorted.
func Available() []string {
	return SortedKeys(factories)
}
