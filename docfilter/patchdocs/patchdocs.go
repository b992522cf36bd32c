// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juri Lents

// Package patchdocs repairs the schemas that generic patch-document generators emit
// for JSON-patch endpoints.
//
// Generators that reflect over a serializer's internal operation container produce
// three kinds of damaged registry entries: a leaked contract resolver schema, per
// target *Operation schemas exposing container internals instead of RFC 6902 fields,
// and per target *PatchDocument schemas referencing the leaked resolver. The Rewriter
// removes the first and rebuilds the other two in place.
package patchdocs

import (
	"github.com/getkin/kin-openapi/openapi3"
	"go.uber.org/zap"

	"github.com/jurilents/light-core/docfilter"
)

// FilterName identifies the rewriter in the filter registry.
const FilterName = "patch-documents"

func init() {
	docfilter.Register(FilterName, func(ctx docfilter.BuildContext) (docfilter.Filter, error) {
		return New(
			WithNaming(NamingFromSettings(ctx.Settings)),
			WithPropertyOrder(ctx.Order),
			WithLogger(ctx.Logger),
		), nil
	})
}

// Rewriter rebuilds JSON-patch schemas inside a document's schema registry. Apply
// never fails: entries that are absent or have no inline value are skipped, and a
// document without matching entries passes through untouched. Re-applying to an
// already rewritten document yields identical output.
type Rewriter struct {
	naming Naming
	order  docfilter.PropertyOrder
	log    *zap.Logger
}

// Option configures a Rewriter.
type Option func(*Rewriter)

// WithNaming overrides the default schema naming convention.
func WithNaming(n Naming) Option {
	return func(r *Rewriter) { r.naming = n }
}

// WithPropertyOrder supplies declared property order hints for pointer path
// derivation. Without hints, properties walk in sorted order.
func WithPropertyOrder(o docfilter.PropertyOrder) Option {
	return func(r *Rewriter) { r.order = o }
}

// WithLogger sets the diagnostic logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(r *Rewriter) {
		if l != nil {
			r.log = l
		}
	}
}

// New creates a Rewriter with the default naming convention.
func New(opts ...Option) *Rewriter {
	r := &Rewriter{
		naming: DefaultNaming(),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name implements docfilter.Filter.
func (r *Rewriter) Name() string { return FilterName }

// Apply implements docfilter.Filter. The error is always nil.
func (r *Rewriter) Apply(doc *openapi3.T) error {
	if doc == nil || doc.Components == nil || doc.Components.Schemas == nil {
		return nil
	}
	schemas := doc.Components.Schemas

	r.removeResolverSchema(schemas)
	r.rewriteOperationSchemas(schemas)
	r.rewriteDocumentSchemas(schemas)
	return nil
}

// removeResolverSchema drops the serializer-internal contract resolver entry.
func (r *Rewriter) removeResolverSchema(schemas openapi3.Schemas) {
	if _, ok := schemas[r.naming.ResolverSchema]; !ok {
		return
	}
	delete(schemas, r.naming.ResolverSchema)
	r.log.Debug("removed leaked resolver schema",
		zap.String("schema", r.naming.ResolverSchema))
}

// rewriteOperationSchemas rebuilds every *Operation entry with the four JSON-patch
// operation properties. The shared operation-kind enumeration entry is dropped first;
// its admissible values appear inlined in each rebuilt op property instead.
func (r *Rewriter) rewriteOperationSchemas(schemas openapi3.Schemas) {
	delete(schemas, r.naming.OpKindSchema)

	for _, name := range docfilter.SortedKeys(schemas) {
		if !r.naming.IsOperation(name) {
			continue
		}
		entry := schemas[name]
		if entry == nil || entry.Value == nil {
			continue
		}

		base := r.naming.OperationBase(name)
		var path, from *openapi3.SchemaRef
		if target, ok := schemas[base]; ok {
			paths := PointerPaths(base, target, schemas, r.order)
			path = pathEnumSchema(paths)
			from = pathEnumSchema(paths)
			r.log.Debug("rebuilt operation schema",
				zap.String("schema", name),
				zap.String("target", base),
				zap.Int("paths", len(paths)))
		} else {
			path = freeformPathSchema()
			from = freeformPathSchema()
			r.log.Debug("rebuilt operation schema without a target model",
				zap.String("schema", name))
		}

		entry.Value.Properties = openapi3.Schemas{
			"op":    opSchema(),
			"path":  path,
			"from":  from,
			"value": valueSchema(),
		}
	}
}

// rewriteDocumentSchemas rebuilds every *PatchDocument entry, plus any entry still
// holding a property reference to the removed resolver schema, into a single
// operations array.
func (r *Rewriter) rewriteDocumentSchemas(schemas openapi3.Schemas) {
	for _, name := range docfilter.SortedKeys(schemas) {
		entry := schemas[name]
		if entry == nil || entry.Value == nil {
			continue
		}
		if !r.naming.IsDocument(name) && !r.referencesResolver(entry.Value) {
			continue
		}

		operation := r.naming.OperationFor(r.naming.DocumentBase(name))
		entry.Value.Properties = openapi3.Schemas{
			"operations": operationsSchema(operation),
		}
		r.log.Debug("rebuilt patch document schema",
			zap.String("schema", name),
			zap.String("operation", operation))
	}
}

// referencesResolver reports whether any direct property of s references the leaked
// resolver schema.
func (r *Rewriter) referencesResolver(s *openapi3.Schema) bool {
	for _, prop := range s.Properties {
		if prop != nil && refSchemaName(prop.Ref) == r.naming.ResolverSchema {
			return true
		}
	}
	return false
}
