// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juri Lents

package patchdocs

import "github.com/getkin/kin-openapi/openapi3"

const (
	// freeformPathExample documents path/from when no target model schema exists.
	freeformPathExample = "/path/to/property"

	// valueExample documents the operation value property.
	valueExample = "new value"

	// operationsDescription documents the single property of a rebuilt patch
	// document schema.
	operationsDescription = "Array of operations to perform."
)

// opNames are the admissible values of the op property: the six RFC 6902 operation
// names plus the sentinel the deserializer assigns to unparseable input.
var opNames = []any{"add", "copy", "move", "remove", "replace", "test", "invalid"}

// opSchema returns the op property schema.
func opSchema() *openapi3.SchemaRef {
	return &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type: &openapi3.Types{openapi3.TypeString},
			Enum: append([]any(nil), opNames...),
		},
	}
}

// pathEnumSchema returns a path or from property schema constrained to the given
// pointer paths.
func pathEnumSchema(paths []string) *openapi3.SchemaRef {
	enum := make([]any, len(paths))
	for i, p := range paths {
		enum[i] = p
	}
	return &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type: &openapi3.Types{openapi3.TypeString},
			Enum: enum,
		},
	}
}

// freeformPathSchema returns the path or from property schema used when the target
// model has no entry in the registry.
func freeformPathSchema() *openapi3.SchemaRef {
	return &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type:    &openapi3.Types{openapi3.TypeString},
			Example: freeformPathExample,
		},
	}
}

// valueSchema returns the value property schema.
func valueSchema() *openapi3.SchemaRef {
	return &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type:    &openapi3.Types{openapi3.TypeString},
			Example: valueExample,
		},
	}
}

// operationsSchema returns the operations property of a rebuilt patch document
// schema: an array of references to the target's operation schema.
func operationsSchema(operationName string) *openapi3.SchemaRef {
	return &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type:        &openapi3.Types{openapi3.TypeArray},
			Description: operationsDescription,
			Items:       openapi3.NewSchemaRef("#/components/schemas/"+operationName, nil),
		},
	}
}
