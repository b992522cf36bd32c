// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juri Lents

// Package sampledoc builds a demo OpenAPI document shaped like raw generator output
// for JSON-patch endpoints: typed model schemas next to the damaged entries a generic
// patch-document generator emits for them.
package sampledoc

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

type address struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

type user struct {
	Name    string   `json:"name"`
	Age     int      `json:"age"`
	Address address  `json:"address"`
	Tags    []string `json:"tags"`
}

type project struct {
	Title  string   `json:"title"`
	Owners []string `json:"owners"`
}

// New builds the sample document. Each model gets a PATCH endpoint, a reflected model
// schema, and the raw *Operation / *PatchDocument registry entries a generator would
// produce, including the leaked IContractResolver and shared OperationType helpers.
func New() (*openapi3.T, error) {
	schemas := make(openapi3.Schemas)

	userRef, err := openapi3gen.NewSchemaRefForValue(&user{}, schemas)
	if err != nil {
		return nil, fmt.Errorf("failed to reflect user model: %w", err)
	}
	projectRef, err := openapi3gen.NewSchemaRefForValue(&project{}, schemas)
	if err != nil {
		return nil, fmt.Errorf("failed to reflect project model: %w", err)
	}

	schemas["User"] = userRef
	schemas["Project"] = projectRef
	schemas["IContractResolver"] = resolverEntry()
	schemas["OperationType"] = opKindEntry()
	for _, base := range []string{"User", "Project"} {
		schemas[base+"Operation"] = operationEntry()
		schemas[base+"PatchDocument"] = patchDocumentEntry(base)
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Sample API",
			Version:     "1.0.0",
			Description: "Generated sample with raw patch document schemas.",
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: schemas,
		},
	}
	for _, base := range []string{"User", "Project"} {
		doc.Paths.Set("/"+strings.ToLower(base)+"s/{id}", patchPathItem(base))
	}
	return doc, nil
}

// patchPathItem returns the PATCH endpoint for a model, consuming the model's patch
// document schema as application/json-patch+json.
func patchPathItem(base string) *openapi3.PathItem {
	body := openapi3.NewRequestBody().
		WithRequired(true).
		WithSchemaRef(
			openapi3.NewSchemaRef("#/components/schemas/"+base+"PatchDocument", nil),
			[]string{"application/json-patch+json"},
		)

	responses := openapi3.NewResponses()
	responses.Set("204", &openapi3.ResponseRef{
		Value: openapi3.NewResponse().WithDescription("Updated"),
	})

	return &openapi3.PathItem{
		Patch: &openapi3.Operation{
			OperationID: "patch" + base,
			Summary:     "Apply a JSON patch to a " + strings.ToLower(base),
			RequestBody: &openapi3.RequestBodyRef{Value: body},
			Responses:   responses,
		},
	}
}

// resolverEntry mirrors the serializer-internal schema generators leak.
func resolverEntry() *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type: &openapi3.Types{openapi3.TypeObject},
	}}
}

// opKindEntry mirrors the shared operation-kind enumeration, in the order the
// serializer declares its members.
func opKindEntry() *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type: &openapi3.Types{openapi3.TypeString},
		Enum: []any{"add", "remove", "replace", "move", "copy", "test", "invalid"},
	}}
}

// operationEntry mirrors the raw operation schema: container internals instead of
// RFC 6902 fields.
func operationEntry() *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type: &openapi3.Types{openapi3.TypeObject},
		Properties: openapi3.Schemas{
			"operationType": openapi3.NewSchemaRef("#/components/schemas/OperationType", nil),
			"path":          {Value: openapi3.NewStringSchema()},
			"op":            {Value: openapi3.NewStringSchema()},
			"from":          {Value: openapi3.NewStringSchema()},
			"value":         {Value: &openapi3.Schema{}},
		},
	}}
}

// patchDocumentEntry mirrors the raw patch document schema with its leaked resolver
// reference.
func patchDocumentEntry(base string) *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type: &openapi3.Types{openapi3.TypeObject},
		Properties: openapi3.Schemas{
			"operations": {Value: &openapi3.Schema{
				Type:  &openapi3.Types{openapi3.TypeArray},
				Items: openapi3.NewSchemaRef("#/components/schemas/"+base+"Operation", nil),
			}},
			"contractResolver": openapi3.NewSchemaRef("#/components/schemas/IContractResolver", nil),
		},
	}}
}
