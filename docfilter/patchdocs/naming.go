// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juri Lents

package patchdocs

import "strings"

// Names used by generated documents for JSON-patch model schemas.
const (
	DefaultOperationSuffix = "Operation"
	DefaultDocumentSuffix  = "PatchDocument"
	DefaultResolverSchema  = "IContractResolver"
	DefaultOpKindSchema    = "OperationType"
)

// Naming is the convention by which generated schema names encode the patch target
// they were produced for. The generator erases type identity, so a schema pair born
// from the same patch model is recognizable only through trailing name substrings:
// "UserOperation" and "UserPatchDocument" both belong to target "User".
type Naming struct {
	// OperationSuffix marks per-target operation schemas ("UserOperation").
	OperationSuffix string

	// DocumentSuffix marks per-target patch document schemas ("UserPatchDocument").
	DocumentSuffix string

	// ResolverSchema is the serializer-internal contract resolver entry that leaks
	// into generated documents.
	ResolverSchema string

	// OpKindSchema is the shared operation-kind enumeration entry whose values get
	// inlined into every rebuilt operation schema.
	OpKindSchema string
}

// DefaultNaming returns the convention used by stock generator output.
func DefaultNaming() Naming {
	return Naming{
		OperationSuffix: DefaultOperationSuffix,
		DocumentSuffix:  DefaultDocumentSuffix,
		ResolverSchema:  DefaultResolverSchema,
		OpKindSchema:    DefaultOpKindSchema,
	}
}

// NamingFromSettings builds a Naming from a filter settings block, keeping the
// default for every missing or empty key.
func NamingFromSettings(settings map[string]any) Naming {
	n := DefaultNaming()
	if v, ok := settings["operationSuffix"].(string); ok && v != "" {
		n.OperationSuffix = v
	}
	if v, ok := settings["documentSuffix"].(string); ok && v != "" {
		n.DocumentSuffix = v
	}
	if v, ok := settings["resolverSchema"].(string); ok && v != "" {
		n.ResolverSchema = v
	}
	if v, ok := settings["opKindSchema"].(string); ok && v != "" {
		n.OpKindSchema = v
	}
	return n
}

// IsOperation reports whether name is a generated operation schema.
func (n Naming) IsOperation(name string) bool {
	return strings.HasSuffix(name, n.OperationSuffix)
}

// IsDocument reports whether name is a generated patch document schema.
func (n Naming) IsDocument(name string) bool {
	return strings.HasSuffix(name, n.DocumentSuffix)
}

// OperationBase strips the operation suffix from name.
func (n Naming) OperationBase(name string) string {
	return strings.TrimSuffix(name, n.OperationSuffix)
}

// DocumentBase strips the document suffix from name. A name without the suffix
// (matched through a leaked resolver reference instead) is returned unchanged.
func (n Naming) DocumentBase(name string) string {
	return strings.TrimSuffix(name, n.DocumentSuffix)
}

// OperationFor returns the operation schema name for a base model name.
func (n Naming) OperationFor(base string) string {
	return base + n.OperationSuffix
}
