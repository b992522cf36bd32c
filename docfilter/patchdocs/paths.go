// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juri Lents

package patchdocs

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/jurilents/light-core/docfilter"
)

// PointerPaths derives the JSON pointer paths addressable inside the model described
// by root, depth-first, one path per visited node. name keys property-order lookups
// for root's own property map; schemas resolves $ref properties.
//
// Array positions are rendered as a positional placeholder ("/{0}", "/{1}", ...)
// whose index counts array nesting below the current top-level property. Recursive
// models are not supported and will not terminate.
func PointerPaths(name string, root *openapi3.SchemaRef, schemas openapi3.Schemas, order docfilter.PropertyOrder) []string {
	if root == nil || root.Value == nil {
		return nil
	}
	var paths []string
	props := root.Value.Properties
	for _, prop := range order.Names(name, props) {
		paths = walk(paths, "/"+prop, props[prop], 0, name+"."+prop, schemas, order)
	}
	return paths
}

// walk appends the pointer path of node and of everything reachable below it to acc.
// prefix is node's own path, key locates node's property map in the order hints, and
// depth counts array nesting accumulated since the top-level property.
func walk(acc []string, prefix string, node *openapi3.SchemaRef, depth int, key string, schemas openapi3.Schemas, order docfilter.PropertyOrder) []string {
	acc = append(acc, prefix)
	if node == nil {
		return acc
	}

	if ref := refSchemaName(node.Ref); ref != "" {
		key = ref
	}

	// Inline properties win; otherwise follow the reference into the registry.
	var props openapi3.Schemas
	if node.Value != nil && len(node.Value.Properties) > 0 {
		props = node.Value.Properties
	} else if ref := refSchemaName(node.Ref); ref != "" {
		if target, ok := schemas[ref]; ok && target != nil && target.Value != nil {
			props = target.Value.Properties
		}
	}

	if len(props) > 0 {
		for _, prop := range order.Names(key, props) {
			acc = walk(acc, prefix+"/"+prop, props[prop], depth, key+"."+prop, schemas, order)
		}
		return acc
	}

	if node.Value != nil && node.Value.Items != nil {
		return walk(acc, fmt.Sprintf("%s/{%d}", prefix, depth), node.Value.Items, depth+1, key, schemas, order)
	}

	return acc
}

// refSchemaName extracts the component schema name from a $ref string, or "" when
// the reference does not point into components/schemas.
func refSchemaName(ref string) string {
	name, found := strings.CutPrefix(ref, "#/components/schemas/")
	if !found || name == "" || strings.Contains(name, "/") {
		return ""
	}
	return name
}
