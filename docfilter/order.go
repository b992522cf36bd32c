// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juri Lents

package docfilter

import (
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

// PropertyOrder maps a schema location to the declared order of its property names.
//
// Parsed documents keep properties in maps, so declared order is recovered from the
// raw bytes separately and carried alongside the document. Keys name the owner of a
// property map: a component schema name ("User"), extended by ".<property>" for each
// nested inline object ("User.address"). Array items contribute no segment, and
// following a $ref re-keys to the referenced schema's name.
type PropertyOrder map[string][]string

// Names returns the keys of props in declared order when a hint exists for key,
// otherwise sorted. Hinted names missing from props are dropped; names present in
// props but absent from the hint are appended sorted.
func (o PropertyOrder) Names(key string, props openapi3.Schemas) []string {
	hint, ok := o[key]
	if !ok {
		return SortedKeys(props)
	}

	seen := make(map[string]bool, len(props))
	names := make([]string, 0, len(props))
	for _, name := range hint {
		if _, exists := props[name]; exists {
			names = append(names, name)
			seen[name] = true
		}
	}
	for _, name := range SortedKeys(props) {
		if !seen[name] {
			names = append(names, name)
		}
	}
	return names
}

// SortedKeys returns the keys of m sorted alphabetically.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
