// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juri Lents

package docio

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/jurilents/light-core/docfilter"
)

// ExtractKeyOrderJSON records the declared property order of every schema under
// components.schemas in a raw JSON document. Order keys follow the
// docfilter.PropertyOrder convention. Malformed input yields a partial or empty map;
// parse errors surface when the document itself is loaded.
func ExtractKeyOrderJSON(data []byte) docfilter.PropertyOrder {
	order := make(docfilter.PropertyOrder)
	dec := json.NewDecoder(bytes.NewReader(data))

	if !expectDelim(dec, '{') {
		return order
	}
	for dec.More() {
		key, ok := nextKey(dec)
		if !ok {
			return order
		}
		if key != "components" {
			skipValue(dec)
			continue
		}
		scanComponents(dec, order)
	}
	return order
}

// scanComponents walks the components object looking for schemas.
func scanComponents(dec *json.Decoder, order docfilter.PropertyOrder) {
	if !expectDelim(dec, '{') {
		return
	}
	for dec.More() {
		key, ok := nextKey(dec)
		if !ok {
			return
		}
		if key != "schemas" {
			skipValue(dec)
			continue
		}
		if !expectDelim(dec, '{') {
			return
		}
		for dec.More() {
			name, ok := nextKey(dec)
			if !ok {
				return
			}
			scanSchemaJSON(dec, name, order)
		}
		dec.Token()
	}
	dec.Token()
}

// scanSchemaJSON consumes one schema value, recording property order under key.
// Nested inline objects extend the key with ".<property>"; items add no segment.
func scanSchemaJSON(dec *json.Decoder, key string, order docfilter.PropertyOrder) {
	tok, err := dec.Token()
	if err != nil {
		return
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return
	}
	if d == '[' {
		for dec.More() {
			skipValue(dec)
		}
		dec.Token()
		return
	}
	if d != '{' {
		return
	}
	for dec.More() {
		field, ok := nextKey(dec)
		if !ok {
			return
		}
		switch field {
		case "properties":
			scanPropertiesJSON(dec, key, order)
		case "items":
			scanSchemaJSON(dec, key, order)
		default:
			skipValue(dec)
		}
	}
	dec.Token()
}

// scanPropertiesJSON reads one properties object, recording the declared key order
// and recursing into every property schema.
func scanPropertiesJSON(dec *json.Decoder, key string, order docfilter.PropertyOrder) {
	if !expectDelim(dec, '{') {
		return
	}
	var names []string
	for dec.More() {
		prop, ok := nextKey(dec)
		if !ok {
			return
		}
		names = append(names, prop)
		scanSchemaJSON(dec, key+"."+prop, order)
	}
	dec.Token()
	if len(names) > 0 {
		order[key] = names
	}
}

// nextKey reads an object key token.
func nextKey(dec *json.Decoder) (string, bool) {
	tok, err := dec.Token()
	if err != nil {
		return "", false
	}
	key, ok := tok.(string)
	return key, ok
}

// expectDelim consumes one token and reports whether it is the given delimiter.
func expectDelim(dec *json.Decoder, d json.Delim) bool {
	tok, err := dec.Token()
	if err != nil {
		return false
	}
	got, ok := tok.(json.Delim)
	return ok && got == d
}

// skipValue consumes one complete JSON value of any shape.
func skipValue(dec *json.Decoder) {
	tok, err := dec.Token()
	if err != nil {
		return
	}
	d, ok := tok.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		return
	}
	for dec.More() {
		if d == '{' {
			if _, ok := nextKey(dec); !ok {
				return
			}
		}
		skipValue(dec)
	}
	dec.Token()
}

// ExtractKeyOrderYAML is the YAML counterpart of ExtractKeyOrderJSON.
func ExtractKeyOrderYAML(data []byte) docfilter.PropertyOrder {
	order := make(docfilter.PropertyOrder)

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return order
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return order
	}

	schemas := mappingValue(mappingValue(root.Content[0], "components"), "schemas")
	if schemas == nil || schemas.Kind != yaml.MappingNode {
		return order
	}
	for i := 0; i+1 < len(schemas.Content); i += 2 {
		scanSchemaYAML(schemas.Content[i+1], schemas.Content[i].Value, order)
	}
	return order
}

// mappingValue returns the value node for key in a YAML mapping node.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// scanSchemaYAML walks one schema node, recording property order under key.
func scanSchemaYAML(node *yaml.Node, key string, order docfilter.PropertyOrder) {
	if node == nil || node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		value := node.Content[i+1]
		switch node.Content[i].Value {
		case "properties":
			if value.Kind != yaml.MappingNode {
				continue
			}
			var names []string
			for j := 0; j+1 < len(value.Content); j += 2 {
				prop := value.Content[j].Value
				names = append(names, prop)
				scanSchemaYAML(value.Content[j+1], key+"."+prop, order)
			}
			if len(names) > 0 {
				order[key] = names
			}
		case "items":
			scanSchemaYAML(value, key, order)
		}
	}
}
