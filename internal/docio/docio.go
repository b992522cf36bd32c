// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juri Lents

// Package docio reads and writes OpenAPI documents for the lightdoc CLI.
//
// Loading returns the parsed document together with the declared property order
// recovered from the raw bytes, since the parsed model keeps properties in maps.
package docio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/jurilents/light-core/docfilter"
)

// Load reads an OpenAPI document file. The format is determined from the file
// extension; JSON and YAML are supported.
func Load(path string) (*openapi3.T, docfilter.PropertyOrder, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, nil, err
	}

	switch {
	case strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml"):
		return LoadYAML(data)
	case strings.HasSuffix(path, ".json"):
		return LoadJSON(data)
	default:
		return nil, nil, fmt.Errorf("document format not supported: %s", filepath.Ext(path))
	}
}

// LoadJSON parses an OpenAPI document from JSON bytes.
func LoadJSON(data []byte) (*openapi3.T, docfilter.PropertyOrder, error) {
	doc, err := openapi3.NewLoader().LoadFromData(data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return doc, ExtractKeyOrderJSON(data), nil
}

// LoadYAML parses an OpenAPI document from YAML bytes.
func LoadYAML(data []byte) (*openapi3.T, docfilter.PropertyOrder, error) {
	doc, err := openapi3.NewLoader().LoadFromData(data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return doc, ExtractKeyOrderYAML(data), nil
}

// Save writes doc to path. JSON output is indented with two spaces; YAML output uses
// a two-space indent as well.
func Save(path string, doc *openapi3.T) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	switch {
	case strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml"):
		return saveYAML(path, data)
	case strings.HasSuffix(path, ".json"):
		return saveJSON(path, data)
	default:
		return fmt.Errorf("document format not supported: %s", filepath.Ext(path))
	}
}

func saveJSON(path string, data []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("failed to format document: %w", err)
	}
	buf.WriteByte('\n')
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func saveYAML(path string, data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("failed to convert document: %w", err)
	}

	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return fmt.Errorf("failed to create document file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return enc.Close()
}
