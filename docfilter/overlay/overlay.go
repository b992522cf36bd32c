// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juri Lents

// Package overlay applies a hand-maintained RFC 6902 patch to a generated OpenAPI
// document. It covers the fixes no convention-based filter can derive: vendor
// extensions, reworded descriptions, removed internal endpoints.
package overlay

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/jurilents/light-core/docfilter"
)

// FilterName identifies the overlay filter in the filter registry.
const FilterName = "overlay"

func init() {
	docfilter.Register(FilterName, func(ctx docfilter.BuildContext) (docfilter.Filter, error) {
		file := ctx.StringSetting("file")
		if file == "" {
			return nil, errors.New("overlay filter requires a file setting")
		}
		if !filepath.IsAbs(file) && ctx.BaseDir != "" {
			file = filepath.Join(ctx.BaseDir, file)
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read overlay patch: %w", err)
		}
		return New(data)
	})
}

// Filter applies an RFC 6902 patch to the document itself. The patch addresses the
// document's JSON form, so it rewrites the artifact only and never touches API
// payloads.
type Filter struct {
	patch jsonpatch.Patch
}

// New creates an overlay filter from raw patch JSON.
func New(patchJSON []byte) (*Filter, error) {
	patch, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode overlay patch: %w", err)
	}
	return &Filter{patch: patch}, nil
}

// Name implements docfilter.Filter.
func (f *Filter) Name() string { return FilterName }

// Apply implements docfilter.Filter. The document is serialized, patched, and
// reloaded in place, so later filters in the chain see the patched form.
func (f *Filter) Apply(doc *openapi3.T) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	patched, err := f.patch.Apply(data)
	if err != nil {
		return fmt.Errorf("failed to apply overlay patch: %w", err)
	}

	fresh, err := openapi3.NewLoader().LoadFromData(patched)
	if err != nil {
		return fmt.Errorf("failed to reload patched document: %w", err)
	}

	*doc = *fresh
	return nil
}
