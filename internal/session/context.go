// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juri Lents

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/jurilents/light-core/docfilter"
	"github.com/jurilents/light-core/internal/config"
	"github.com/jurilents/light-core/internal/docio"
)

var (
	// ErrNotInitialized indicates no lightdoc.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a lightdoc project (lightdoc.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDocumentNotFound indicates the document referenced by config doesn't exist.
	ErrDocumentNotFound = errors.New("document file not found")

	// ErrInvalidDocument indicates the document exists but couldn't be parsed.
	ErrInvalidDocument = errors.New("invalid OpenAPI document")
)

// ConfigFileName is the name of the lightdoc configuration file.
const ConfigFileName = "lightdoc.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration and the loaded OpenAPI document.
type Context struct {
	// Config is the project configuration.
	Config *config.Config

	// Doc is the parsed OpenAPI document.
	Doc *openapi3.T

	// Order holds the declared property order recovered from the raw document.
	Order docfilter.PropertyOrder

	// DocPath is the absolute path the document was loaded from.
	DocPath string

	// BaseDir is the directory relative filter settings resolve against.
	BaseDir string
}

// Load loads the project context from the current working directory and returns a
// new context.Context with the lightdoc Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	docPath := cfg.Document
	if !filepath.IsAbs(docPath) {
		docPath = filepath.Join(cwd, docPath)
	}

	if _, statErr := os.Stat(docPath); statErr != nil {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, docPath)
	}

	doc, order, err := docio.Load(docPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	lightCtx := &Context{
		Config:  cfg,
		Doc:     doc,
		Order:   order,
		DocPath: docPath,
		BaseDir: cwd,
	}

	return context.WithValue(ctx, contextKey{}, lightCtx), nil
}

// LoadFile builds a context for a single document given on the command line,
// bypassing project configuration. The default filter set applies.
func LoadFile(ctx context.Context, path string) (context.Context, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve document path: %w", err)
	}

	if _, statErr := os.Stat(abs); statErr != nil {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, abs)
	}

	doc, order, err := docio.Load(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	lightCtx := &Context{
		Config:  config.Default(abs),
		Doc:     doc,
		Order:   order,
		DocPath: abs,
		BaseDir: filepath.Dir(abs),
	}

	return context.WithValue(ctx, contextKey{}, lightCtx), nil
}

// From extracts the lightdoc Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if lightCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return lightCtx
	}
	return nil
}
