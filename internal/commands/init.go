// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juri Lents

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jurilents/light-core/internal/config"
	"github.com/jurilents/light-core/internal/docio"
	"github.com/jurilents/light-core/internal/prompts"
	"github.com/jurilents/light-core/internal/sampledoc"
	"github.com/jurilents/light-core/internal/session"
)

type initOptions struct {
	document       string
	sample         bool
	nonInteractive bool
}

func registerInitCmd(parent *cobra.Command) {
	parent.AddCommand(newInitCmd())
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new lightdoc project",
		Long: `Initialize a new lightdoc project with a lightdoc.yaml configuration file
pointing at a generated OpenAPI document. The document can be an existing
file or a freshly written sample.`,
		Example: `  # Interactive mode
  lightdoc init

  # Non-interactive
  lightdoc init --document openapi.json --non-interactive

  # Start from a sample document
  lightdoc init --document openapi.json --sample --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.document, "document", "d", "", "Path to the generated OpenAPI document")
	cmd.Flags().BoolVar(&opts.sample, "sample", false, "Write a sample document at the given path")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --document)")

	return cmd
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("lightdoc.yaml already exists; project already initialized")
	}

	if opts.nonInteractive {
		if opts.document == "" {
			return errors.New("non-interactive mode requires --document")
		}
	} else if opts.document == "" {
		if err := prompts.RunInitForm(&opts.document, &opts.sample); err != nil {
			return err
		}
	}

	docPath := opts.document
	if !filepath.IsAbs(docPath) {
		docPath = filepath.Join(cwd, docPath)
	}

	if opts.sample {
		if _, err := os.Stat(docPath); err == nil {
			return fmt.Errorf("document already exists: %s", opts.document)
		}
		doc, err := sampledoc.New()
		if err != nil {
			return fmt.Errorf("failed to build sample document: %w", err)
		}
		if err := docio.Save(docPath, doc); err != nil {
			return fmt.Errorf("failed to write sample document: %w", err)
		}
	} else if _, err := os.Stat(docPath); os.IsNotExist(err) {
		return fmt.Errorf("document not found: %s (generate it first, or pass --sample)", opts.document)
	}

	cfg := config.Default(opts.document)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	names := make([]string, len(cfg.Filters))
	for i, f := range cfg.Filters {
		names[i] = f.Name
	}
	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: session.ConfigFileName},
		{Label: "Document", Value: opts.document},
		{Label: "Filters", Value: strings.Join(names, ", ")},
	}, "Project initialized.")

	return nil
}
