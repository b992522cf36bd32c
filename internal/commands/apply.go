// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juri Lents

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jurilents/light-core/docfilter"
	"github.com/jurilents/light-core/docfilter/overlay"
	"github.com/jurilents/light-core/internal/config"
	"github.com/jurilents/light-core/internal/docio"
	"github.com/jurilents/light-core/internal/prompts"
	"github.com/jurilents/light-core/internal/session"
)

type applyOptions struct {
	filters []string
	output  string
	patch   string
}

func registerApplyCmd(parent *cobra.Command) {
	parent.AddCommand(newApplyCmd())
}

func newApplyCmd() *cobra.Command {
	opts := &applyOptions{}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply document filters and write the result",
		Long: fmt.Sprintf(`Apply post-processing filters to the project's OpenAPI document.

Available filters: %s`, strings.Join(docfilter.Available(), ", ")),
		Example: `  # Apply the filters configured in lightdoc.yaml
  lightdoc apply

  # Apply specific filters
  lightdoc apply --filter patch-documents

  # Also apply a hand-maintained RFC 6902 patch
  lightdoc apply --patch docs/overlay.json

  # Post-process a single document without a project
  lightdoc apply --file openapi.json --output openapi.public.json`,
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.filters, "filter", nil, "Filter name(s), comma-separated (defaults to the configured filters)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output path (defaults to rewriting the document in place)")
	cmd.Flags().StringVar(&opts.patch, "patch", "", "RFC 6902 patch file applied after the other filters")
	cmd.Flags().String(session.FileFlag, "", "Post-process a document file instead of the project document")

	return cmd
}

func runApply(cmd *cobra.Command, opts *applyOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	specs := resolveFilterSpecs(ctx.Config, opts)

	// Prompt when neither flags nor configuration selected anything.
	if len(specs) == 0 {
		var selected []string
		if err := prompts.RunApplyForm(
			&selected, &opts.output,
			!cmd.Flags().Changed("output"),
			docfilter.Available(),
		); err != nil {
			return err
		}
		for _, name := range selected {
			specs = append(specs, config.Filter{Name: name})
		}
	}
	if len(specs) == 0 {
		return fmt.Errorf("no filters selected")
	}

	logger := loggerFromCommand(cmd)
	defer logger.Sync() //nolint:errcheck

	chain, err := buildChain(specs, ctx, logger)
	if err != nil {
		return err
	}

	if err := chain.Apply(ctx.Doc); err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = ctx.DocPath
	}
	if err := docio.Save(output, ctx.Doc); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	names := make([]string, len(specs))
	for i, spec := range specs {
		names[i] = spec.Name
	}
	prompts.PrintResult([]prompts.ResultField{
		{Label: "Document", Value: ctx.DocPath},
		{Label: "Filters", Value: strings.Join(names, ", ")},
		{Label: "Output", Value: output},
	}, "Document rewritten.")

	return nil
}

// resolveFilterSpecs resolves the filter list from flags, falling back to the
// configured filters. --patch appends an overlay filter for the named file.
func resolveFilterSpecs(cfg *config.Config, opts *applyOptions) []config.Filter {
	var specs []config.Filter

	if len(opts.filters) > 0 {
		for _, name := range opts.filters {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			specs = append(specs, configuredFilter(cfg, name))
		}
	} else if cfg != nil {
		specs = append(specs, cfg.Filters...)
	}

	if opts.patch != "" {
		specs = append(specs, config.Filter{
			Name:     overlay.FilterName,
			Settings: map[string]any{"file": opts.patch},
		})
	}

	return specs
}

// configuredFilter returns name's lightdoc.yaml entry when one exists, so --filter
// selections keep their configured settings.
func configuredFilter(cfg *config.Config, name string) config.Filter {
	if cfg != nil {
		for _, f := range cfg.Filters {
			if f.Name == name {
				return f
			}
		}
	}
	return config.Filter{Name: name}
}

// buildChain instantiates the selected filters against the loaded document.
func buildChain(specs []config.Filter, ctx *session.Context, logger *zap.Logger) (docfilter.Chain, error) {
	chain := make(docfilter.Chain, 0, len(specs))
	for _, spec := range specs {
		factory, err := docfilter.Get(spec.Name)
		if err != nil {
			return nil, fmt.Errorf("unsupported filter %q. Available filters: %s",
				spec.Name, strings.Join(docfilter.Available(), ", "))
		}

		f, err := factory(docfilter.BuildContext{
			Settings: spec.Settings,
			Order:    ctx.Order,
			BaseDir:  ctx.BaseDir,
			Logger:   logger,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to configure filter %s: %w", spec.Name, err)
		}
		chain = append(chain, f)
	}
	return chain, nil
}
