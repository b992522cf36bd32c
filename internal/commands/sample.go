// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juri Lents

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jurilents/light-core/internal/docio"
	"github.com/jurilents/light-core/internal/prompts"
	"github.com/jurilents/light-core/internal/sampledoc"
)

type sampleOptions struct {
	output string
}

func registerSampleCmd(parent *cobra.Command) {
	parent.AddCommand(newSampleCmd())
}

func newSampleCmd() *cobra.Command {
	opts := &sampleOptions{}

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a sample document with raw generator output",
		Long: `Write a sample OpenAPI document shaped like raw generator output for
JSON-patch endpoints, including the damaged schema registry entries.
Useful for trying out apply without a real document.`,
		Example: `  # Write openapi.sample.json
  lightdoc sample

  # Pick the output path and format by extension
  lightdoc sample --output demo.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "openapi.sample.json", "Output path for the sample document")

	return cmd
}

func runSample(opts *sampleOptions) error {
	doc, err := sampledoc.New()
	if err != nil {
		return fmt.Errorf("failed to build sample document: %w", err)
	}

	if err := docio.Save(opts.output, doc); err != nil {
		return fmt.Errorf("failed to write sample document: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Document", Value: opts.output},
	}, "Sample document written.")

	return nil
}
