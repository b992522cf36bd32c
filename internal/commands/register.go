// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juri Lents

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jurilents/light-core/internal/session"

	// Imported so the filters register themselves.
	_ "github.com/jurilents/light-core/docfilter/overlay"
	_ "github.com/jurilents/light-core/docfilter/patchdocs"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lightdoc",
		Short: "Post-process generated OpenAPI documents",
		Long: `lightdoc repairs and rewrites generated OpenAPI documents before they are
published: it fixes the schemas emitted for JSON-patch endpoints and applies
hand-maintained overlay patches.`,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print filter diagnostics")

	registerInitCmd(rootCmd)
	registerApplyCmd(rootCmd)
	registerSchemasCmd(rootCmd)
	registerSampleCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}

func registerSchemasCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "schemas",
		Short:             "Inspect the document's schema registry",
		PersistentPreRunE: session.PreRunLoad,
	}
	cmd.PersistentFlags().String(session.FileFlag, "", "Inspect a document file instead of the project document")

	registerSchemasListCmd(cmd)
	registerSchemasPathsCmd(cmd)

	parent.AddCommand(cmd)
}

// loggerFromCommand builds the logger selected by the --verbose flag.
func loggerFromCommand(cmd *cobra.Command) *zap.Logger {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil || !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
