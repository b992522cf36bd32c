// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juri Lents

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jurilents/light-core/docfilter/patchdocs"
	"github.com/jurilents/light-core/internal/session"
)

func registerSchemasPathsCmd(parent *cobra.Command) {
	parent.AddCommand(newSchemasPathsCmd())
}

func newSchemasPathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths <schema>",
		Short: "Show the JSON pointer paths derived from a schema",
		Long: `Show the JSON pointer paths derived from a schema. These are the values the
patch-documents filter offers in the path and from enums of the rebuilt
operation schema.`,
		Example: `  # Show pointer paths for the User schema
  lightdoc schemas paths User`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runSchemasPaths(ctx, args[0])
		},
	}

	return cmd
}

func runSchemasPaths(ctx *session.Context, name string) error {
	schemas := registrySchemas(ctx.Doc)
	entry, ok := schemas[name]
	if !ok {
		return fmt.Errorf("schema %q not found in document", name)
	}

	paths := patchdocs.PointerPaths(name, entry, schemas, ctx.Order)
	if len(paths) == 0 {
		fmt.Println("No pointer paths derivable.")
		return nil
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}
