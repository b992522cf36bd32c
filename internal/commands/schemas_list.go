// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juri Lents

package commands

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/spf13/cobra"

	"github.com/jurilents/light-core/docfilter"
	"github.com/jurilents/light-core/docfilter/patchdocs"
	"github.com/jurilents/light-core/internal/config"
	"github.com/jurilents/light-core/internal/session"
)

func registerSchemasListCmd(parent *cobra.Command) {
	parent.AddCommand(newSchemasListCmd())
}

func newSchemasListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List schema registry entries",
		Long: `List the entries of the document's schema registry.
Shows how each entry is classified under the patch-documents naming convention.`,
		Example: `  # List schemas
  lightdoc schemas list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runSchemasList(ctx)
		},
	}

	return cmd
}

func runSchemasList(ctx *session.Context) error {
	schemas := registrySchemas(ctx.Doc)
	if len(schemas) == 0 {
		fmt.Println("No schemas defined.")
		return nil
	}

	naming := namingFromConfig(ctx.Config)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tKIND\tPROPERTIES")

	for _, name := range docfilter.SortedKeys(schemas) {
		entry := schemas[name]

		props := "-"
		if entry != nil && entry.Value != nil && len(entry.Value.Properties) > 0 {
			props = strconv.Itoa(len(entry.Value.Properties))
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", name, classifySchema(naming, name), props)
	}

	return w.Flush()
}

// classifySchema names the role an entry plays under the naming convention.
func classifySchema(n patchdocs.Naming, name string) string {
	switch {
	case name == n.ResolverSchema:
		return "leaked resolver"
	case name == n.OpKindSchema:
		return "operation kind"
	case n.IsOperation(name):
		return "patch operation"
	case n.IsDocument(name):
		return "patch document"
	default:
		return "model"
	}
}

// registrySchemas returns the document's schema registry, or nil when absent.
func registrySchemas(doc *openapi3.T) openapi3.Schemas {
	if doc == nil || doc.Components == nil {
		return nil
	}
	return doc.Components.Schemas
}

// namingFromConfig applies any configured patch-documents settings, so inspection
// matches what apply would do.
func namingFromConfig(cfg *config.Config) patchdocs.Naming {
	if cfg == nil {
		return patchdocs.DefaultNaming()
	}
	for _, f := range cfg.Filters {
		if f.Name == patchdocs.FilterName {
			return patchdocs.NamingFromSettings(f.Settings)
		}
	}
	return patchdocs.DefaultNaming()
}
