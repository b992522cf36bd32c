// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juri Lents

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jurilents/light-core/internal/version"
)

func registerVersionCmd(parent *cobra.Command) {
	parent.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show lightdoc version information",
		Example: `  # Show the version
  lightdoc version`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.Info())
		},
	}
}
