// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juri Lents

package session

import (
	"errors"

	"github.com/spf13/cobra"
)

// FileFlag is the flag that points a command at a single document instead of a
// lightdoc project.
const FileFlag = "file"

// FromCommand extracts the lightdoc Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the lightdoc Context from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, errors.New("project context not loaded")
	}
	return ctx, nil
}

// PreRunLoad is a PersistentPreRunE function that loads the project context (or the
// document named by --file when set) and stores it in the command's context.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	var (
		ctx = cmd.Context()
		err error
	)
	if file, _ := cmd.Flags().GetString(FileFlag); file != "" {
		ctx, err = LoadFile(ctx, file)
	} else {
		ctx, err = Load(ctx)
	}
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}
