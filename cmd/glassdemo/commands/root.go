// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package commands implements the glassdemo CLI.
package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/glass"
)

// CLI is the glassdemo command line interface.
type CLI struct {
	rootCmd *cobra.Command
	out     io.Writer
	errOut  io.Writer
}

// New creates the CLI writing results to out and diagnostics to errOut.
func New(out, errOut io.Writer) *CLI {
	rootCmd := &cobra.Command{
		Use:           "glassdemo",
		Short:         "Render the glass effect offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML preset file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log pipeline decisions to stderr")

	c := &CLI{rootCmd: rootCmd, out: out, errOut: errOut}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}
		if verbose {
			glass.SetLogger(slog.New(slog.NewTextHandler(c.errOut, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
		return nil
	}

	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newPresetsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

func (c *CLI) configPath() string {
	path, _ := c.rootCmd.PersistentFlags().GetString("config")
	return path
}
