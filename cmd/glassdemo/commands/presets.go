// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(c.configPath())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range cfg.Names() {
				p := cfg.Presets[name]
				keys := make([]string, 0, len(p))
				for k := range p {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				pairs := make([]string, len(keys))
				for i, k := range keys {
					pairs[i] = k + "=" + p[k]
				}
				_, _ = fmt.Fprintf(out, "%s\t%s\n", name, strings.Join(pairs, " "))
			}
			return nil
		},
	}
}
