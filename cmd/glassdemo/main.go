// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command glassdemo renders the glass effect for a box offline: it prints
// the published style properties and can write the displacement map, the
// filter description and a filtered image to disk.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gogpu/glass/cmd/glassdemo/commands"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		// %+v prints the zerr report with metadata.
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cli := commands.New(os.Stdout, os.Stderr)
	cli.SetArgs(args)
	return cli.Execute(context.Background())
}
