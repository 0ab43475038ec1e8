// SPDX-License-Identifier: Unlicense OR MIT

// Command griddemo lays out example widget trees with the grid
// container and prints or renders the result.
//
// The scenes are built in code (see --scene), or read from a TOML
// file:
//
//	[grid]
//	columns = ["40", "1fr"]
//	rows = ["auto"]
//	column_gap = 10
//
//	[[grid.child]]
//	kind = "fill"
//	color = "crimson"
//	width = 20
//	height = 20
//
// Usage:
//
//	griddemo layout --scene nested --width 800 --height 600
//	griddemo render --file scene.toml --out scene.png
//
// All commands accept -v for debug logging, which includes the
// measure and layout timings of the scene root.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

func execute(args []string) error {
	root := newRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "griddemo",
		Short:        "Lay out widget trees with the CSS grid container",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newLayoutCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newScenesCmd())
	return root
}
