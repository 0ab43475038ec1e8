// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"gioui.org/grid/layout"
	"gioui.org/grid/widget"
)

// sceneFlags are the flags selecting and sizing a scene.
type sceneFlags struct {
	scene  string
	file   string
	width  int
	height int
	opts   sceneOptions
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	def := defaultSceneOptions()
	fs := cmd.Flags()
	fs.StringVarP(&f.scene, "scene", "s", "nested", "built-in scene: "+strings.Join(sceneNames(), ", "))
	fs.StringVarP(&f.file, "file", "f", "", "TOML scene file, overrides --scene")
	fs.IntVar(&f.width, "width", 800, "width of the window in pixels")
	fs.IntVar(&f.height, "height", 600, "height of the window in pixels")
	fs.IntVar(&f.opts.Levels, "levels", def.Levels, "nesting depth of the generated scenes")
	fs.IntVar(&f.opts.Tracks, "tracks", def.Tracks, "rows and columns per grid of the huge scene")
	fs.Uint64Var(&f.opts.Seed, "seed", def.Seed, "random seed of the generated scenes")
}

// load builds the selected scene and returns it with its name.
func (f *sceneFlags) load() (scene, string, error) {
	if f.width <= 0 || f.height <= 0 {
		return scene{}, "", fmt.Errorf("invalid window size %dx%d", f.width, f.height)
	}
	if f.file != "" {
		sc, err := loadSceneFile(f.file)
		return sc, filepath.Base(f.file), err
	}
	if f.opts.Levels < 1 || f.opts.Tracks < 1 {
		return scene{}, "", fmt.Errorf("invalid scene size: %d levels of %d tracks", f.opts.Levels, f.opts.Tracks)
	}
	sc, err := buildScene(f.scene, f.opts)
	return sc, f.scene, err
}

func (f *sceneFlags) size() image.Point {
	return image.Pt(f.width, f.height)
}

func newLayoutCmd() *cobra.Command {
	var (
		flags sceneFlags
		depth int
	)
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Lay out a scene and print its box tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			st := newTreeStyles(lipgloss.NewRenderer(out))
			return runLayout(cmd.Context(), out, st, &flags, depth)
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVarP(&depth, "depth", "d", 3, "levels of the tree to print, -1 for all")
	return cmd
}

func runLayout(ctx context.Context, w io.Writer, st treeStyles, flags *sceneFlags, depth int) error {
	sc, name, err := flags.load()
	if err != nil {
		return err
	}
	gtx := layout.Context{
		Constraints: layout.Exact(flags.size()),
		Now:         time.Now(),
	}
	n := layoutScene(ctx, name, sc, gtx)
	return printTree(w, st, name, n, depth)
}

// layoutScene lays out the scene twice, and logs the time of the
// first layout and of the second one answered mostly from caches.
func layoutScene(ctx context.Context, name string, sc scene, gtx layout.Context) layout.Node {
	logger := loggerFromContext(ctx)
	t := &widget.Timer{Child: sc.Root, Name: name, Logger: logger}
	p := newProgress(logger)
	n := t.Layout(gtx)
	first := t.Last
	t.Layout(gtx)
	p.done("laid out scene", "scene", name, "nodes", sc.Nodes, "size", sizeString(n.Size), "first", first, "again", t.Last)
	return n
}

func newScenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List the built-in scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range sceneNames() {
				sc, err := buildScene(name, defaultSceneOptions())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %d nodes\n", name, sc.Nodes)
			}
			return nil
		},
	}
}
