// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"gioui.org/grid/layout"
)

func newRenderCmd() *cobra.Command {
	var (
		flags sceneFlags
		out   string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Lay out a scene and paint it into a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), &flags, out)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "scene.png", "output file")
	return cmd
}

func runRender(ctx context.Context, flags *sceneFlags, path string) error {
	sc, name, err := flags.load()
	if err != nil {
		return err
	}
	img := renderScene(ctx, name, sc, flags.size())
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := writePNG(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	loggerFromContext(ctx).Info("wrote image", "file", path, "size", sizeString(img.Bounds().Size()))
	return nil
}

// renderScene lays out the scene on a white canvas of size and
// draws it, overlay included.
func renderScene(ctx context.Context, name string, sc scene, size image.Point) *image.NRGBA {
	img := image.NewNRGBA(image.Rectangle{Max: size})
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	gtx := layout.Context{Canvas: img}
	gtx.Reset(time.Now())
	n := layoutScene(ctx, name, sc, gtx)
	b := layout.Root(&n)
	sc.Root.Draw(gtx, b)
	if ov := sc.Root.Overlay(b); ov != nil {
		on := ov.Layout(gtx)
		ov.Draw(gtx, layout.Root(&on))
	}
	return img
}

func writePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
