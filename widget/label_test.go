// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/basicfont"

	"gioui.org/grid/layout"
)

func TestLabelWrap(t *testing.T) {
	face := basicfont.Face7x13
	tests := []struct {
		name     string
		text     string
		maxWidth int
		maxLines int
		want     []string
	}{
		{"unbounded", "hello world", layout.Inf, 0, []string{"hello world"}},
		{"wrapped", "hello world", 40, 0, []string{"hello", "world"}},
		{"long word", "incomprehensibilities x", 20, 0, []string{"incomprehensibilities", "x"}},
		{"paragraphs", "a\n\nb", layout.Inf, 0, []string{"a", "", "b"}},
		{"max lines", "a b c d", 7, 2, []string{"a", "b"}},
	}
	for _, test := range tests {
		l := &Label{Text: test.text, MaxLines: test.maxLines}
		if diff := cmp.Diff(test.want, l.lines(face, test.maxWidth)); diff != "" {
			t.Errorf("%s (-want +got):\n%s", test.name, diff)
		}
	}
}

func TestLabelMeasure(t *testing.T) {
	l := &Label{Text: "hello world"}
	gtx := layout.Context{Constraints: layout.Unbounded()}
	if got, want := l.Measure(gtx), image.Pt(77, 13); got != want {
		t.Errorf("unbounded: got %v, want %v", got, want)
	}
	gtx.Constraints = layout.Constraints{Max: image.Pt(40, layout.Inf)}
	if got, want := l.Measure(gtx), image.Pt(35, 26); got != want {
		t.Errorf("wrapped: got %v, want %v", got, want)
	}
	if got := l.Layout(gtx).Size; got != image.Pt(35, 26) {
		t.Errorf("Layout: got %v", got)
	}
}

func TestLabelDraw(t *testing.T) {
	l := &Label{Text: "M", Color: color.NRGBA{A: 0xff}}
	canvas := image.NewRGBA(image.Rect(0, 0, 20, 20))
	gtx := layout.Context{Constraints: layout.Loose(image.Pt(20, 20)), Canvas: canvas}
	n := l.Layout(gtx)
	l.Draw(gtx, layout.Root(&n))
	inked := false
	for i := 3; i < len(canvas.Pix); i += 4 {
		if canvas.Pix[i] != 0 {
			inked = true
			break
		}
	}
	if !inked {
		t.Error("nothing drawn")
	}
}
