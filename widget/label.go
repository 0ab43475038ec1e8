// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"gioui.org/grid/layout"
)

// Label is an element for laying out and drawing text. Text is
// wrapped at word boundaries to the maximum width.
type Label struct {
	layout.Leaf
	Text  string
	Color color.NRGBA
	// Alignment specify the text alignment.
	Alignment layout.Alignment
	// MaxLines limits the number of lines. Zero means no limit.
	MaxLines int
}

func (l *Label) Measure(gtx layout.Context) image.Point {
	face := gtx.FontFace()
	lines := l.lines(face, gtx.Constraints.Max.X)
	return gtx.Constraints.Constrain(textSize(face, lines))
}

func (l *Label) Layout(gtx layout.Context) layout.Node {
	return layout.Node{Size: l.Measure(gtx)}
}

func (l *Label) Draw(gtx layout.Context, b layout.Box) {
	if gtx.Canvas == nil {
		return
	}
	face := gtx.FontFace()
	r := b.Bounds()
	m := face.Metrics()
	d := &font.Drawer{
		Dst:  gtx.Canvas,
		Src:  image.NewUniform(l.Color),
		Face: face,
	}
	y := r.Min.Y + m.Ascent.Ceil()
	for _, line := range l.lines(face, r.Dx()) {
		if y-m.Ascent.Ceil() >= r.Max.Y {
			break
		}
		w := font.MeasureString(face, line).Ceil()
		x := r.Min.X
		switch l.Alignment {
		case layout.End:
			x += r.Dx() - w
		case layout.Middle:
			x += (r.Dx() - w) / 2
		}
		d.Dot = fixed.P(x, y)
		d.DrawString(line)
		y += m.Height.Ceil()
	}
}

func (l *Label) Operate(b layout.Box, v layout.Visitor) {
	v.Text(b, l.Text)
}

// lines breaks the text into lines no wider than maxWidth, except
// for single words that do not fit.
func (l *Label) lines(face font.Face, maxWidth int) []string {
	var lines []string
	space := font.MeasureString(face, " ")
	for _, para := range strings.Split(l.Text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		w := font.MeasureString(face, line)
		for _, word := range words[1:] {
			ww := font.MeasureString(face, word)
			if maxWidth < layout.Inf && (w+space+ww).Ceil() > maxWidth {
				lines = append(lines, line)
				line, w = word, ww
				continue
			}
			line += " " + word
			w += space + ww
		}
		lines = append(lines, line)
	}
	if l.MaxLines > 0 && len(lines) > l.MaxLines {
		lines = lines[:l.MaxLines]
	}
	return lines
}

func textSize(face font.Face, lines []string) image.Point {
	var sz image.Point
	for _, line := range lines {
		sz.X = max(sz.X, font.MeasureString(face, line).Ceil())
	}
	sz.Y = len(lines) * face.Metrics().Height.Ceil()
	return sz
}
