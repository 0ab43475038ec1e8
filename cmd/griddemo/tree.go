// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bufio"
	"fmt"
	"image"
	"io"

	"github.com/charmbracelet/lipgloss"

	"gioui.org/grid/layout"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

// treeStyles are the styles of the box tree. The zero value
// prints plain text.
type treeStyles struct {
	title  lipgloss.Style
	branch lipgloss.Style
	index  lipgloss.Style
	bounds lipgloss.Style
	size   lipgloss.Style
	more   lipgloss.Style
}

func newTreeStyles(r *lipgloss.Renderer) treeStyles {
	return treeStyles{
		title:  r.NewStyle().Bold(true).Foreground(colorCyan),
		branch: r.NewStyle().Foreground(colorDim),
		index:  r.NewStyle().Foreground(colorGray),
		bounds: r.NewStyle().Foreground(colorWhite),
		size:   r.NewStyle().Foreground(colorCyan),
		more:   r.NewStyle().Foreground(colorDim).Italic(true),
	}
}

type treePrinter struct {
	w        *bufio.Writer
	st       treeStyles
	maxDepth int
}

// printTree writes the absolute bounds of every node below n as
// an indented tree. Nodes deeper than maxDepth are summarized by
// their count; a negative maxDepth prints every node.
func printTree(w io.Writer, st treeStyles, title string, n layout.Node, maxDepth int) error {
	p := &treePrinter{w: bufio.NewWriter(w), st: st, maxDepth: maxDepth}
	fmt.Fprintf(p.w, "%s %s\n", st.title.Render(title), st.size.Render(sizeString(n.Size)))
	p.children(n, n.Offset, "", 1)
	return p.w.Flush()
}

func (p *treePrinter) children(n layout.Node, origin image.Point, prefix string, depth int) {
	for i, c := range n.Children {
		branch, indent := "├── ", "│   "
		if i == len(n.Children)-1 {
			branch, indent = "└── ", "    "
		}
		r := c.Bounds().Add(origin)
		fmt.Fprintf(p.w, "%s%s %s %s\n",
			p.st.branch.Render(prefix+branch),
			p.st.index.Render(fmt.Sprint(i)),
			p.st.bounds.Render(r.String()),
			p.st.size.Render(sizeString(c.Size)),
		)
		if len(c.Children) == 0 {
			continue
		}
		if p.maxDepth >= 0 && depth >= p.maxDepth {
			fmt.Fprintf(p.w, "%s%s\n",
				p.st.branch.Render(prefix+indent+"└── "),
				p.st.more.Render(fmt.Sprintf("%d more", countNodes(c))),
			)
			continue
		}
		p.children(c, r.Min, prefix+indent, depth+1)
	}
}

func sizeString(sz image.Point) string {
	return fmt.Sprintf("%dx%d", sz.X, sz.Y)
}

// countNodes returns the number of descendants of n.
func countNodes(n layout.Node) int {
	count := len(n.Children)
	for _, c := range n.Children {
		count += countNodes(c)
	}
	return count
}
