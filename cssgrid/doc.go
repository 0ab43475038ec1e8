// SPDX-License-Identifier: Unlicense OR MIT

/*
Package cssgrid implements a CSS Grid layout algorithm over an
abstract node graph.

The algorithm never owns nodes. It reaches them through a Tree, which
gives it the Style of the container and of each direct child, and
which it calls back to measure and lay out children. The node space is
flat: Self is the container, Child(i) its i'th child. A child's own
descendants are not visible; the Tree decides how a child measures
itself.

ComputeSize resolves the container size only and asks the Tree for
child sizes through MeasureChildSize. PerformLayout additionally
calls PerformChildLayout once for every participating child, after
all sizing queries, and a second time only for a child whose chosen
size violates its min or max size. It records the final box of
every child and of the container through SetLayout.

Track sizing follows the CSS Grid Level 1 track sizing algorithm in
simplified form: base sizes and growth limits are initialised from
the track sizing functions, intrinsic tracks grow to fit the content
contributions of their items, free space maximizes tracks, flexible
tracks share the remaining space and auto tracks are stretched.
Baseline alignment, subgrids and named lines are not supported.
*/
package cssgrid
