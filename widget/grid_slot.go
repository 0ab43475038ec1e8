// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"gioui.org/grid/cssgrid"
	"gioui.org/grid/layout"
)

// maxCacheEntries bounds the number of measurements kept per
// child. A full cache is emptied before the next insertion.
const maxCacheEntries = 16

type queryMode uint8

const (
	// querySize asks for a size only.
	querySize queryMode = iota
	// queryLayout asks for a size and the positioned
	// descendants.
	queryLayout
)

// cacheKey identifies a child query. Lengths compare by value.
type cacheKey struct {
	known cssgrid.KnownSize
	avail cssgrid.AvailableSize
	mode  queryMode
}

type cacheEntry struct {
	size cssgrid.Size
	// node is the laid out child for queryLayout entries.
	node layout.Node
}

// measureCache memoizes the answers of a child to the queries of
// the grid algorithm.
type measureCache struct {
	entries map[cacheKey]cacheEntry
}

// size returns a cached size for the constraints. Layout entries
// answer size queries too.
func (c *measureCache) size(known cssgrid.KnownSize, avail cssgrid.AvailableSize) (cssgrid.Size, bool) {
	if e, ok := c.entries[cacheKey{known, avail, querySize}]; ok {
		return e.size, true
	}
	if e, ok := c.entries[cacheKey{known, avail, queryLayout}]; ok {
		return e.size, true
	}
	return cssgrid.Size{}, false
}

// layout returns a cached layout for the constraints. Size
// entries never answer.
func (c *measureCache) layout(known cssgrid.KnownSize, avail cssgrid.AvailableSize) (cacheEntry, bool) {
	e, ok := c.entries[cacheKey{known, avail, queryLayout}]
	return e, ok
}

func (c *measureCache) put(k cacheKey, e cacheEntry) {
	if c.entries == nil {
		c.entries = make(map[cacheKey]cacheEntry)
	}
	if len(c.entries) >= maxCacheEntries {
		clear(c.entries)
	}
	c.entries[k] = e
}

func (c *measureCache) reset() {
	c.entries = nil
}

func (c *measureCache) len() int {
	return len(c.entries)
}

// gridSlot holds a child of a Grid with everything the grid keeps
// about it.
type gridSlot struct {
	el    layout.Element
	style cssgrid.Style
	cache measureCache
	// box is the final box from the last layout.
	box cssgrid.Layout
	// node is the child's own layout that belongs to box.
	node layout.Node
	// version is the child's Version when cache was filled.
	version uint64
}

func (s *gridSlot) reset() {
	s.box = cssgrid.Layout{}
	s.node = layout.Node{}
}
