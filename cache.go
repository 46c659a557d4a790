// seehuhn.de/go/psf - a library for reading PSF2 bitmap fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package psf

// cacheSize is the number of slots in a Font's glyph index cache.
const cacheSize = 64

// glyphCache is a small FIFO cache mapping runes to glyph indices.
// Resolving a rune through the Unicode table requires a linear scan
// over the table bytes; the cache makes repeated lookups of the same
// rune cheap.  Runes in the ASCII range never enter the cache.
//
// The cache uses only fixed-size arrays, so a Font never allocates
// after construction.  At 64 entries a linear search beats a map.
type glyphCache struct {
	runes  [cacheSize]rune
	glyphs [cacheSize]int32
	used   int // number of live slots
	next   int // write cursor, wraps modulo cacheSize
}

// get returns the cached glyph index for r.
// A hit does not change the cache.
func (c *glyphCache) get(r rune) (int, bool) {
	for i := 0; i < c.used; i++ {
		if c.runes[i] == r {
			return int(c.glyphs[i]), true
		}
	}
	return 0, false
}

// put stores the glyph index for r.  If r is already cached the slot
// is updated in place.  Otherwise the entry is written at the cursor,
// overwriting the oldest entry once the cache is full.
func (c *glyphCache) put(r rune, glyph int) {
	for i := 0; i < c.used; i++ {
		if c.runes[i] == r {
			c.glyphs[i] = int32(glyph)
			return
		}
	}

	c.runes[c.next] = r
	c.glyphs[c.next] = int32(glyph)
	c.next = (c.next + 1) % cacheSize
	if c.used < cacheSize {
		c.used++
	}
}
