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

import "unicode/utf8"

// Font gives access to the glyphs of a PSF2 font.
//
// A Font borrows the byte slice given to [New] and never copies or
// modifies it.  Lookup methods which take runes maintain an internal
// cache and must not be called concurrently; callers which need
// concurrent lookups construct one Font per goroutine over the same
// (read-only) bytes.
type Font struct {
	data  []byte
	geom  geometry
	cache glyphCache
}

// New decodes the header of the PSF2 file stored in data and returns a
// Font for looking up its glyphs.  If the file announces a Unicode
// table, the table is checked for structural validity, but no index is
// built and no part of data is copied.
func New(data []byte) (*Font, error) {
	geom, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}
	if geom.unicodeOffset >= 0 {
		err = validateUnicodeTable(data[geom.unicodeOffset:], geom.numGlyphs)
		if err != nil {
			return nil, err
		}
	}
	return &Font{data: data, geom: geom}, nil
}

// Width returns the width of every glyph, in pixels.
func (f *Font) Width() int {
	return f.geom.width
}

// Height returns the height of every glyph, in pixels.
func (f *Font) Height() int {
	return f.geom.height
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return f.geom.numGlyphs
}

// BytesPerRow returns the number of bytes storing one pixel row,
// (Width+7)/8.
func (f *Font) BytesPerRow() int {
	return f.geom.bytesPerRow
}

// BytesPerGlyph returns the number of bytes storing one glyph.
func (f *Font) BytesPerGlyph() int {
	return f.geom.bytesPerGlyph
}

// HasUnicodeTable reports whether the font contains a Unicode mapping
// table.  Fonts without one can only be indexed directly, i.e. via
// [Font.Glyph] and [Font.GlyphForASCII].
func (f *Font) HasUnicodeTable() bool {
	return f.geom.unicodeOffset >= 0
}

// Glyph returns the glyph with the given index.
func (f *Font) Glyph(i int) (Glyph, bool) {
	if i < 0 || i >= f.geom.numGlyphs {
		return Glyph{}, false
	}
	off := f.geom.glyphOffset + i*f.geom.bytesPerGlyph
	g := Glyph{
		data:        f.data[off : off+f.geom.bytesPerGlyph],
		width:       f.geom.width,
		bytesPerRow: f.geom.bytesPerRow,
	}
	return g, true
}

// GlyphForASCII returns the glyph for the ASCII character c.  ASCII
// characters map directly to the glyph index c, without consulting the
// Unicode table.  The second return value is false if c is not ASCII
// or the font has fewer than c+1 glyphs.
func (f *Font) GlyphForASCII(c byte) (Glyph, bool) {
	if c >= 0x80 {
		return Glyph{}, false
	}
	return f.Glyph(int(c))
}

// GlyphForRune returns the glyph for the rune r.  Runes in the ASCII
// range use the direct path of [Font.GlyphForASCII]; all other runes
// are resolved through the font's Unicode table, using the internal
// cache to avoid re-scanning the table for repeated lookups.  The
// second return value is false if the font has no glyph for r; a
// well-formed font may simply not cover r.
func (f *Font) GlyphForRune(r rune) (Glyph, bool) {
	if r < 0 {
		return Glyph{}, false
	}
	if r < 0x80 {
		return f.GlyphForASCII(byte(r))
	}
	if f.geom.unicodeOffset < 0 {
		return Glyph{}, false
	}

	if idx, ok := f.cache.get(r); ok {
		return f.Glyph(idx)
	}
	for c, idx := range scanUnicodeTable(f.data[f.geom.unicodeOffset:]) {
		if c == r {
			f.cache.put(r, idx)
			return f.Glyph(idx)
		}
	}
	return Glyph{}, false
}

// GlyphForUTF8 returns the glyph for the first code point of the
// UTF-8 encoded text b.  The second return value is false if b does
// not start with a valid UTF-8 encoding or the font has no glyph for
// the code point.
func (f *Font) GlyphForUTF8(b []byte) (Glyph, bool) {
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return Glyph{}, false
	}
	return f.GlyphForRune(r)
}
