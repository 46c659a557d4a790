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

import "iter"

// Glyph is a view of one glyph's bitmap.  The pixel data is stored
// row-major, (width+7)/8 bytes per row, bit 7 of each byte being the
// leftmost pixel.  A Glyph borrows its bytes from the font buffer and
// stays valid for as long as that buffer does.
type Glyph struct {
	data        []byte // bytesPerRow * height bytes
	width       int
	bytesPerRow int
}

// Width returns the glyph width in pixels.
func (g Glyph) Width() int {
	return g.width
}

// Height returns the glyph height in pixels.
func (g Glyph) Height() int {
	if g.bytesPerRow == 0 {
		return 0
	}
	return len(g.data) / g.bytesPerRow
}

// Data returns the raw bitmap bytes of the glyph.  The returned slice
// aliases the font buffer and must not be modified.
func (g Glyph) Data() []byte {
	return g.data
}

// Rows yields the pixel rows of the glyph from top to bottom.  The
// sequence can be iterated any number of times; each call derives a
// fresh sequence from the stored bytes.
func (g Glyph) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		if g.bytesPerRow <= 0 {
			return
		}
		for off := 0; off+g.bytesPerRow <= len(g.data); off += g.bytesPerRow {
			row := Row{
				data:  g.data[off : off+g.bytesPerRow],
				width: g.width,
			}
			if !yield(row) {
				return
			}
		}
	}
}

// Row returns the y-th pixel row of the glyph, counting from the top.
func (g Glyph) Row(y int) (Row, bool) {
	if y < 0 || g.bytesPerRow <= 0 || y >= len(g.data)/g.bytesPerRow {
		return Row{}, false
	}
	off := y * g.bytesPerRow
	row := Row{
		data:  g.data[off : off+g.bytesPerRow],
		width: g.width,
	}
	return row, true
}

// Row is a view of one pixel row of a glyph.
type Row struct {
	data  []byte // (width+7)/8 bytes
	width int
}

// Width returns the number of pixels in the row.
func (r Row) Width() int {
	return r.width
}

// Pixels yields the pixels of the row from left to right, true for
// foreground and false for background.  Exactly Width values are
// produced; padding bits in the last byte are never yielded.  The
// sequence can be iterated any number of times.
func (r Row) Pixels() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for x := 0; x < r.width; x++ {
			if !yield(r.Pixel(x)) {
				return
			}
		}
	}
}

// Pixel reports whether the pixel at column x is foreground.
// Columns outside the row are background.
func (r Row) Pixel(x int) bool {
	if x < 0 || x >= r.width || x>>3 >= len(r.data) {
		return false
	}
	return r.data[x>>3]&(0x80>>(x&7)) != 0
}
