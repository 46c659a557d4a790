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

// Package psf reads PC Screen Font version 2 (PSF2) files.
// https://www.win.tue.nl/~aeb/linux/kbd/font-formats-1.html
//
// PSF2 fonts store fixed-size monochrome glyph bitmaps, optionally
// followed by a table mapping Unicode code points to glyph indices.
// The package decodes such a file from a byte slice and answers glyph
// lookups without copying any font data and without allocating on the
// lookup path:
//
//	font, err := psf.New(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g, ok := font.GlyphForRune('Ä')
//	if ok {
//	    y := 0
//	    for row := range g.Rows() {
//	        x := 0
//	        for on := range row.Pixels() {
//	            if on {
//	                setPixel(x, y)
//	            }
//	            x++
//	        }
//	        y++
//	    }
//	}
//
// All glyph data is borrowed from the slice given to [New].  The
// caller must keep the slice alive and unmodified for as long as the
// [Font] and any [Glyph] or [Row] values derived from it are in use.
// Drawing pixels is the caller's responsibility; the face subpackage
// provides a golang.org/x/image/font.Face adapter for callers which
// use the standard image libraries.
package psf
