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

// Package face exposes PSF2 fonts as golang.org/x/image/font faces,
// so that they can be used with font.Drawer and friends.
package face

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/psf"
)

// Face implements [font.Face] for a PSF2 font.  PSF2 fonts are
// monospaced bitmap fonts without baseline information; the full glyph
// cell is treated as ascent.
//
// A Face must not be used concurrently: glyph lookups mutate the
// underlying [psf.Font], and the mask image returned by Glyph is
// reused by the next call.
type Face struct {
	Font *psf.Font

	mask *image.Alpha
}

var _ font.Face = (*Face)(nil)

// New returns a Face for the given font.
func New(f *psf.Font) *Face {
	return &Face{
		Font: f,
		mask: image.NewAlpha(image.Rect(0, 0, f.Width(), f.Height())),
	}
}

// Close implements [font.Face].  It is a no-op.
func (f *Face) Close() error {
	return nil
}

// Metrics implements [font.Face].
func (f *Face) Metrics() font.Metrics {
	h := fixed.I(f.Font.Height())
	return font.Metrics{
		Height:     h,
		Ascent:     h,
		Descent:    0,
		XHeight:    h,
		CapHeight:  h,
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}

// Kern implements [font.Face].  PSF2 fonts are monospaced, so the
// kerning is always zero.
func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 {
	return 0
}

// GlyphAdvance implements [font.Face].
func (f *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	if _, ok := f.Font.GlyphForRune(r); !ok {
		return 0, false
	}
	return fixed.I(f.Font.Width()), true
}

// GlyphBounds implements [font.Face].
func (f *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	if _, ok := f.Font.GlyphForRune(r); !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	w, h := f.Font.Width(), f.Font.Height()
	return fixed.R(0, -h, w, 0), fixed.I(w), true
}

// Glyph implements [font.Face].  The returned mask aliases an internal
// buffer which is overwritten by the next call to Glyph.
func (f *Face) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	g, ok := f.Font.GlyphForRune(r)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}

	clear(f.mask.Pix)
	y := 0
	for row := range g.Rows() {
		x := 0
		for on := range row.Pixels() {
			if on {
				f.mask.Pix[y*f.mask.Stride+x] = 0xff
			}
			x++
		}
		y++
	}

	w, h := f.Font.Width(), f.Font.Height()
	x0 := dot.X.Floor()
	y0 := dot.Y.Floor()
	dr = image.Rect(x0, y0-h, x0+w, y0)
	return dr, f.mask, image.Point{}, fixed.I(w), true
}
