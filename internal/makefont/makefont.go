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

// Package makefont constructs synthetic PSF2 files for use in tests.
package makefont

import "encoding/binary"

// Record is the Unicode table record for one glyph: the code points
// which map to the glyph, plus any combining sequences.
type Record struct {
	Runes []rune
	// Seqs holds combining sequences.  Each sequence is written after
	// a 0xFE separator byte.
	Seqs []string
}

// Font describes a PSF2 file to be encoded.
type Font struct {
	Width, Height int
	// Glyphs holds the bitmap of each glyph.  Bitmaps shorter than
	// BytesPerGlyph are zero-padded, longer ones are truncated.
	Glyphs [][]byte
	// Records, if non-nil, becomes the Unicode table.  Missing records
	// are encoded as empty.
	Records []Record
}

// BytesPerRow returns the number of bytes per pixel row.
func (f *Font) BytesPerRow() int {
	return (f.Width + 7) / 8
}

// BytesPerGlyph returns the number of bytes per glyph bitmap.
func (f *Font) BytesPerGlyph() int {
	return f.BytesPerRow() * f.Height
}

// Encode returns the PSF2 file for f.
func (f *Font) Encode() []byte {
	bpg := f.BytesPerGlyph()

	var flags uint32
	if f.Records != nil {
		flags = 0x01
	}

	buf := make([]byte, 32, 32+len(f.Glyphs)*bpg)
	binary.LittleEndian.PutUint32(buf[0:], 0x864ab572)
	binary.LittleEndian.PutUint32(buf[4:], 0) // version
	binary.LittleEndian.PutUint32(buf[8:], 32)
	binary.LittleEndian.PutUint32(buf[12:], flags)
	binary.LittleEndian.PutUint32(buf[16:], uint32(len(f.Glyphs)))
	binary.LittleEndian.PutUint32(buf[20:], uint32(bpg))
	binary.LittleEndian.PutUint32(buf[24:], uint32(f.Height))
	binary.LittleEndian.PutUint32(buf[28:], uint32(f.Width))

	for _, g := range f.Glyphs {
		padded := make([]byte, bpg)
		copy(padded, g)
		buf = append(buf, padded...)
	}

	if f.Records != nil {
		for i := range f.Glyphs {
			var rec Record
			if i < len(f.Records) {
				rec = f.Records[i]
			}
			for _, r := range rec.Runes {
				buf = append(buf, string(r)...)
			}
			for _, seq := range rec.Seqs {
				buf = append(buf, 0xFE)
				buf = append(buf, seq...)
			}
			buf = append(buf, 0xFF)
		}
	}

	return buf
}

// ASCII returns an 8x2 font with 128 glyphs and no Unicode table.
// Glyph i has the bitmap [i, ^i].
func ASCII() []byte {
	f := &Font{Width: 8, Height: 2}
	for i := 0; i < 128; i++ {
		f.Glyphs = append(f.Glyphs, []byte{byte(i), ^byte(i)})
	}
	return f.Encode()
}
