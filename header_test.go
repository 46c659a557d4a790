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

import (
	"encoding/binary"
	"errors"
	"testing"

	"seehuhn.de/go/psf/internal/makefont"
)

func TestDecodeHeader(t *testing.T) {
	f := &makefont.Font{
		Width:  12,
		Height: 24,
		Glyphs: [][]byte{make([]byte, 48), make([]byte, 48), make([]byte, 48)},
	}
	data := f.Encode()

	geom, err := decodeHeader(data)
	if err != nil {
		t.Fatal(err)
	}

	expected := geometry{
		width:         12,
		height:        24,
		bytesPerRow:   2,
		bytesPerGlyph: 48,
		numGlyphs:     3,
		glyphOffset:   32,
		unicodeOffset: -1,
	}
	if geom != expected {
		t.Errorf("got %+v, expected %+v", geom, expected)
	}
}

func TestDecodeHeaderUnicodeOffset(t *testing.T) {
	f := &makefont.Font{
		Width:   8,
		Height:  1,
		Glyphs:  [][]byte{{0xAA}, {0x55}},
		Records: []makefont.Record{{Runes: []rune{'Ä'}}, {Runes: []rune{'Ö'}}},
	}
	data := f.Encode()

	geom, err := decodeHeader(data)
	if err != nil {
		t.Fatal(err)
	}
	if geom.unicodeOffset != 32+2 {
		t.Errorf("unicode table offset: got %d, expected %d",
			geom.unicodeOffset, 32+2)
	}
}

func TestDecodeHeaderErrors(t *testing.T) {
	valid := func() []byte {
		f := &makefont.Font{
			Width:  8,
			Height: 16,
			Glyphs: [][]byte{make([]byte, 16), make([]byte, 16)},
		}
		return f.Encode()
	}

	type testCase struct {
		name    string
		corrupt func(data []byte) []byte
		err     error
	}
	cases := []testCase{
		{
			name: "empty",
			corrupt: func(data []byte) []byte {
				return nil
			},
			err: ErrTruncatedHeader,
		},
		{
			name: "short header",
			corrupt: func(data []byte) []byte {
				return data[:31]
			},
			err: ErrTruncatedHeader,
		},
		{
			name: "zeroed magic",
			corrupt: func(data []byte) []byte {
				data[0] = 0
				data[1] = 0
				data[2] = 0
				data[3] = 0
				return data
			},
			err: ErrInvalidMagic,
		},
		{
			name: "psf1 magic",
			corrupt: func(data []byte) []byte {
				data[0] = 0x36
				data[1] = 0x04
				return data
			},
			err: ErrInvalidMagic,
		},
		{
			name: "future version",
			corrupt: func(data []byte) []byte {
				binary.LittleEndian.PutUint32(data[4:], 1)
				return data
			},
			err: ErrUnsupportedVersion,
		},
		{
			name: "header size too small",
			corrupt: func(data []byte) []byte {
				binary.LittleEndian.PutUint32(data[8:], 16)
				return data
			},
			err: ErrTruncatedHeader,
		},
		{
			name: "header size past end",
			corrupt: func(data []byte) []byte {
				binary.LittleEndian.PutUint32(data[8:], uint32(len(data)+1))
				return data
			},
			err: ErrTruncatedHeader,
		},
		{
			name: "zero width",
			corrupt: func(data []byte) []byte {
				binary.LittleEndian.PutUint32(data[28:], 0)
				return data
			},
			err: ErrInvalidGeometry,
		},
		{
			name: "zero height",
			corrupt: func(data []byte) []byte {
				binary.LittleEndian.PutUint32(data[24:], 0)
				return data
			},
			err: ErrInvalidGeometry,
		},
		{
			name: "contradictory glyph size",
			corrupt: func(data []byte) []byte {
				binary.LittleEndian.PutUint32(data[20:], 17)
				return data
			},
			err: ErrInvalidGeometry,
		},
		{
			name: "truncated glyph table",
			corrupt: func(data []byte) []byte {
				return data[:len(data)-1]
			},
			err: ErrTruncatedGlyphTable,
		},
		{
			name: "glyph count past end",
			corrupt: func(data []byte) []byte {
				binary.LittleEndian.PutUint32(data[16:], 3)
				return data
			},
			err: ErrTruncatedGlyphTable,
		},
		{
			name: "huge glyph count",
			corrupt: func(data []byte) []byte {
				binary.LittleEndian.PutUint32(data[16:], 0xFFFFFFFF)
				return data
			},
			err: ErrTruncatedGlyphTable,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			data := c.corrupt(valid())
			_, err := decodeHeader(data)
			if !errors.Is(err, c.err) {
				t.Errorf("got error %v, expected %v", err, c.err)
			}
			_, err = New(data)
			if !errors.Is(err, c.err) {
				t.Errorf("New: got error %v, expected %v", err, c.err)
			}
		})
	}
}
