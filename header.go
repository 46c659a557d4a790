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
)

// The fixed PSF2 header is 32 bytes long: the magic number followed by
// seven little-endian uint32 fields.
const headerSize = 32

// magic is the PSF2 magic number as stored in the file, LSB first.
const magic = 0x864ab572

// Header field offsets.
const (
	offVersion       = 4
	offHeaderSize    = 8
	offFlags         = 12
	offNumGlyphs     = 16
	offBytesPerGlyph = 20
	offHeight        = 24
	offWidth         = 28
)

// flagUnicodeTable is set in the flags field if a Unicode mapping
// table follows the glyph bitmaps.
const flagUnicodeTable = 0x01

var (
	// ErrInvalidMagic indicates that the input does not start with the
	// PSF2 magic number.
	ErrInvalidMagic = errors.New("psf: invalid magic number")

	// ErrUnsupportedVersion indicates a PSF2 version this package does
	// not implement.  Only version 0 is defined at this time.
	ErrUnsupportedVersion = errors.New("psf: unsupported version")

	// ErrTruncatedHeader indicates that the input ends before the
	// declared header does.
	ErrTruncatedHeader = errors.New("psf: truncated header")

	// ErrInvalidGeometry indicates a header whose glyph dimensions
	// contradict each other or are zero.
	ErrInvalidGeometry = errors.New("psf: invalid glyph geometry")

	// ErrTruncatedGlyphTable indicates that the input ends before the
	// declared glyph bitmaps do.
	ErrTruncatedGlyphTable = errors.New("psf: truncated glyph table")

	// ErrMalformedUnicodeTable indicates that the header announces a
	// Unicode table but the table cannot be decoded.
	ErrMalformedUnicodeTable = errors.New("psf: malformed unicode table")
)

// geometry describes the layout of a PSF2 file.  All fields are
// derived from the header once, at construction time.
type geometry struct {
	width, height int // pixels per glyph
	bytesPerRow   int // == (width+7)/8
	bytesPerGlyph int // == bytesPerRow * height
	numGlyphs     int
	glyphOffset   int // start of the glyph bitmaps
	unicodeOffset int // start of the Unicode table, or -1
}

// decodeHeader validates the PSF2 header and derives the file layout.
// Every multi-byte field is read as little-endian, independent of the
// host byte order.
func decodeHeader(data []byte) (geometry, error) {
	var zero geometry

	if len(data) < headerSize {
		return zero, ErrTruncatedHeader
	}
	if binary.LittleEndian.Uint32(data) != magic {
		return zero, ErrInvalidMagic
	}
	if binary.LittleEndian.Uint32(data[offVersion:]) != 0 {
		return zero, ErrUnsupportedVersion
	}

	declaredSize := binary.LittleEndian.Uint32(data[offHeaderSize:])
	flags := binary.LittleEndian.Uint32(data[offFlags:])
	numGlyphs := binary.LittleEndian.Uint32(data[offNumGlyphs:])
	bytesPerGlyph := binary.LittleEndian.Uint32(data[offBytesPerGlyph:])
	height := binary.LittleEndian.Uint32(data[offHeight:])
	width := binary.LittleEndian.Uint32(data[offWidth:])

	if declaredSize < headerSize || uint64(declaredSize) > uint64(len(data)) {
		return zero, ErrTruncatedHeader
	}
	if width == 0 || height == 0 {
		return zero, ErrInvalidGeometry
	}

	// All size arithmetic is done in uint64 so that hostile headers
	// cannot overflow int on 32-bit platforms.
	bytesPerRow := (uint64(width) + 7) / 8
	if uint64(bytesPerGlyph) != bytesPerRow*uint64(height) {
		return zero, ErrInvalidGeometry
	}
	end := uint64(declaredSize) + uint64(numGlyphs)*uint64(bytesPerGlyph)
	if end > uint64(len(data)) {
		return zero, ErrTruncatedGlyphTable
	}

	geom := geometry{
		width:         int(width),
		height:        int(height),
		bytesPerRow:   int(bytesPerRow),
		bytesPerGlyph: int(bytesPerGlyph),
		numGlyphs:     int(numGlyphs),
		glyphOffset:   int(declaredSize),
		unicodeOffset: -1,
	}
	if flags&flagUnicodeTable != 0 {
		geom.unicodeOffset = int(end)
	}
	return geom, nil
}
