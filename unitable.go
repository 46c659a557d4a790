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
	"iter"
	"unicode/utf8"
)

// The Unicode table consists of one record per glyph, in glyph order.
// A record is a run of UTF-8 encoded code points, optionally followed
// by combining sequences each introduced by 0xFE, and is terminated by
// 0xFF.  Neither byte can occur in valid UTF-8, so records can be
// scanned without look-ahead.
const (
	uniSeparator  = 0xFE
	uniTerminator = 0xFF
)

// validateUnicodeTable walks the complete table once and checks that it
// consists of exactly numGlyphs terminated records of valid UTF-8.  It
// builds no index; lookups later re-scan the raw bytes.
func validateUnicodeTable(table []byte, numGlyphs int) error {
	records := 0
	pos := 0
	for pos < len(table) {
		switch table[pos] {
		case uniTerminator:
			pos++
			records++
		case uniSeparator:
			pos++
		default:
			r, size := utf8.DecodeRune(table[pos:])
			if r == utf8.RuneError && size == 1 {
				return ErrMalformedUnicodeTable
			}
			pos += size
		}
	}
	if records != numGlyphs {
		// Either a record ran past the end of the buffer, or the
		// record count does not match the glyph count.
		return ErrMalformedUnicodeTable
	}
	return nil
}

// scanUnicodeTable yields every code point in the table together with
// the index of the glyph whose record contains it.  Code points inside
// combining sequences resolve to the same glyph as the rest of their
// record.  Records are always consumed completely, so that record
// boundaries stay aligned with glyph indices.
func scanUnicodeTable(table []byte) iter.Seq2[rune, int] {
	return func(yield func(rune, int) bool) {
		idx := 0
		pos := 0
		for pos < len(table) {
			switch table[pos] {
			case uniTerminator:
				pos++
				idx++
			case uniSeparator:
				pos++
			default:
				r, size := utf8.DecodeRune(table[pos:])
				if r == utf8.RuneError && size == 1 {
					return
				}
				if !yield(r, idx) {
					return
				}
				pos += size
			}
		}
	}
}
