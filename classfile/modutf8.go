// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

import "strings"

// wideCharacterPadding is the lead byte (0xED) introducing the two
// three-byte halves of a six-byte-encoded supplementary character. See
// JVMS17 4.4.7.
const wideCharacterPadding = 0b1110_1101

// decodeModifiedUTF8 converts the raw bytes of a Utf8 constant pool entry
// into a regular Go string, per the one-, two-, three- and six-byte shapes
// JVMS17 4.4.7 defines. NUL is never stored as a literal 0x00 byte; it is
// always the two-byte encoding 0xC0 0x80, so a bare 0x00 is rejected.
func decodeModifiedUTF8(b []byte) (string, error) {
	var out strings.Builder
	out.Grow(len(b))

	i := 0
	for i < len(b) {
		x := b[i]
		switch {
		case isASCIIRange(x):
			out.WriteByte(x)
			i++

		case isNullOr80To7FF(x):
			if i+1 >= len(b) {
				return "", ErrBadModifiedUTF8
			}
			y := b[i+1]
			out.WriteRune(decodeNullOr80To7FF(x, y))
			i += 2

		case isLowRange(x):
			if i+2 >= len(b) {
				return "", ErrBadModifiedUTF8
			}
			y, z := b[i+1], b[i+2]
			out.WriteRune(decode0800ToFFFF(x, y, z))
			i += 3

		case x == wideCharacterPadding:
			if i+5 >= len(b) {
				return "", ErrBadModifiedUTF8
			}
			v, w := b[i+1], b[i+2]
			xx, y, z := b[i+3], b[i+4], b[i+5]
			if xx != wideCharacterPadding {
				return "", ErrBadModifiedUTF8
			}
			out.WriteRune(decodeSupplementary(v, w, y, z))
			i += 6

		default:
			return "", ErrBadModifiedUTF8
		}
	}
	return out.String(), nil
}

// isASCIIRange reports whether b encodes a one-byte character (0x01-0x7F).
func isASCIIRange(b byte) bool {
	return b > 0 && b&0b1000_0000 == 0
}

// isNullOr80To7FF reports whether b is the lead byte of the two-byte
// encoding, which covers both NUL (0xC0 0x80) and code points 0x80-0x7FF.
func isNullOr80To7FF(b byte) bool {
	return b&0b1110_0000 == 0b1100_0000
}

// isLowRange reports whether b is the lead byte of the three-byte
// encoding for code points 0x800-0xFFFF, excluding the surrogate-pair
// lead byte 0xED.
func isLowRange(b byte) bool {
	return b&0b1111_0000 == 0b1110_0000 && b != wideCharacterPadding
}

func decodeNullOr80To7FF(x, y byte) rune {
	return rune(uint32(x&0b0001_1111)<<6 | uint32(y&0b0011_1111))
}

func decode0800ToFFFF(x, y, z byte) rune {
	return rune(uint32(x&0b0000_1111)<<12 | uint32(y&0b0011_1111)<<6 | uint32(z&0b0011_1111))
}

// decodeSupplementary reassembles the surrogate pair of two three-byte
// halves (u, x are always 0xED and are not needed for the value) into a
// single code point above 0xFFFF.
func decodeSupplementary(v, w, y, z byte) rune {
	value := uint32(0x10000) +
		uint32(v&0x0F)<<16 +
		uint32(w&0x3F)<<10 +
		uint32(y&0x0F)<<6 +
		uint32(z&0x3F)
	return rune(value)
}
