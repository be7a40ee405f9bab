// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

import "testing"

func TestDecodeModifiedUTF8(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{
			name: "ascii",
			in:   []byte("abcde"),
			want: "abcde",
		},
		{
			name: "two byte",
			in: []byte{
				'%',
				0b110_00010, 0b10_100011,
				0b110_00010, 0b10_100011,
				0b110_00010, 0b10_100011,
				'$',
			},
			want: "%£££$",
		},
		{
			name: "three byte",
			in: []byte{
				0b1110_0010, 0b10_000100, 0b10_111011,
				'M', 'A', 'R', 'I', 'O',
				0b1110_0010, 0b10_000100, 0b10_111011,
			},
			want: "℻MARIO℻",
		},
		{
			name: "supplementary",
			in: []byte{
				'$', '$',
				0b110_00010, 0b10_100011,
				wideCharacterPadding, 0xA0, 0xBC,
				wideCharacterPadding, 0xB2, 0xA1,
				0b110_00010, 0b10_100011,
				'$', '$',
			},
			want: "$$£🂡£$$",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeModifiedUTF8(tt.in)
			if err != nil {
				t.Fatalf("decodeModifiedUTF8() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("decodeModifiedUTF8() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestDecodeModifiedUTF8S6 exercises the worked example spec.md's
// concrete scenario S6 gives for the six-byte supplementary shape and
// the two-byte NUL shape, to catch a regression in decodeSupplementary's
// (v & 0x0F) term independently of the padded table-test vectors above.
func TestDecodeModifiedUTF8S6(t *testing.T) {
	// ED A0 BC ED B2 A1 -> U+1F0A1, the playing-card ace.
	got, err := decodeModifiedUTF8([]byte{0xED, 0xA0, 0xBC, 0xED, 0xB2, 0xA1})
	if err != nil {
		t.Fatalf("decodeModifiedUTF8() error = %v", err)
	}
	if want := "\U0001F0A1"; got != want {
		t.Errorf("decodeModifiedUTF8() = %q (%U), want %q (%U)", got, []rune(got), want, []rune(want))
	}

	got, err = decodeModifiedUTF8([]byte{0xC0, 0x80})
	if err != nil {
		t.Fatalf("decodeModifiedUTF8() error = %v", err)
	}
	if want := "\x00"; got != want {
		t.Errorf("decodeModifiedUTF8() = %q, want NUL", got)
	}
}

func TestDecodeModifiedUTF8Truncated(t *testing.T) {
	tests := [][]byte{
		{0b110_00010},
		{0b1110_0010, 0b10_000100},
		{wideCharacterPadding, 0x01, 0x3c, wideCharacterPadding},
		{0x00},
	}
	for _, in := range tests {
		if _, err := decodeModifiedUTF8(in); err == nil {
			t.Errorf("decodeModifiedUTF8(%v) expected error, got nil", in)
		}
	}
}
