// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

// reader is a sequential, boundary-checked cursor over a class file's raw
// bytes. Unlike saferwall/pe's File, which is addressed by RVA or file
// offset, a class file is a single linear stream: every structure is
// decoded in the exact order it appears, so the reader only ever needs to
// expose "read the next N bytes" operations plus an offset for error
// reporting. Multi-byte fields are always big-endian per the class file
// format, unlike the little-endian PE structures this pattern is adapted
// from.
type reader struct {
	data []byte
	pos  int
}

func newReader(data []byte) *reader {
	return &reader{data: data}
}

// offset reports the current read position, used for diagnostics.
func (r *reader) offset() int {
	return r.pos
}

// remaining reports how many bytes are left to read.
func (r *reader) remaining() int {
	return len(r.data) - r.pos
}

func (r *reader) require(n int) error {
	if n < 0 || n > r.remaining() {
		return ErrTruncated
	}
	return nil
}

// ReadU8 reads a single byte.
func (r *reader) ReadU8() (uint8, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadU16 reads a big-endian uint16.
func (r *reader) ReadU16() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	v := uint16(r.data[r.pos])<<8 | uint16(r.data[r.pos+1])
	r.pos += 2
	return v, nil
}

// ReadU32 reads a big-endian uint32.
func (r *reader) ReadU32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	v := uint32(r.data[r.pos])<<24 | uint32(r.data[r.pos+1])<<16 |
		uint32(r.data[r.pos+2])<<8 | uint32(r.data[r.pos+3])
	r.pos += 4
	return v, nil
}

// ReadU64 reads a big-endian uint64, used for Long and Double constants.
func (r *reader) ReadU64() (uint64, error) {
	hi, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	lo, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return uint64(hi)<<32 | uint64(lo), nil
}

// ReadBytes reads n raw bytes, rejecting a declared length that would
// overflow what remains in the stream.
func (r *reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrDeclaredLengthOverflow
	}
	if n > r.remaining() {
		return nil, ErrDeclaredLengthOverflow
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}
