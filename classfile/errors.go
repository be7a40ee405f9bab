// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

import (
	"errors"
	"fmt"
)

// Errors returned while parsing the header, constant pool, and member
// tables of a class file.
var (
	// ErrBadMagic is returned when the leading four bytes are not 0xCAFEBABE.
	ErrBadMagic = errors.New("classfile: bad magic number")

	// ErrTruncated is returned when the stream ends before a declared
	// structure has been fully read.
	ErrTruncated = errors.New("classfile: truncated class file")

	// ErrBadConstantTag is returned when a constant pool entry declares a
	// tag byte outside the recognized set.
	ErrBadConstantTag = errors.New("classfile: unrecognized constant pool tag")

	// ErrDeclaredLengthOverflow is returned when a declared length field
	// would read past the end of the available data.
	ErrDeclaredLengthOverflow = errors.New("classfile: declared length overflows remaining data")

	// ErrBadAttributeShape is returned when a recognized attribute's
	// payload doesn't match the shape its name requires.
	ErrBadAttributeShape = errors.New("classfile: malformed attribute payload")

	// ErrBadStackMapFrameTag is returned when a stack map frame's leading
	// tag byte falls in none of the defined ranges.
	ErrBadStackMapFrameTag = errors.New("classfile: stack map frame tag out of range")

	// ErrBadModifiedUTF8 is returned when a Utf8 constant pool entry's
	// bytes don't decode under the modified UTF-8 rules.
	ErrBadModifiedUTF8 = errors.New("classfile: malformed modified UTF-8 string")
)

// IndexError is returned when a constant pool index is zero, exceeds the
// pool's declared size, or lands on the absent second slot of a Long or
// Double entry.
type IndexError struct {
	Index int
	Max   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("classfile: constant pool index %d out of range (max %d)", e.Index, e.Max)
}

// TypeError is returned when a constant pool entry is fetched through an
// accessor that requires a different tag.
type TypeError struct {
	Wanted string
	Got    string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("classfile: wanted constant pool entry of kind %s, got %s", e.Wanted, e.Got)
}
