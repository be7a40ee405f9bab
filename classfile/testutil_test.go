// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

import (
	"bytes"
	"encoding/binary"
)

// classBuilder assembles the raw bytes of a class file by hand, the way a
// table test for a binary format builds its fixtures without a compiler
// on hand to produce them.
type classBuilder struct {
	buf bytes.Buffer
}

func newClassBuilder() *classBuilder { return &classBuilder{} }

func (b *classBuilder) u8(v uint8)   { b.buf.WriteByte(v) }
func (b *classBuilder) u16(v uint16) { binary.Write(&b.buf, binary.BigEndian, v) }
func (b *classBuilder) u32(v uint32) { binary.Write(&b.buf, binary.BigEndian, v) }
func (b *classBuilder) raw(p []byte) { b.buf.Write(p) }

func (b *classBuilder) bytes() []byte { return b.buf.Bytes() }

// utf8Entry appends a CONSTANT_Utf8_info entry.
func (b *classBuilder) utf8Entry(s string) {
	b.u8(TagUtf8)
	b.u16(uint16(len(s)))
	b.raw([]byte(s))
}

func (b *classBuilder) classEntry(nameIndex uint16) {
	b.u8(TagClass)
	b.u16(nameIndex)
}

func (b *classBuilder) nameAndTypeEntry(nameIndex, descIndex uint16) {
	b.u8(TagNameAndType)
	b.u16(nameIndex)
	b.u16(descIndex)
}

func (b *classBuilder) methodRefEntry(classIndex, natIndex uint16) {
	b.u8(TagMethodRef)
	b.u16(classIndex)
	b.u16(natIndex)
}

// minimalClass builds the smallest legal class file: it extends
// java/lang/Object, declares no fields, one no-arg <init> method whose
// Code attribute calls Object.<init> on this (aload_0, invokespecial #8)
// and returns, and no class-level attributes.
//
// Constant pool layout (1-based):
//  1  Utf8   "java/lang/Object"
//  2  Class  -> #1
//  3  Utf8   "Sample"
//  4  Class  -> #3
//  5  Utf8   "<init>"
//  6  Utf8   "()V"
//  7  NameAndType #5, #6
//  8  MethodRef #2, #7
//  9  Utf8   "Code"
func minimalClass() []byte {
	b := newClassBuilder()

	b.u32(ClassFileMagic)
	b.u16(0)  // minor_version
	b.u16(61) // major_version

	b.u16(10) // constant_pool_count (9 entries + the reserved slot 0)
	b.utf8Entry("java/lang/Object")
	b.classEntry(1)
	b.utf8Entry("Sample")
	b.classEntry(3)
	b.utf8Entry("<init>")
	b.utf8Entry("()V")
	b.nameAndTypeEntry(5, 6)
	b.methodRefEntry(2, 7)
	b.utf8Entry("Code")

	b.u16(uint16(AccPublic | AccSuper)) // access_flags
	b.u16(4)                            // this_class -> Sample
	b.u16(2)                            // super_class -> java/lang/Object
	b.u16(0)                            // interfaces_count

	b.u16(0) // fields_count

	b.u16(1) // methods_count
	b.u16(uint16(AccMethodPublic))
	b.u16(5) // name_index -> "<init>"
	b.u16(6) // descriptor_index -> "()V"
	b.u16(1) // attributes_count

	// Code attribute: aload_0, invokespecial #8, return.
	code := []byte{0x2a, 0xb7, 0x00, 0x08, 0xb1}
	b.u16(9) // attribute_name_index -> "Code"
	codeAttrLen := 2 + 2 + 4 + uint32(len(code)) + 2 + 2
	b.u32(codeAttrLen)
	b.u16(1) // max_stack
	b.u16(1) // max_locals
	b.u32(uint32(len(code)))
	b.raw(code)
	b.u16(0) // exception table count
	b.u16(0) // code attributes count

	b.u16(0) // class attributes_count

	return b.bytes()
}
