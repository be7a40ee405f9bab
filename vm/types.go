// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vm

import "math"

// TypeTag names the primitive or reference type of a Value, matching the
// one-letter JVM field descriptor codes (JVMS17 4.3.2) plus two
// interpreter-internal markers (ReturnAddress, Null) that never appear in
// a descriptor.
type TypeTag uint8

const (
	TagBoolean       TypeTag = 'Z'
	TagByte          TypeTag = 'B'
	TagChar          TypeTag = 'C'
	TagDouble        TypeTag = 'D'
	TagFloat         TypeTag = 'F'
	TagInt           TypeTag = 'I'
	TagLong          TypeTag = 'J'
	TagShort         TypeTag = 'S'
	TagClassRef      TypeTag = 'L'
	TagArrayRef      TypeTag = 'A'
	TagVoid          TypeTag = 'V'
	TagReturnAddress TypeTag = 'R'
	TagNull          TypeTag = 'N'
)

func (t TypeTag) String() string {
	switch t {
	case TagBoolean:
		return "boolean"
	case TagByte:
		return "byte"
	case TagChar:
		return "char"
	case TagDouble:
		return "double"
	case TagFloat:
		return "float"
	case TagInt:
		return "int"
	case TagLong:
		return "long"
	case TagShort:
		return "short"
	case TagClassRef:
		return "class-reference"
	case TagArrayRef:
		return "array-reference"
	case TagVoid:
		return "void"
	case TagReturnAddress:
		return "returnAddress"
	case TagNull:
		return "null"
	default:
		return "unknown"
	}
}

// IsCategory2 reports whether values of this type occupy two local
// variable / operand stack slots (JVMS17 2.6.1, 2.6.2): only long and
// double are category 2.
func (t TypeTag) IsCategory2() bool {
	return t == TagLong || t == TagDouble
}

// Value is a single typed value as it lives on the operand stack or in a
// local variable slot. Exactly one of the payload fields is meaningful,
// selected by Tag: this is Go's substitute for the Rust Variable enum
// (Boolean/Byte/Char/Short/Int/Long/Float/Double/ClassReference/
// ArrayReference/ReturnAddress/Null) the interpreter's original source
// models as a tagged union.
type Value struct {
	Tag  TypeTag
	bits uint64      // numeric types store their raw bit pattern here.
	ref  interface{} // ClassReference/ArrayReference payload; nil for Null.
}

// Bool returns a boolean Value.
func Bool(v bool) Value {
	var b uint64
	if v {
		b = 1
	}
	return Value{Tag: TagBoolean, bits: b}
}

// Byte returns a byte Value.
func Byte(v int8) Value { return Value{Tag: TagByte, bits: uint64(uint32(int32(v)))} }

// Char returns a char Value. The original interpreter's source stores
// char as a signed 32-bit value; this keeps that width rather than
// narrowing to uint16, so no precision is lost round-tripping through the
// operand stack.
func Char(v int32) Value { return Value{Tag: TagChar, bits: uint64(uint32(v))} }

// Short returns a short Value.
func Short(v int16) Value { return Value{Tag: TagShort, bits: uint64(uint32(int32(v)))} }

// Int returns an int Value.
func Int(v int32) Value { return Value{Tag: TagInt, bits: uint64(uint32(v))} }

// Long returns a long Value.
func Long(v int64) Value { return Value{Tag: TagLong, bits: uint64(v)} }

// Float returns a float Value.
func Float(v float32) Value { return Value{Tag: TagFloat, bits: uint64(math.Float32bits(v))} }

// Double returns a double Value.
func Double(v float64) Value { return Value{Tag: TagDouble, bits: math.Float64bits(v)} }

// ReturnAddress returns a jsr/ret return address Value.
func ReturnAddress(pc int) Value { return Value{Tag: TagReturnAddress, bits: uint64(pc)} }

// Null returns the null reference Value.
func Null() Value { return Value{Tag: TagNull} }

// Ref returns a reference Value of the given kind (TagClassRef or
// TagArrayRef) wrapping an arbitrary payload; the interpreter never
// dereferences it since object/array instructions are out of scope.
func Ref(kind TypeTag, payload interface{}) Value {
	return Value{Tag: kind, ref: payload}
}

// Int32 returns v's raw bits as an int32, regardless of Tag. Callers that
// care about the distinction use AsInt/AsLong/... instead.
func (v Value) Int32() int32 { return int32(uint32(v.bits)) }

// Int64 returns v's raw bits as an int64.
func (v Value) Int64() int64 { return int64(v.bits) }

// Float32 reinterprets v's raw bits as a float32.
func (v Value) Float32() float32 { return math.Float32frombits(uint32(v.bits)) }

// Float64 reinterprets v's raw bits as a float64.
func (v Value) Float64() float64 { return math.Float64frombits(v.bits) }

// AsInt returns v as an int32, failing if Tag isn't TagInt.
func (v Value) AsInt() (int32, error) {
	if v.Tag != TagInt {
		return 0, &TypeError{Wanted: TagInt, Got: v.Tag}
	}
	return v.Int32(), nil
}

// AsLong returns v as an int64, failing if Tag isn't TagLong.
func (v Value) AsLong() (int64, error) {
	if v.Tag != TagLong {
		return 0, &TypeError{Wanted: TagLong, Got: v.Tag}
	}
	return v.Int64(), nil
}

// AsFloat returns v as a float32, failing if Tag isn't TagFloat.
func (v Value) AsFloat() (float32, error) {
	if v.Tag != TagFloat {
		return 0, &TypeError{Wanted: TagFloat, Got: v.Tag}
	}
	return v.Float32(), nil
}

// AsDouble returns v as a float64, failing if Tag isn't TagDouble.
func (v Value) AsDouble() (float64, error) {
	if v.Tag != TagDouble {
		return 0, &TypeError{Wanted: TagDouble, Got: v.Tag}
	}
	return v.Float64(), nil
}

// AsReturnAddress returns v's target program counter, failing if Tag
// isn't TagReturnAddress.
func (v Value) AsReturnAddress() (int, error) {
	if v.Tag != TagReturnAddress {
		return 0, &TypeError{Wanted: TagReturnAddress, Got: v.Tag}
	}
	return int(v.bits), nil
}
