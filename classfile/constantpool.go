// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

import "math"

// Constant pool tags, JVMS17 Table 4.4-B.
const (
	TagUtf8               = 1
	TagInteger            = 3
	TagFloat              = 4
	TagLong               = 5
	TagDouble             = 6
	TagClass              = 7
	TagString             = 8
	TagFieldRef           = 9
	TagMethodRef          = 10
	TagInterfaceMethodRef = 11
	TagNameAndType        = 12
)

// ConstantKind names a constant pool entry's tag for diagnostics and JSON
// output, the same role ImageDirectoryEntry.String() plays for PE data
// directories.
type ConstantKind uint8

func (k ConstantKind) String() string {
	switch k {
	case TagUtf8:
		return "Utf8"
	case TagInteger:
		return "Integer"
	case TagFloat:
		return "Float"
	case TagLong:
		return "Long"
	case TagDouble:
		return "Double"
	case TagClass:
		return "Class"
	case TagString:
		return "String"
	case TagFieldRef:
		return "FieldRef"
	case TagMethodRef:
		return "MethodRef"
	case TagInterfaceMethodRef:
		return "InterfaceMethodRef"
	case TagNameAndType:
		return "NameAndType"
	default:
		return "Unknown"
	}
}

// Utf8Info is CONSTANT_Utf8_info (JVMS17 4.4.7). Bytes holds the raw
// modified-UTF-8 payload; Value holds it already decoded to a regular Go
// string.
type Utf8Info struct {
	Bytes []byte `json:"-"`
	Value string `json:"value"`
}

// IntegerInfo is CONSTANT_Integer_info (JVMS17 4.4.4).
type IntegerInfo struct {
	Value int32 `json:"value"`
}

// FloatInfo is CONSTANT_Float_info (JVMS17 4.4.4).
type FloatInfo struct {
	Value float32 `json:"value"`
}

// LongInfo is CONSTANT_Long_info (JVMS17 4.4.5). It occupies two
// consecutive entries in the constant pool; see Pool's double-slot rule.
type LongInfo struct {
	Value int64 `json:"value"`
}

// DoubleInfo is CONSTANT_Double_info (JVMS17 4.4.5). Like LongInfo, it
// occupies two consecutive pool entries.
type DoubleInfo struct {
	Value float64 `json:"value"`
}

// ClassInfo is CONSTANT_Class_info (JVMS17 4.4.1): NameIndex must resolve
// to a Utf8Info holding a binary class or interface name.
type ClassInfo struct {
	NameIndex uint16 `json:"name_index"`
}

// StringInfo is CONSTANT_String_info (JVMS17 4.4.3): StringIndex must
// resolve to a Utf8Info holding the string's contents.
type StringInfo struct {
	StringIndex uint16 `json:"string_index"`
}

// FieldRefInfo is CONSTANT_Fieldref_info (JVMS17 4.4.2).
type FieldRefInfo struct {
	ClassIndex       uint16 `json:"class_index"`
	NameAndTypeIndex uint16 `json:"name_and_type_index"`
}

// MethodRefInfo is CONSTANT_Methodref_info (JVMS17 4.4.2).
type MethodRefInfo struct {
	ClassIndex       uint16 `json:"class_index"`
	NameAndTypeIndex uint16 `json:"name_and_type_index"`
}

// InterfaceMethodRefInfo is CONSTANT_InterfaceMethodref_info (JVMS17 4.4.2).
type InterfaceMethodRefInfo struct {
	ClassIndex       uint16 `json:"class_index"`
	NameAndTypeIndex uint16 `json:"name_and_type_index"`
}

// NameAndTypeInfo is CONSTANT_NameAndType_info (JVMS17 4.4.6).
type NameAndTypeInfo struct {
	NameIndex       uint16 `json:"name_index"`
	DescriptorIndex uint16 `json:"descriptor_index"`
}

// Entry is one canonicalized constant pool slot. Exactly one of the
// pointer fields is non-nil, selected by Kind; this is Go's idiomatic
// substitute for the tagged-union binrw enum the format describes,
// avoiding an interface{} payload so JSON marshaling stays simple and
// typed accessors below can fail with a typed error instead of a panic.
type Entry struct {
	Kind               ConstantKind            `json:"kind"`
	Utf8               *Utf8Info               `json:"utf8,omitempty"`
	Integer            *IntegerInfo            `json:"integer,omitempty"`
	Float              *FloatInfo              `json:"float,omitempty"`
	Long               *LongInfo               `json:"long,omitempty"`
	Double             *DoubleInfo             `json:"double,omitempty"`
	Class              *ClassInfo              `json:"class,omitempty"`
	String             *StringInfo             `json:"string,omitempty"`
	FieldRef           *FieldRefInfo           `json:"field_ref,omitempty"`
	MethodRef          *MethodRefInfo          `json:"method_ref,omitempty"`
	InterfaceMethodRef *InterfaceMethodRefInfo `json:"interface_method_ref,omitempty"`
	NameAndType        *NameAndTypeInfo        `json:"name_and_type,omitempty"`
}

// Pool is the class file's constant pool, canonicalized to Java's sparse,
// 1-based indexing scheme: index 0 is never valid, and a Long or Double
// entry at index i leaves index i+1 absent (JVMS17 4.4.5). Entries is
// sized count-1 (there is no entry for index 0); a nil at position i-1
// marks the absent second slot of a preceding wide entry.
type Pool struct {
	Entries []*Entry `json:"entries"`
}

// parseConstantPool reads the constant_pool_count-1 declared entries,
// applying the double-slot rule for Long/Double as it goes.
func parseConstantPool(r *reader) (*Pool, error) {
	count, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrBadAttributeShape
	}

	pool := &Pool{Entries: make([]*Entry, count-1)}

	for i := 1; i < int(count); i++ {
		entry, wide, err := parseConstantPoolEntry(r)
		if err != nil {
			return nil, err
		}
		pool.Entries[i-1] = entry
		if wide {
			// The next index is unusable per JVMS17 4.4.5; leave it nil
			// and skip it.
			i++
		}
	}
	return pool, nil
}

// parseConstantPoolEntry reads a single tagged entry, returning whether it
// consumes two logical pool slots (Long, Double).
func parseConstantPoolEntry(r *reader) (entry *Entry, wide bool, err error) {
	tag, err := r.ReadU8()
	if err != nil {
		return nil, false, err
	}

	switch tag {
	case TagUtf8:
		length, err := r.ReadU16()
		if err != nil {
			return nil, false, err
		}
		raw, err := r.ReadBytes(int(length))
		if err != nil {
			return nil, false, err
		}
		value, err := decodeModifiedUTF8(raw)
		if err != nil {
			return nil, false, err
		}
		return &Entry{Kind: TagUtf8, Utf8: &Utf8Info{Bytes: raw, Value: value}}, false, nil

	case TagInteger:
		v, err := r.ReadU32()
		if err != nil {
			return nil, false, err
		}
		return &Entry{Kind: TagInteger, Integer: &IntegerInfo{Value: int32(v)}}, false, nil

	case TagFloat:
		v, err := r.ReadU32()
		if err != nil {
			return nil, false, err
		}
		return &Entry{Kind: TagFloat, Float: &FloatInfo{Value: math.Float32frombits(v)}}, false, nil

	case TagLong:
		v, err := r.ReadU64()
		if err != nil {
			return nil, false, err
		}
		return &Entry{Kind: TagLong, Long: &LongInfo{Value: int64(v)}}, true, nil

	case TagDouble:
		v, err := r.ReadU64()
		if err != nil {
			return nil, false, err
		}
		return &Entry{Kind: TagDouble, Double: &DoubleInfo{Value: math.Float64frombits(v)}}, true, nil

	case TagClass:
		idx, err := r.ReadU16()
		if err != nil {
			return nil, false, err
		}
		return &Entry{Kind: TagClass, Class: &ClassInfo{NameIndex: idx}}, false, nil

	case TagString:
		idx, err := r.ReadU16()
		if err != nil {
			return nil, false, err
		}
		return &Entry{Kind: TagString, String: &StringInfo{StringIndex: idx}}, false, nil

	case TagFieldRef:
		classIdx, natIdx, err := readRefPair(r)
		if err != nil {
			return nil, false, err
		}
		return &Entry{Kind: TagFieldRef, FieldRef: &FieldRefInfo{ClassIndex: classIdx, NameAndTypeIndex: natIdx}}, false, nil

	case TagMethodRef:
		classIdx, natIdx, err := readRefPair(r)
		if err != nil {
			return nil, false, err
		}
		return &Entry{Kind: TagMethodRef, MethodRef: &MethodRefInfo{ClassIndex: classIdx, NameAndTypeIndex: natIdx}}, false, nil

	case TagInterfaceMethodRef:
		classIdx, natIdx, err := readRefPair(r)
		if err != nil {
			return nil, false, err
		}
		return &Entry{Kind: TagInterfaceMethodRef, InterfaceMethodRef: &InterfaceMethodRefInfo{ClassIndex: classIdx, NameAndTypeIndex: natIdx}}, false, nil

	case TagNameAndType:
		nameIdx, typeIdx, err := readRefPair(r)
		if err != nil {
			return nil, false, err
		}
		return &Entry{Kind: TagNameAndType, NameAndType: &NameAndTypeInfo{NameIndex: nameIdx, DescriptorIndex: typeIdx}}, false, nil

	default:
		return nil, false, ErrBadConstantTag
	}
}

func readRefPair(r *reader) (uint16, uint16, error) {
	a, err := r.ReadU16()
	if err != nil {
		return 0, 0, err
	}
	b, err := r.ReadU16()
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// at returns the raw entry at the given 1-based constant pool index,
// failing for index 0, an out-of-range index, or the absent second slot
// of a Long/Double entry.
func (p *Pool) at(index uint16) (*Entry, error) {
	if index == 0 || int(index) > len(p.Entries) {
		return nil, &IndexError{Index: int(index), Max: len(p.Entries)}
	}
	entry := p.Entries[index-1]
	if entry == nil {
		return nil, &IndexError{Index: int(index), Max: len(p.Entries)}
	}
	return entry, nil
}

// At returns the raw entry at the given 1-based constant pool index, for
// callers outside this package that need to inspect an entry's kind
// directly (ldc and friends resolving a loadable constant).
func (p *Pool) At(index uint16) (*Entry, error) {
	return p.at(index)
}

// Utf8 resolves index to a decoded Utf8 string.
func (p *Pool) Utf8(index uint16) (string, error) {
	entry, err := p.at(index)
	if err != nil {
		return "", err
	}
	if entry.Utf8 == nil {
		return "", &TypeError{Wanted: "Utf8", Got: entry.Kind.String()}
	}
	return entry.Utf8.Value, nil
}

// ClassName resolves a CONSTANT_Class_info index to its binary class name.
func (p *Pool) ClassName(index uint16) (string, error) {
	entry, err := p.at(index)
	if err != nil {
		return "", err
	}
	if entry.Class == nil {
		return "", &TypeError{Wanted: "Class", Got: entry.Kind.String()}
	}
	return p.Utf8(entry.Class.NameIndex)
}

// NameAndType resolves index to its two decoded Utf8 values.
func (p *Pool) NameAndType(index uint16) (name, descriptor string, err error) {
	entry, err := p.at(index)
	if err != nil {
		return "", "", err
	}
	if entry.NameAndType == nil {
		return "", "", &TypeError{Wanted: "NameAndType", Got: entry.Kind.String()}
	}
	name, err = p.Utf8(entry.NameAndType.NameIndex)
	if err != nil {
		return "", "", err
	}
	descriptor, err = p.Utf8(entry.NameAndType.DescriptorIndex)
	if err != nil {
		return "", "", err
	}
	return name, descriptor, nil
}
