// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

// Method is a method_info structure (JVMS17 4.6).
type Method struct {
	AccessFlags AccessFlags  `json:"access_flags"`
	NameIndex   uint16       `json:"name_index"`
	Name        string       `json:"name"`
	DescIndex   uint16       `json:"descriptor_index"`
	Descriptor  string       `json:"descriptor"`
	Attributes  []*Attribute `json:"attributes,omitempty"`
}

// Code returns the method's Code attribute, or nil if it has none (the
// case for abstract and native methods).
func (m *Method) Code() *CodeAttribute {
	for _, attr := range m.Attributes {
		if attr.Code != nil {
			return attr.Code
		}
	}
	return nil
}

func parseMethods(r *reader, pool *Pool) ([]*Method, error) {
	count, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	methods := make([]*Method, count)
	for i := range methods {
		member, err := parseMemberInfo(r, pool)
		if err != nil {
			return nil, err
		}
		methods[i] = &Method{
			AccessFlags: member.accessFlags,
			NameIndex:   member.nameIndex,
			Name:        member.name,
			DescIndex:   member.descIndex,
			Descriptor:  member.descriptor,
			Attributes:  member.attributes,
		}
	}
	return methods, nil
}

// memberInfo is the shape field_info and method_info share (JVMS17 4.5,
// 4.6): access_flags, name_index, descriptor_index, then an attribute
// table. Field and Method each wrap the same decode so the two only
// differ in which attribute variants are meaningful in that position.
type memberInfo struct {
	accessFlags AccessFlags
	nameIndex   uint16
	name        string
	descIndex   uint16
	descriptor  string
	attributes  []*Attribute
}

func parseMemberInfo(r *reader, pool *Pool) (*memberInfo, error) {
	flags, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	nameIndex, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	descIndex, err := r.ReadU16()
	if err != nil {
		return nil, err
	}

	name, err := pool.Utf8(nameIndex)
	if err != nil {
		return nil, err
	}
	descriptor, err := pool.Utf8(descIndex)
	if err != nil {
		return nil, err
	}

	attributes, err := parseAttributes(r, pool)
	if err != nil {
		return nil, err
	}

	return &memberInfo{
		accessFlags: AccessFlags(flags),
		nameIndex:   nameIndex,
		name:        name,
		descIndex:   descIndex,
		descriptor:  descriptor,
		attributes:  attributes,
	}, nil
}
