// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

// Field is a field_info structure (JVMS17 4.5).
type Field struct {
	AccessFlags AccessFlags  `json:"access_flags"`
	NameIndex   uint16       `json:"name_index"`
	Name        string       `json:"name"`
	DescIndex   uint16       `json:"descriptor_index"`
	Descriptor  string       `json:"descriptor"`
	Attributes  []*Attribute `json:"attributes,omitempty"`
}

func parseFields(r *reader, pool *Pool) ([]*Field, error) {
	count, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	fields := make([]*Field, count)
	for i := range fields {
		member, err := parseMemberInfo(r, pool)
		if err != nil {
			return nil, err
		}
		fields[i] = &Field{
			AccessFlags: member.accessFlags,
			NameIndex:   member.nameIndex,
			Name:        member.name,
			DescIndex:   member.descIndex,
			Descriptor:  member.descriptor,
			Attributes:  member.attributes,
		}
	}
	return fields, nil
}
