// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

import "fmt"

// ParamType is one field descriptor's type code (JVMS17 4.3.2), plus the
// number of leading '[' it was prefixed with; ArrayDims is 0 for a
// non-array type.
type ParamType struct {
	Code      byte
	ArrayDims int
	ClassName string // only set when Code == 'L'
}

// MethodDescriptor is a method descriptor's parsed shape (JVMS17 4.3.3):
// its parameter types in declared order, and its return type ('V' for
// void).
type MethodDescriptor struct {
	Params     []ParamType
	ReturnType ParamType
}

// ParseMethodDescriptor parses a method descriptor such as
// "(IJLjava/lang/String;)Z" into its parameter and return types.
func ParseMethodDescriptor(descriptor string) (*MethodDescriptor, error) {
	if len(descriptor) == 0 || descriptor[0] != '(' {
		return nil, &BadDescriptorError{Descriptor: descriptor}
	}
	i := 1
	var params []ParamType
	for i < len(descriptor) && descriptor[i] != ')' {
		pt, next, err := parseFieldType(descriptor, i)
		if err != nil {
			return nil, err
		}
		params = append(params, pt)
		i = next
	}
	if i >= len(descriptor) {
		return nil, &BadDescriptorError{Descriptor: descriptor}
	}
	i++ // skip ')'

	if i < len(descriptor) && descriptor[i] == 'V' {
		return &MethodDescriptor{Params: params, ReturnType: ParamType{Code: 'V'}}, nil
	}
	ret, next, err := parseFieldType(descriptor, i)
	if err != nil {
		return nil, err
	}
	if next != len(descriptor) {
		return nil, &BadDescriptorError{Descriptor: descriptor}
	}
	return &MethodDescriptor{Params: params, ReturnType: ret}, nil
}

// parseFieldType parses a single field type starting at descriptor[i],
// returning it and the index just past it.
func parseFieldType(descriptor string, i int) (ParamType, int, error) {
	dims := 0
	for i < len(descriptor) && descriptor[i] == '[' {
		dims++
		i++
	}
	if i >= len(descriptor) {
		return ParamType{}, 0, &BadDescriptorError{Descriptor: descriptor}
	}
	switch c := descriptor[i]; c {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z':
		return ParamType{Code: c, ArrayDims: dims}, i + 1, nil
	case 'L':
		end := i + 1
		for end < len(descriptor) && descriptor[end] != ';' {
			end++
		}
		if end >= len(descriptor) {
			return ParamType{}, 0, &BadDescriptorError{Descriptor: descriptor}
		}
		return ParamType{Code: 'L', ArrayDims: dims, ClassName: descriptor[i+1 : end]}, end + 1, nil
	default:
		return ParamType{}, 0, &BadDescriptorError{Descriptor: descriptor}
	}
}

// BadDescriptorError is returned when a field or method descriptor
// doesn't conform to JVMS17 4.3.2/4.3.3's grammar.
type BadDescriptorError struct {
	Descriptor string
}

func (e *BadDescriptorError) Error() string {
	return fmt.Sprintf("classfile: malformed descriptor %q", e.Descriptor)
}
