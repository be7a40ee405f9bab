// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

// Attribute names recognized by parseAttribute, JVMS17 4.7.
const (
	AttrConstantValue       = "ConstantValue"
	AttrCode                = "Code"
	AttrLineNumberTable     = "LineNumberTable"
	AttrSourceFile          = "SourceFile"
	AttrStackMapTable       = "StackMapTable"
	AttrBootstrapMethods    = "BootstrapMethods"
	AttrNestHost            = "NestHost"
	AttrNestMembers         = "NestMembers"
	AttrPermittedSubclasses = "PermittedSubclasses"
)

// ConstantValueAttribute is the ConstantValue attribute (JVMS17 4.7.2).
type ConstantValueAttribute struct {
	ConstantValueIndex uint16 `json:"constant_value_index"`
}

// ExceptionHandler is one entry of a Code attribute's exception table
// (JVMS17 4.7.3).
type ExceptionHandler struct {
	StartPC   uint16 `json:"start_pc"`
	EndPC     uint16 `json:"end_pc"`
	HandlerPC uint16 `json:"handler_pc"`
	CatchType uint16 `json:"catch_type"`
}

// CodeAttribute is the Code attribute (JVMS17 4.7.3): the bytecode and
// exception table an interpreter frame is built from.
type CodeAttribute struct {
	MaxStack   uint16              `json:"max_stack"`
	MaxLocals  uint16              `json:"max_locals"`
	Code       []byte              `json:"code"`
	Handlers   []*ExceptionHandler `json:"handlers,omitempty"`
	Attributes []*Attribute        `json:"attributes,omitempty"`
}

// LineEntry maps a bytecode offset to a source line number.
type LineEntry struct {
	StartPC    uint16 `json:"start_pc"`
	LineNumber uint16 `json:"line_number"`
}

// LineNumberTableAttribute is the LineNumberTable attribute (JVMS17 4.7.12).
type LineNumberTableAttribute struct {
	Lines []*LineEntry `json:"lines"`
}

// SourceFileAttribute is the SourceFile attribute (JVMS17 4.7.10).
type SourceFileAttribute struct {
	SourceFileIndex uint16 `json:"sourcefile_index"`
}

// BootstrapMethodEntry is one entry of a BootstrapMethods attribute
// (JVMS17 4.7.23).
type BootstrapMethodEntry struct {
	BootstrapMethodRef uint16   `json:"bootstrap_method_ref"`
	BootstrapArguments []uint16 `json:"bootstrap_arguments,omitempty"`
}

// BootstrapMethodsAttribute is the BootstrapMethods attribute
// (JVMS17 4.7.23).
type BootstrapMethodsAttribute struct {
	BootstrapMethods []*BootstrapMethodEntry `json:"bootstrap_methods"`
}

// NestHostAttribute is the NestHost attribute (JVMS17 4.7.28).
type NestHostAttribute struct {
	HostClassIndex uint16 `json:"host_class_index"`
}

// NestMembersAttribute is the NestMembers attribute (JVMS17 4.7.29).
type NestMembersAttribute struct {
	Classes []uint16 `json:"classes"`
}

// PermittedSubclassesAttribute is the PermittedSubclasses attribute
// (JVMS17 4.7.31).
type PermittedSubclassesAttribute struct {
	Classes []uint16 `json:"classes"`
}

// Attribute is one attribute_info structure (JVMS17 4.7). NameIndex and
// Info are always populated from the raw bytes; exactly one of the typed
// pointer fields is set when Name resolves to a recognized attribute.
// Unrecognized attributes keep only Name/Info, the same "opaque fallback"
// posture the component design calls for.
type Attribute struct {
	NameIndex uint16 `json:"attribute_name_index"`
	Name      string `json:"attribute_name"`
	Info      []byte `json:"-"`

	ConstantValue       *ConstantValueAttribute       `json:"constant_value,omitempty"`
	Code                *CodeAttribute                `json:"code,omitempty"`
	LineNumberTable     *LineNumberTableAttribute     `json:"line_number_table,omitempty"`
	SourceFile          *SourceFileAttribute          `json:"source_file,omitempty"`
	StackMapTable       []*StackMapFrame              `json:"stack_map_table,omitempty"`
	BootstrapMethods    *BootstrapMethodsAttribute    `json:"bootstrap_methods,omitempty"`
	NestHost            *NestHostAttribute            `json:"nest_host,omitempty"`
	NestMembers         *NestMembersAttribute         `json:"nest_members,omitempty"`
	PermittedSubclasses *PermittedSubclassesAttribute `json:"permitted_subclasses,omitempty"`
}

// parseAttribute reads one attribute_info. pool resolves NameIndex to the
// Utf8 name that selects which decoder to dispatch to: the "context-
// carrying reader" pattern, where the constant pool travels alongside the
// byte cursor instead of attributes being decoded blind and resolved
// later.
func parseAttribute(r *reader, pool *Pool) (*Attribute, error) {
	nameIndex, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	length, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	info, err := r.ReadBytes(int(length))
	if err != nil {
		return nil, err
	}

	name, err := pool.Utf8(nameIndex)
	if err != nil {
		// A name that doesn't resolve to a Utf8 entry still yields an
		// opaque attribute rather than failing the whole class.
		return &Attribute{NameIndex: nameIndex, Info: info}, nil
	}

	attr := &Attribute{NameIndex: nameIndex, Name: name, Info: info}
	sub := newReader(info)

	switch name {
	case AttrConstantValue:
		idx, err := sub.ReadU16()
		if err != nil {
			return nil, ErrBadAttributeShape
		}
		attr.ConstantValue = &ConstantValueAttribute{ConstantValueIndex: idx}

	case AttrCode:
		code, err := parseCodeAttribute(sub, pool)
		if err != nil {
			return nil, err
		}
		attr.Code = code

	case AttrLineNumberTable:
		count, err := sub.ReadU16()
		if err != nil {
			return nil, ErrBadAttributeShape
		}
		lines := make([]*LineEntry, count)
		for i := range lines {
			startPC, err := sub.ReadU16()
			if err != nil {
				return nil, ErrBadAttributeShape
			}
			lineNumber, err := sub.ReadU16()
			if err != nil {
				return nil, ErrBadAttributeShape
			}
			lines[i] = &LineEntry{StartPC: startPC, LineNumber: lineNumber}
		}
		attr.LineNumberTable = &LineNumberTableAttribute{Lines: lines}

	case AttrSourceFile:
		idx, err := sub.ReadU16()
		if err != nil {
			return nil, ErrBadAttributeShape
		}
		attr.SourceFile = &SourceFileAttribute{SourceFileIndex: idx}

	case AttrStackMapTable:
		frames, err := parseStackMapTable(sub)
		if err != nil {
			return nil, err
		}
		attr.StackMapTable = frames

	case AttrBootstrapMethods:
		count, err := sub.ReadU16()
		if err != nil {
			return nil, ErrBadAttributeShape
		}
		methods := make([]*BootstrapMethodEntry, count)
		for i := range methods {
			ref, err := sub.ReadU16()
			if err != nil {
				return nil, ErrBadAttributeShape
			}
			argCount, err := sub.ReadU16()
			if err != nil {
				return nil, ErrBadAttributeShape
			}
			args := make([]uint16, argCount)
			for j := range args {
				args[j], err = sub.ReadU16()
				if err != nil {
					return nil, ErrBadAttributeShape
				}
			}
			methods[i] = &BootstrapMethodEntry{BootstrapMethodRef: ref, BootstrapArguments: args}
		}
		attr.BootstrapMethods = &BootstrapMethodsAttribute{BootstrapMethods: methods}

	case AttrNestHost:
		idx, err := sub.ReadU16()
		if err != nil {
			return nil, ErrBadAttributeShape
		}
		attr.NestHost = &NestHostAttribute{HostClassIndex: idx}

	case AttrNestMembers:
		classes, err := readU16Vector(sub)
		if err != nil {
			return nil, ErrBadAttributeShape
		}
		attr.NestMembers = &NestMembersAttribute{Classes: classes}

	case AttrPermittedSubclasses:
		classes, err := readU16Vector(sub)
		if err != nil {
			return nil, ErrBadAttributeShape
		}
		attr.PermittedSubclasses = &PermittedSubclassesAttribute{Classes: classes}
	}

	return attr, nil
}

func readU16Vector(r *reader) ([]uint16, error) {
	count, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	values := make([]uint16, count)
	for i := range values {
		values[i], err = r.ReadU16()
		if err != nil {
			return nil, err
		}
	}
	return values, nil
}

// parseCodeAttribute reads max_stack, max_locals, the raw bytecode, the
// exception table and any nested attributes (most commonly LineNumberTable
// and StackMapTable) out of a Code attribute's payload.
func parseCodeAttribute(r *reader, pool *Pool) (*CodeAttribute, error) {
	maxStack, err := r.ReadU16()
	if err != nil {
		return nil, ErrBadAttributeShape
	}
	maxLocals, err := r.ReadU16()
	if err != nil {
		return nil, ErrBadAttributeShape
	}
	codeLength, err := r.ReadU32()
	if err != nil {
		return nil, ErrBadAttributeShape
	}
	code, err := r.ReadBytes(int(codeLength))
	if err != nil {
		return nil, ErrBadAttributeShape
	}

	handlerCount, err := r.ReadU16()
	if err != nil {
		return nil, ErrBadAttributeShape
	}
	handlers := make([]*ExceptionHandler, handlerCount)
	for i := range handlers {
		startPC, err := r.ReadU16()
		if err != nil {
			return nil, ErrBadAttributeShape
		}
		endPC, err := r.ReadU16()
		if err != nil {
			return nil, ErrBadAttributeShape
		}
		handlerPC, err := r.ReadU16()
		if err != nil {
			return nil, ErrBadAttributeShape
		}
		catchType, err := r.ReadU16()
		if err != nil {
			return nil, ErrBadAttributeShape
		}
		handlers[i] = &ExceptionHandler{
			StartPC: startPC, EndPC: endPC, HandlerPC: handlerPC, CatchType: catchType,
		}
	}

	attributesCount, err := r.ReadU16()
	if err != nil {
		return nil, ErrBadAttributeShape
	}
	attributes := make([]*Attribute, attributesCount)
	for i := range attributes {
		attributes[i], err = parseAttribute(r, pool)
		if err != nil {
			return nil, err
		}
	}

	return &CodeAttribute{
		MaxStack:   maxStack,
		MaxLocals:  maxLocals,
		Code:       code,
		Handlers:   handlers,
		Attributes: attributes,
	}, nil
}

func parseAttributes(r *reader, pool *Pool) ([]*Attribute, error) {
	count, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	attrs := make([]*Attribute, count)
	for i := range attrs {
		attrs[i], err = parseAttribute(r, pool)
		if err != nil {
			return nil, err
		}
	}
	return attrs, nil
}
