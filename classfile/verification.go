// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

// verification_type_info tags, JVMS17 4.7.4.
const (
	VerifTop               = 0
	VerifInteger           = 1
	VerifFloat             = 2
	VerifDouble            = 3
	VerifLong              = 4
	VerifNull              = 5
	VerifUninitializedThis = 6
	VerifObject            = 7
	VerifUninitialized     = 8
)

// VerificationTypeInfo describes one local or stack slot's verification
// type within a StackMapFrame. ConstantPoolIndex is populated only for
// VerifObject; Offset only for VerifUninitialized.
type VerificationTypeInfo struct {
	Tag               uint8  `json:"tag"`
	ConstantPoolIndex uint16 `json:"constant_pool_index,omitempty"`
	Offset            uint16 `json:"offset,omitempty"`
}

func parseVerificationTypeInfo(r *reader) (*VerificationTypeInfo, error) {
	tag, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	switch tag {
	case VerifTop, VerifInteger, VerifFloat, VerifDouble, VerifLong, VerifNull, VerifUninitializedThis:
		return &VerificationTypeInfo{Tag: tag}, nil
	case VerifObject:
		idx, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		return &VerificationTypeInfo{Tag: tag, ConstantPoolIndex: idx}, nil
	case VerifUninitialized:
		offset, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		return &VerificationTypeInfo{Tag: tag, Offset: offset}, nil
	default:
		return nil, ErrBadAttributeShape
	}
}
