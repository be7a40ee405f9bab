// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

// StackMapFrame is one entry of a StackMapTable attribute (JVMS17 4.7.4).
// Which fields are populated depends on FrameType, per the tag ranges
// below; Locals is only present on append and full frames, Stack on the
// same_locals_1_stack_item forms and full frames.
type StackMapFrame struct {
	FrameType      uint8                   `json:"frame_type"`
	OffsetDelta    uint16                  `json:"offset_delta,omitempty"`
	Locals         []*VerificationTypeInfo `json:"locals,omitempty"`
	Stack          []*VerificationTypeInfo `json:"stack,omitempty"`
}

// parseStackMapFrame dispatches on the leading frame_type byte to the
// seven frame shapes JVMS17 4.7.4 defines.
func parseStackMapFrame(r *reader) (*StackMapFrame, error) {
	frameType, err := r.ReadU8()
	if err != nil {
		return nil, err
	}

	switch {
	case frameType <= 63:
		// same_frame: implicit offset_delta == frame_type.
		return &StackMapFrame{FrameType: frameType, OffsetDelta: uint16(frameType)}, nil

	case frameType >= 64 && frameType <= 127:
		// same_locals_1_stack_item_frame.
		item, err := parseVerificationTypeInfo(r)
		if err != nil {
			return nil, err
		}
		return &StackMapFrame{
			FrameType:   frameType,
			OffsetDelta: uint16(frameType) - 64,
			Stack:       []*VerificationTypeInfo{item},
		}, nil

	case frameType == 247:
		// same_locals_1_stack_item_frame_extended.
		offsetDelta, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		item, err := parseVerificationTypeInfo(r)
		if err != nil {
			return nil, err
		}
		return &StackMapFrame{
			FrameType:   frameType,
			OffsetDelta: offsetDelta,
			Stack:       []*VerificationTypeInfo{item},
		}, nil

	case frameType >= 248 && frameType <= 250:
		// chop_frame.
		offsetDelta, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		return &StackMapFrame{FrameType: frameType, OffsetDelta: offsetDelta}, nil

	case frameType == 251:
		// same_frame_extended.
		offsetDelta, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		return &StackMapFrame{FrameType: frameType, OffsetDelta: offsetDelta}, nil

	case frameType >= 252 && frameType <= 254:
		// append_frame: 1..3 extra locals, (frame_type - 251) of them.
		offsetDelta, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		localsCount := int(frameType) - 251
		locals := make([]*VerificationTypeInfo, localsCount)
		for i := 0; i < localsCount; i++ {
			locals[i], err = parseVerificationTypeInfo(r)
			if err != nil {
				return nil, err
			}
		}
		return &StackMapFrame{FrameType: frameType, OffsetDelta: offsetDelta, Locals: locals}, nil

	case frameType == 255:
		// full_frame.
		offsetDelta, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		numberOfLocals, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		locals := make([]*VerificationTypeInfo, numberOfLocals)
		for i := range locals {
			locals[i], err = parseVerificationTypeInfo(r)
			if err != nil {
				return nil, err
			}
		}
		numberOfStackItems, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		stack := make([]*VerificationTypeInfo, numberOfStackItems)
		for i := range stack {
			stack[i], err = parseVerificationTypeInfo(r)
			if err != nil {
				return nil, err
			}
		}
		return &StackMapFrame{
			FrameType:   frameType,
			OffsetDelta: offsetDelta,
			Locals:      locals,
			Stack:       stack,
		}, nil

	default:
		// frame_type 128-246 is reserved for future expansion.
		return nil, ErrBadStackMapFrameTag
	}
}

func parseStackMapTable(r *reader) ([]*StackMapFrame, error) {
	numberOfEntries, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	entries := make([]*StackMapFrame, numberOfEntries)
	for i := range entries {
		entries[i], err = parseStackMapFrame(r)
		if err != nil {
			return nil, err
		}
	}
	return entries, nil
}
