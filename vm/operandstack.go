// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vm

// OperandStack is a frame's byte-granular operand stack (JVMS17 2.6.2): a
// push writes N raw bytes, a pop reads them back off the end. Pushes and
// pops always use big-endian byte order; the original interpreter's
// source used little-endian in its 32-bit push path while its pop path
// assembled big-endian, silently corrupting every value that crossed it,
// so this type fixes that by only ever speaking one byte order.
type OperandStack struct {
	maxDepth int
	bytes    []byte
	// widths records the byte width (4 or 8) of each logical value
	// currently on the stack, in push order. The stack manipulation
	// family (pop/dup/swap) needs to know where one value ends and the
	// next begins, which raw bytes alone can't tell it, since a push of
	// one 8-byte long looks identical on the wire to two 4-byte ints.
	widths []int
}

// NewOperandStack returns an OperandStack that rejects pushes once its
// byte length would exceed maxDepth. maxDepth is expressed in bytes, not
// slots, since JVMS declares max_stack in terms of category-1 words
// (4 bytes each).
func NewOperandStack(maxDepth int) *OperandStack {
	return &OperandStack{maxDepth: maxDepth}
}

// Depth reports the stack's current size in bytes.
func (s *OperandStack) Depth() int { return len(s.bytes) }

func (s *OperandStack) pushBytes(b []byte) error {
	if len(s.bytes)+len(b) > s.maxDepth {
		return ErrStackOverflow
	}
	s.bytes = append(s.bytes, b...)
	s.widths = append(s.widths, len(b))
	return nil
}

func (s *OperandStack) popBytes(n int) ([]byte, error) {
	if len(s.bytes) < n {
		return nil, ErrStackUnderflow
	}
	start := len(s.bytes) - n
	out := make([]byte, n)
	copy(out, s.bytes[start:])
	s.bytes = s.bytes[:start]
	if len(s.widths) == 0 || s.widths[len(s.widths)-1] != n {
		return nil, ErrStackUnderflow
	}
	s.widths = s.widths[:len(s.widths)-1]
	return out, nil
}

// topWidth returns the byte width of the value n values down from the
// top (0 is the top value itself), failing if the stack is too shallow.
func (s *OperandStack) topWidth(n int) (int, error) {
	if n >= len(s.widths) {
		return 0, ErrStackUnderflow
	}
	return s.widths[len(s.widths)-1-n], nil
}

// rawPush appends raw bytes as a single logical value of the given
// width, bypassing the Push*/Pop* typed helpers; used by the stack
// manipulation family, which moves bytes around without caring what
// type they hold.
func (s *OperandStack) rawPush(b []byte) error {
	if len(s.bytes)+len(b) > s.maxDepth {
		return ErrStackOverflow
	}
	s.bytes = append(s.bytes, b...)
	s.widths = append(s.widths, len(b))
	return nil
}

// rawPop removes and returns the top logical value's raw bytes; the
// width is len of the returned slice.
func (s *OperandStack) rawPop() ([]byte, error) {
	if len(s.widths) == 0 {
		return nil, ErrStackUnderflow
	}
	w := s.widths[len(s.widths)-1]
	return s.popBytes(w)
}

// PushInt pushes a category-1 int32, big-endian.
func (s *OperandStack) PushInt(v int32) error {
	return s.pushBytes([]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}

// PopInt pops a category-1 int32, big-endian.
func (s *OperandStack) PopInt() (int32, error) {
	b, err := s.popBytes(4)
	if err != nil {
		return 0, err
	}
	return int32(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])), nil
}

// PushLong pushes a category-2 int64, big-endian.
func (s *OperandStack) PushLong(v int64) error {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> uint(56-8*i))
	}
	return s.pushBytes(b)
}

// PopLong pops a category-2 int64, big-endian.
func (s *OperandStack) PopLong() (int64, error) {
	b, err := s.popBytes(8)
	if err != nil {
		return 0, err
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(b[i])
	}
	return int64(v), nil
}

// PushValue pushes v using the byte width its Tag's category implies.
func (s *OperandStack) PushValue(v Value) error {
	if v.Tag.IsCategory2() {
		return s.PushLong(v.Int64())
	}
	return s.PushInt(v.Int32())
}

// PopValue pops a value of the given tag, reading the byte width its
// category implies and reattaching the tag to the raw bits.
func (s *OperandStack) PopValue(tag TypeTag) (Value, error) {
	if tag.IsCategory2() {
		bits, err := s.PopLong()
		if err != nil {
			return Value{}, err
		}
		return Value{Tag: tag, bits: uint64(bits)}, nil
	}
	bits, err := s.PopInt()
	if err != nil {
		return Value{}, err
	}
	return Value{Tag: tag, bits: uint64(uint32(bits))}, nil
}
