// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vm

import "github.com/saferwall/jvmclass/classfile"

// Frame is a single method activation (JVMS17 2.6): a program counter into
// a fixed bytecode array, an operand stack, a local variable array, the
// constant pool its instructions resolve references through, the return
// type the method's descriptor declares, and an optional link to the
// frame that invoked it.
type Frame struct {
	PC           int
	Code         []byte
	Stack        *OperandStack
	Locals       *Locals
	ConstantPool *classfile.Pool
	ReturnType   TypeTag
	Caller       *Frame
}

// NewFrame builds a Frame ready to execute code, sized per a Code
// attribute's declared max_stack/max_locals.
func NewFrame(code *classfile.CodeAttribute, pool *classfile.Pool, returnType TypeTag, caller *Frame) *Frame {
	return &Frame{
		Code:         code.Code,
		Stack:        NewOperandStack(int(code.MaxStack) * 8),
		Locals:       NewLocals(int(code.MaxLocals)),
		ConstantPool: pool,
		ReturnType:   returnType,
		Caller:       caller,
	}
}

// fetch reads the next byte from Code and advances PC, failing with
// EndOfCode if PC has run off the end.
func (f *Frame) fetch() (byte, error) {
	if f.PC < 0 || f.PC >= len(f.Code) {
		return 0, &EndOfCode{PC: f.PC}
	}
	b := f.Code[f.PC]
	f.PC++
	return b, nil
}

// fetchU16 reads a big-endian uint16 operand and advances PC past it.
func (f *Frame) fetchU16() (uint16, error) {
	hi, err := f.fetch()
	if err != nil {
		return 0, err
	}
	lo, err := f.fetch()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// jumpTo sets PC to target, which is always computed relative to some
// instruction's own opcode address by the caller (JVMS17's branch
// instructions are all specified this way), failing if target falls
// outside the code array. target == len(f.Code) is a valid, if terminal,
// jump: it only faults on the next fetch, via EndOfCode.
func (f *Frame) jumpTo(target int) error {
	if target < 0 || target > len(f.Code) {
		return &JumpOutOfBounds{Target: target, Limit: len(f.Code)}
	}
	f.PC = target
	return nil
}
