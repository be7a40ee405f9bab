// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vm

func isBranchOpcode(opcode byte) bool {
	switch opcode {
	case OpIfEq, OpIfNe, OpIfLt, OpIfGe, OpIfGt, OpIfLe,
		OpIfICmpEq, OpIfICmpNe, OpIfICmpLt, OpIfICmpGe, OpIfICmpGt, OpIfICmpLe,
		OpIfACmpEq, OpIfACmpNe,
		OpGoto, OpGotoW,
		OpIfNull, OpIfNonNull:
		return true
	}
	return false
}

// execBranch implements the conditional and unconditional branch family
// (JVMS17 6.5). Every one of these instructions specifies its 16- or
// 32-bit signed offset as relative to "the opcode of the instruction" —
// not, as the interpreter's original source computed it, relative to the
// program counter after the offset operand (and in goto_w's case, after
// only half of it) had already been consumed. opcodeAddr is the address
// of the opcode byte itself, fixing that.
func (vm *Interpreter) execBranch(opcode byte, opcodeAddr int) error {
	f := vm.Frame
	switch opcode {
	case OpIfEq, OpIfNe, OpIfLt, OpIfGe, OpIfGt, OpIfLe:
		v, err := f.Stack.PopInt()
		if err != nil {
			return err
		}
		return vm.branchIf(opcodeAddr, testInt(opcode, v, 0))

	case OpIfICmpEq, OpIfICmpNe, OpIfICmpLt, OpIfICmpGe, OpIfICmpGt, OpIfICmpLe:
		b, err := f.Stack.PopInt()
		if err != nil {
			return err
		}
		a, err := f.Stack.PopInt()
		if err != nil {
			return err
		}
		return vm.branchIf(opcodeAddr, testICmp(opcode, a, b))

	case OpIfACmpEq, OpIfACmpNe:
		b, err := f.Stack.PopValue(TagClassRef)
		if err != nil {
			return err
		}
		a, err := f.Stack.PopValue(TagClassRef)
		if err != nil {
			return err
		}
		equal := a.bits == b.bits
		if opcode == OpIfACmpEq {
			return vm.branchIf(opcodeAddr, equal)
		}
		return vm.branchIf(opcodeAddr, !equal)

	case OpIfNull, OpIfNonNull:
		a, err := f.Stack.PopValue(TagClassRef)
		if err != nil {
			return err
		}
		// PopValue tags every popped reference TagClassRef, so null is
		// recognized by its all-zero bits (what aconst_null pushes).
		isNull := a.bits == 0
		if opcode == OpIfNull {
			return vm.branchIf(opcodeAddr, isNull)
		}
		return vm.branchIf(opcodeAddr, !isNull)

	case OpGoto:
		offset, err := f.fetchU16()
		if err != nil {
			return err
		}
		return f.jumpTo(opcodeAddr + int(int16(offset)))

	case OpGotoW:
		offset, err := fetchU32(f)
		if err != nil {
			return err
		}
		return f.jumpTo(opcodeAddr + int(int32(offset)))
	}
	return &UnimplementedOpcodeError{Mnemonic: mnemonic(opcode)}
}

// branchIf consumes the two-byte offset operand every conditional branch
// here carries, taking the branch (relative to opcodeAddr) only if take
// is true; otherwise control simply falls through to the next
// instruction, which fetchU16 has already advanced PC past.
func (vm *Interpreter) branchIf(opcodeAddr int, take bool) error {
	offset, err := vm.Frame.fetchU16()
	if err != nil {
		return err
	}
	if !take {
		return nil
	}
	return vm.Frame.jumpTo(opcodeAddr + int(int16(offset)))
}

func testInt(opcode byte, v, zero int32) bool {
	switch opcode {
	case OpIfEq:
		return v == zero
	case OpIfNe:
		return v != zero
	case OpIfLt:
		return v < zero
	case OpIfGe:
		return v >= zero
	case OpIfGt:
		return v > zero
	case OpIfLe:
		return v <= zero
	}
	return false
}

func testICmp(opcode byte, a, b int32) bool {
	switch opcode {
	case OpIfICmpEq:
		return a == b
	case OpIfICmpNe:
		return a != b
	case OpIfICmpLt:
		return a < b
	case OpIfICmpGe:
		return a >= b
	case OpIfICmpGt:
		return a > b
	case OpIfICmpLe:
		return a <= b
	}
	return false
}

// fetchU32 reads a big-endian uint32 operand, the 4-byte offset goto_w
// and jsr_w carry in place of the 2-byte offset every other branch uses.
func fetchU32(f *Frame) (uint32, error) {
	hi, err := f.fetchU16()
	if err != nil {
		return 0, err
	}
	lo, err := f.fetchU16()
	if err != nil {
		return 0, err
	}
	return uint32(hi)<<16 | uint32(lo), nil
}
