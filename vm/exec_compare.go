// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vm

import "math"

func isCompareOpcode(opcode byte) bool {
	switch opcode {
	case OpLCmp, OpFCmpL, OpFCmpG, OpDCmpL, OpDCmpG:
		return true
	}
	return false
}

// execCompare implements lcmp/fcmpl/fcmpg/dcmpl/dcmpg (JVMS17 6.5): each
// pops two values and pushes an int of -1, 0 or 1 comparing them. The
// float/double forms differ only in how they treat NaN: fcmpg/dcmpg push
// 1 when either operand is NaN, fcmpl/dcmpl push -1, so that a
// NaN-containing comparison always takes the branch that treats the
// values as unequal regardless of which <cmp> a compiler chose to pair
// with a given conditional branch.
func (vm *Interpreter) execCompare(opcode byte) error {
	f := vm.Frame
	switch opcode {
	case OpLCmp:
		b, err := f.Stack.PopLong()
		if err != nil {
			return err
		}
		a, err := f.Stack.PopLong()
		if err != nil {
			return err
		}
		return f.Stack.PushInt(compareInt64(a, b))

	case OpFCmpL, OpFCmpG:
		b, err := f.Stack.PopValue(TagFloat)
		if err != nil {
			return err
		}
		a, err := f.Stack.PopValue(TagFloat)
		if err != nil {
			return err
		}
		return f.Stack.PushInt(compareFloat(float64(a.Float32()), float64(b.Float32()), opcode == OpFCmpG))

	case OpDCmpL, OpDCmpG:
		b, err := f.Stack.PopValue(TagDouble)
		if err != nil {
			return err
		}
		a, err := f.Stack.PopValue(TagDouble)
		if err != nil {
			return err
		}
		return f.Stack.PushInt(compareFloat(a.Float64(), b.Float64(), opcode == OpDCmpG))
	}
	return &UnimplementedOpcodeError{Mnemonic: mnemonic(opcode)}
}

func compareInt64(a, b int64) int32 {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// compareFloat compares a and b, returning 1 for NaN when nanGreater is
// true (fcmpg/dcmpg) or -1 when it is false (fcmpl/dcmpl).
func compareFloat(a, b float64, nanGreater bool) int32 {
	if math.IsNaN(a) || math.IsNaN(b) {
		if nanGreater {
			return 1
		}
		return -1
	}
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
