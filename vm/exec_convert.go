// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vm

import "math"

func isConvertOpcode(opcode byte) bool {
	switch opcode {
	case OpI2L, OpI2F, OpI2D,
		OpL2I, OpL2F, OpL2D,
		OpF2I, OpF2L, OpF2D,
		OpD2I, OpD2L, OpD2F,
		OpI2B, OpI2C, OpI2S:
		return true
	}
	return false
}

// execConvert implements the numeric conversion family (JVMS17 6.5).
// Widening conversions (i2l, i2f, i2d, l2f, l2d, f2d) are exact or
// IEEE-rounded per the JLS and need no special casing.
//
// f2i, f2l, d2i, d2l are narrowing float-to-integer conversions, and
// JVMS17 specifies they round toward zero and saturate at the target
// type's min/max rather than wrapping, with NaN converting to 0 (f2i:
// "if the value' is NaN, the result... is 0"). The interpreter's
// original source instead did a plain round-to-nearest float-to-int
// cast, which neither saturates nor maps NaN to 0; this implements the
// JVMS-specified behavior instead.
func (vm *Interpreter) execConvert(opcode byte) error {
	f := vm.Frame
	switch opcode {
	case OpI2L:
		v, err := f.Stack.PopInt()
		if err != nil {
			return err
		}
		return f.Stack.PushLong(int64(v))
	case OpI2F:
		v, err := f.Stack.PopInt()
		if err != nil {
			return err
		}
		return f.Stack.PushValue(Float(float32(v)))
	case OpI2D:
		v, err := f.Stack.PopInt()
		if err != nil {
			return err
		}
		return f.Stack.PushValue(Double(float64(v)))

	case OpL2I:
		v, err := f.Stack.PopLong()
		if err != nil {
			return err
		}
		return f.Stack.PushInt(int32(v))
	case OpL2F:
		v, err := f.Stack.PopLong()
		if err != nil {
			return err
		}
		return f.Stack.PushValue(Float(float32(v)))
	case OpL2D:
		v, err := f.Stack.PopLong()
		if err != nil {
			return err
		}
		return f.Stack.PushValue(Double(float64(v)))

	case OpF2I:
		v, err := f.Stack.PopValue(TagFloat)
		if err != nil {
			return err
		}
		return f.Stack.PushInt(float64ToInt32(float64(v.Float32())))
	case OpF2L:
		v, err := f.Stack.PopValue(TagFloat)
		if err != nil {
			return err
		}
		return f.Stack.PushLong(float64ToInt64(float64(v.Float32())))
	case OpF2D:
		v, err := f.Stack.PopValue(TagFloat)
		if err != nil {
			return err
		}
		return f.Stack.PushValue(Double(float64(v.Float32())))

	case OpD2I:
		v, err := f.Stack.PopValue(TagDouble)
		if err != nil {
			return err
		}
		return f.Stack.PushInt(float64ToInt32(v.Float64()))
	case OpD2L:
		v, err := f.Stack.PopValue(TagDouble)
		if err != nil {
			return err
		}
		return f.Stack.PushLong(float64ToInt64(v.Float64()))
	case OpD2F:
		v, err := f.Stack.PopValue(TagDouble)
		if err != nil {
			return err
		}
		return f.Stack.PushValue(Float(float32(v.Float64())))

	case OpI2B:
		v, err := f.Stack.PopInt()
		if err != nil {
			return err
		}
		return f.Stack.PushInt(int32(int8(v)))
	case OpI2C:
		v, err := f.Stack.PopInt()
		if err != nil {
			return err
		}
		return f.Stack.PushInt(int32(uint16(v)))
	case OpI2S:
		v, err := f.Stack.PopInt()
		if err != nil {
			return err
		}
		return f.Stack.PushInt(int32(int16(v)))
	}
	return &UnimplementedOpcodeError{Mnemonic: mnemonic(opcode)}
}

// float64ToInt32 converts v to an int32 per JVMS17 f2i/d2i: round toward
// zero, NaN becomes 0, and out-of-range magnitudes saturate to
// math.MinInt32/math.MaxInt32 rather than wrapping.
func float64ToInt32(v float64) int32 {
	if math.IsNaN(v) {
		return 0
	}
	t := math.Trunc(v)
	if t >= math.MaxInt32 {
		return math.MaxInt32
	}
	if t <= math.MinInt32 {
		return math.MinInt32
	}
	return int32(t)
}

// float64ToInt64 converts v to an int64 per JVMS17 f2l/d2l, with the same
// round-toward-zero, NaN-to-0, saturating behavior as float64ToInt32.
func float64ToInt64(v float64) int64 {
	if math.IsNaN(v) {
		return 0
	}
	t := math.Trunc(v)
	if t >= math.MaxInt64 {
		return math.MaxInt64
	}
	if t <= math.MinInt64 {
		return math.MinInt64
	}
	return int64(t)
}
