// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vm

import "math"

func isArithmeticOpcode(opcode byte) bool {
	switch opcode {
	case OpIAdd, OpLAdd, OpFAdd, OpDAdd,
		OpISub, OpLSub, OpFSub, OpDSub,
		OpIMul, OpLMul, OpFMul, OpDMul,
		OpIDiv, OpLDiv, OpFDiv, OpDDiv,
		OpIRem, OpLRem, OpFRem, OpDRem,
		OpINeg, OpLNeg, OpFNeg, OpDNeg,
		OpIShl, OpLShl, OpIShr, OpLShr, OpIUShr, OpLUShr,
		OpIAnd, OpLAnd, OpIOr, OpLOr, OpIXor, OpLXor,
		OpIInc:
		return true
	}
	return false
}

// execArithmetic implements the arithmetic and bitwise family (JVMS17
// 6.5). Integer add/sub/mul/neg/shl/and/or/xor wrap silently on overflow,
// matching Go's own defined wraparound for fixed-width integers. Integer
// division and remainder by zero raise ErrDivideByZero (JVMS17 idiv:
// "if... is zero, ArithmeticException"); float/double division and
// remainder instead go through IEEE 754 and produce Inf/NaN, never an
// error.
//
// iushr/lushr are a plain logical right shift of the masked shift amount
// (5 bits for int, 6 for long); the interpreter's original source instead
// computed a compensating expression that only matched the logical shift
// for a subset of inputs. iinc reads its index and signed byte increment
// from the code stream, like the non-wide load/store family.
func (vm *Interpreter) execArithmetic(opcode byte) error {
	switch opcode {
	case OpIAdd:
		return vm.binaryInt(func(a, b int32) int32 { return a + b })
	case OpISub:
		return vm.binaryInt(func(a, b int32) int32 { return a - b })
	case OpIMul:
		return vm.binaryInt(func(a, b int32) int32 { return a * b })
	case OpIDiv:
		return vm.binaryIntFallible(func(a, b int32) (int32, error) {
			if b == 0 {
				return 0, ErrDivideByZero
			}
			return a / b, nil
		})
	case OpIRem:
		return vm.binaryIntFallible(func(a, b int32) (int32, error) {
			if b == 0 {
				return 0, ErrDivideByZero
			}
			return a % b, nil
		})
	case OpINeg:
		return vm.unaryInt(func(a int32) int32 { return -a })
	case OpIShl:
		return vm.binaryInt(func(a, b int32) int32 { return a << (uint32(b) & 0x1f) })
	case OpIShr:
		return vm.binaryInt(func(a, b int32) int32 { return a >> (uint32(b) & 0x1f) })
	case OpIUShr:
		return vm.binaryInt(func(a, b int32) int32 {
			return int32(uint32(a) >> (uint32(b) & 0x1f))
		})
	case OpIAnd:
		return vm.binaryInt(func(a, b int32) int32 { return a & b })
	case OpIOr:
		return vm.binaryInt(func(a, b int32) int32 { return a | b })
	case OpIXor:
		return vm.binaryInt(func(a, b int32) int32 { return a ^ b })

	case OpLAdd:
		return vm.binaryLong(func(a, b int64) int64 { return a + b })
	case OpLSub:
		return vm.binaryLong(func(a, b int64) int64 { return a - b })
	case OpLMul:
		return vm.binaryLong(func(a, b int64) int64 { return a * b })
	case OpLDiv:
		return vm.binaryLongFallible(func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, ErrDivideByZero
			}
			return a / b, nil
		})
	case OpLRem:
		return vm.binaryLongFallible(func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, ErrDivideByZero
			}
			return a % b, nil
		})
	case OpLNeg:
		return vm.unaryLong(func(a int64) int64 { return -a })
	case OpLShl:
		return vm.shiftLong(func(a int64, b uint32) int64 { return a << (b & 0x3f) })
	case OpLShr:
		return vm.shiftLong(func(a int64, b uint32) int64 { return a >> (b & 0x3f) })
	case OpLUShr:
		return vm.shiftLong(func(a int64, b uint32) int64 {
			return int64(uint64(a) >> (b & 0x3f))
		})
	case OpLAnd:
		return vm.binaryLong(func(a, b int64) int64 { return a & b })
	case OpLOr:
		return vm.binaryLong(func(a, b int64) int64 { return a | b })
	case OpLXor:
		return vm.binaryLong(func(a, b int64) int64 { return a ^ b })

	case OpFAdd:
		return vm.binaryFloat(func(a, b float32) float32 { return a + b })
	case OpFSub:
		return vm.binaryFloat(func(a, b float32) float32 { return a - b })
	case OpFMul:
		return vm.binaryFloat(func(a, b float32) float32 { return a * b })
	case OpFDiv:
		return vm.binaryFloat(func(a, b float32) float32 { return a / b })
	case OpFRem:
		return vm.binaryFloat(floatRem)
	case OpFNeg:
		return vm.unaryFloat(func(a float32) float32 { return -a })

	case OpDAdd:
		return vm.binaryDouble(func(a, b float64) float64 { return a + b })
	case OpDSub:
		return vm.binaryDouble(func(a, b float64) float64 { return a - b })
	case OpDMul:
		return vm.binaryDouble(func(a, b float64) float64 { return a * b })
	case OpDDiv:
		return vm.binaryDouble(func(a, b float64) float64 { return a / b })
	case OpDRem:
		return vm.binaryDouble(doubleRem)
	case OpDNeg:
		return vm.unaryDouble(func(a float64) float64 { return -a })

	case OpIInc:
		return vm.execIinc()
	}
	return &UnimplementedOpcodeError{Mnemonic: mnemonic(opcode)}
}

func (vm *Interpreter) execIinc() error {
	idx, err := vm.Frame.fetch()
	if err != nil {
		return err
	}
	delta, err := vm.Frame.fetch()
	if err != nil {
		return err
	}
	v, err := vm.Frame.Locals.GetInt(int(idx))
	if err != nil {
		return err
	}
	return vm.Frame.Locals.Set(int(idx), Int(v+int32(int8(delta))))
}

func (vm *Interpreter) binaryInt(op func(a, b int32) int32) error {
	b, err := vm.Frame.Stack.PopInt()
	if err != nil {
		return err
	}
	a, err := vm.Frame.Stack.PopInt()
	if err != nil {
		return err
	}
	return vm.Frame.Stack.PushInt(op(a, b))
}

func (vm *Interpreter) binaryIntFallible(op func(a, b int32) (int32, error)) error {
	b, err := vm.Frame.Stack.PopInt()
	if err != nil {
		return err
	}
	a, err := vm.Frame.Stack.PopInt()
	if err != nil {
		return err
	}
	r, err := op(a, b)
	if err != nil {
		return err
	}
	return vm.Frame.Stack.PushInt(r)
}

func (vm *Interpreter) unaryInt(op func(a int32) int32) error {
	a, err := vm.Frame.Stack.PopInt()
	if err != nil {
		return err
	}
	return vm.Frame.Stack.PushInt(op(a))
}

func (vm *Interpreter) binaryLong(op func(a, b int64) int64) error {
	b, err := vm.Frame.Stack.PopLong()
	if err != nil {
		return err
	}
	a, err := vm.Frame.Stack.PopLong()
	if err != nil {
		return err
	}
	return vm.Frame.Stack.PushLong(op(a, b))
}

func (vm *Interpreter) binaryLongFallible(op func(a, b int64) (int64, error)) error {
	b, err := vm.Frame.Stack.PopLong()
	if err != nil {
		return err
	}
	a, err := vm.Frame.Stack.PopLong()
	if err != nil {
		return err
	}
	r, err := op(a, b)
	if err != nil {
		return err
	}
	return vm.Frame.Stack.PushLong(r)
}

func (vm *Interpreter) unaryLong(op func(a int64) int64) error {
	a, err := vm.Frame.Stack.PopLong()
	if err != nil {
		return err
	}
	return vm.Frame.Stack.PushLong(op(a))
}

// shiftLong handles lshl/lshr/lushr, whose shift amount is an int popped
// from the top of the stack while the shifted value beneath it is a long
// (JVMS17 lshl: "value1" is long, "value2" is int).
func (vm *Interpreter) shiftLong(op func(a int64, b uint32) int64) error {
	b, err := vm.Frame.Stack.PopInt()
	if err != nil {
		return err
	}
	a, err := vm.Frame.Stack.PopLong()
	if err != nil {
		return err
	}
	return vm.Frame.Stack.PushLong(op(a, uint32(b)))
}

func (vm *Interpreter) binaryFloat(op func(a, b float32) float32) error {
	b, err := vm.Frame.Stack.PopValue(TagFloat)
	if err != nil {
		return err
	}
	a, err := vm.Frame.Stack.PopValue(TagFloat)
	if err != nil {
		return err
	}
	return vm.Frame.Stack.PushValue(Float(op(a.Float32(), b.Float32())))
}

func (vm *Interpreter) unaryFloat(op func(a float32) float32) error {
	a, err := vm.Frame.Stack.PopValue(TagFloat)
	if err != nil {
		return err
	}
	return vm.Frame.Stack.PushValue(Float(op(a.Float32())))
}

func (vm *Interpreter) binaryDouble(op func(a, b float64) float64) error {
	b, err := vm.Frame.Stack.PopValue(TagDouble)
	if err != nil {
		return err
	}
	a, err := vm.Frame.Stack.PopValue(TagDouble)
	if err != nil {
		return err
	}
	return vm.Frame.Stack.PushValue(Double(op(a.Float64(), b.Float64())))
}

func (vm *Interpreter) unaryDouble(op func(a float64) float64) error {
	a, err := vm.Frame.Stack.PopValue(TagDouble)
	if err != nil {
		return err
	}
	return vm.Frame.Stack.PushValue(Double(op(a.Float64())))
}

// floatRem and doubleRem implement frem/drem's truncating remainder
// (JVMS17 frem: "the result... has the same sign as the dividend"),
// which is what math.Mod computes; this is not the IEEE 754 remainder
// operation, which rounds the quotient to nearest.
func floatRem(a, b float32) float32 {
	return float32(math.Mod(float64(a), float64(b)))
}

func doubleRem(a, b float64) float64 {
	return math.Mod(a, b)
}
