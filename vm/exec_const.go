// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vm

func isConstOpcode(opcode byte) bool {
	switch opcode {
	case OpAConstNull,
		OpIConstM1, OpIConst0, OpIConst1, OpIConst2, OpIConst3, OpIConst4, OpIConst5,
		OpLConst0, OpLConst1,
		OpFConst0, OpFConst1, OpFConst2,
		OpDConst0, OpDConst1,
		OpBipush, OpSipush,
		OpLdc, OpLdcW, OpLdc2W:
		return true
	}
	return false
}

// execConst implements the constant-push family (JVMS17 6.5): the
// iconst_<i>/lconst_<l>/fconst_<f>/dconst_<d> immediate pushes, bipush/
// sipush's sign-extended byte/short immediates, and the ldc family's
// constant pool lookups.
func (vm *Interpreter) execConst(opcode byte) error {
	f := vm.Frame
	switch opcode {
	case OpAConstNull:
		return f.Stack.PushValue(Null())

	case OpIConstM1:
		return f.Stack.PushInt(-1)
	case OpIConst0:
		return f.Stack.PushInt(0)
	case OpIConst1:
		return f.Stack.PushInt(1)
	case OpIConst2:
		return f.Stack.PushInt(2)
	case OpIConst3:
		return f.Stack.PushInt(3)
	case OpIConst4:
		return f.Stack.PushInt(4)
	case OpIConst5:
		return f.Stack.PushInt(5)

	case OpLConst0:
		return f.Stack.PushLong(0)
	case OpLConst1:
		return f.Stack.PushLong(1)

	case OpFConst0:
		return f.Stack.PushValue(Float(0))
	case OpFConst1:
		return f.Stack.PushValue(Float(1))
	case OpFConst2:
		return f.Stack.PushValue(Float(2))

	case OpDConst0:
		return f.Stack.PushValue(Double(0))
	case OpDConst1:
		return f.Stack.PushValue(Double(1))

	case OpBipush:
		b, err := f.fetch()
		if err != nil {
			return err
		}
		return f.Stack.PushInt(int32(int8(b)))

	case OpSipush:
		v, err := f.fetchU16()
		if err != nil {
			return err
		}
		return f.Stack.PushInt(int32(int16(v)))

	case OpLdc:
		idx, err := f.fetch()
		if err != nil {
			return err
		}
		return vm.pushConstant(uint16(idx))

	case OpLdcW, OpLdc2W:
		idx, err := f.fetchU16()
		if err != nil {
			return err
		}
		return vm.pushConstant(idx)
	}
	return &UnimplementedOpcodeError{Mnemonic: mnemonic(opcode)}
}

// pushConstant resolves a loadable constant pool entry (Integer, Float,
// Long, Double, String or Class) and pushes its runtime representation.
func (vm *Interpreter) pushConstant(index uint16) error {
	entry, err := vm.Frame.ConstantPool.At(index)
	if err != nil {
		return err
	}
	switch {
	case entry.Integer != nil:
		return vm.Frame.Stack.PushInt(entry.Integer.Value)
	case entry.Float != nil:
		return vm.Frame.Stack.PushValue(Float(entry.Float.Value))
	case entry.Long != nil:
		return vm.Frame.Stack.PushLong(entry.Long.Value)
	case entry.Double != nil:
		return vm.Frame.Stack.PushValue(Double(entry.Double.Value))
	case entry.String != nil, entry.Class != nil:
		// Object/array instructions are out of scope, so a resolved
		// String/Class constant is represented by its constant pool
		// index rather than a live object reference.
		return vm.Frame.Stack.PushValue(Value{Tag: TagClassRef, bits: uint64(index)})
	default:
		return &TypeError{Wanted: TagInt, Got: TagClassRef}
	}
}
