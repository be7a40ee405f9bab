// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vm

func isReturnOpcode(opcode byte) bool {
	switch opcode {
	case OpIReturn, OpLReturn, OpFReturn, OpDReturn, OpAReturn, OpReturn:
		return true
	}
	return false
}

// execReturn implements the return family (JVMS17 6.5): each pops (or,
// for return, requires an empty-of-category-matters) a value of the type
// the method's descriptor declares and hands it back as Execute's
// result, terminating the frame. A return whose type tag doesn't match
// Frame.ReturnType is a BadReturnType, since that is a classfile/method
// descriptor mismatch the loader should have already rejected upstream.
func (vm *Interpreter) execReturn(opcode byte) (Value, bool, error) {
	f := vm.Frame
	if opcode == OpAReturn {
		if f.ReturnType != TagClassRef && f.ReturnType != TagArrayRef {
			return Value{}, true, &BadReturnType{Expected: f.ReturnType, Actual: TagClassRef}
		}
	} else if wantTag, ok := returnTagFor(opcode); ok && f.ReturnType != wantTag {
		return Value{}, true, &BadReturnType{Expected: f.ReturnType, Actual: wantTag}
	}

	switch opcode {
	case OpIReturn:
		v, err := f.Stack.PopInt()
		if err != nil {
			return Value{}, true, err
		}
		return Int(v), true, nil
	case OpLReturn:
		v, err := f.Stack.PopLong()
		if err != nil {
			return Value{}, true, err
		}
		return Long(v), true, nil
	case OpFReturn:
		v, err := f.Stack.PopValue(TagFloat)
		if err != nil {
			return Value{}, true, err
		}
		return v, true, nil
	case OpDReturn:
		v, err := f.Stack.PopValue(TagDouble)
		if err != nil {
			return Value{}, true, err
		}
		return v, true, nil
	case OpAReturn:
		v, err := f.Stack.PopValue(TagClassRef)
		if err != nil {
			return Value{}, true, err
		}
		return v, true, nil
	case OpReturn:
		if f.ReturnType != TagVoid {
			return Value{}, true, &BadReturnType{Expected: f.ReturnType, Actual: TagVoid}
		}
		return Value{}, true, nil
	}
	return Value{}, true, &UnimplementedOpcodeError{Mnemonic: mnemonic(opcode)}
}

func returnTagFor(opcode byte) (TypeTag, bool) {
	switch opcode {
	case OpIReturn:
		return TagInt, true
	case OpLReturn:
		return TagLong, true
	case OpFReturn:
		return TagFloat, true
	case OpDReturn:
		return TagDouble, true
	case OpAReturn:
		return TagClassRef, true
	}
	return 0, false
}
