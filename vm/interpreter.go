// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vm

// Interpreter runs the fetch/decode/execute loop over a single Frame. It
// holds no state of its own beyond the frame it is currently stepping;
// invoking a method pushes a new Frame linked to the caller through
// Frame.Caller (method invocation itself is out of scope, so nothing in
// this package ever does that push).
type Interpreter struct {
	Frame *Frame
}

// NewInterpreter returns an Interpreter ready to run frame.
func NewInterpreter(frame *Frame) *Interpreter {
	return &Interpreter{Frame: frame}
}

// Execute runs instructions until a return instruction produces a value,
// a bare return is hit (zero Value), or an error terminates the frame.
func (vm *Interpreter) Execute() (Value, error) {
	for {
		opcodeAddr := vm.Frame.PC
		opcode, err := vm.Frame.fetch()
		if err != nil {
			return Value{}, err
		}

		if mnemonic(opcode) == "" {
			return Value{}, &DecodeError{Opcode: opcode}
		}

		result, done, err := vm.step(opcode, opcodeAddr)
		if err != nil {
			return Value{}, err
		}
		if done {
			return result, nil
		}
	}
}

// step executes a single decoded instruction. done reports whether the
// instruction terminated the frame (any of the typed returns, or return);
// opcodeAddr is the address of the opcode byte itself, which branch
// instructions need as their displacement base (JVMS17 6.5 goto et al.:
// "the target address... is... the opcode of the instruction").
func (vm *Interpreter) step(opcode byte, opcodeAddr int) (Value, bool, error) {
	switch {
	case isConstOpcode(opcode):
		return Value{}, false, vm.execConst(opcode)
	case isLoadStoreOpcode(opcode):
		return Value{}, false, vm.execLoadStore(opcode)
	case isArithmeticOpcode(opcode):
		return Value{}, false, vm.execArithmetic(opcode)
	case isConvertOpcode(opcode):
		return Value{}, false, vm.execConvert(opcode)
	case isCompareOpcode(opcode):
		return Value{}, false, vm.execCompare(opcode)
	case isBranchOpcode(opcode):
		return Value{}, false, vm.execBranch(opcode, opcodeAddr)
	case isStackOpcode(opcode):
		return Value{}, false, vm.execStack(opcode)
	case isReturnOpcode(opcode):
		return vm.execReturn(opcode)
	case opcode == OpNop:
		return Value{}, false, nil
	default:
		return Value{}, false, &UnimplementedOpcodeError{Mnemonic: mnemonic(opcode)}
	}
}
