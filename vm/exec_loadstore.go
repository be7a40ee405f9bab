// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vm

func isLoadStoreOpcode(opcode byte) bool {
	switch opcode {
	case OpILoad, OpLLoad, OpFLoad, OpDLoad, OpALoad,
		OpILoad0, OpILoad1, OpILoad2, OpILoad3,
		OpLLoad0, OpLLoad1, OpLLoad2, OpLLoad3,
		OpFLoad0, OpFLoad1, OpFLoad2, OpFLoad3,
		OpDLoad0, OpDLoad1, OpDLoad2, OpDLoad3,
		OpALoad0, OpALoad1, OpALoad2, OpALoad3,
		OpIStore, OpLStore, OpFStore, OpDStore, OpAStore,
		OpIStore0, OpIStore1, OpIStore2, OpIStore3,
		OpLStore0, OpLStore1, OpLStore2, OpLStore3,
		OpFStore0, OpFStore1, OpFStore2, OpFStore3,
		OpDStore0, OpDStore1, OpDStore2, OpDStore3,
		OpAStore0, OpAStore1, OpAStore2, OpAStore3:
		return true
	}
	return false
}

// execLoadStore implements the load/store family (JVMS17 6.5): iload,
// lload, fload, dload, aload and their _<n> fixed-index forms, and the
// matching istore/lstore/fstore/dstore/astore forms.
//
// The non-wide iload/lload/fload/dload/aload forms carry their local
// variable index as a single unsigned byte immediately following the
// opcode in the code array (JVMS17 6.5, "iload"): the index must be
// fetched from there. The interpreter's original source instead popped
// the index off the operand stack, which is wrong on two counts — it
// consumes an operand the instruction was never specified to have, and
// it silently reads whatever value happened to be on top of the stack
// as if it were the index.
func (vm *Interpreter) execLoadStore(opcode byte) error {
	switch opcode {
	case OpILoad:
		return vm.loadIndexed(opcode)
	case OpLLoad:
		return vm.loadIndexed(opcode)
	case OpFLoad:
		return vm.loadIndexed(opcode)
	case OpDLoad:
		return vm.loadIndexed(opcode)
	case OpALoad:
		return vm.loadIndexed(opcode)

	case OpILoad0:
		return vm.loadInt(0)
	case OpILoad1:
		return vm.loadInt(1)
	case OpILoad2:
		return vm.loadInt(2)
	case OpILoad3:
		return vm.loadInt(3)

	case OpLLoad0:
		return vm.loadLong(0)
	case OpLLoad1:
		return vm.loadLong(1)
	case OpLLoad2:
		return vm.loadLong(2)
	case OpLLoad3:
		return vm.loadLong(3)

	case OpFLoad0:
		return vm.loadFloat(0)
	case OpFLoad1:
		return vm.loadFloat(1)
	case OpFLoad2:
		return vm.loadFloat(2)
	case OpFLoad3:
		return vm.loadFloat(3)

	case OpDLoad0:
		return vm.loadDouble(0)
	case OpDLoad1:
		return vm.loadDouble(1)
	case OpDLoad2:
		return vm.loadDouble(2)
	case OpDLoad3:
		return vm.loadDouble(3)

	case OpALoad0:
		return vm.loadRef(0)
	case OpALoad1:
		return vm.loadRef(1)
	case OpALoad2:
		return vm.loadRef(2)
	case OpALoad3:
		return vm.loadRef(3)

	case OpIStore:
		return vm.storeIndexed(opcode)
	case OpLStore:
		return vm.storeIndexed(opcode)
	case OpFStore:
		return vm.storeIndexed(opcode)
	case OpDStore:
		return vm.storeIndexed(opcode)
	case OpAStore:
		return vm.storeIndexed(opcode)

	case OpIStore0:
		return vm.storeInt(0)
	case OpIStore1:
		return vm.storeInt(1)
	case OpIStore2:
		return vm.storeInt(2)
	case OpIStore3:
		return vm.storeInt(3)

	case OpLStore0:
		return vm.storeLong(0)
	case OpLStore1:
		return vm.storeLong(1)
	case OpLStore2:
		return vm.storeLong(2)
	case OpLStore3:
		return vm.storeLong(3)

	case OpFStore0:
		return vm.storeFloat(0)
	case OpFStore1:
		return vm.storeFloat(1)
	case OpFStore2:
		return vm.storeFloat(2)
	case OpFStore3:
		return vm.storeFloat(3)

	case OpDStore0:
		return vm.storeDouble(0)
	case OpDStore1:
		return vm.storeDouble(1)
	case OpDStore2:
		return vm.storeDouble(2)
	case OpDStore3:
		return vm.storeDouble(3)

	case OpAStore0:
		return vm.storeRef(0)
	case OpAStore1:
		return vm.storeRef(1)
	case OpAStore2:
		return vm.storeRef(2)
	case OpAStore3:
		return vm.storeRef(3)
	}
	return &UnimplementedOpcodeError{Mnemonic: mnemonic(opcode)}
}

// loadIndexed handles the non-wide iload/lload/fload/dload/aload forms:
// it reads the local variable index from the code stream, not the stack.
func (vm *Interpreter) loadIndexed(opcode byte) error {
	b, err := vm.Frame.fetch()
	if err != nil {
		return err
	}
	index := int(b)
	switch opcode {
	case OpILoad:
		return vm.loadInt(index)
	case OpLLoad:
		return vm.loadLong(index)
	case OpFLoad:
		return vm.loadFloat(index)
	case OpDLoad:
		return vm.loadDouble(index)
	default: // OpALoad
		return vm.loadRef(index)
	}
}

// storeIndexed handles the non-wide istore/lstore/fstore/dstore/astore
// forms, reading their local variable index from the code stream.
func (vm *Interpreter) storeIndexed(opcode byte) error {
	b, err := vm.Frame.fetch()
	if err != nil {
		return err
	}
	index := int(b)
	switch opcode {
	case OpIStore:
		return vm.storeInt(index)
	case OpLStore:
		return vm.storeLong(index)
	case OpFStore:
		return vm.storeFloat(index)
	case OpDStore:
		return vm.storeDouble(index)
	default: // OpAStore
		return vm.storeRef(index)
	}
}

func (vm *Interpreter) loadInt(index int) error {
	v, err := vm.Frame.Locals.GetInt(index)
	if err != nil {
		return err
	}
	return vm.Frame.Stack.PushInt(v)
}

func (vm *Interpreter) loadLong(index int) error {
	v, err := vm.Frame.Locals.GetLong(index)
	if err != nil {
		return err
	}
	return vm.Frame.Stack.PushLong(v)
}

func (vm *Interpreter) loadFloat(index int) error {
	v, err := vm.Frame.Locals.GetFloat(index)
	if err != nil {
		return err
	}
	return vm.Frame.Stack.PushValue(Float(v))
}

func (vm *Interpreter) loadDouble(index int) error {
	v, err := vm.Frame.Locals.GetDouble(index)
	if err != nil {
		return err
	}
	return vm.Frame.Stack.PushValue(Double(v))
}

func (vm *Interpreter) loadRef(index int) error {
	v, err := vm.Frame.Locals.GetReference(index)
	if err != nil {
		return err
	}
	return vm.Frame.Stack.PushValue(v)
}

func (vm *Interpreter) storeInt(index int) error {
	v, err := vm.Frame.Stack.PopInt()
	if err != nil {
		return err
	}
	return vm.Frame.Locals.Set(index, Int(v))
}

func (vm *Interpreter) storeLong(index int) error {
	v, err := vm.Frame.Stack.PopLong()
	if err != nil {
		return err
	}
	return vm.Frame.Locals.Set(index, Long(v))
}

func (vm *Interpreter) storeFloat(index int) error {
	v, err := vm.Frame.Stack.PopValue(TagFloat)
	if err != nil {
		return err
	}
	return vm.Frame.Locals.Set(index, v)
}

func (vm *Interpreter) storeDouble(index int) error {
	v, err := vm.Frame.Stack.PopValue(TagDouble)
	if err != nil {
		return err
	}
	return vm.Frame.Locals.Set(index, v)
}

func (vm *Interpreter) storeRef(index int) error {
	v, err := vm.Frame.Stack.PopValue(TagClassRef)
	if err != nil {
		return err
	}
	return vm.Frame.Locals.Set(index, v)
}
