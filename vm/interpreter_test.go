// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vm

import "testing"

func TestExecuteSimpleIntAddition(t *testing.T) {
	code := []byte{OpIConst2, OpIConst3, OpIAdd, OpIReturn}
	v, err := runCode(code, 2, 0, TagInt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsInt(); got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}

func TestExecuteBareReturn(t *testing.T) {
	code := []byte{OpReturn}
	_, err := runCode(code, 0, 0, TagVoid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExecuteBadReturnType(t *testing.T) {
	code := []byte{OpIConst1, OpIReturn}
	_, err := runCode(code, 1, 0, TagLong)
	if _, ok := err.(*BadReturnType); !ok {
		t.Fatalf("got %v, want *BadReturnType", err)
	}
}

func TestExecuteUnrecognizedOpcode(t *testing.T) {
	// 0xcb falls in the reserved range JVMS17 Table 6.5 leaves undefined.
	_, err := runCode([]byte{0xcb}, 0, 0, TagVoid)
	if _, ok := err.(*DecodeError); !ok {
		t.Fatalf("got %v, want *DecodeError", err)
	}
}

func TestExecuteUnimplementedOpcode(t *testing.T) {
	// new (0xbb) is a defined, decodable opcode that this interpreter
	// does not execute: object creation is out of scope.
	code := []byte{0xbb, 0x00, 0x01}
	_, err := runCode(code, 1, 0, TagVoid)
	if _, ok := err.(*UnimplementedOpcodeError); !ok {
		t.Fatalf("got %v, want *UnimplementedOpcodeError", err)
	}
}

// TestNonWideLoadReadsIndexFromCodeStream proves iload takes its local
// variable index from the byte following the opcode in the code array,
// not from the operand stack: a value is pushed onto the stack
// immediately before the iload, and the load must still resolve the
// correct local rather than treating that pushed value as an index.
func TestNonWideLoadReadsIndexFromCodeStream(t *testing.T) {
	code := []byte{
		OpBipush, 42, // stack: [42]
		OpIStore1, // locals[1] = 42, stack: []
		OpBipush, 9, // stack: [9]
		OpILoad, 0x01, // stack: [9, locals[1]=42] -- index 0x01 read from code, not popped from stack
		OpIAdd, // stack: [51]
		OpIReturn,
	}
	v, err := runCode(code, 2, 2, TagInt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsInt(); got != 51 {
		t.Fatalf("got %d, want 51", got)
	}
}

// TestGotoOffsetRelativeToOpcodeAddress proves a goto's branch target is
// computed relative to the address of the goto opcode itself, not the
// program counter after its 2-byte operand has already been consumed.
func TestGotoOffsetRelativeToOpcodeAddress(t *testing.T) {
	code := []byte{
		OpGoto, 0x00, 0x03, // opcode at address 0; offset 3 -> target address 3
		OpIConst1,
		OpIReturn,
	}
	v, err := runCode(code, 1, 0, TagInt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsInt(); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

// TestGotoToCodeLengthIsValidJump proves a branch target equal to
// len(code) is accepted (JVMS17 6.5's target range is the closed
// interval [0, code_length]): the jump itself must succeed, and only the
// interpreter's subsequent fetch at that terminal address fails.
func TestGotoToCodeLengthIsValidJump(t *testing.T) {
	code := []byte{
		OpGoto, 0x00, 0x03, // opcode at address 0; offset 3 -> target address 3 == len(code)
	}
	_, err := runCode(code, 0, 0, TagVoid)
	if _, ok := err.(*EndOfCode); !ok {
		t.Fatalf("got %v, want *EndOfCode", err)
	}
}

// TestIfEqOffsetRelativeToOpcodeAddress exercises the same fix on a
// conditional branch.
func TestIfEqOffsetRelativeToOpcodeAddress(t *testing.T) {
	code := []byte{
		OpIConst0,
		OpIfEq, 0x00, 0x05, // opcode at address 1; offset 5 -> target address 6
		OpIConst0, // skipped if the branch is taken
		OpIReturn, // also skipped
		OpIConst1, // address 6
		OpIReturn,
	}
	v, err := runCode(code, 1, 0, TagInt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsInt(); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}
