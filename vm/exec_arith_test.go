// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vm

import "testing"

func TestIntOperations(t *testing.T) {
	tests := []struct {
		name string
		a, b int32
		op   byte
		want int32
	}{
		{"add", 2, 3, OpIAdd, 5},
		{"sub_positive", 5, 3, OpISub, 2},
		{"sub_negative", 3, 5, OpISub, -2},
		{"mul", 4, 6, OpIMul, 24},
		{"div", 10, 3, OpIDiv, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := []byte{OpBipush, byte(int8(tt.a)), OpBipush, byte(int8(tt.b)), tt.op, OpIReturn}
			v, err := runCode(code, 2, 0, TagInt)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got, _ := v.AsInt(); got != tt.want {
				t.Fatalf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIntNegation(t *testing.T) {
	code := []byte{OpBipush, 7, OpINeg, OpIReturn}
	v, err := runCode(code, 1, 0, TagInt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsInt(); got != -7 {
		t.Fatalf("got %d, want -7", got)
	}
}

func TestIntDivideByZero(t *testing.T) {
	code := []byte{OpIConst1, OpIConst0, OpIDiv, OpIReturn}
	_, err := runCode(code, 2, 0, TagInt)
	if err != ErrDivideByZero {
		t.Fatalf("got %v, want ErrDivideByZero", err)
	}
}

func TestIntAddOverflowWraps(t *testing.T) {
	code := []byte{OpLdc, 0x01, OpIConst1, OpIAdd, OpIReturn}
	pool := classFilePoolWithMaxInt(t)
	frame := frameWithPool(code, 2, 0, TagInt, pool)
	v, err := NewInterpreter(frame).Execute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsInt(); got != -2147483648 {
		t.Fatalf("got %d, want math.MinInt32 (wraparound)", got)
	}
}

// TestIushrIsPlainLogicalShift proves iushr performs a masked, logical
// (zero-filling) right shift rather than the compensating arithmetic the
// interpreter's original source used, which diverged from JVMS for
// negative operands.
func TestIushrIsPlainLogicalShift(t *testing.T) {
	neg8 := int8(-8)
	code := []byte{OpBipush, byte(neg8), OpIConst1, OpIUShr, OpIReturn}
	v, err := runCode(code, 2, 0, TagInt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := int32(uint32(int32(neg8)) >> 1)
	if got, _ := v.AsInt(); got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}

func TestLushrIsPlainLogicalShift(t *testing.T) {
	code := []byte{OpLConst1, OpLNeg, OpIConst1, OpLUShr, OpLReturn}
	v, err := runCode(code, 2, 0, TagLong)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	minusOne := int64(-1)
	want := int64(uint64(minusOne) >> 1)
	if got, _ := v.AsLong(); got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}

func TestIinc(t *testing.T) {
	neg3 := int8(-3)
	code := []byte{
		OpBipush, 10,
		OpIStore0,
		OpIInc, 0x00, byte(neg3),
		OpILoad0,
		OpIReturn,
	}
	v, err := runCode(code, 1, 1, TagInt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsInt(); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}
