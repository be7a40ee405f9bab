// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vm

import (
	"math"
	"testing"
)

// TestF2iRoundsTowardZero proves f2i truncates rather than rounding to
// nearest, the behavior the interpreter's original source implemented by
// doing a plain Rust `as i32` cast of a rounded float.
func TestF2iRoundsTowardZero(t *testing.T) {
	v := float64ToInt32(3.9)
	if v != 3 {
		t.Fatalf("got %d, want 3", v)
	}
	v = float64ToInt32(-3.9)
	if v != -3 {
		t.Fatalf("got %d, want -3", v)
	}
}

func TestF2iNaNIsZero(t *testing.T) {
	if v := float64ToInt32(math.NaN()); v != 0 {
		t.Fatalf("got %d, want 0", v)
	}
}

func TestF2iSaturatesOnOverflow(t *testing.T) {
	if v := float64ToInt32(1e20); v != math.MaxInt32 {
		t.Fatalf("got %d, want MaxInt32", v)
	}
	if v := float64ToInt32(-1e20); v != math.MinInt32 {
		t.Fatalf("got %d, want MinInt32", v)
	}
}

func TestD2lSaturatesAndHandlesNaN(t *testing.T) {
	if v := float64ToInt64(math.NaN()); v != 0 {
		t.Fatalf("got %d, want 0", v)
	}
	if v := float64ToInt64(1e30); v != math.MaxInt64 {
		t.Fatalf("got %d, want MaxInt64", v)
	}
	if v := float64ToInt64(-1e30); v != math.MinInt64 {
		t.Fatalf("got %d, want MinInt64", v)
	}
}

func TestI2bSignExtends(t *testing.T) {
	code := []byte{OpSipush, 0x01, 0x80, OpI2B, OpIReturn} // 0x0180 -> byte 0x80 -> -128
	v, err := runCode(code, 1, 0, TagInt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsInt(); got != -128 {
		t.Fatalf("got %d, want -128", got)
	}
}

func TestI2cZeroExtends(t *testing.T) {
	code := []byte{OpIConstM1, OpI2C, OpIReturn}
	v, err := runCode(code, 1, 0, TagInt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsInt(); got != 0xffff {
		t.Fatalf("got %d, want 65535", got)
	}
}
