// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vm

import "testing"

func TestDupDuplicatesTop(t *testing.T) {
	code := []byte{OpIConst5, OpDup, OpIAdd, OpIReturn}
	v, err := runCode(code, 2, 0, TagInt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsInt(); got != 10 {
		t.Fatalf("got %d, want 10", got)
	}
}

func TestSwapExchangesTop(t *testing.T) {
	// 10, 3 -> swap -> 3, 10 -> isub -> 3 - 10 = -7
	code := []byte{OpBipush, 10, OpBipush, 3, OpSwap, OpISub, OpIReturn}
	v, err := runCode(code, 2, 0, TagInt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsInt(); got != -7 {
		t.Fatalf("got %d, want -7", got)
	}
}

func TestPopDiscardsTop(t *testing.T) {
	code := []byte{OpIConst5, OpIConst1, OpPop, OpIReturn}
	v, err := runCode(code, 2, 0, TagInt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsInt(); got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}

func TestPop2DiscardsOneLong(t *testing.T) {
	code := []byte{OpIConst5, OpLConst1, OpPop2, OpIReturn}
	v, err := runCode(code, 3, 0, TagInt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsInt(); got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}

func TestDupX1(t *testing.T) {
	// ..., 1, 2 -> dup_x1 -> ..., 2, 1, 2
	code := []byte{OpIConst1, OpIConst2, OpDupX1, OpPop, OpISub, OpIReturn}
	v, err := runCode(code, 3, 0, TagInt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// stack after dup_x1: [2, 1, 2]; pop top 2 -> [2, 1]; isub: 2-1=1
	if got, _ := v.AsInt(); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}
