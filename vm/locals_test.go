// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vm

import "testing"

func TestLocalsIntRoundTrip(t *testing.T) {
	l := NewLocals(4)
	if err := l.Set(2, Int(77)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := l.GetInt(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 77 {
		t.Fatalf("got %d, want 77", v)
	}
}

// TestLocalsDoubleSlotRule proves a long/double local at index i occupies
// i+1 too, and that i+1 cannot be read directly, mirroring the constant
// pool's Long/Double double-slot rule.
func TestLocalsDoubleSlotRule(t *testing.T) {
	l := NewLocals(4)
	if err := l.Set(0, Long(1234)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.get(1); err == nil {
		t.Fatalf("expected error reading continuation slot 1")
	}
	v, err := l.GetLong(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 1234 {
		t.Fatalf("got %d, want 1234", v)
	}
}

func TestLocalsIndexOutOfRange(t *testing.T) {
	l := NewLocals(2)
	if err := l.Set(5, Int(1)); err == nil {
		t.Fatalf("expected IndexError")
	}
	if _, err := l.GetInt(5); err == nil {
		t.Fatalf("expected IndexError")
	}
}

func TestLocalsWrongTypeAccessor(t *testing.T) {
	l := NewLocals(2)
	if err := l.Set(0, Int(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.GetLong(0); err == nil {
		t.Fatalf("expected TypeError reading int local as long")
	}
}
