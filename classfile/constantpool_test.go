// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

import "testing"

// TestDoubleSlotRule verifies that a Long or Double entry consumes two
// logical constant pool indices, leaving the second absent, per JVMS17
// 4.4.5.
func TestDoubleSlotRule(t *testing.T) {
	b := newClassBuilder()
	b.u16(4) // constant_pool_count: entries at 1 (Long), 2 (absent), 3 (Utf8)
	b.u8(TagLong)
	b.u32(0)
	b.u32(1) // value = 1
	b.utf8Entry("after")

	r := newReader(b.bytes())
	pool, err := parseConstantPool(r)
	if err != nil {
		t.Fatalf("parseConstantPool() error = %v", err)
	}

	if len(pool.Entries) != 3 {
		t.Fatalf("len(Entries) = %d, want 3", len(pool.Entries))
	}
	if pool.Entries[0] == nil || pool.Entries[0].Long == nil || pool.Entries[0].Long.Value != 1 {
		t.Errorf("entry 1 = %+v, want Long{1}", pool.Entries[0])
	}
	if pool.Entries[1] != nil {
		t.Errorf("entry 2 = %+v, want absent (nil)", pool.Entries[1])
	}
	if _, err := pool.at(2); err == nil {
		t.Error("pool.at(2) on absent double-slot succeeded, want IndexError")
	}
	s, err := pool.Utf8(3)
	if err != nil || s != "after" {
		t.Errorf("pool.Utf8(3) = %q, %v, want \"after\", nil", s, err)
	}
}

func TestConstantPoolIndexErrors(t *testing.T) {
	b := newClassBuilder()
	b.u16(2)
	b.utf8Entry("only")

	r := newReader(b.bytes())
	pool, err := parseConstantPool(r)
	if err != nil {
		t.Fatalf("parseConstantPool() error = %v", err)
	}

	if _, err := pool.at(0); err == nil {
		t.Error("pool.at(0) succeeded, want IndexError")
	}
	if _, err := pool.at(2); err == nil {
		t.Error("pool.at(2) succeeded, want IndexError (out of range)")
	}
	if _, err := pool.ClassName(1); err == nil {
		t.Error("pool.ClassName(1) on a Utf8 entry succeeded, want TypeError")
	}
}

func TestBadConstantTag(t *testing.T) {
	b := newClassBuilder()
	b.u16(2)
	b.u8(0xff)

	r := newReader(b.bytes())
	if _, err := parseConstantPool(r); err != ErrBadConstantTag {
		t.Errorf("parseConstantPool() error = %v, want ErrBadConstantTag", err)
	}
}
