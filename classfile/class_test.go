// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

import "testing"

func TestParseMinimalClass(t *testing.T) {
	f, err := NewBytes(minimalClass(), &Options{})
	if err != nil {
		t.Fatalf("NewBytes() error = %v", err)
	}
	if err := f.Parse(); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if f.MajorVersion != 61 || f.MinorVersion != 0 {
		t.Errorf("version = %d.%d, want 61.0", f.MajorVersion, f.MinorVersion)
	}

	this, err := f.ThisClassName()
	if err != nil {
		t.Fatalf("ThisClassName() error = %v", err)
	}
	if this != "Sample" {
		t.Errorf("ThisClassName() = %q, want Sample", this)
	}

	super, err := f.SuperClassName()
	if err != nil {
		t.Fatalf("SuperClassName() error = %v", err)
	}
	if super != "java/lang/Object" {
		t.Errorf("SuperClassName() = %q, want java/lang/Object", super)
	}

	if !f.AccessFlags.Has(AccPublic) {
		t.Errorf("AccessFlags missing AccPublic")
	}

	if len(f.Methods) != 1 {
		t.Fatalf("len(Methods) = %d, want 1", len(f.Methods))
	}
	m := f.Methods[0]
	if m.Name != "<init>" || m.Descriptor != "()V" {
		t.Errorf("method = %s%s, want <init>()V", m.Name, m.Descriptor)
	}
	code := m.Code()
	if code == nil {
		t.Fatal("method has no Code attribute")
	}
	if len(code.Code) != 5 {
		t.Errorf("len(Code.Code) = %d, want 5", len(code.Code))
	}
}

func TestParseBadMagic(t *testing.T) {
	data := minimalClass()
	data[0] = 0x00
	f, err := NewBytes(data, &Options{})
	if err != nil {
		t.Fatalf("NewBytes() error = %v", err)
	}
	if err := f.Parse(); err != ErrBadMagic {
		t.Errorf("Parse() error = %v, want ErrBadMagic", err)
	}
}

func TestParseTruncated(t *testing.T) {
	data := minimalClass()
	data = data[:len(data)-10]
	f, err := NewBytes(data, &Options{})
	if err != nil {
		t.Fatalf("NewBytes() error = %v", err)
	}
	if err := f.Parse(); err == nil {
		t.Error("Parse() on truncated data returned nil error")
	}
}

func TestFastParseSkipsMembers(t *testing.T) {
	f, err := NewBytes(minimalClass(), &Options{Fast: true})
	if err != nil {
		t.Fatalf("NewBytes() error = %v", err)
	}
	if err := f.Parse(); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if f.Methods != nil {
		t.Errorf("Fast parse populated Methods: %+v", f.Methods)
	}
	if f.ConstantPool == nil {
		t.Error("Fast parse left ConstantPool nil")
	}
}

func TestFuzzNeverPanics(t *testing.T) {
	inputs := [][]byte{
		nil,
		{0xca, 0xfe, 0xba, 0xbe},
		minimalClass(),
		minimalClass()[:3],
	}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Fuzz(%v) panicked: %v", in, r)
				}
			}()
			Fuzz(in)
		}()
	}
}
