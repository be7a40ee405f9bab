// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

import "testing"

func TestParseMethodDescriptor(t *testing.T) {
	d, err := ParseMethodDescriptor("(IJLjava/lang/String;[B)Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Params) != 4 {
		t.Fatalf("got %d params, want 4", len(d.Params))
	}
	if d.Params[0].Code != 'I' || d.Params[1].Code != 'J' {
		t.Fatalf("unexpected leading param types: %+v", d.Params[:2])
	}
	if d.Params[2].Code != 'L' || d.Params[2].ClassName != "java/lang/String" {
		t.Fatalf("got %+v, want class java/lang/String", d.Params[2])
	}
	if d.Params[3].Code != 'B' || d.Params[3].ArrayDims != 1 {
		t.Fatalf("got %+v, want byte array", d.Params[3])
	}
	if d.ReturnType.Code != 'Z' {
		t.Fatalf("got return %q, want Z", d.ReturnType.Code)
	}
}

func TestParseMethodDescriptorVoid(t *testing.T) {
	d, err := ParseMethodDescriptor("()V")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Params) != 0 {
		t.Fatalf("got %d params, want 0", len(d.Params))
	}
	if d.ReturnType.Code != 'V' {
		t.Fatalf("got return %q, want V", d.ReturnType.Code)
	}
}

func TestParseMethodDescriptorMalformed(t *testing.T) {
	if _, err := ParseMethodDescriptor("IJ)V"); err == nil {
		t.Fatalf("expected error for descriptor missing leading '('")
	}
	if _, err := ParseMethodDescriptor("(Ljava/lang/String;"); err == nil {
		t.Fatalf("expected error for unterminated parameter list")
	}
}
