// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vm

import "testing"

func TestLcmp(t *testing.T) {
	tests := []struct {
		a, b int64
		want int32
	}{
		{1, 2, -1},
		{2, 1, 1},
		{5, 5, 0},
	}
	for _, tt := range tests {
		if got := compareInt64(tt.a, tt.b); got != tt.want {
			t.Fatalf("compareInt64(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

// TestFcmpgNaNIsGreater and TestFcmplNaNIsLess prove the two comparison
// forms treat a NaN operand oppositely, which is what lets a compiler
// pick the right <cmp> variant to make "x < y" and "!(x >= y)" agree in
// the presence of NaN.
func TestFcmpgNaNIsGreater(t *testing.T) {
	if got := compareFloat(nan(), 1.0, true); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestFcmplNaNIsLess(t *testing.T) {
	if got := compareFloat(nan(), 1.0, false); got != -1 {
		t.Fatalf("got %d, want -1", got)
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}
