// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vm

import (
	"math"
	"testing"

	"github.com/saferwall/jvmclass/classfile"
)

// newTestFrame builds a Frame directly from a raw bytecode array, without
// going through a full class file parse, for interpreter unit tests.
func newTestFrame(code []byte, maxStack, maxLocals int, returnType TypeTag) *Frame {
	attr := &classfile.CodeAttribute{
		MaxStack:  uint16(maxStack),
		MaxLocals: uint16(maxLocals),
		Code:      code,
	}
	return NewFrame(attr, &classfile.Pool{}, returnType, nil)
}

func runCode(code []byte, maxStack, maxLocals int, returnType TypeTag) (Value, error) {
	f := newTestFrame(code, maxStack, maxLocals, returnType)
	return NewInterpreter(f).Execute()
}

func frameWithPool(code []byte, maxStack, maxLocals int, returnType TypeTag, pool *classfile.Pool) *Frame {
	attr := &classfile.CodeAttribute{
		MaxStack:  uint16(maxStack),
		MaxLocals: uint16(maxLocals),
		Code:      code,
	}
	return NewFrame(attr, pool, returnType, nil)
}

// classFilePoolWithMaxInt returns a one-entry constant pool whose single
// Integer entry (index 1) holds math.MaxInt32, for exercising ldc and
// int overflow together.
func classFilePoolWithMaxInt(t *testing.T) *classfile.Pool {
	t.Helper()
	return &classfile.Pool{
		Entries: []*classfile.Entry{
			{Kind: classfile.TagInteger, Integer: &classfile.IntegerInfo{Value: math.MaxInt32}},
		},
	}
}
