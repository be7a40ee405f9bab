// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vm

// Locals is a frame's local variable array (JVMS17 2.6.1). A long or
// double value at slot i occupies both i and i+1; slot i+1 is then a
// continuation marker and cannot be read directly (a Set there replaces
// the marker), the same double-slot rule the constant pool applies to
// Long/Double entries.
type Locals struct {
	slots       []Value
	continuation []bool
}

// NewLocals returns a Locals sized for maxLocals slots, all initially
// absent (reading one before it is set is an IndexError-free TypeError:
// every slot starts as TagNull until a store instruction gives it a
// type).
func NewLocals(maxLocals int) *Locals {
	slots := make([]Value, maxLocals)
	for i := range slots {
		slots[i] = Null()
	}
	return &Locals{slots: slots, continuation: make([]bool, maxLocals)}
}

func (l *Locals) checkIndex(index int) error {
	if index < 0 || index >= len(l.slots) {
		return &IndexError{Index: index, Max: len(l.slots)}
	}
	return nil
}

// Set stores v at index, marking index+1 as a continuation slot if v is
// category 2.
func (l *Locals) Set(index int, v Value) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	if v.Tag.IsCategory2() {
		if err := l.checkIndex(index + 1); err != nil {
			return err
		}
		l.slots[index] = v
		l.continuation[index] = false
		l.slots[index+1] = Value{}
		l.continuation[index+1] = true
		return nil
	}
	l.slots[index] = v
	l.continuation[index] = false
	return nil
}

// get returns the raw value at index, failing if index is a continuation
// slot.
func (l *Locals) get(index int) (Value, error) {
	if err := l.checkIndex(index); err != nil {
		return Value{}, err
	}
	if l.continuation[index] {
		return Value{}, &IndexError{Index: index, Max: len(l.slots)}
	}
	return l.slots[index], nil
}

// GetInt reads an int local at index.
func (l *Locals) GetInt(index int) (int32, error) {
	v, err := l.get(index)
	if err != nil {
		return 0, err
	}
	return v.AsInt()
}

// GetLong reads a long local at index.
func (l *Locals) GetLong(index int) (int64, error) {
	v, err := l.get(index)
	if err != nil {
		return 0, err
	}
	return v.AsLong()
}

// GetFloat reads a float local at index.
func (l *Locals) GetFloat(index int) (float32, error) {
	v, err := l.get(index)
	if err != nil {
		return 0, err
	}
	return v.AsFloat()
}

// GetDouble reads a double local at index.
func (l *Locals) GetDouble(index int) (float64, error) {
	v, err := l.get(index)
	if err != nil {
		return 0, err
	}
	return v.AsDouble()
}

// GetReference reads a reference-typed local at index (a class reference,
// array reference, or null) without requiring a specific Tag.
func (l *Locals) GetReference(index int) (Value, error) {
	return l.get(index)
}
