// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vm

func isStackOpcode(opcode byte) bool {
	switch opcode {
	case OpPop, OpPop2, OpDup, OpDupX1, OpDupX2, OpDup2, OpDup2X1, OpDup2X2, OpSwap:
		return true
	}
	return false
}

// execStack implements the operand stack manipulation family (JVMS17
// 6.5): pop/pop2 discard, dup's six forms duplicate, and swap exchanges
// the top one or two words, all without regard to the type of value
// involved beyond its category (1 word for int/float/reference, 2 for
// long/double).
func (vm *Interpreter) execStack(opcode byte) error {
	s := vm.Frame.Stack
	switch opcode {
	case OpPop:
		w, err := s.topWidth(0)
		if err != nil {
			return err
		}
		if w != 4 {
			return &TypeError{Wanted: TagInt, Got: TagLong}
		}
		_, err = s.rawPop()
		return err

	case OpPop2:
		w, err := s.topWidth(0)
		if err != nil {
			return err
		}
		if w == 8 {
			_, err = s.rawPop()
			return err
		}
		if _, err := s.rawPop(); err != nil {
			return err
		}
		_, err = s.rawPop()
		return err

	case OpDup:
		v, err := s.rawPop()
		if err != nil {
			return err
		}
		if len(v) != 4 {
			return &TypeError{Wanted: TagInt, Got: TagLong}
		}
		if err := s.rawPush(v); err != nil {
			return err
		}
		return s.rawPush(v)

	case OpDupX1:
		v1, err := s.rawPop()
		if err != nil {
			return err
		}
		v2, err := s.rawPop()
		if err != nil {
			return err
		}
		return pushAll(s, v1, v2, v1)

	case OpDupX2:
		v1, err := s.rawPop()
		if err != nil {
			return err
		}
		if len(v1) != 4 {
			return &TypeError{Wanted: TagInt, Got: TagLong}
		}
		w, err := s.topWidth(0)
		if err != nil {
			return err
		}
		if w == 8 {
			v2, err := s.rawPop()
			if err != nil {
				return err
			}
			return pushAll(s, v1, v2, v1)
		}
		v2, err := s.rawPop()
		if err != nil {
			return err
		}
		v3, err := s.rawPop()
		if err != nil {
			return err
		}
		return pushAll(s, v1, v3, v2, v1)

	case OpDup2:
		w, err := s.topWidth(0)
		if err != nil {
			return err
		}
		if w == 8 {
			v1, err := s.rawPop()
			if err != nil {
				return err
			}
			return pushAll(s, v1, v1)
		}
		v1, err := s.rawPop()
		if err != nil {
			return err
		}
		v2, err := s.rawPop()
		if err != nil {
			return err
		}
		return pushAll(s, v2, v1, v2, v1)

	case OpDup2X1:
		w, err := s.topWidth(0)
		if err != nil {
			return err
		}
		if w == 8 {
			v1, err := s.rawPop()
			if err != nil {
				return err
			}
			v2, err := s.rawPop()
			if err != nil {
				return err
			}
			return pushAll(s, v1, v2, v1)
		}
		v1, err := s.rawPop()
		if err != nil {
			return err
		}
		v2, err := s.rawPop()
		if err != nil {
			return err
		}
		v3, err := s.rawPop()
		if err != nil {
			return err
		}
		return pushAll(s, v2, v1, v3, v2, v1)

	case OpDup2X2:
		return vm.dup2x2()

	case OpSwap:
		v1, err := s.rawPop()
		if err != nil {
			return err
		}
		v2, err := s.rawPop()
		if err != nil {
			return err
		}
		return pushAll(s, v1, v2)
	}
	return &UnimplementedOpcodeError{Mnemonic: mnemonic(opcode)}
}

// dup2x2 handles dup2_x2's four category combinations (JVMS17 dup2_x2
// Form 1-4), distinguished by the widths of the top three/four values.
func (vm *Interpreter) dup2x2() error {
	s := vm.Frame.Stack
	w0, err := s.topWidth(0)
	if err != nil {
		return err
	}
	if w0 == 8 {
		w1, err := s.topWidth(1)
		if err != nil {
			return err
		}
		v1, err := s.rawPop()
		if err != nil {
			return err
		}
		if w1 == 8 {
			// Form 4: value1 (cat2), value2 (cat2).
			v2, err := s.rawPop()
			if err != nil {
				return err
			}
			return pushAll(s, v1, v2, v1)
		}
		// Form 3: value1 (cat2) on top of value2, value3 (both cat1).
		v2, err := s.rawPop()
		if err != nil {
			return err
		}
		v3, err := s.rawPop()
		if err != nil {
			return err
		}
		return pushAll(s, v1, v3, v2, v1)
	}

	v1, err := s.rawPop()
	if err != nil {
		return err
	}
	v2, err := s.rawPop()
	if err != nil {
		return err
	}
	w2, err := s.topWidth(0)
	if err != nil {
		return err
	}
	if w2 == 8 {
		// Form 2: value1, value2 (both cat1) on top of value3 (cat2).
		v3, err := s.rawPop()
		if err != nil {
			return err
		}
		return pushAll(s, v2, v1, v3, v2, v1)
	}
	// Form 1: value1, value2, value3, value4, all cat1.
	v3, err := s.rawPop()
	if err != nil {
		return err
	}
	v4, err := s.rawPop()
	if err != nil {
		return err
	}
	return pushAll(s, v2, v1, v4, v3, v2, v1)
}

// pushAll pushes each value in values, bottom first, so a call site can
// list them in "final stack order, top last" the way JVMS's dup*
// descriptions do.
func pushAll(s *OperandStack, values ...[]byte) error {
	for _, v := range values {
		if err := s.rawPush(v); err != nil {
			return err
		}
	}
	return nil
}
