package bitvec

// TryBit is the checked form of Bit. It fails with ErrIndexOutOfRange when
// pos is outside [0, Size()).
func (v *BitVector) TryBit(pos int) (uint, error) {
	if err := v.checkIndex("bit", pos); err != nil {
		return 0, err
	}
	return v.Bit(pos), nil
}

// TrySetBit is the checked form of SetBit.
func (v *BitVector) TrySetBit(pos int) error {
	if err := v.checkIndex("set_bit", pos); err != nil {
		return err
	}
	v.SetBit(pos)
	return nil
}

// TryUnsetBit is the checked form of UnsetBit.
func (v *BitVector) TryUnsetBit(pos int) error {
	if err := v.checkIndex("unset_bit", pos); err != nil {
		return err
	}
	v.UnsetBit(pos)
	return nil
}

// TryAnd is the checked form of And. It fails with *ErrWidthMismatch and
// leaves v untouched when the word counts differ.
func (v *BitVector) TryAnd(o *BitVector) error {
	return v.checked("and", o, (*BitVector).And)
}

// TryOr is the checked form of Or.
func (v *BitVector) TryOr(o *BitVector) error {
	return v.checked("or", o, (*BitVector).Or)
}

// TryXor is the checked form of Xor.
func (v *BitVector) TryXor(o *BitVector) error {
	return v.checked("xor", o, (*BitVector).Xor)
}

// TryAdd is the checked form of Add.
func (v *BitVector) TryAdd(o *BitVector) error {
	return v.checked("add", o, (*BitVector).Add)
}

// TrySub is the checked form of Sub.
func (v *BitVector) TrySub(o *BitVector) error {
	return v.checked("sub", o, (*BitVector).Sub)
}

func (v *BitVector) checked(op string, o *BitVector, fn func(*BitVector, *BitVector) *BitVector) error {
	if err := v.checkWidth(op, o); err != nil {
		return err
	}
	fn(v, o)
	return nil
}

func (v *BitVector) checkIndex(op string, pos int) error {
	if pos >= 0 && pos < v.bitCount {
		return nil
	}

	err := indexOutOfRange(pos, v.bitCount)
	v.logger.LogRejected(op, err)

	return err
}

func (v *BitVector) checkWidth(op string, o *BitVector) error {
	if o == nil {
		err := &ErrWidthMismatch{Expected: len(v.words), cause: errNilOperand}
		v.logger.LogRejected(op, err)
		return err
	}

	if len(o.words) == len(v.words) {
		return nil
	}

	err := &ErrWidthMismatch{Expected: len(v.words), Actual: len(o.words)}
	v.logger.LogRejected(op, err)

	return err
}
