package bitvec

import "math/bits"

// The operations in this file mutate the receiver in place and return it so
// calls can be chained. The operand must have the same WordCount as the
// receiver; this is not validated (see the Try* variants in checked.go).
// A shorter operand panics, a longer one is read only up to the receiver's
// width.

// And sets v to v AND o, word by word.
func (v *BitVector) And(o *BitVector) *BitVector {
	for i := range v.words {
		v.words[i] &= o.words[i]
	}
	return v
}

// Or sets v to v OR o, word by word.
func (v *BitVector) Or(o *BitVector) *BitVector {
	for i := range v.words {
		v.words[i] |= o.words[i]
	}
	return v
}

// Xor sets v to v XOR o, word by word.
func (v *BitVector) Xor(o *BitVector) *BitVector {
	for i := range v.words {
		v.words[i] ^= o.words[i]
	}
	return v
}

// Not complements every storage word of v in place.
func (v *BitVector) Not() *BitVector {
	for i := range v.words {
		v.words[i] = ^v.words[i]
	}
	return v
}

// Lsh shifts v left by n bits in place. Bits moved past WordCount()*64 are
// discarded and vacated low bits become zero. Lsh panics if n is negative.
func (v *BitVector) Lsh(n int) *BitVector {
	if n < 0 {
		panic("bitvec: negative shift count")
	}

	width, offset := n>>wordShift, uint(n&wordMask)

	// High to low so every source word is read before it is overwritten.
	for i := len(v.words) - 1; i >= 0; i-- {
		var hi, lo uint64
		if j := i - width; j >= 0 {
			hi = v.words[j] << offset
			if offset != 0 && j > 0 {
				lo = v.words[j-1] >> (wordBits - offset)
			}
		}
		v.words[i] = hi | lo
	}

	return v
}

// Rsh shifts v right by n bits in place. Vacated high bits become zero.
// Rsh panics if n is negative.
func (v *BitVector) Rsh(n int) *BitVector {
	if n < 0 {
		panic("bitvec: negative shift count")
	}

	width, offset := n>>wordShift, uint(n&wordMask)

	for i := range v.words {
		var hi, lo uint64
		if j := i + width; j < len(v.words) {
			lo = v.words[j] >> offset
			if offset != 0 && j+1 < len(v.words) {
				hi = v.words[j+1] << (wordBits - offset)
			}
		}
		v.words[i] = hi | lo
	}

	return v
}

// Add sets v to v + o, treating both as little-endian unsigned integers of
// WordCount()*64 bits. A carry out of the top word is dropped.
func (v *BitVector) Add(o *BitVector) *BitVector {
	var carry uint64
	for i := range v.words {
		v.words[i], carry = bits.Add64(v.words[i], o.words[i], carry)
	}
	return v
}

// Sub sets v to v - o, treating both as little-endian unsigned integers of
// WordCount()*64 bits. Underflow wraps around.
func (v *BitVector) Sub(o *BitVector) *BitVector {
	var borrow uint64
	for i := range v.words {
		v.words[i], borrow = bits.Sub64(v.words[i], o.words[i], borrow)
	}
	return v
}
