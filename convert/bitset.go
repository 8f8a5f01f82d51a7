package convert

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/internal/conv"
)

// ToBitSet returns a bitset of length v.Size() holding the set logical
// positions of v.
func ToBitSet(v *bitvec.BitVector) *bitset.BitSet {
	bs := bitset.New(uint(v.Size()))

	forEachSet(v, func(pos int) bool {
		bs.Set(uint(pos))
		return true
	})

	return bs
}

// FromBitSet creates a BitVector of nbits bits with the set positions of bs.
// The length of bs is ignored; only its set positions matter.
func FromBitSet(nbits int, bs *bitset.BitSet, opts ...bitvec.Option) (*bitvec.BitVector, error) {
	v := bitvec.New(nbits, opts...)
	if bs == nil {
		return v, nil
	}

	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		pos, err := conv.UintToInt(i)
		if err != nil {
			return nil, fmt.Errorf("bitset import: %w", err)
		}
		if pos >= nbits {
			return nil, fmt.Errorf("bitset import: %w: position %d, size %d", bitvec.ErrIndexOutOfRange, pos, nbits)
		}
		v.SetBit(pos)
	}

	return v, nil
}
