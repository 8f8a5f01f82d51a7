package convert

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/internal/conv"
)

// ToRoaring returns a roaring bitmap holding the set logical positions of v.
// It fails if v is too wide for 32-bit roaring positions.
func ToRoaring(v *bitvec.BitVector) (*roaring.Bitmap, error) {
	rb := roaring.New()
	if v.Size() == 0 {
		return rb, nil
	}

	if _, err := conv.IntToUint32(v.Size() - 1); err != nil {
		return nil, fmt.Errorf("roaring export: %w", err)
	}

	batch := make([]uint32, 0, 64)
	forEachSet(v, func(pos int) bool {
		batch = append(batch, uint32(pos))
		return true
	})
	rb.AddMany(batch)

	return rb, nil
}

// FromRoaring creates a BitVector of nbits bits with the positions of rb set.
func FromRoaring(nbits int, rb *roaring.Bitmap, opts ...bitvec.Option) (*bitvec.BitVector, error) {
	v := bitvec.New(nbits, opts...)
	if rb == nil || rb.IsEmpty() {
		return v, nil
	}

	maxPos, err := conv.Uint32ToInt(rb.Maximum())
	if err != nil {
		return nil, fmt.Errorf("roaring import: %w", err)
	}
	if maxPos >= nbits {
		return nil, fmt.Errorf("roaring import: %w: position %d, size %d", bitvec.ErrIndexOutOfRange, maxPos, nbits)
	}

	rb.Iterate(func(x uint32) bool {
		v.SetBit(int(x))
		return true
	})

	return v, nil
}
