package convert

import (
	"math/bits"

	"github.com/hupe1980/bitvec"
)

// forEachSet calls fn for every set logical position of v in ascending order.
// It stops early when fn returns false.
func forEachSet(v *bitvec.BitVector, fn func(pos int) bool) {
	size := v.Size()

	for i := 0; i < v.WordCount(); i++ {
		w := v.Word(i)
		for w != 0 {
			pos := i*64 + bits.TrailingZeros64(w)
			if pos >= size {
				return
			}
			if !fn(pos) {
				return
			}
			w &= w - 1 // Clear lowest bit
		}
	}
}
