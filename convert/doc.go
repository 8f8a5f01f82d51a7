// Package convert moves bits between a bitvec.BitVector and the bitmap types
// of the wider Go ecosystem.
//
// Only logical positions, those in [0, Size()), take part in a conversion.
// Don't-care storage bits are never exported, and an import fails with
// bitvec.ErrIndexOutOfRange if the source holds a position at or beyond the
// target width.
//
//	rb, err := convert.ToRoaring(v)           // *roaring.Bitmap
//	v2, err := convert.FromRoaring(1000, rb)  // *bitvec.BitVector
//
//	bs := convert.ToBitSet(v)                 // *bitset.BitSet
//	v3, err := convert.FromBitSet(1000, bs)
package convert
