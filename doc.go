// Package bitvec provides a fixed-width bit vector packed into 64-bit words.
//
// A BitVector supports indexed bit access, bitwise logic, shifts, and
// addition/subtraction that treat the whole vector as a little-endian
// unsigned integer.
//
// # Quick Start
//
//	a := bitvec.New(1000)
//	a.SetBit(0)
//	a.SetBit(7)
//	a.Lsh(28)          // bits 28 and 35 are now set
//
//	b := bitvec.FromUint64(1000, 4799104567)
//	a.Clear()
//	a.SetWord(0, 9758613597)
//	a.Add(b)           // a.Word(0) == 14557718164
//
// # Layout
//
// Bit i lives in word i/64 at offset i%64. A vector of n bits always owns
// 1 + n/64 words; the storage bits past n are don't-care bits that shifts and
// arithmetic may set.
//
//	┌──────────────────────┬──────────────────────┬─────────────────────┐
//	│ word 0: bits [0,63]  │ word 1: bits [64,127]│ ... (last word holds │
//	│                      │                      │  don't-care bits)    │
//	└──────────────────────┴──────────────────────┴─────────────────────┘
//
// String prints the logical bits most-significant first, as in ordinary binary
// notation.
//
// # Checked and Unchecked Operations
//
// The plain methods (Bit, SetBit, And, Add, ...) do not validate their input.
// Positions inside the don't-care region are accepted, positions past the
// storage panic via the runtime bounds check, and an operand with fewer words
// than the receiver panics. Binary operations require operands with the same
// WordCount.
//
// The Try* methods validate first and return an error instead:
//
//	if err := v.TrySetBit(pos); errors.Is(err, bitvec.ErrIndexOutOfRange) {
//	    // pos was outside [0, v.Size())
//	}
//
//	var wm *bitvec.ErrWidthMismatch
//	if err := v.TryAdd(o); errors.As(err, &wm) {
//	    // v and o have different word counts; v is unchanged
//	}
//
// Rejections are logged at debug level through the Logger passed with
// WithLogger.
//
// # Concurrency
//
// A BitVector is not safe for concurrent use. Distinct vectors share no state.
//
// # Interoperability
//
// Package convert moves bits between a BitVector and roaring.Bitmap or
// bitset.BitSet.
package bitvec
