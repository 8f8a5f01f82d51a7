package bitvec

import (
	"io"
	"math/bits"
)

const (
	// wordBits is the number of bits per storage word.
	wordBits = 64

	// wordShift converts a bit position into a word index (pos >> wordShift).
	wordShift = 6

	// wordMask extracts the intra-word offset of a bit position (pos & wordMask).
	wordMask = wordBits - 1
)

// BitVector is a fixed-width sequence of bits packed into 64-bit words.
//
// Bit i lives in word i/64 at offset i%64, so bit 0 is the least-significant
// bit of word 0. Storage always holds 1 + Size()/64 words; the bits between
// Size() and WordCount()*64 are don't-care bits. Shifts and arithmetic operate
// on the full storage width and may leave them non-zero.
//
// A BitVector is not safe for concurrent use.
type BitVector struct {
	words    []uint64
	bitCount int
	logger   *Logger
}

// New creates a zeroed BitVector holding nbits logical bits.
// New panics if nbits is negative.
func New(nbits int, opts ...Option) *BitVector {
	if nbits < 0 {
		panic("bitvec: negative width")
	}

	o := applyOptions(opts)

	logger := o.logger
	if logger != noopLogger {
		logger = logger.WithWidth(nbits)
	}

	return &BitVector{
		words:    make([]uint64, 1+nbits/wordBits),
		bitCount: nbits,
		logger:   logger,
	}
}

// FromUint64 creates a BitVector of nbits bits whose lowest word holds x.
// Bits of x at or above nbits are kept as don't-care bits.
func FromUint64(nbits int, x uint64, opts ...Option) *BitVector {
	v := New(nbits, opts...)
	v.words[0] = x

	return v
}

// Parse builds a BitVector from its String form: one '0' or '1' per bit,
// most-significant bit first. The width is len(s).
func Parse(s string, opts ...Option) (*BitVector, error) {
	v := New(len(s), opts...)

	for k := 0; k < len(s); k++ {
		switch s[k] {
		case '0':
		case '1':
			v.SetBit(len(s) - 1 - k)
		default:
			return nil, invalidDigit(s[k], k)
		}
	}

	return v, nil
}

// Size returns the logical number of bits.
func (v *BitVector) Size() int {
	return v.bitCount
}

// WordCount returns the number of 64-bit storage words.
func (v *BitVector) WordCount() int {
	return len(v.words)
}

// Bit returns the value (0 or 1) of the bit at pos.
//
// No range check is performed: positions in the don't-care region are
// readable, positions past the storage panic.
func (v *BitVector) Bit(pos int) uint {
	return uint(v.words[pos>>wordShift]>>(pos&wordMask)) & 1
}

// Test reports whether the bit at pos is set.
func (v *BitVector) Test(pos int) bool {
	return v.Bit(pos) == 1
}

// SetBit sets the bit at pos to 1.
func (v *BitVector) SetBit(pos int) {
	v.words[pos>>wordShift] |= 1 << (pos & wordMask)
}

// UnsetBit clears the bit at pos.
func (v *BitVector) UnsetBit(pos int) {
	v.words[pos>>wordShift] &^= 1 << (pos & wordMask)
}

// Clear zeroes every storage word, don't-care bits included.
func (v *BitVector) Clear() {
	clear(v.words)
}

// Word returns storage word i.
func (v *BitVector) Word(i int) uint64 {
	return v.words[i]
}

// SetWord overwrites storage word i with x.
func (v *BitVector) SetWord(i int, x uint64) {
	v.words[i] = x
}

// UnsetWord zeroes storage word i.
func (v *BitVector) UnsetWord(i int) {
	v.words[i] = 0
}

// Count returns the number of set bits in [0, Size()).
func (v *BitVector) Count() int {
	full := v.bitCount >> wordShift

	count := 0
	for _, w := range v.words[:full] {
		count += bits.OnesCount64(w)
	}

	if rem := v.bitCount & wordMask; rem != 0 {
		count += bits.OnesCount64(v.words[full] & (1<<rem - 1))
	}

	return count
}

// Clone returns a deep copy of v. The copy shares v's logger.
func (v *BitVector) Clone() *BitVector {
	words := make([]uint64, len(v.words))
	copy(words, v.words)

	return &BitVector{
		words:    words,
		bitCount: v.bitCount,
		logger:   v.logger,
	}
}

// String returns the logical bits in conventional binary notation:
// bit Size()-1 first, bit 0 last, no separators.
func (v *BitVector) String() string {
	buf := make([]byte, v.bitCount)
	for i := 0; i < v.bitCount; i++ {
		buf[v.bitCount-1-i] = '0' + byte(v.Bit(i))
	}

	return string(buf)
}

// Print writes the String form of v followed by a newline.
func (v *BitVector) Print(w io.Writer) error {
	_, err := io.WriteString(w, v.String()+"\n")
	return err
}
