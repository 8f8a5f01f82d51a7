// Package conv provides checked integer conversions between the int bit
// positions used by bitvec and the unsigned position types of external
// bitmap libraries (uint32 for roaring, uint for bitset).
//
// Every function returns an error instead of silently truncating or wrapping.
package conv
