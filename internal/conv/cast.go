package conv

import (
	"fmt"
	"math"
)

// IntToUint32 converts a bit position to uint32.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("position %d cannot be represented as uint32 (negative)", v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("position %d cannot be represented as uint32 (too large)", v)
	}
	return uint32(v), nil
}

// Uint32ToInt converts a uint32 position to int.
func Uint32ToInt(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("position %d cannot be represented as int (too large)", v)
	}
	return int(v), nil
}

// UintToInt converts a uint position to int.
func UintToInt(v uint) (int, error) {
	if v > uint(math.MaxInt) {
		return 0, fmt.Errorf("position %d cannot be represented as int (too large)", v)
	}
	return int(v), nil
}
