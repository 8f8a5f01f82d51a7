// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, goroutine-safe RNG for generating random bit
// positions and storage words.
//
// # Random Inputs
//
//	rng := testutil.NewRNG(seed)
//	pos := rng.Positions(32, 1000) // 32 distinct sorted positions in [0, 1000)
//	words := rng.Words(16)         // 16 random uint64 words
package testutil
