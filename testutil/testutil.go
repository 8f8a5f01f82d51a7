package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Words returns n pseudo-random uint64 words.
// Locks only once per call (preferred over calling Uint64 in a loop).
func (r *RNG) Words(n int) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	words := make([]uint64, n)
	for i := range words {
		words[i] = r.rand.Uint64()
	}
	return words
}

// Positions returns min(k, limit) distinct bit positions in [0, limit),
// sorted ascending.
func (r *RNG) Positions(k, limit int) []int {
	if k > limit {
		k = limit
	}

	r.mu.Lock()
	perm := r.rand.Perm(limit)
	r.mu.Unlock()

	positions := perm[:k]
	slices.Sort(positions)
	return positions
}
