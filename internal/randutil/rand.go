// Package randutil builds the seeded random sources used for dealing.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	rand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. Equal seeds
// deal identical card sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns an independent source for one of several parallel streams
// sharing a base seed, e.g. one per Monte Carlo worker.
func Derive(seed int64, stream int) *rand.Rand {
	return New(int64(mix(uint64(seed) ^ mix(uint64(stream)+goldenRatio64))))
}

// NewSeed returns a high-entropy seed for runs where the caller did not
// supply one. The seed should be logged so the run can be replayed.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// splitmix64 finaliser
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
