package randutil

import (
	rand "math/rand/v2"
	"time"
)

// New returns a *rand.Rand seeded deterministically from a single int64.
// Centralises how the two 64-bit PCG seeds are derived so that every call
// site (deck shuffles, AI jitter, tests) gets reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u^0x9e3779b97f4a7c15)))
}

// NewFromTime returns a *rand.Rand seeded from the wall clock.
func NewFromTime() *rand.Rand {
	return New(time.Now().UnixNano())
}

// mix is the splitmix64 finalizer; it spreads low-entropy seeds across
// the full 64-bit space.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
