package utils

import (
	"hash/fnv"
	"math/rand"

	"github.com/google/uuid"
)

// NewRng returns a generator for the seed. Every seed, 0 included, gives its own sequence.
func NewRng(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Pick returns a uniformly random element. ok is false for an empty slice.
func Pick[T any](rng *rand.Rand, items []T) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	return items[rng.Intn(len(items))], true
}

// Chance reports true with probability p.
func Chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// GenerateID returns a random session identifier for spectators.
func GenerateID() string {
	return uuid.NewString()
}

// StringToSeed derives a stable seed from a name, so "-seed castle" replays like a number does.
func StringToSeed(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
