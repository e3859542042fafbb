// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-tower-sim/internal/defs"
)

// PRNGService wraps a seeded generator so a run can be replayed from its seed.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService creates a generator with the given seed.
// A seed of 0 uses the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed actually in use.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Range returns an integer in [r.Min, r.Max). The range must not be empty.
func (s *PRNGService) Range(r defs.IntRange) int {
	return r.Min + s.rng.Intn(r.Max-r.Min)
}

// Symmetric returns an integer in [-extent, extent), or 0 for extent 0.
func (s *PRNGService) Symmetric(extent int) int {
	if extent == 0 {
		return 0
	}
	return s.Range(defs.IntRange{Min: -extent, Max: extent})
}
