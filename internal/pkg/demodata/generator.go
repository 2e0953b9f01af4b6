// Package demodata synthesizes plausible flight and hotel records for use
// when the live API is unavailable or returns nothing usable. The shapes are
// deterministic, the content randomized.
package demodata

import (
	"math/rand"
	"sync"
)

// Generator produces demo records from an injected random source, so tests
// can seed it and production wiring can pass a time-seeded one. The mutex
// makes it safe to share across concurrent lookups; rand.Rand is not.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}
