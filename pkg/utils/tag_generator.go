package utils

import (
	"math/rand/v2"
	"sync"
)

const (
	TagLength = 8
	// TagAlphabet holds 15 distinct characters.
	TagAlphabet = "abcdfghjklmnprs"
)

// TagGenerator produces short random tags used as storage keys for itineraries.
// A nil source falls back to the process-wide generator.
type TagGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewTagGenerator(src rand.Source) *TagGenerator {
	if src == nil {
		return &TagGenerator{}
	}
	return &TagGenerator{rng: rand.New(src)}
}

func (g *TagGenerator) Generate() string {
	buf := make([]byte, TagLength)
	for i := range buf {
		buf[i] = TagAlphabet[g.intN(len(TagAlphabet))]
	}
	return string(buf)
}

func (g *TagGenerator) intN(n int) int {
	if g.rng == nil {
		return rand.IntN(n)
	}
	// *rand.Rand is not safe for concurrent use.
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.IntN(n)
}
