package processor

import (
	"math/rand"
	"sync"
	"time"

	"photo-masker/internal/domain"
)

// Selector picks a mask uniformly at random. The random source is injected
// so tests can seed it.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rng: rng}
}

func (s *Selector) Pick(masks []*domain.Mask) *domain.Mask {
	if len(masks) == 0 {
		return nil
	}

	// rand.Rand is not safe for concurrent use.
	s.mu.Lock()
	n := s.rng.Intn(len(masks))
	s.mu.Unlock()

	return masks[n]
}
