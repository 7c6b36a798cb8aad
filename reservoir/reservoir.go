package reservoir

import (
	"errors"
	"math/rand"
	"time"
)

// ErrZeroCapacity is returned when a sampler is constructed with a
// non-positive capacity.
var ErrZeroCapacity = errors.New("reservoir: capacity must be greater than zero")

// Sampler maintains a uniform random sample of up to capacity values from a
// stream. The zero value is not usable; construct with [New] or
// [NewWithRand].
type Sampler[V any] struct {
	rng       *rand.Rand
	capacity  int
	processed uint64
	samples   []V
}

// New creates a sampler that retains up to capacity values, using a random
// source seeded from the wall clock. Use [NewWithRand] when runs must be
// reproducible.
func New[V any](capacity int) (*Sampler[V], error) {
	return NewWithRand[V](capacity, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates a sampler that draws from rng. The sampler owns rng
// afterwards; two samplers constructed over identically seeded sources
// retain identical samples for identical streams.
func NewWithRand[V any](capacity int, rng *rand.Rand) (*Sampler[V], error) {
	if capacity <= 0 {
		return nil, ErrZeroCapacity
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sampler[V]{
		rng:      rng,
		capacity: capacity,
		samples:  make([]V, 0, capacity),
	}, nil
}

// Process offers value to the reservoir and reports whether it was retained.
//
// A slot j is drawn uniformly from [0, processed] – the count before this
// call, so the draw range grows by one each call. The value is retained iff
// j lands inside the reservoir: appended while the reservoir is filling,
// otherwise overwriting slot j. The processed count advances exactly once
// per call on both branches; that ordering is what makes every value's
// retention probability exactly capacity/processed.
func (s *Sampler[V]) Process(value V) bool {
	j := s.rng.Int63n(int64(s.processed) + 1)

	retained := j < int64(s.capacity)
	if retained {
		if len(s.samples) < s.capacity {
			s.samples = append(s.samples, value)
		} else {
			s.samples[j] = value
		}
	}

	s.processed++
	return retained
}

// Cap returns the maximum number of values the reservoir retains.
func (s *Sampler[V]) Cap() int {
	return s.capacity
}

// Processed returns the number of values offered so far.
func (s *Sampler[V]) Processed() uint64 {
	return s.processed
}

// Samples returns the current reservoir, ordered by slot index rather than
// arrival order. The slice is a view of the sampler's state and must not be
// modified; it remains valid until the next Process call.
func (s *Sampler[V]) Samples() []V {
	return s.samples
}
