// Package reservoir implements uniform reservoir sampling over a stream of
// unknown length (algorithm R).
//
// A [Sampler] retains a fixed-capacity sample of the values it has processed.
// After N values, every value seen so far is retained with probability
// exactly capacity/N, and every subset of size capacity is equally likely –
// each value is inspected once, in O(1) time and with a single random draw.
//
//	s, err := reservoir.New[string](100)
//	for v := range stream {
//	    s.Process(v)
//	}
//	sample := s.Samples()
//
// The random source is an injected capability: [NewWithRand] accepts a seeded
// *rand.Rand for deterministic replay, while [New] seeds from the wall clock.
//
// A Sampler is not safe for concurrent use; the reservoir and its random
// source are mutated by every Process call.
package reservoir
