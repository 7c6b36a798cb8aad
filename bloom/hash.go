package bloom

import "github.com/zeebo/xxh3"

// Hash64 computes a 64-bit digest of a key. Implementations must be
// deterministic: equal keys produce equal digests. The false positive
// analysis assumes the digest bits are close to uniformly distributed.
type Hash64 func(key []byte) uint64

// defaultHash is used when no hash is injected at construction.
func defaultHash(key []byte) uint64 {
	return xxh3.Hash(key)
}

// hashSplit splits a 64-bit hash into the two base values used for double
// hashing. The upper 32 bits seed the probe sequence, the lower 32 bits
// step it.
func hashSplit(h uint64) (hashA, hashB uint64) {
	return h >> 32, uint64(uint32(h))
}
