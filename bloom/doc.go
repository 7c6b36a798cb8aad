// Package bloom provides a classic bloom filter with double hashing and
// binary set operations.
//
// A bloom filter is a space-efficient probabilistic data structure that tests
// whether an element is a member of a set. False positive matches are
// possible, but false negatives are not – if the filter says an element is
// not present, it definitely is not. If it says an element might be present,
// it could be a false positive.
//
// # Double Hashing
//
// Rather than computing k independent hash functions per key, the filter
// computes a single 64-bit hash and splits it into two 32-bit base values.
// The n-th probe position is then derived as
//
//	(hashA + n*hashB) mod numBuckets
//
// This is the Kirsch–Mitzenmacher scheme from "Less Hashing, Same
// Performance": it trades a small, well-studied loss of hash independence for
// eliminating k-1 hash computations per operation. The slight independence
// loss is part of the design contract, not a shortcut.
//
// # Choosing Parameters
//
// Use [New] with the expected number of keys and the desired false positive
// rate:
//
//	// Filter for 10,000 keys with a 1% false positive rate
//	f, err := bloom.New(10_000, 0.01)
//
// New computes the hash count as ceil(log2(1/rate)) and the bucket count as
// ceil(maxElements*numHashes/ln 2). Once maxElements keys are recorded the
// empirical false positive rate is approximately (1-e^(-kn/m))^k. Recording
// more keys than the filter was sized for raises the rate;
// [Filter.EstimatedFalsePositiveRate] reports the current estimate.
//
// [NewWithParams] gives explicit control over both counts.
//
// # Set Operations
//
// Two filters built with the same bucket and hash counts can be combined
// with [Union] (per-bucket OR) or [Intersection] (per-bucket AND). The union
// of filters over disjoint key sets is bucket-for-bucket identical to a
// single filter that recorded every key. The intersection is an upper bound:
// it can report keys that are in neither input's true intersection, beyond
// the usual false positive rate. Both operations reject shape mismatches
// rather than resizing.
//
// # Hashing
//
// The hash is an injected capability. The default is xxh3; [WithHash64]
// substitutes any deterministic 64-bit hash. Filters that are compared or
// combined must use the same hash for the results to be meaningful.
//
// # Thread Safety
//
// Filter is NOT safe for concurrent mutation. Callers needing concurrency
// must serialize access externally, or shard keys across per-writer filters
// and merge the shards with [Union].
//
// # References
//
//   - Less Hashing, Same Performance: https://www.eecs.harvard.edu/~michaelm/postscripts/rsa2008.pdf
//   - Bloom, "Space/Time Trade-offs in Hash Coding with Allowable Errors"
package bloom
