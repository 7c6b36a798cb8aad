package bloom

import (
	"errors"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

var (
	// ErrZeroBuckets is returned when a filter is constructed with no buckets.
	ErrZeroBuckets = errors.New("bloom: numBuckets must be greater than zero")

	// ErrZeroHashes is returned when a filter is constructed with no hashes.
	ErrZeroHashes = errors.New("bloom: numHashes must be greater than zero")

	// ErrShapeMismatch is returned when a set operation is applied to filters
	// with differing bucket or hash counts.
	ErrShapeMismatch = errors.New("bloom: filters differ in bucket count or hash count")
)

// Filter is a bloom filter over byte keys. Buckets only ever transition from
// clear to set; there is no way to remove a key or reset the filter.
//
// Filter is not safe for concurrent use.
type Filter struct {
	buckets    *roaring.Bitmap
	numBuckets uint64
	numHashes  uint64
	hash       Hash64
}

// Option configures a Filter at construction time.
type Option func(*Filter)

// WithHash64 injects the hash used to derive probe positions. The default is
// xxh3. Filters that are compared or combined should use the same hash.
func WithHash64(h Hash64) Option {
	return func(f *Filter) { f.hash = h }
}

// New creates a filter sized to hold up to maxElements keys at the target
// false positive rate. See [OptimalParams] for the sizing formulas.
func New(maxElements uint64, falsePositiveRate float64, opts ...Option) (*Filter, error) {
	numBuckets, numHashes, err := OptimalParams(maxElements, falsePositiveRate)
	if err != nil {
		return nil, err
	}
	return NewWithParams(numBuckets, numHashes, opts...)
}

// NewWithParams creates a filter with explicit bucket and hash counts.
// All buckets start clear.
func NewWithParams(numBuckets, numHashes uint64, opts ...Option) (*Filter, error) {
	if numBuckets == 0 {
		return nil, ErrZeroBuckets
	}
	if numHashes == 0 {
		return nil, ErrZeroHashes
	}
	if numBuckets > maxBuckets {
		return nil, fmt.Errorf("%w: got %d", ErrBucketsRange, numBuckets)
	}

	f := &Filter{
		buckets:    roaring.New(),
		numBuckets: numBuckets,
		numHashes:  numHashes,
		hash:       defaultHash,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Record adds key to the filter. Each of the numHashes probe positions
// derived from the key's hash is set.
func (f *Filter) Record(key []byte) {
	hashA, hashB := hashSplit(f.hash(key))
	for n := uint64(0); n < f.numHashes; n++ {
		f.buckets.Add(uint32((hashA + n*hashB) % f.numBuckets))
	}
}

// Contains reports whether key might have been recorded. A false result is
// definitive; a true result may be a false positive.
func (f *Filter) Contains(key []byte) bool {
	hashA, hashB := hashSplit(f.hash(key))
	for n := uint64(0); n < f.numHashes; n++ {
		if !f.buckets.Contains(uint32((hashA + n*hashB) % f.numBuckets)) {
			return false
		}
	}
	return true
}

// CheckAndRecord records key and reports whether it was already present
// (subject to the usual false positive probability).
func (f *Filter) CheckAndRecord(key []byte) bool {
	hashA, hashB := hashSplit(f.hash(key))
	present := true
	for n := uint64(0); n < f.numHashes; n++ {
		if f.buckets.CheckedAdd(uint32((hashA + n*hashB) % f.numBuckets)) {
			present = false
		}
	}
	return present
}

// NumBuckets returns the bucket count the filter was constructed with.
func (f *Filter) NumBuckets() uint64 {
	return f.numBuckets
}

// NumHashes returns the number of probe positions per key.
func (f *Filter) NumHashes() uint64 {
	return f.numHashes
}

// NumBucketsPopulated returns the number of set buckets.
func (f *Filter) NumBucketsPopulated() uint64 {
	return f.buckets.GetCardinality()
}

// FillRatio returns the proportion of buckets that are set.
func (f *Filter) FillRatio() float64 {
	return float64(f.buckets.GetCardinality()) / float64(f.numBuckets)
}

// EstimatedFalsePositiveRate estimates the current false positive rate from
// the fill ratio: a query is a false positive when all numHashes probes land
// on set buckets. The estimate remains meaningful for filters produced by
// [Union] or [Intersection].
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return math.Pow(f.FillRatio(), float64(f.numHashes))
}

// Equal reports whether the two filters have the same hash count and the
// same bucket sequence. Equal filters answer every membership query
// identically; this is a statement about bit patterns, not a guarantee that
// the same keys were recorded into both.
func (f *Filter) Equal(other *Filter) bool {
	return f.numHashes == other.numHashes &&
		f.numBuckets == other.numBuckets &&
		f.buckets.Equals(other.buckets)
}

// Union returns a new filter whose buckets are the per-bucket OR of a and b.
// The inputs must share the same bucket and hash counts; mismatched shapes
// are rejected with ErrShapeMismatch, never resized. The union of filters
// over disjoint key sets is identical to a single filter that recorded every
// key, so Union is the merge operation for sharded filters.
func Union(a, b *Filter) (*Filter, error) {
	if err := sameShape(a, b); err != nil {
		return nil, err
	}
	return &Filter{
		buckets:    roaring.Or(a.buckets, b.buckets),
		numBuckets: a.numBuckets,
		numHashes:  a.numHashes,
		hash:       a.hash,
	}, nil
}

// Intersection returns a new filter whose buckets are the per-bucket AND of
// a and b. The inputs must share the same bucket and hash counts. The result
// bounds the false positive rate of either input but can report keys that
// are in neither input's true key set intersection; that is inherent to
// bucket-wise AND, not a defect.
func Intersection(a, b *Filter) (*Filter, error) {
	if err := sameShape(a, b); err != nil {
		return nil, err
	}
	return &Filter{
		buckets:    roaring.And(a.buckets, b.buckets),
		numBuckets: a.numBuckets,
		numHashes:  a.numHashes,
		hash:       a.hash,
	}, nil
}

func sameShape(a, b *Filter) error {
	if a.numHashes != b.numHashes || a.numBuckets != b.numBuckets {
		return fmt.Errorf("%w: %d buckets/%d hashes vs %d buckets/%d hashes",
			ErrShapeMismatch, a.numBuckets, a.numHashes, b.numBuckets, b.numHashes)
	}
	return nil
}
