package bloom

import (
	"errors"
	"fmt"
	"math"
)

const (
	// ln2 is the natural logarithm of 2.
	ln2 = 0.6931471805599453

	// maxBuckets bounds numBuckets to the 32-bit bucket index space.
	maxBuckets = uint64(1) << 32
)

var (
	// ErrZeroMaxElements is returned when a filter is sized for zero keys.
	ErrZeroMaxElements = errors.New("bloom: maxElements must be greater than zero")

	// ErrInvalidRate is returned when the false positive rate is outside (0,1).
	ErrInvalidRate = errors.New("bloom: false positive rate must lie in (0,1)")

	// ErrBucketsRange is returned when the bucket count exceeds the
	// addressable index space.
	ErrBucketsRange = errors.New("bloom: numBuckets exceeds the 32-bit bucket index space")
)

// OptimalParams computes the bucket and hash counts for a filter that holds
// up to maxElements keys at the target false positive rate:
//
//	numHashes  = ceil(log2(1/rate))
//	numBuckets = ceil(maxElements * numHashes / ln 2)
//
// For example OptimalParams(300, 0.01) yields 3030 buckets and 7 hashes.
func OptimalParams(maxElements uint64, falsePositiveRate float64) (numBuckets, numHashes uint64, err error) {
	if maxElements == 0 {
		return 0, 0, ErrZeroMaxElements
	}
	if falsePositiveRate <= 0 || falsePositiveRate >= 1 {
		return 0, 0, fmt.Errorf("%w: got %v", ErrInvalidRate, falsePositiveRate)
	}

	numHashes = uint64(math.Ceil(math.Log(1/falsePositiveRate) / ln2))
	numBuckets = uint64(math.Ceil(float64(maxElements) * float64(numHashes) / ln2))
	if numBuckets > maxBuckets {
		return 0, 0, fmt.Errorf("%w: sizing requires %d buckets", ErrBucketsRange, numBuckets)
	}

	return numBuckets, numHashes, nil
}
