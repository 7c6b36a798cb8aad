package reservoir

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	_, err := New[int](0)
	require.ErrorIs(t, err, ErrZeroCapacity)

	_, err = New[int](-3)
	require.ErrorIs(t, err, ErrZeroCapacity)

	_, err = NewWithRand[int](0, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, ErrZeroCapacity)
}

func TestAccessors(t *testing.T) {
	s, err := New[int](3)
	require.NoError(t, err)

	assert.Equal(t, 3, s.Cap())
	assert.Equal(t, uint64(0), s.Processed())
	assert.Empty(t, s.Samples())
}

func TestFillsInArrivalOrder(t *testing.T) {
	s, err := New[int](3)
	require.NoError(t, err)

	assert.True(t, s.Process(4))
	assert.Equal(t, []int{4}, s.Samples())
	assert.Equal(t, uint64(1), s.Processed())

	assert.True(t, s.Process(5))
	assert.Equal(t, []int{4, 5}, s.Samples())
	assert.Equal(t, uint64(2), s.Processed())

	assert.True(t, s.Process(12))
	assert.Equal(t, []int{4, 5, 12}, s.Samples())
	assert.Equal(t, uint64(3), s.Processed())
}

func TestProcessedCounts(t *testing.T) {
	s, err := New[int](3)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.Equal(t, uint64(i), s.Processed())
		s.Process(i)
	}
	assert.Equal(t, uint64(10), s.Processed())
}

func TestCoverageAtCapacity(t *testing.T) {
	// Processing exactly capacity values retains all of them.
	s, err := New[string](4)
	require.NoError(t, err)

	values := []string{"a", "b", "c", "d"}
	for _, v := range values {
		require.True(t, s.Process(v), "value %q rejected while reservoir was filling", v)
	}

	assert.ElementsMatch(t, values, s.Samples())
	assert.Equal(t, uint64(4), s.Processed())
}

func TestSizeStability(t *testing.T) {
	const capacity = 4

	s, err := New[int](capacity)
	require.NoError(t, err)

	for i := 0; i < capacity; i++ {
		s.Process(i)
	}

	for i := 0; i < 100; i++ {
		s.Process(100 + i)
		assert.Len(t, s.Samples(), capacity)
		assert.Equal(t, capacity, s.Cap())
	}
	assert.Equal(t, uint64(capacity+100), s.Processed())
}

func TestAcceptanceReturn(t *testing.T) {
	const (
		capacity = 10
		n        = 1000
	)

	s, err := NewWithRand[int](capacity, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	var accepted int
	for i := 0; i < n; i++ {
		if s.Process(i) {
			accepted++
		}
	}

	// The first capacity values are always accepted; past that, acceptance
	// must be selective.
	assert.GreaterOrEqual(t, accepted, capacity)
	assert.Less(t, accepted, n)
}

func TestDeterministicReplay(t *testing.T) {
	const seed = 42

	a, err := NewWithRand[int](8, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	b, err := NewWithRand[int](8, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		acceptedA := a.Process(i)
		acceptedB := b.Process(i)
		assert.Equal(t, acceptedA, acceptedB, "acceptance diverged at value %d", i)
	}

	assert.Equal(t, a.Samples(), b.Samples())
}

func TestUniformity(t *testing.T) {
	const (
		capacity = 4
		stream   = 10
		trials   = 30_000
	)

	var counts [stream]int
	for trial := 0; trial < trials; trial++ {
		s, err := NewWithRand[int](capacity, rand.New(rand.NewSource(int64(trial))))
		require.NoError(t, err)

		for v := 0; v < stream; v++ {
			s.Process(v)
		}
		for _, v := range s.Samples() {
			counts[v]++
		}
	}

	// Each value is retained with probability capacity/stream, so per-value
	// counts are binomial(trials, p). Allow four standard deviations.
	p := float64(capacity) / float64(stream)
	expected := float64(trials) * p
	sigma := math.Sqrt(float64(trials) * p * (1 - p))

	for v, count := range counts {
		assert.InDelta(t, expected, float64(count), 4*sigma,
			"value %d retained %d times, expected %.0f±%.0f", v, count, expected, sigma)
	}
}

func BenchmarkProcess(b *testing.B) {
	s, err := NewWithRand[int](1024, rand.New(rand.NewSource(1)))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Process(i)
	}
}
