package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint32) *JSF32 {
	return New(&seed)
}

func TestNextF32Range(t *testing.T) {
	r := seeded(1)

	const n = 1_000_00 // kept well under the spec's 1e6 to keep unit tests fast
	var sum float64

	for i := 0; i < n; i++ {
		v := r.NextF32()
		require.GreaterOrEqual(t, v, float32(0))
		require.Less(t, v, float32(1))
		sum += float64(v)
	}

	mean := sum / n
	assert.InDelta(t, 0.5, mean, 0.01)
}

func TestNextU32nRange(t *testing.T) {
	r := seeded(2)

	for i := 0; i < 100_000; i++ {
		v := r.NextU32n(17)
		require.Less(t, v, uint32(17))
	}
}

func TestNextU32nUniformity(t *testing.T) {
	r := seeded(3)

	const buckets = 256
	const n = 200_000

	counts := make([]int, buckets)
	for i := 0; i < n; i++ {
		counts[r.NextU32n(buckets)]++
	}

	expected := float64(n) / float64(buckets)
	var chiSq float64
	for _, c := range counts {
		d := float64(c) - expected
		chiSq += d * d / expected
	}

	// 255 degrees of freedom; a generous bound that only fails for a
	// badly broken generator, not statistical noise.
	assert.Less(t, chiSq, 400.0)
}

func TestNextInUnitDiskBounds(t *testing.T) {
	r := seeded(4)

	for i := 0; i < 10_000; i++ {
		d := r.NextInUnitDisk()
		require.Less(t, d.Length2(), float32(1.0))
	}
}

func TestNextUnitOrLessNeverRejects(t *testing.T) {
	// documents the latent half-ball bug described in DESIGN.md: every
	// candidate from the cube already satisfies length^2 <= 1.
	r := seeded(5)

	for i := 0; i < 10_000; i++ {
		v := r.NextUnitOrLess()
		assert.LessOrEqual(t, v.Length2(), float32(0.75+1e-6))
	}
}

func TestNewDeterministicPerSeed(t *testing.T) {
	a := seeded(42)
	b := seeded(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.NextU32(), b.NextU32())
	}
}

func TestSeedMintProducesDistinctSeeds(t *testing.T) {
	first := Seed()
	second := Seed()
	assert.NotEqual(t, first, second)
}
