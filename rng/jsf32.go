// Package rng implements the per-worker pseudo-random generator used by
// the path tracer: a small, fast, non-cryptographic jsf32 generator,
// plus the process-wide seed mint that hands out distinct seeds to
// workers that did not ask for a specific one.
package rng

import (
	"math/bits"

	"github.com/ciekce/cpurt/vec"
)

// JSF32 is Bob Jenkins' "small fast" 32-bit generator. It has no
// cryptographic properties; it exists purely for throughput in the
// sampling-heavy inner loop of the integrator.
type JSF32 struct {
	a, b, c, d uint32
}

// New constructs a JSF32. If seed is nil, a fresh seed is pulled from
// the process-wide seed mint (see Seed below). The state is warmed up
// for 20 outputs before first use, as jsf32's early outputs are weakly
// correlated with the seed.
func New(seed *uint32) *JSF32 {
	s := uint32(0)
	if seed != nil {
		s = *seed
	} else {
		s = Seed()
	}

	r := &JSF32{a: 0xF1EA5EED, b: s, c: s, d: s}
	for i := 0; i < 20; i++ {
		r.NextU32()
	}
	return r
}

// NextU32 returns the next raw 32-bit output.
func (r *JSF32) NextU32() uint32 {
	e := r.a - bits.RotateLeft32(r.b, 27)
	r.a = r.b ^ bits.RotateLeft32(r.c, 17)
	r.b = r.c + r.d
	r.c = r.d + e
	r.d = e + r.a
	return r.d
}

// NextU32n returns a uniform value in [0, n) using Lemire's
// multiply-high rejection method: the low 32 bits of a 64-bit product
// against a rejection threshold, resampling only on the rare
// boundary case.
func (r *JSF32) NextU32n(n uint32) uint32 {
	x := r.NextU32()
	m := uint64(x) * uint64(n)
	l := uint32(m)

	if l < n {
		t := -n // 2^32 mod n, computed via wrapping subtraction like the source

		if t >= n {
			t -= n
			if t >= n {
				t %= n
			}
		}

		for l < t {
			x = r.NextU32()
			m = uint64(x) * uint64(n)
			l = uint32(m)
		}
	}

	return uint32(m >> 32)
}

// NextF32 returns a uniform value in [0,1) with 24 bits of resolution.
func (r *JSF32) NextF32() float32 {
	return float32(r.NextU32()>>8) * 0x1.0p-24
}

// NextVector returns a vector whose components are each uniform in
// [-0.5, 0.5).
func (r *JSF32) NextVector() vec.Vec3 {
	return vec.V3(r.NextF32()-0.5, r.NextF32()-0.5, r.NextF32()-0.5)
}

// NextUnitOrLess rejection-samples the cube [-0.5,0.5]^3, keeping
// points with length^2 <= 1. Every point in that cube already has
// length <= sqrt(0.75) < 1, so this always accepts on the first draw
// and is in fact uniform over the cube, not the unit ball its name
// suggests. Preserved as-is: see DESIGN.md for the source of this
// latent bug and why it is harmless today (nothing consumes the value).
func (r *JSF32) NextUnitOrLess() vec.Vec3 {
	for {
		candidate := r.NextVector()
		if candidate.Length2() <= 1.0 {
			return candidate
		}
	}
}

// NextUnit returns normalize(NextVector()). Biased towards the cube's
// corners relative to a true uniform sphere sampler, but adequate for
// the diffuse/metal scatter directions that consume it.
func (r *JSF32) NextUnit() vec.Vec3 {
	return r.NextVector().Normalize()
}

// NextInUnitDisk rejection-samples the square [-1,1]^2, keeping points
// with length^2 < 1. Used for defocus-disk (thin lens) sampling.
func (r *JSF32) NextInUnitDisk() vec.Vec2 {
	for {
		candidate := vec.V2(r.NextF32()*2-1, r.NextF32()*2-1)
		if candidate.Length2() < 1.0 {
			return candidate
		}
	}
}

// NextColor returns three independent uniform values in [0,1).
func (r *JSF32) NextColor() vec.Vec3 {
	return vec.V3(r.NextF32(), r.NextF32(), r.NextF32())
}
