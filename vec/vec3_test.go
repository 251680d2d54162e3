package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -1, 2)

	assert.Equal(t, V3(5, 1, 5), a.Add(b))
	assert.Equal(t, V3(-3, 3, 1), a.Sub(b))
	assert.Equal(t, V3(4, -2, 6), a.Mul(b))
	assert.Equal(t, V3(2, 4, 6), a.Scale(2))
	assert.Equal(t, V3(-1, -2, -3), a.Neg())
}

func TestVec3DotCross(t *testing.T) {
	a := V3(1, 0, 0)
	b := V3(0, 1, 0)

	assert.Equal(t, float32(0), a.Dot(b))
	assert.Equal(t, V3(0, 0, 1), a.Cross(b))
}

func TestVec3LengthNormalize(t *testing.T) {
	v := V3(3, 4, 0)

	assert.Equal(t, float32(25), v.Length2())
	assert.Equal(t, float32(5), v.Length())

	n := v.Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-6)
}

func TestVec3MinMaxClamp(t *testing.T) {
	a := V3(1, 5, -2)
	b := V3(3, 2, -1)

	assert.Equal(t, V3(1, 2, -2), a.Min(b))
	assert.Equal(t, V3(3, 5, -1), a.Max(b))

	assert.Equal(t, V3(0, 1, 0), V3(-3, 1, 0).Clamp(0, 1))
	assert.Equal(t, V3(0, 0, 1), V3(-3, -9, 5).Clamp(0, 1))
}

func TestVec3Reflect(t *testing.T) {
	// a ray hitting a flat surface head-on bounces straight back.
	incident := V3(0, -1, 0)
	normal := V3(0, 1, 0)

	assert.Equal(t, V3(0, 1, 0), incident.Reflect(normal))
}

func TestVec3Refract(t *testing.T) {
	// straight-on incidence passes through unchanged.
	incident := V3(0, -1, 0)
	normal := V3(0, 1, 0)

	out := incident.Refract(normal, 1.0)
	assert.InDelta(t, 0.0, out.X, 1e-5)
	assert.InDelta(t, -1.0, out.Y, 1e-5)
	assert.InDelta(t, 0.0, out.Z, 1e-5)
}

func TestMixVec3(t *testing.T) {
	white := V3(1, 1, 1)
	blue := V3(0.5, 0.7, 1.0)

	assert.Equal(t, white, MixVec3(white, blue, 0))
	assert.Equal(t, blue, MixVec3(white, blue, 1))
}
