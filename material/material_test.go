package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciekce/cpurt/vec"
)

func TestNewStoreReservesMissingTexture(t *testing.T) {
	s := NewStore()

	m, err := s.Material(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), m.ID)
	assert.Equal(t, Metal, m.Kind)
	assert.Equal(t, vec.V3(1, 0, 1), m.Metal.Albedo)
	assert.Equal(t, float32(0), m.Metal.Roughness)
}

func TestCreateDiffuseClampsAlbedo(t *testing.T) {
	s := NewStore()

	m := s.CreateDiffuse(vec.V3(-1, 0.5, 3))
	assert.Equal(t, vec.V3(0, 0.5, 1), m.Diffuse.Albedo)
}

func TestCreateMetalClampsRoughness(t *testing.T) {
	s := NewStore()

	m := s.CreateMetal(vec.V3(0.5, 0.5, 0.5), 3.0)
	assert.Equal(t, float32(1), m.Metal.Roughness)
}

func TestIDsAreDenseAndAppendOnly(t *testing.T) {
	s := NewStore()

	a := s.CreateDiffuse(vec.V3(1, 1, 1))
	b := s.CreateLight(vec.V3(2, 2, 2))

	assert.Equal(t, uint32(1), a.ID)
	assert.Equal(t, uint32(2), b.ID)
	assert.Equal(t, 3, s.Len())

	gotA, err := s.Material(a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, gotA.ID)

	gotB, err := s.Material(b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, gotB.ID)
}

func TestMaterialOutOfRangeReturnsSentinel(t *testing.T) {
	s := NewStore()

	m, err := s.Material(99)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrInvalidMaterialID)
}

func TestDielectricColorCarriedNotClamped(t *testing.T) {
	s := NewStore()

	m := s.CreateDielectric(vec.V3(2, -1, 0.5), 1.52)
	assert.Equal(t, vec.V3(2, -1, 0.5), m.Dielectric.Color)
	assert.Equal(t, float32(1.52), m.Dielectric.RefractiveIndex)
}
