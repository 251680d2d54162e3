package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciekce/cpurt/rng"
	"github.com/ciekce/cpurt/vec"
)

func TestBuildBVHEmptyScene(t *testing.T) {
	s := New()

	err := s.BuildBVH()
	require.ErrorIs(t, err, ErrEmptyScene)
	assert.Empty(t, s.BVH.Nodes)

	// every subsequent trace is a sky miss.
	var result TraceResult
	s.TraceRay(&result, Ray{Origin: vec.V3(0, 0, 0), Dir: vec.V3(0, 1, 0)})
	assert.Nil(t, result.HitMaterial)
	assert.InDelta(t, 0.5, result.MissColor.X, 1e-5)
	assert.InDelta(t, 0.7, result.MissColor.Y, 1e-5)
	assert.InDelta(t, 1.0, result.MissColor.Z, 1e-5)
}

func TestSingleSphereRootIsLeaf(t *testing.T) {
	s := New()
	mat := s.CreateDiffuse(vec.V3(1, 1, 1))
	s.CreateSphere(vec.V3(0, 0, 0), 1, mat.ID)

	require.NoError(t, s.BuildBVH())
	require.Len(t, s.BVH.Nodes, 1)
	assert.Equal(t, int32(0), s.BVH.Nodes[0].SphereIdx)
}

func TestHeadOnHitDerivesPositionAndNormal(t *testing.T) {
	s := New()
	mat := s.CreateDiffuse(vec.V3(1, 1, 1))
	s.CreateSphere(vec.V3(0, 0, 0), 1, mat.ID)
	require.NoError(t, s.BuildBVH())

	var result TraceResult
	s.TraceRay(&result, Ray{Origin: vec.V3(0, 0, 5), Dir: vec.V3(0, 0, -1)})

	require.NotNil(t, result.HitMaterial)
	assert.InDelta(t, 0, result.HitPos.X, 1e-4)
	assert.InDelta(t, 0, result.HitPos.Y, 1e-4)
	assert.InDelta(t, 1, result.HitPos.Z, 1e-4)
	assert.InDelta(t, 0, result.HitNormal.X, 1e-4)
	assert.InDelta(t, 0, result.HitNormal.Y, 1e-4)
	assert.InDelta(t, 1, result.HitNormal.Z, 1e-4)
}

func TestBVHCoverageAndContainment(t *testing.T) {
	s := New()
	mat := s.CreateDiffuse(vec.V3(0.5, 0.5, 0.5))

	r := rng.New(ptr(uint32(7)))
	const n = 64
	for i := 0; i < n; i++ {
		center := r.NextVector().Scale(20)
		s.CreateSphere(center, 0.1+r.NextF32(), mat.ID)
	}

	require.NoError(t, s.BuildBVH())

	seen := make([]int, n)
	var walk func(node uint32, bounds AABB)
	walk = func(node uint32, bounds AABB) {
		nd := s.BVH.Nodes[node]
		if nd.isLeaf() {
			seen[nd.SphereIdx]++
			assert.True(t, containsAABB(bounds, nd.AABB), "leaf AABB must be contained in ancestor AABB")
			return
		}
		assert.True(t, containsAABB(bounds, nd.AABB), "internal AABB must be contained in parent AABB")
		walk(nd.Left, nd.AABB)
		walk(nd.Right, nd.AABB)
	}
	walk(0, s.BVH.Nodes[0].AABB)

	for i, count := range seen {
		assert.Equal(t, 1, count, "sphere %d should be reachable through exactly one leaf", i)
	}
}

func TestBVHEquivalentToBruteForce(t *testing.T) {
	s := New()
	mat := s.CreateDiffuse(vec.V3(0.5, 0.5, 0.5))

	r := rng.New(ptr(uint32(99)))
	const n = 100
	for i := 0; i < n; i++ {
		center := r.NextVector().Scale(50)
		s.CreateSphere(center, 0.2+r.NextF32()*2, mat.ID)
	}
	require.NoError(t, s.BuildBVH())

	rayRng := rng.New(ptr(uint32(1234)))
	for i := 0; i < 2000; i++ {
		origin := rayRng.NextVector().Scale(60)
		dir := rayRng.NextUnit()

		var bvhResult, bruteResult TraceResult
		ray := Ray{Origin: origin, Dir: dir}

		s.TraceRay(&bvhResult, ray)
		TraceBruteForce(&bruteResult, ray, s.Spheres.Spheres, s.Materials)

		if bruteResult.HitMaterial == nil {
			assert.Nil(t, bvhResult.HitMaterial)
			continue
		}

		require.NotNil(t, bvhResult.HitMaterial)
		assert.InDelta(t, bruteResult.HitPos.X, bvhResult.HitPos.X, 1e-2)
		assert.InDelta(t, bruteResult.HitPos.Y, bvhResult.HitPos.Y, 1e-2)
		assert.InDelta(t, bruteResult.HitPos.Z, bvhResult.HitPos.Z, 1e-2)
	}
}

func TestIntersectSelfConsistency(t *testing.T) {
	sp := Sphere{Pos: vec.V3(1, 2, 3), Radius: 2, Radius2: 4}
	ray := Ray{Origin: vec.V3(1, 2, 10), Dir: vec.V3(0, 0, -1)}

	tHit := IntersectSphere(ray, sp)
	require.Greater(t, tHit, float32(0))

	p := ray.At(tHit)
	d := p.Sub(sp.Pos)
	assert.InDelta(t, sp.Radius2, d.Length2(), 1e-3*sp.Radius2)
}

func containsAABB(outer, inner AABB) bool {
	const eps = 1e-4
	return outer.Min.X <= inner.Min.X+eps && outer.Min.Y <= inner.Min.Y+eps && outer.Min.Z <= inner.Min.Z+eps &&
		outer.Max.X >= inner.Max.X-eps && outer.Max.Y >= inner.Max.Y-eps && outer.Max.Z >= inner.Max.Z-eps
}

func ptr(v uint32) *uint32 { return &v }
