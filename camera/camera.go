// Package camera implements the thin-lens pinhole camera: a look-from/
// look-at basis, defocus-disk sampling for depth of field, and the
// pixel-to-primary-ray mapping the renderer drives per sample.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/ciekce/cpurt/rng"
	"github.com/ciekce/cpurt/scene"
	"github.com/ciekce/cpurt/vec"
)

// Camera holds the lens parameters and the basis derived from them by
// Update. Pos and Target are mutable; call Update after changing
// either, or any of Width/Height/FovY/Aperture/FocalLength.
type Camera struct {
	Width, Height uint32
	FovY          float32 // degrees
	Aperture      float32
	FocalLength   float32

	Pos    vec.Vec3
	Target vec.Vec3

	invSize vec.Vec2

	u, v, w vec.Vec3

	horizontal vec.Vec3
	vertical   vec.Vec3
	lowerLeft  vec.Vec3

	lensRadius float32
}

// New constructs a Camera with the default pose (Pos at the origin,
// looking down -Z) and the given lens parameters. Call Update before
// the first Ray call.
func New(width, height uint32, fovY, aperture, focalLength float32) *Camera {
	return &Camera{
		Width:       width,
		Height:      height,
		FovY:        fovY,
		Aperture:    aperture,
		FocalLength: focalLength,
		Target:      vec.V3(0, 0, -1),
	}
}

// Update recomputes the camera basis and viewport extents from the
// current pose and lens parameters. Must be called whenever Pos,
// Target, Width, Height, FovY, Aperture, or FocalLength change.
func (c *Camera) Update() {
	c.invSize = vec.V2(1.0/float32(c.Width-1), 1.0/float32(c.Height-1))

	aspect := float32(c.Width) / float32(c.Height)

	vh := 2 * math32.Tan(degToRad(c.FovY)/2)
	vw := vh * aspect

	c.w = c.Pos.Sub(c.Target).Normalize()
	c.u = vec.V3(0, 1, 0).Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	c.horizontal = c.u.Scale(c.FocalLength * vw)
	c.vertical = c.v.Scale(c.FocalLength * vh)

	c.lowerLeft = c.horizontal.Scale(-0.5).
		Sub(c.vertical.Scale(0.5)).
		Sub(c.w.Scale(c.FocalLength))

	c.lensRadius = c.Aperture / 2
}

// Ray samples one primary ray through pixel (x, y), jittering the
// origin across the defocus disk. There is no sub-pixel jitter: the
// only stochasticity in the primary ray comes from aperture sampling
// (see DESIGN.md on sample jitter).
func (c *Camera) Ray(r *rng.JSF32, x, y uint32) scene.Ray {
	disk := r.NextInUnitDisk()
	lens := disk.Scale(c.lensRadius)
	offset := c.u.Scale(lens.X).Add(c.v.Scale(lens.Y))

	u := float32(x) * c.invSize.X
	v := float32(c.Height-1-y) * c.invSize.Y

	dir := c.lowerLeft.
		Add(c.horizontal.Scale(u)).
		Add(c.vertical.Scale(v)).
		Sub(offset)

	return scene.Ray{
		Origin: c.Pos.Add(offset),
		Dir:    dir,
	}
}

func degToRad(deg float32) float32 {
	return deg * (math32.Pi / 180)
}
