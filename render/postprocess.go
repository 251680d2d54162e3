package render

import (
	"github.com/ciekce/cpurt/config"
	"github.com/ciekce/cpurt/vec"
)

// postProcess averages, clamps, optionally tone-maps and gamma-corrects
// a pixel's accumulated radiance, then packs it to 0xAABBGGRR (alpha
// fixed at 0xFF, red in the lowest byte).
func postProcess(accum vec.Vec3, samples uint32, cfg config.Config) uint32 {
	result := accum.DivScalar(float32(samples))
	result = result.Max(vec.Vec3{})

	if cfg.Tonemap {
		result = reinhard(result)
	}

	if cfg.GammaCorrect {
		result = result.Pow(1.0 / cfg.Gamma)
	}

	return packColor(result)
}

func reinhard(c vec.Vec3) vec.Vec3 {
	return vec.V3(c.X/(1+c.X), c.Y/(1+c.Y), c.Z/(1+c.Z))
}

func packColor(c vec.Vec3) uint32 {
	c = c.Clamp(0, 1)
	r := uint32(c.X * 255)
	g := uint32(c.Y * 255)
	b := uint32(c.Z * 255)
	return 0xFF000000 | r | g<<8 | b<<16
}
