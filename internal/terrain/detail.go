package terrain

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Noise parameters for the micro-detail layer. Four octaves at a fairly high
// base frequency: the layer should roughen slopes, not move coastlines.
const (
	detailAlpha   = 2.0
	detailBeta    = 2.0
	detailOctaves = 4
	detailScale   = 0.11
)

// AddDetail blends fractal coherent noise onto the heightmap in place.
// Strength is attenuated by 4v(1-v), a quadratic falloff toward 0 near both
// extremes, so shorelines and peaks keep their clean contours.
func AddDetail(f *Field, detailSeed uint32, strength float64) {
	if strength == 0 {
		return
	}
	p := perlin.NewPerlin(detailAlpha, detailBeta, detailOctaves, int64(detailSeed))
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			i := y*f.W + x
			v := f.data[i]
			atten := 4 * v * (1 - v)
			if atten < 0 {
				atten = 0
			}
			n := p.Noise2D(float64(x)*detailScale, float64(y)*detailScale)
			v += n * strength * atten
			f.data[i] = math.Min(1, math.Max(0, v))
		}
	}
}
