package worldgen

import "github.com/aquilax/go-perlin"

// Fractal stack parameters, fixed for the life of a seed: three octaves,
// lacunarity 2, persistence 1/2. The gain stretches the raw noise so the
// mapped field actually reaches the deep-ocean and snow bands of the biome
// table.
const (
	fbmAlpha   = 2.0
	fbmBeta    = 2.0
	fbmOctaves = 3
	fbmGain    = 1.5
)

// fractal evaluates seeded coherent gradient noise as a pure function of
// global coordinates. Two calls with the same seed and coordinates return
// the same value regardless of which chunk asked, which is what makes chunk
// borders seamless.
type fractal struct {
	p    *perlin.Perlin
	freq float64
}

func newFractal(s uint32, freq float64) *fractal {
	return &fractal{
		p:    perlin.NewPerlin(fbmAlpha, fbmBeta, fbmOctaves, int64(s)),
		freq: freq,
	}
}

// at samples the stack at a global coordinate, mapped onto [0, 1].
func (f *fractal) at(gx, gy int) float64 {
	n := f.p.Noise2D(float64(gx)*f.freq, float64(gy)*f.freq)
	v := (n*fbmGain + 1) / 2
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
