package terrain

import (
	"starforge/internal/automaton"
	"starforge/pkg/seed"
)

// HeightmapConfig controls the density-to-heightmap pipeline.
type HeightmapConfig struct {
	Width  int
	Height int
	Runs   int

	Scales  []int
	Weights []float64

	DetailStrength float64

	// TerraceLevels below 2 disables terracing.
	TerraceLevels    int
	TerraceSharpness float64
}

// DefaultHeightmapConfig returns the standard pipeline parameters.
func DefaultHeightmapConfig() HeightmapConfig {
	return HeightmapConfig{
		Width:          256,
		Height:         256,
		Runs:           5,
		Scales:         []int{1, 3, 7, 14},
		Weights:        []float64{0.4, 0.3, 0.2, 0.1},
		DetailStrength: 0.15,
	}
}

// BuildHeightmap runs the full pipeline for one rule and seed: automaton
// density overlays, multi-octave smoothing, fractal micro-detail, and
// optional terracing. The result is a continuous heightmap in [0,1].
func BuildHeightmap(rule automaton.Rule, worldSeed uint32, cfg HeightmapConfig) (*Field, error) {
	density, err := GenerateDensity(rule, cfg.Width, cfg.Height, worldSeed, cfg.Runs)
	if err != nil {
		return nil, err
	}
	heightmap, err := MultiOctaveSmooth(density, cfg.Scales, cfg.Weights)
	if err != nil {
		return nil, err
	}
	AddDetail(heightmap, seed.Hash(worldSeed, "detail"), cfg.DetailStrength)
	if cfg.TerraceLevels >= 2 {
		if err := Terrace(heightmap, cfg.TerraceLevels, cfg.TerraceSharpness); err != nil {
			return nil, err
		}
	}
	return heightmap, nil
}
