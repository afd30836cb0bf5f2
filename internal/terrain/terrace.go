package terrain

import (
	"fmt"
	"math"
)

// Terrace blends the heightmap with a quantized copy of itself in place.
// Levels is the number of flat steps; sharpness in [0,1] is the blend factor,
// 0 leaving the map untouched and 1 snapping fully to the steps.
func Terrace(f *Field, levels int, sharpness float64) error {
	if levels < 2 {
		return fmt.Errorf("%w: terrace levels %d, need >= 2", ErrInvalidDimension, levels)
	}
	sharpness = math.Min(1, math.Max(0, sharpness))
	steps := float64(levels - 1)
	for i, v := range f.data {
		q := math.Round(v*steps) / steps
		f.data[i] = v*(1-sharpness) + q*sharpness
	}
	return nil
}
