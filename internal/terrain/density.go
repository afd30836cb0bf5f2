package terrain

import (
	"fmt"

	"starforge/internal/automaton"
	"starforge/pkg/seed"
)

// GenerateDensity overlays runs independent automaton evolutions of rule into
// a width×height field. Each run starts from a single live cell whose column
// is derived from (worldSeed, run index); the value at each position is the
// fraction of runs that produced a live cell there. Height counts grid rows,
// so the automaton evolves for height-1 generations.
func GenerateDensity(rule automaton.Rule, width, height int, worldSeed uint32, runs int) (*Field, error) {
	if height < 2 {
		return nil, fmt.Errorf("%w: height %d, need >= 2", ErrInvalidDimension, height)
	}
	if runs < 1 {
		return nil, fmt.Errorf("%w: runs %d, need >= 1", ErrInvalidDimension, runs)
	}

	field, err := NewField(width, height)
	if err != nil {
		return nil, err
	}
	for run := 0; run < runs; run++ {
		initial := make([]uint8, width)
		start := seed.HashRange(1, width-2, worldSeed, "density", run)
		initial[start] = 1
		grid, err := automaton.Run(rule, width, height-1, initial)
		if err != nil {
			return nil, err
		}
		cells := grid.Cells()
		for i, c := range cells {
			if c != 0 {
				field.data[i]++
			}
		}
	}
	inv := 1.0 / float64(runs)
	for i := range field.data {
		field.data[i] *= inv
	}
	return field, nil
}
