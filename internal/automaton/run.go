package automaton

import "fmt"

// Run evolves rule from the given initial row for the requested number of
// generations. A nil initial row means the default condition: a single live
// cell at the center column. The boundary columns are pinned to 0 in every
// generation, including the initial one. Width must be at least 3 and
// generations at least 1.
func Run(rule Rule, width, generations int, initial []uint8) (*Grid, error) {
	if width < 3 {
		return nil, fmt.Errorf("%w: width %d, need >= 3", ErrInvalidDimension, width)
	}
	if generations < 1 {
		return nil, fmt.Errorf("%w: generations %d, need >= 1", ErrInvalidDimension, generations)
	}
	if initial != nil && len(initial) != width {
		return nil, fmt.Errorf("%w: initial row has %d cells, want %d", ErrInvalidDimension, len(initial), width)
	}

	g := newGrid(width, generations)
	row := g.Row(0)
	if initial == nil {
		row[width/2] = 1
	} else {
		for x, c := range initial {
			if c != 0 {
				row[x] = 1
			}
		}
	}
	row[0] = 0
	row[width-1] = 0

	for gen := 1; gen <= generations; gen++ {
		prev := g.Row(gen - 1)
		next := g.Row(gen)
		for x := 1; x < width-1; x++ {
			next[x] = rule.Apply(prev[x-1], prev[x], prev[x+1])
		}
		// next[0] and next[width-1] stay 0.
	}
	return g, nil
}
