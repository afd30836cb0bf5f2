package automaton

// Grid stores the generations of one automaton run in row-major order:
// row g is generation g, row 0 the initial condition.
type Grid struct {
	Width       int
	Generations int
	cells       []uint8
}

// newGrid allocates a grid of generations+1 rows (the initial condition
// plus one row per step).
func newGrid(width, generations int) *Grid {
	return &Grid{
		Width:       width,
		Generations: generations,
		cells:       make([]uint8, width*(generations+1)),
	}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []uint8 { return g.cells }

// Row returns the cells of generation gen.
func (g *Grid) Row(gen int) []uint8 {
	return g.cells[gen*g.Width : (gen+1)*g.Width]
}

// At returns the cell at column x of generation gen.
func (g *Grid) At(gen, x int) uint8 {
	return g.cells[gen*g.Width+x]
}
