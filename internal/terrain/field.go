// Package terrain builds density fields and continuous heightmaps out of
// automaton runs, with multi-radius smoothing, fractal micro-detail, and
// terracing.
package terrain

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension reports a zero or negative field dimension or
// parameter.
var ErrInvalidDimension = errors.New("terrain: invalid dimension")

// Field stores a 2D grid of float64 values in row-major order.
type Field struct {
	W, H int
	data []float64
}

// NewField allocates a field with the given dimensions.
func NewField(w, h int) (*Field, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	return &Field{W: w, H: h, data: make([]float64, w*h)}, nil
}

// Values exposes the backing slice so callers can read/write directly.
func (f *Field) Values() []float64 { return f.data }

// Index returns the linear slice index for coordinates (x, y).
func (f *Field) Index(x, y int) int { return y*f.W + x }

// At returns the value at (x, y).
func (f *Field) At(x, y int) float64 { return f.data[y*f.W+x] }

// Set stores v at (x, y).
func (f *Field) Set(x, y int, v float64) { f.data[y*f.W+x] = v }

// Wrap applies toroidal wrapping to the provided coordinates.
func (f *Field) Wrap(x, y int) (int, int) {
	x = (x%f.W + f.W) % f.W
	y = (y%f.H + f.H) % f.H
	return x, y
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	c := &Field{W: f.W, H: f.H, data: make([]float64, len(f.data))}
	copy(c.data, f.data)
	return c
}
