package terrain

import "fmt"

// Radii up to this size are blurred directly; larger radii go through the
// separable two-pass blur. Both compute the same square-window mean, the
// split is purely a cost choice.
const directBlurLimit = 2

// MultiOctaveSmooth blurs the field once per (radius, weight) pair,
// accumulates the weighted results, and min-max normalizes the sum to [0,1].
// The sum is divided by the weight total, so weights need not sum to 1 and a
// constant input comes back as the same constant. Blurring wraps toroidally
// so the output stays tileable. A degenerate field where max == min is
// returned as-is instead of dividing by zero.
func MultiOctaveSmooth(f *Field, scales []int, weights []float64) (*Field, error) {
	if len(scales) == 0 || len(scales) != len(weights) {
		return nil, fmt.Errorf("%w: %d scales, %d weights", ErrInvalidDimension, len(scales), len(weights))
	}

	out, err := NewField(f.W, f.H)
	if err != nil {
		return nil, err
	}
	total := 0.0
	for i, radius := range scales {
		if radius < 0 {
			return nil, fmt.Errorf("%w: blur radius %d", ErrInvalidDimension, radius)
		}
		blurred := blur(f, radius)
		w := weights[i]
		total += w
		for j, v := range blurred.data {
			out.data[j] += v * w
		}
	}
	if total != 0 {
		for i := range out.data {
			out.data[i] /= total
		}
	}
	normalize(out)
	return out, nil
}

// blur computes the mean over the (2r+1)² toroidal square window around each
// cell.
func blur(f *Field, radius int) *Field {
	if radius == 0 {
		return f.Clone()
	}
	if radius <= directBlurLimit {
		return boxBlur(f, radius)
	}
	return separableBlur(f, radius)
}

func boxBlur(f *Field, radius int) *Field {
	out := &Field{W: f.W, H: f.H, data: make([]float64, len(f.data))}
	window := float64((2*radius + 1) * (2*radius + 1))
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			sum := 0.0
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					nx, ny := f.Wrap(x+dx, y+dy)
					sum += f.data[ny*f.W+nx]
				}
			}
			out.data[y*f.W+x] = sum / window
		}
	}
	return out
}

// separableBlur runs a horizontal then a vertical mean pass. For a square
// window the result is identical to boxBlur at a fraction of the samples.
func separableBlur(f *Field, radius int) *Field {
	span := float64(2*radius + 1)
	tmp := &Field{W: f.W, H: f.H, data: make([]float64, len(f.data))}
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			sum := 0.0
			for dx := -radius; dx <= radius; dx++ {
				nx, _ := f.Wrap(x+dx, y)
				sum += f.data[y*f.W+nx]
			}
			tmp.data[y*f.W+x] = sum / span
		}
	}
	out := &Field{W: f.W, H: f.H, data: make([]float64, len(f.data))}
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			sum := 0.0
			for dy := -radius; dy <= radius; dy++ {
				_, ny := f.Wrap(x, y+dy)
				sum += tmp.data[ny*f.W+x]
			}
			out.data[y*f.W+x] = sum / span
		}
	}
	return out
}

// normalize rescales the field to [0,1] in place. If every value is equal
// the field is left untouched.
func normalize(f *Field) {
	min, max := f.data[0], f.data[0]
	for _, v := range f.data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max == min {
		return
	}
	span := max - min
	for i, v := range f.data {
		f.data[i] = (v - min) / span
	}
}
