package terrain

import "math"

// Summary holds descriptive statistics for a field. Downstream consumers use
// these to calibrate biome thresholds against a planet's actual relief.
type Summary struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Summarize computes min, max, mean, and standard deviation over the field.
func Summarize(f *Field) Summary {
	s := Summary{Min: f.data[0], Max: f.data[0]}
	for _, v := range f.data {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		s.Mean += v
	}
	n := float64(len(f.data))
	s.Mean /= n
	variance := 0.0
	for _, v := range f.data {
		d := v - s.Mean
		variance += d * d
	}
	s.StdDev = math.Sqrt(variance / n)
	return s
}
