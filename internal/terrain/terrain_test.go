package terrain

import (
	"errors"
	"math"
	"testing"

	"starforge/internal/automaton"
)

func TestGenerateDensityDeterministic(t *testing.T) {
	a, err := GenerateDensity(automaton.Rule(30), 64, 48, 777, 4)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := GenerateDensity(automaton.Rule(30), 64, 48, 777, 4)
	for i, v := range a.Values() {
		if b.Values()[i] != v {
			t.Fatalf("density diverged at index %d: %v vs %v", i, v, b.Values()[i])
		}
	}
}

func TestGenerateDensityRange(t *testing.T) {
	f, err := GenerateDensity(automaton.Rule(110), 48, 48, 12, 5)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range f.Values() {
		if v < 0 || v > 1 {
			t.Fatalf("density value %v at index %d outside [0,1]", v, i)
		}
	}
}

func TestGenerateDensityRejectsBadInput(t *testing.T) {
	if _, err := GenerateDensity(automaton.Rule(30), 2, 10, 1, 3); !errors.Is(err, automaton.ErrInvalidDimension) {
		t.Fatalf("width 2 accepted: %v", err)
	}
	if _, err := GenerateDensity(automaton.Rule(30), 10, 1, 1, 3); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("height 1 accepted: %v", err)
	}
	if _, err := GenerateDensity(automaton.Rule(30), 10, 10, 1, 0); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("zero runs accepted: %v", err)
	}
}

func TestSmoothConstantFieldUnchanged(t *testing.T) {
	f, _ := NewField(32, 32)
	for i := range f.Values() {
		f.Values()[i] = 0.4
	}
	cases := []struct {
		scales  []int
		weights []float64
	}{
		{[]int{1, 4, 8}, []float64{0.5, 0.3, 0.2}},
		// Weights summing to more than 1 must not scale the constant.
		{[]int{1, 3}, []float64{1, 1}},
	}
	for _, c := range cases {
		out, err := MultiOctaveSmooth(f, c.scales, c.weights)
		if err != nil {
			t.Fatal(err)
		}
		// Blur of a constant is the constant; normalization must leave
		// the degenerate case untouched.
		for i, v := range out.Values() {
			if math.Abs(v-0.4) > 1e-12 {
				t.Fatalf("weights %v: constant field changed at %d: %v", c.weights, i, v)
			}
			if math.IsNaN(v) {
				t.Fatalf("weights %v: NaN at index %d", c.weights, i)
			}
		}
	}
}

func TestSmoothOutputBounds(t *testing.T) {
	f, err := GenerateDensity(automaton.Rule(90), 48, 48, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	out, err := MultiOctaveSmooth(f, []int{1, 3, 7}, []float64{0.6, 0.3, 0.1})
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range out.Values() {
		if v < 0 || v > 1 || math.IsNaN(v) {
			t.Fatalf("smoothed value %v at index %d outside [0,1]", v, i)
		}
	}
}

func TestSmoothRejectsMismatchedWeights(t *testing.T) {
	f, _ := NewField(8, 8)
	if _, err := MultiOctaveSmooth(f, []int{1, 2}, []float64{1}); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("mismatched scales/weights accepted: %v", err)
	}
	if _, err := MultiOctaveSmooth(f, nil, nil); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("empty scales accepted: %v", err)
	}
}

func TestSeparableBlurMatchesDirect(t *testing.T) {
	f, err := GenerateDensity(automaton.Rule(30), 24, 24, 9, 2)
	if err != nil {
		t.Fatal(err)
	}
	const radius = 5
	direct := boxBlur(f, radius)
	separable := separableBlur(f, radius)
	for i := range direct.Values() {
		if math.Abs(direct.Values()[i]-separable.Values()[i]) > 1e-9 {
			t.Fatalf("blur variants disagree at %d: %v vs %v",
				i, direct.Values()[i], separable.Values()[i])
		}
	}
}

func TestBlurWrapsToroidally(t *testing.T) {
	f, _ := NewField(8, 8)
	f.Set(0, 0, 1)
	out := boxBlur(f, 1)
	// The single spike spreads across the wrapped corner neighborhood.
	if out.At(7, 7) == 0 {
		t.Fatal("blur did not wrap around the corner")
	}
}

func TestAddDetailKeepsBoundsAndExtremes(t *testing.T) {
	f, _ := NewField(32, 32)
	vals := f.Values()
	for i := range vals {
		vals[i] = float64(i%5) * 0.25
	}
	AddDetail(f, 4242, 0.5)
	for i, v := range f.Values() {
		if v < 0 || v > 1 {
			t.Fatalf("detail pushed value %v at %d outside [0,1]", v, i)
		}
		// The attenuation zeroes the blend exactly at 0 and 1.
		switch i % 5 {
		case 0:
			if v != 0 {
				t.Fatalf("detail moved a sea-level cell to %v", v)
			}
		case 4:
			if v != 1 {
				t.Fatalf("detail moved a peak cell to %v", v)
			}
		}
	}
}

func TestTerrace(t *testing.T) {
	f, _ := NewField(4, 1)
	copy(f.Values(), []float64{0, 0.3, 0.6, 1})
	if err := Terrace(f, 1, 1); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("terrace accepted 1 level: %v", err)
	}
	if err := Terrace(f, 5, 1); err != nil {
		t.Fatal(err)
	}
	// Full sharpness with 5 levels snaps onto quarters.
	want := []float64{0, 0.25, 0.5, 1}
	for i, v := range f.Values() {
		if math.Abs(v-want[i]) > 1e-12 {
			t.Fatalf("terraced value %d = %v, want %v", i, v, want[i])
		}
	}
}

func TestSummarize(t *testing.T) {
	f, _ := NewField(4, 1)
	copy(f.Values(), []float64{0, 0.5, 0.5, 1})
	s := Summarize(f)
	if s.Min != 0 || s.Max != 1 {
		t.Fatalf("min/max = %v/%v", s.Min, s.Max)
	}
	if s.Mean != 0.5 {
		t.Fatalf("mean = %v", s.Mean)
	}
	want := math.Sqrt(0.125)
	if math.Abs(s.StdDev-want) > 1e-12 {
		t.Fatalf("stddev = %v, want %v", s.StdDev, want)
	}
}
