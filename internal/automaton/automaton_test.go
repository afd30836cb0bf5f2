package automaton

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewRuleValidation(t *testing.T) {
	for _, n := range []int{0, 1, 30, 110, 255} {
		if _, err := NewRule(n); err != nil {
			t.Fatalf("NewRule(%d) rejected valid rule: %v", n, err)
		}
	}
	for _, n := range []int{-1, 256, 1000} {
		if _, err := NewRule(n); !errors.Is(err, ErrInvalidRule) {
			t.Fatalf("NewRule(%d) = %v, want ErrInvalidRule", n, err)
		}
	}
}

func TestApplyRule110(t *testing.T) {
	// Rule 110 truth table, patterns 111 down to 000.
	want := map[[3]uint8]uint8{
		{1, 1, 1}: 0,
		{1, 1, 0}: 1,
		{1, 0, 1}: 1,
		{1, 0, 0}: 0,
		{0, 1, 1}: 1,
		{0, 1, 0}: 1,
		{0, 0, 1}: 1,
		{0, 0, 0}: 0,
	}
	r := Rule(110)
	for pattern, out := range want {
		if got := r.Apply(pattern[0], pattern[1], pattern[2]); got != out {
			t.Fatalf("rule 110 pattern %v -> %d, want %d", pattern, got, out)
		}
	}
}

func TestRunRejectsBadDimensions(t *testing.T) {
	if _, err := Run(Rule(30), 2, 10, nil); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("width 2 accepted: %v", err)
	}
	if _, err := Run(Rule(30), 11, 0, nil); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("zero generations accepted: %v", err)
	}
	if _, err := Run(Rule(30), 11, 5, make([]uint8, 4)); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("mismatched initial row accepted: %v", err)
	}
}

func TestRunDeterministic(t *testing.T) {
	a, err := Run(Rule(30), 64, 40, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Run(Rule(30), 64, 40, nil)
	if !bytes.Equal(a.Cells(), b.Cells()) {
		t.Fatal("two identical runs produced different grids")
	}
}

func TestRuleZeroDies(t *testing.T) {
	for _, width := range []int{3, 11, 64} {
		initial := make([]uint8, width)
		for i := range initial {
			initial[i] = uint8(i % 2)
		}
		g, err := Run(Rule(0), width, 5, initial)
		if err != nil {
			t.Fatal(err)
		}
		for x, c := range g.Row(g.Generations) {
			if c != 0 {
				t.Fatalf("rule 0 width %d: final cell %d alive", width, x)
			}
		}
	}
}

func TestBoundariesPinned(t *testing.T) {
	// Rule 255 maps every pattern to live; only boundary pinning keeps
	// the edge columns dead.
	initial := make([]uint8, 31)
	for i := range initial {
		initial[i] = 1
	}
	g, err := Run(Rule(255), 31, 20, initial)
	if err != nil {
		t.Fatal(err)
	}
	for gen := 0; gen <= g.Generations; gen++ {
		row := g.Row(gen)
		if row[0] != 0 || row[g.Width-1] != 0 {
			t.Fatalf("generation %d boundary alive: %d %d", gen, row[0], row[g.Width-1])
		}
	}
}

func TestDefaultInitialCenterCell(t *testing.T) {
	g, err := Run(Rule(90), 11, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	for x, c := range g.Row(0) {
		want := uint8(0)
		if x == 5 {
			want = 1
		}
		if c != want {
			t.Fatalf("initial row cell %d = %d, want %d", x, c, want)
		}
	}
}

func TestClassifyKnownRules(t *testing.T) {
	if c := Classify(Rule(0)); c.Class != ClassUniform {
		t.Fatalf("rule 0 classified %v (%+v), want Uniform", c.Class, c)
	}
	if c := Classify(Rule(30)); c.Class != ClassChaotic {
		t.Fatalf("rule 30 classified %v (%+v), want Chaotic", c.Class, c)
	}
	// The heuristic may land rule 110 in either of the high classes.
	if c := Classify(Rule(110)); c.Class != ClassChaotic && c.Class != ClassComplex {
		t.Fatalf("rule 110 classified %v (%+v), want Chaotic or Complex", c.Class, c)
	}
}

func TestClassificationFieldsPopulated(t *testing.T) {
	c := Classify(Rule(30))
	if c.Label != c.Class.String() {
		t.Fatalf("label %q does not match class %v", c.Label, c.Class)
	}
	if c.Entropy < 1 || c.Entropy > 20 {
		t.Fatalf("entropy %d outside [1,20]", c.Entropy)
	}
	if c.Density < 0 || c.Density > 1 {
		t.Fatalf("density %v outside [0,1]", c.Density)
	}
	if c.AvgChange < 0 || c.AvgChange > 1 {
		t.Fatalf("avg change %v outside [0,1]", c.AvgChange)
	}
}
