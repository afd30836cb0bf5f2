package automaton

// Class is a heuristic behavior category for a rule.
type Class int

const (
	// ClassUniform marks rules that settle into an all-dead or all-live row.
	ClassUniform Class = iota + 1
	// ClassPeriodic marks rules that cycle through a few repeating rows.
	ClassPeriodic
	// ClassChaotic marks rules with sustained aperiodic change.
	ClassChaotic
	// ClassComplex marks rules with localized structures on a stable
	// background.
	ClassComplex
)

// String returns the display label for the class.
func (c Class) String() string {
	switch c {
	case ClassUniform:
		return "Uniform"
	case ClassPeriodic:
		return "Periodic"
	case ClassChaotic:
		return "Chaotic"
	case ClassComplex:
		return "Complex"
	}
	return "Unknown"
}

// Classification reports the measured behavior of a rule. Entropy is the
// number of distinct row patterns over the final 20 generations; Density the
// live fraction of the final row; AvgChange the mean fraction of cells
// flipping between consecutive generations.
type Classification struct {
	Class     Class
	Label     string
	Entropy   int
	Density   float64
	AvgChange float64
}

const (
	classifyWidth       = 101
	classifyGenerations = 100
	classifyWindow      = 20
)

// Classify runs rule at width 101 for 100 generations from the default
// single-cell start and assigns one of four classes. This is an empirical
// approximation of the Wolfram classes, not a formal one: the thresholds
// were tuned against well-known rules and some rules land one class off.
func Classify(rule Rule) Classification {
	grid, err := Run(rule, classifyWidth, classifyGenerations, nil)
	if err != nil {
		// Unreachable: the dimensions are compile-time constants.
		panic(err)
	}

	final := grid.Row(classifyGenerations)
	live := 0
	for _, c := range final {
		if c != 0 {
			live++
		}
	}
	density := float64(live) / float64(classifyWidth)

	distinct := map[string]bool{}
	for gen := classifyGenerations - classifyWindow + 1; gen <= classifyGenerations; gen++ {
		distinct[string(grid.Row(gen))] = true
	}
	entropy := len(distinct)

	changed := 0
	for gen := 1; gen <= classifyGenerations; gen++ {
		prev, cur := grid.Row(gen-1), grid.Row(gen)
		for x := 0; x < classifyWidth; x++ {
			if prev[x] != cur[x] {
				changed++
			}
		}
	}
	avgChange := float64(changed) / float64(classifyGenerations*classifyWidth)

	var class Class
	switch {
	case density == 0 || density == 1:
		class = ClassUniform
	case entropy <= 4:
		class = ClassPeriodic
	case avgChange > 0.3 && entropy >= 18:
		class = ClassChaotic
	case entropy > 10 && avgChange > 0.1 && avgChange <= 0.3:
		class = ClassComplex
	case avgChange <= 0.1:
		class = ClassPeriodic
	default:
		class = ClassChaotic
	}

	return Classification{
		Class:     class,
		Label:     class.String(),
		Entropy:   entropy,
		Density:   density,
		AvgChange: avgChange,
	}
}
