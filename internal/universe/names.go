package universe

import "starforge/pkg/seed"

var (
	nameOnsets  = []string{"ka", "ve", "tho", "ra", "zu", "mi", "or", "an", "sel", "dra", "ne", "ul", "pha", "gos", "ty"}
	nameMiddles = []string{"la", "ri", "un", "eth", "ar", "os", "ia", "ur", "en", "ol"}
	nameCodas   = []string{"n", "th", "s", "x", "m", "r", "ra", "is", "on", "ia"}
	romans      = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX"}
)

// generateName builds a pronounceable body name from seeded syllables, with
// the orbital index appended as a numeral the way survey catalogs do.
func generateName(rng *seed.Stream, index int) string {
	name := nameOnsets[rng.IntN(len(nameOnsets))]
	for i := rng.Range(0, 1); i >= 0; i-- {
		name += nameMiddles[rng.IntN(len(nameMiddles))]
	}
	name += nameCodas[rng.IntN(len(nameCodas))]
	out := []rune(name)
	if out[0] >= 'a' && out[0] <= 'z' {
		out[0] = out[0] - 'a' + 'A'
	}
	if index >= 0 && index < len(romans) {
		return string(out) + " " + romans[index]
	}
	return string(out)
}
