package universe

import "starforge/pkg/seed"

// StarType is a broad stellar category.
type StarType int

const (
	StarRedDwarf StarType = iota
	StarOrangeDwarf
	StarYellowDwarf
	StarWhite
	StarBlueGiant
	StarWhiteDwarf
)

// String returns the star type's display name.
func (s StarType) String() string {
	switch s {
	case StarRedDwarf:
		return "Red Dwarf"
	case StarOrangeDwarf:
		return "Orange Dwarf"
	case StarYellowDwarf:
		return "Yellow Dwarf"
	case StarWhite:
		return "White Star"
	case StarBlueGiant:
		return "Blue Giant"
	case StarWhiteDwarf:
		return "White Dwarf"
	}
	return "Unknown"
}

// Star holds the derived properties of a system's star.
type Star struct {
	Name        string
	Type        StarType
	Temperature float64 // kelvin
	Color       Color
}

// StarSystem is a seed, a star, and an ordered planet list, addressed by
// galaxy id and integer grid coordinates.
type StarSystem struct {
	Seed     uint32
	GalaxyID int
	X, Y     int
	Star     Star
	Planets  []GhostPlanet
}

// starWeights drives the weighted star-type pick; dwarfs dominate the way
// they do in a real stellar census.
var starWeights = []struct {
	t StarType
	w float64
}{
	{StarRedDwarf, 0.38},
	{StarOrangeDwarf, 0.2},
	{StarYellowDwarf, 0.17},
	{StarWhite, 0.11},
	{StarBlueGiant, 0.06},
	{StarWhiteDwarf, 0.08},
}

// starTemps maps each type to its temperature band in kelvin.
var starTemps = map[StarType][2]float64{
	StarRedDwarf:    {2400, 3700},
	StarOrangeDwarf: {3700, 5200},
	StarYellowDwarf: {5200, 6000},
	StarWhite:       {7500, 10000},
	StarBlueGiant:   {10000, 30000},
	StarWhiteDwarf:  {8000, 40000},
}

var starColors = map[StarType]Color{
	StarRedDwarf:    {1, 0.5, 0.35},
	StarOrangeDwarf: {1, 0.7, 0.45},
	StarYellowDwarf: {1, 0.95, 0.8},
	StarWhite:       {0.95, 0.95, 1},
	StarBlueGiant:   {0.65, 0.75, 1},
	StarWhiteDwarf:  {0.9, 0.9, 1},
}

// planetCountWeights biases planet counts toward the middle of [2, 8].
var planetCountWeights = []struct {
	n int
	w float64
}{
	{2, 0.08}, {3, 0.17}, {4, 0.24}, {5, 0.22}, {6, 0.15}, {7, 0.09}, {8, 0.05},
}

// generateStar derives the system's star from its seed.
func generateStar(systemSeed uint32) Star {
	rng := seed.New(systemSeed, "star")
	roll := rng.Float64()
	t := starWeights[len(starWeights)-1].t
	for _, e := range starWeights {
		roll -= e.w
		if roll < 0 {
			t = e.t
			break
		}
	}
	band := starTemps[t]
	return Star{
		Name:        generateName(seed.New(systemSeed, "starname"), -1),
		Type:        t,
		Temperature: rng.FloatRange(band[0], band[1]),
		Color:       starColors[t],
	}
}

// planetCount draws a bounded weighted planet count in [2, 8].
func planetCount(rng *seed.Stream) int {
	roll := rng.Float64()
	for _, e := range planetCountWeights {
		roll -= e.w
		if roll < 0 {
			return e.n
		}
	}
	return planetCountWeights[len(planetCountWeights)-1].n
}
