package universe

import (
	"math"

	"starforge/internal/automaton"
	"starforge/pkg/seed"
)

// Archetype is a planet's broad surface/climate category.
type Archetype int

const (
	ArchetypeVolcanic Archetype = iota
	ArchetypeBarren
	ArchetypeDesert
	ArchetypeTemperate
	ArchetypeLush
	ArchetypeFrozen
)

// String returns the archetype's display name.
func (a Archetype) String() string {
	switch a {
	case ArchetypeVolcanic:
		return "Volcanic"
	case ArchetypeBarren:
		return "Barren"
	case ArchetypeDesert:
		return "Desert"
	case ArchetypeTemperate:
		return "Temperate"
	case ArchetypeLush:
		return "Lush"
	case ArchetypeFrozen:
		return "Frozen"
	}
	return "Unknown"
}

// Color is a normalized RGB triple.
type Color struct {
	R, G, B float64
}

// GhostPlanet is a lazily materialized planet descriptor. It is immutable
// once derived and carries no geometry; a consumer builds meshes from the
// terrain seed and rule only when a player gets close.
type GhostPlanet struct {
	Name        string
	Seed        uint32
	Rule        int
	RuleClass   automaton.Class
	TerrainSeed uint32
	OrbitRadius float64
	OrbitSpeed  float64
	OrbitPhase  float64
	OrbitTilt   float64
	Size        float64
	Archetype   Archetype
	HasRings    bool
	MoonCount   int
	AtmosColor  Color
}

// Orbit spacing constants. Spacing exceeds the jitter span, which is what
// keeps radii strictly increasing with the orbital index.
const (
	orbitBase    = 8.0
	orbitSpacing = 6.0
	orbitJitter  = 4.0
)

// GenerateGhostPlanet derives planet index of count in the system identified
// by systemSeed. The descriptor is a pure function of its three arguments.
func GenerateGhostPlanet(systemSeed uint32, index, count int) GhostPlanet {
	planetSeed := seed.Hash(systemSeed, "planet", index)
	rng := seed.New(planetSeed, "body")

	rule := rng.Range(0, 255)
	class := automaton.Classify(automaton.Rule(rule)).Class

	radius := orbitBase + float64(index)*orbitSpacing + rng.FloatRange(0, orbitJitter)
	pos := (float64(index) + 0.5) / float64(count)
	size := rng.FloatRange(0.6, 2.4)

	p := GhostPlanet{
		Name:        generateName(seed.New(planetSeed, "name"), index),
		Seed:        planetSeed,
		Rule:        rule,
		RuleClass:   class,
		TerrainSeed: seed.Hash(planetSeed, "terrain"),
		OrbitRadius: radius,
		OrbitSpeed:  rng.FloatRange(0.4, 1.2) / math.Sqrt(radius),
		OrbitPhase:  rng.FloatRange(0, 2*math.Pi),
		OrbitTilt:   rng.FloatRange(-0.15, 0.15),
		Size:        size,
		Archetype:   pickArchetype(rng, class, pos),
		HasRings:    rng.Chance(0.1 + 0.2*pos),
		MoonCount:   rng.Range(0, int(size)+2),
	}
	p.AtmosColor = atmosphereColor(rng, p.Archetype)
	return p
}

// archetypeWeights is one weighted branch: archetypes drawn in proportion
// to their weights.
type archetypeWeights []struct {
	a Archetype
	w float64
}

var (
	innerWeights = archetypeWeights{
		{ArchetypeVolcanic, 0.5}, {ArchetypeBarren, 0.3}, {ArchetypeDesert, 0.2},
	}
	habitableLivelyWeights = archetypeWeights{
		{ArchetypeLush, 0.45}, {ArchetypeTemperate, 0.35}, {ArchetypeDesert, 0.1}, {ArchetypeBarren, 0.1},
	}
	habitableDullWeights = archetypeWeights{
		{ArchetypeTemperate, 0.3}, {ArchetypeDesert, 0.35}, {ArchetypeBarren, 0.35},
	}
	outerWeights = archetypeWeights{
		{ArchetypeFrozen, 0.55}, {ArchetypeBarren, 0.3}, {ArchetypeTemperate, 0.15},
	}
)

// pickArchetype branches on the normalized orbital position and rule class:
// inner orbits run hot and dead, the habitable band favors living worlds
// when the rule behaves chaotically or complexly, the outer band freezes.
func pickArchetype(rng *seed.Stream, class automaton.Class, pos float64) Archetype {
	var weights archetypeWeights
	switch {
	case pos < 0.25:
		weights = innerWeights
	case pos < 0.6:
		if class == automaton.ClassChaotic || class == automaton.ClassComplex {
			weights = habitableLivelyWeights
		} else {
			weights = habitableDullWeights
		}
	default:
		weights = outerWeights
	}

	total := 0.0
	for _, e := range weights {
		total += e.w
	}
	roll := rng.Float64() * total
	for _, e := range weights {
		roll -= e.w
		if roll < 0 {
			return e.a
		}
	}
	return weights[len(weights)-1].a
}

// atmosphereColor returns the archetype's base tint with a small per-planet
// variation.
func atmosphereColor(rng *seed.Stream, a Archetype) Color {
	var base Color
	switch a {
	case ArchetypeVolcanic:
		base = Color{0.85, 0.35, 0.2}
	case ArchetypeBarren:
		base = Color{0.55, 0.5, 0.45}
	case ArchetypeDesert:
		base = Color{0.85, 0.7, 0.4}
	case ArchetypeTemperate:
		base = Color{0.45, 0.65, 0.8}
	case ArchetypeLush:
		base = Color{0.4, 0.75, 0.55}
	case ArchetypeFrozen:
		base = Color{0.75, 0.85, 0.95}
	}
	jitter := func(v float64) float64 {
		return math.Min(1, math.Max(0, v+rng.FloatRange(-0.08, 0.08)))
	}
	return Color{jitter(base.R), jitter(base.G), jitter(base.B)}
}
