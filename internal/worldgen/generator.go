// Package worldgen streams seamless terrain chunks: elevation, moisture, and
// biome arrays sampled from noise fields anchored in global coordinates, so
// any two chunks agree exactly along shared borders no matter when or where
// they were generated.
package worldgen

import (
	"errors"
	"fmt"
	"time"

	"starforge/internal/automaton"
	"starforge/pkg/seed"
)

// ErrInvalidChunkSize reports a zero or negative chunk edge length.
var ErrInvalidChunkSize = errors.New("worldgen: invalid chunk size")

// Field frequencies and the weight of the rule fingerprint layer. The
// fingerprint perturbs elevation by hashing the cell's horizontal neighbors
// into a 3-cell pattern and pushing it through the planet's automaton rule:
// enough to give each rule a recognizable grain, not enough to move the
// large-scale shape.
const (
	elevationFreq     = 0.009
	moistureFreq      = 0.0055
	fingerprintWeight = 0.08
)

// Generator produces terrain samples for one planet. It is pure: every
// method is a function of the construction parameters and the coordinates
// passed in, so a Generator may be shared between goroutines freely.
type Generator struct {
	worldSeed    uint32
	rule         automaton.Rule
	moistureRule automaton.Rule
	hasMoistRule bool
	elev         *fractal
	moist        *fractal
}

// NewGenerator builds a generator for the given world seed and automaton
// rule. A negative moistureRule disables the moisture fingerprint layer;
// any other value outside [0, 255] is rejected.
func NewGenerator(worldSeed uint32, rule, moistureRule int) (*Generator, error) {
	r, err := automaton.NewRule(rule)
	if err != nil {
		return nil, err
	}
	g := &Generator{
		worldSeed: worldSeed,
		rule:      r,
		elev:      newFractal(seed.Hash(worldSeed, "elevation"), elevationFreq),
		moist:     newFractal(seed.Hash(worldSeed, "moisture"), moistureFreq),
	}
	if moistureRule >= 0 {
		mr, err := automaton.NewRule(moistureRule)
		if err != nil {
			return nil, err
		}
		g.moistureRule = mr
		g.hasMoistRule = true
	}
	return g, nil
}

// ElevationAt samples terrain elevation at a global coordinate.
func (g *Generator) ElevationAt(gx, gy int) float64 {
	base := g.elev.at(gx, gy)
	fp := g.fingerprint(g.rule, gx, gy)
	return base*(1-fingerprintWeight) + fp*fingerprintWeight
}

// MoistureAt samples moisture at a global coordinate.
func (g *Generator) MoistureAt(gx, gy int) float64 {
	base := g.moist.at(gx, gy)
	if !g.hasMoistRule {
		return base
	}
	fp := g.fingerprint(g.moistureRule, gx, gy)
	return base*(1-fingerprintWeight) + fp*fingerprintWeight
}

// fingerprint hashes the three horizontally adjacent global cells into a
// synthetic neighborhood and applies rule to it.
func (g *Generator) fingerprint(rule automaton.Rule, gx, gy int) float64 {
	l := uint8(seed.Hash(g.worldSeed, "texture", gx-1, gy) & 1)
	c := uint8(seed.Hash(g.worldSeed, "texture", gx, gy) & 1)
	r := uint8(seed.Hash(g.worldSeed, "texture", gx+1, gy) & 1)
	return float64(rule.Apply(l, c, r))
}

// GenerateChunk builds the (chunkSize+1)² sample arrays for the chunk at
// (chunkX, chunkY). The extra row and column repeat the first samples of the
// adjacent chunks, which is what lets a consumer stitch meshes without
// cracks.
func (g *Generator) GenerateChunk(chunkX, chunkY, chunkSize int) (*Chunk, error) {
	if chunkSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, chunkSize)
	}
	start := time.Now()

	edge := chunkSize + 1
	chunk := &Chunk{
		ChunkX:     chunkX,
		ChunkY:     chunkY,
		EdgeLength: edge,
		Elevation:  make([]float64, edge*edge),
		Moisture:   make([]float64, edge*edge),
		Biomes:     make([]uint8, edge*edge),
	}
	for ly := 0; ly < edge; ly++ {
		gy := chunkY*chunkSize + ly
		for lx := 0; lx < edge; lx++ {
			gx := chunkX*chunkSize + lx
			e := g.ElevationAt(gx, gy)
			m := g.MoistureAt(gx, gy)
			i := ly*edge + lx
			chunk.Elevation[i] = e
			chunk.Moisture[i] = m
			chunk.Biomes[i] = uint8(ClassifyBiome(e, m))
		}
	}
	chunk.GenerationTimeMs = float64(time.Since(start)) / float64(time.Millisecond)
	return chunk, nil
}
