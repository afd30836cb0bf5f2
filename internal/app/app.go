//go:build ebiten

package app

import (
	"fmt"

	"starforge/internal/render"
	"starforge/internal/universe"
	"starforge/internal/worldgen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game streams a planet's terrain through a chunk pool and shows the
// assembled biome map. N/P page through the system's planets, R reloads the
// current one, Q or Escape quits.
type Game struct {
	cfg       *Config
	manager   *universe.Manager
	system    *universe.StarSystem
	planetIdx int

	gridSize  int
	painter   *render.GridPainter
	biomes    []uint8
	elevation []float64
}

// New builds the viewer for the system selected by cfg and loads its first
// planet.
func New(cfg *Config) (*Game, error) {
	if cfg.Radius < 0 || cfg.ChunkSize < 1 {
		return nil, fmt.Errorf("%w: radius %d, chunk size %d",
			worldgen.ErrInvalidChunkSize, cfg.Radius, cfg.ChunkSize)
	}
	manager := universe.NewManager(uint32(cfg.Seed), 16)
	system := manager.GenerateStarSystem(cfg.Galaxy, cfg.SystemX, cfg.SystemY)
	idx := cfg.Planet
	if idx < 0 || idx >= len(system.Planets) {
		idx = 0
	}
	span := 2*cfg.Radius + 1
	g := &Game{
		cfg:       cfg,
		manager:   manager,
		system:    system,
		planetIdx: idx,
		gridSize:  span * cfg.ChunkSize,
	}
	g.painter = render.NewGridPainter(g.gridSize, g.gridSize)
	g.biomes = make([]uint8, g.gridSize*g.gridSize)
	g.elevation = make([]float64, g.gridSize*g.gridSize)
	g.loadPlanet()
	return g, nil
}

// Planet returns the descriptor currently on screen.
func (g *Game) Planet() universe.GhostPlanet {
	return g.system.Planets[g.planetIdx]
}

// loadPlanet regenerates the on-screen region for the current planet,
// fanning the chunk requests out over the pool and stitching completions in
// whatever order they arrive.
func (g *Game) loadPlanet() {
	p := g.Planet()
	size := g.cfg.ChunkSize
	radius := g.cfg.Radius

	pool := worldgen.NewPool(g.cfg.Workers)
	go func() {
		for cy := -radius; cy <= radius; cy++ {
			for cx := -radius; cx <= radius; cx++ {
				// Validated in New; Submit cannot fail here.
				pool.Submit(worldgen.Request{
					ChunkX:       cx,
					ChunkY:       cy,
					ChunkSize:    size,
					Rule:         p.Rule,
					Seed:         p.TerrainSeed,
					MoistureRule: -1,
				})
			}
		}
		pool.Close()
	}()

	for chunk := range pool.Results() {
		baseX := (chunk.ChunkX + radius) * size
		baseY := (chunk.ChunkY + radius) * size
		for ly := 0; ly < size; ly++ {
			row := (baseY+ly)*g.gridSize + baseX
			src := ly * chunk.EdgeLength
			for lx := 0; lx < size; lx++ {
				g.biomes[row+lx] = chunk.Biomes[src+lx]
				g.elevation[row+lx] = chunk.Elevation[src+lx]
			}
		}
	}

	ebiten.SetWindowTitle(fmt.Sprintf("starforge — %s [%s, rule %d, %s]",
		p.Name, p.Archetype, p.Rule, p.RuleClass))
}

// Update handles input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.planetIdx = (g.planetIdx + 1) % len(g.system.Planets)
		g.loadPlanet()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.planetIdx = (g.planetIdx + len(g.system.Planets) - 1) % len(g.system.Planets)
		g.loadPlanet()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.loadPlanet()
	}
	return nil
}

// Draw renders the assembled biome map.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.BlitBiomes(screen, g.biomes, g.elevation, g.cfg.Scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridSize * g.cfg.Scale, g.gridSize * g.cfg.Scale
}
