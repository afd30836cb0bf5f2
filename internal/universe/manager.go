// Package universe cascades one root seed into galaxies, star systems, and
// ghost planets. Every derived value is a pure function of the seed chain;
// the only mutable state is an explicit bounded cache owned by a Manager, so
// several independent universes can coexist in one process.
package universe

import (
	"math"
	"sort"
	"sync"

	"starforge/pkg/seed"
)

// starProbability is the chance that an integer coordinate in a galaxy
// hosts a star.
const starProbability = 0.3

// Manager derives and caches star systems for one universe seed.
type Manager struct {
	universeSeed uint32

	mu    sync.Mutex
	cache *systemCache
}

// NewManager creates a universe from a root seed with a system cache of the
// given capacity.
func NewManager(universeSeed uint32, cacheCapacity int) *Manager {
	return &Manager{
		universeSeed: universeSeed,
		cache:        newSystemCache(cacheCapacity),
	}
}

// UniverseSeed returns the root seed.
func (m *Manager) UniverseSeed() uint32 { return m.universeSeed }

// GalaxySeed derives the seed for a galaxy.
func (m *Manager) GalaxySeed(galaxyID int) uint32 {
	return seed.Hash(m.universeSeed, "galaxy", galaxyID)
}

// SystemSeed derives the seed for the system at integer coordinates (x, y)
// of a galaxy.
func (m *Manager) SystemSeed(galaxyID, x, y int) uint32 {
	return seed.Hash(m.GalaxySeed(galaxyID), "system", x, y)
}

// GenerateStarSystem materializes the system at (x, y), serving repeats from
// the cache. The cache is only a shortcut: a cold call recomputes the exact
// same system.
func (m *Manager) GenerateStarSystem(galaxyID, x, y int) *StarSystem {
	key := systemKey{galaxyID: galaxyID, x: x, y: y}
	m.mu.Lock()
	if s, ok := m.cache.get(key); ok {
		m.mu.Unlock()
		return s
	}
	m.mu.Unlock()

	systemSeed := m.SystemSeed(galaxyID, x, y)
	count := planetCount(seed.New(systemSeed, "planetcount"))
	system := &StarSystem{
		Seed:     systemSeed,
		GalaxyID: galaxyID,
		X:        x,
		Y:        y,
		Star:     generateStar(systemSeed),
		Planets:  make([]GhostPlanet, count),
	}
	for i := 0; i < count; i++ {
		system.Planets[i] = GenerateGhostPlanet(systemSeed, i, count)
	}

	m.mu.Lock()
	m.cache.put(key, system)
	m.mu.Unlock()
	return system
}

// EvictSystem drops a system from the cache; evicting an absent key is a
// no-op.
func (m *Manager) EvictSystem(galaxyID, x, y int) {
	m.mu.Lock()
	m.cache.evict(systemKey{galaxyID: galaxyID, x: x, y: y})
	m.mu.Unlock()
}

// CachedSystems reports how many systems the cache currently holds.
func (m *Manager) CachedSystems() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cache.len()
}

// SystemSite is a coordinate known to host a star, with its distance from a
// query center.
type SystemSite struct {
	GalaxyID int
	X, Y     int
	Distance float64
}

// NearbySystems scans the square of coordinates around (cx, cy) and returns
// the sites within radius that host a star, sorted by ascending distance
// (ties broken by coordinates so the order is reproducible).
func (m *Manager) NearbySystems(galaxyID, cx, cy int, radius float64) []SystemSite {
	galaxySeed := m.GalaxySeed(galaxyID)
	r := int(math.Ceil(radius))
	var sites []SystemSite
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if seed.HashFloat(galaxySeed, "site", x, y) >= starProbability {
				continue
			}
			dx, dy := float64(x-cx), float64(y-cy)
			dist := math.Hypot(dx, dy)
			if dist > radius {
				continue
			}
			sites = append(sites, SystemSite{GalaxyID: galaxyID, X: x, Y: y, Distance: dist})
		}
	}
	sort.Slice(sites, func(i, j int) bool {
		if sites[i].Distance != sites[j].Distance {
			return sites[i].Distance < sites[j].Distance
		}
		if sites[i].Y != sites[j].Y {
			return sites[i].Y < sites[j].Y
		}
		return sites[i].X < sites[j].X
	})
	return sites
}
