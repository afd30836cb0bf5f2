package universe

// systemKey addresses one star system within the universe.
type systemKey struct {
	galaxyID int
	x, y     int
}

// systemCache is a bounded first-in-first-out map of generated systems. It
// is purely a performance shortcut: every value is a pure function of its
// key, so eviction (or overwriting with an equivalent value) never affects
// correctness.
type systemCache struct {
	capacity int
	entries  map[systemKey]*StarSystem
	order    []systemKey
}

func newSystemCache(capacity int) *systemCache {
	if capacity < 1 {
		capacity = 1
	}
	return &systemCache{
		capacity: capacity,
		entries:  make(map[systemKey]*StarSystem, capacity),
	}
}

func (c *systemCache) get(k systemKey) (*StarSystem, bool) {
	s, ok := c.entries[k]
	return s, ok
}

func (c *systemCache) put(k systemKey, s *StarSystem) {
	if _, ok := c.entries[k]; !ok {
		for len(c.entries) >= c.capacity {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, k)
	}
	c.entries[k] = s
}

// evict drops k if present; evicting a missing key is a no-op.
func (c *systemCache) evict(k systemKey) {
	if _, ok := c.entries[k]; !ok {
		return
	}
	delete(c.entries, k)
	for i, key := range c.order {
		if key == k {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *systemCache) len() int { return len(c.entries) }
