package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Seed      int64
	Galaxy    int
	SystemX   int
	SystemY   int
	Planet    int
	ChunkSize int
	Radius    int
	Scale     int
	Workers   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Seed:      42,
		ChunkSize: 32,
		Radius:    3,
		Scale:     3,
		Workers:   4,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "universe seed")
	fs.IntVar(&c.Galaxy, "galaxy", c.Galaxy, "galaxy id")
	fs.IntVar(&c.SystemX, "x", c.SystemX, "system grid x")
	fs.IntVar(&c.SystemY, "y", c.SystemY, "system grid y")
	fs.IntVar(&c.Planet, "planet", c.Planet, "orbital index of the planet to view")
	fs.IntVar(&c.ChunkSize, "chunk-size", c.ChunkSize, "terrain chunk edge length")
	fs.IntVar(&c.Radius, "radius", c.Radius, "chunks to stream on each side of the origin")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Workers, "workers", c.Workers, "chunk generation workers")
}
