package worldgen

// Request asks for one chunk of terrain. MoistureRule below zero means the
// moisture field carries no rule fingerprint.
type Request struct {
	ChunkX       int
	ChunkY       int
	ChunkSize    int
	Rule         int
	Seed         uint32
	MoistureRule int
}

// Chunk is a self-describing generation result: it carries its own
// coordinates so consumers can process completions in any order and drop
// stale ones. Arrays are row-major with EdgeLength = ChunkSize+1 samples per
// side.
type Chunk struct {
	ChunkX           int
	ChunkY           int
	EdgeLength       int
	Elevation        []float64
	Moisture         []float64
	Biomes           []uint8
	GenerationTimeMs float64
}
