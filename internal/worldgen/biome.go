package worldgen

// Biome identifies a terrain category derived from elevation and moisture.
type Biome uint8

const (
	BiomeDeepOcean Biome = iota
	BiomeOcean
	BiomeBeach
	BiomeDesert
	BiomeSavanna
	BiomeGrassland
	BiomeForest
	BiomeDenseForest
	BiomeSwamp
	BiomeMountain
	BiomeSnowPeak
	BiomeIce
)

// String returns the biome's display name.
func (b Biome) String() string {
	if int(b) < len(biomeNames) {
		return biomeNames[b]
	}
	return "UNKNOWN"
}

var biomeNames = []string{
	"DEEP_OCEAN", "OCEAN", "BEACH", "DESERT", "SAVANNA", "GRASSLAND",
	"FOREST", "DENSE_FOREST", "SWAMP", "MOUNTAIN", "SNOW_PEAK", "ICE",
}

// biomeRule is one row of the classification table.
type biomeRule struct {
	id   Biome
	when func(e, m float64) bool
}

// biomeTable is evaluated top to bottom; the first matching row wins. The
// thresholds are fixed: changing any of them reshapes every generated world.
var biomeTable = []biomeRule{
	{BiomeDeepOcean, func(e, m float64) bool { return e < 0.20 }},
	{BiomeOcean, func(e, m float64) bool { return e < 0.30 }},
	{BiomeBeach, func(e, m float64) bool { return e < 0.33 }},
	{BiomeIce, func(e, m float64) bool { return e > 0.85 && m > 0.5 }},
	{BiomeSnowPeak, func(e, m float64) bool { return e > 0.85 }},
	{BiomeDenseForest, func(e, m float64) bool { return e > 0.70 && m > 0.7 }},
	{BiomeMountain, func(e, m float64) bool { return e > 0.70 }},
	{BiomeDesert, func(e, m float64) bool { return e > 0.50 && m < 0.25 }},
	{BiomeGrassland, func(e, m float64) bool { return e > 0.50 && m < 0.50 }},
	{BiomeForest, func(e, m float64) bool { return e > 0.50 && m < 0.75 }},
	{BiomeDenseForest, func(e, m float64) bool { return e > 0.50 }},
	{BiomeSavanna, func(e, m float64) bool { return m < 0.60 }},
	{BiomeSwamp, func(e, m float64) bool { return true }},
}

// ClassifyBiome maps an (elevation, moisture) pair through the threshold
// table.
func ClassifyBiome(e, m float64) Biome {
	for _, row := range biomeTable {
		if row.when(e, m) {
			return row.id
		}
	}
	return BiomeSwamp
}
