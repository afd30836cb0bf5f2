package render

import "image/color"

// BiomePalette indexes display colors by worldgen biome id.
var BiomePalette = []color.RGBA{
	{18, 58, 102, 255},   // DEEP_OCEAN
	{29, 90, 148, 255},   // OCEAN
	{223, 208, 143, 255}, // BEACH
	{201, 168, 76, 255},  // DESERT
	{181, 169, 84, 255},  // SAVANNA
	{106, 170, 64, 255},  // GRASSLAND
	{52, 128, 60, 255},   // FOREST
	{28, 92, 43, 255},    // DENSE_FOREST
	{64, 84, 56, 255},    // SWAMP
	{136, 128, 120, 255}, // MOUNTAIN
	{236, 240, 244, 255}, // SNOW_PEAK
	{200, 228, 245, 255}, // ICE
}

// FillBiomeRGBA converts biome ids into RGBA pixels in buf, shading each
// pixel by its elevation so relief reads through the flat biome colors.
// Unknown ids clamp to the last palette entry.
func FillBiomeRGBA(buf []byte, biomes []uint8, elevation []float64) {
	last := len(BiomePalette) - 1
	for i, b := range biomes {
		idx := int(b)
		if idx > last {
			idx = last
		}
		col := BiomePalette[idx]
		shade := 0.6 + 0.4*elevation[i]
		base := i * 4
		buf[base+0] = uint8(float64(col.R) * shade)
		buf[base+1] = uint8(float64(col.G) * shade)
		buf[base+2] = uint8(float64(col.B) * shade)
		buf[base+3] = col.A
	}
}

// FillHeightRGBA converts a normalized heightmap into grayscale RGBA pixels.
func FillHeightRGBA(buf []byte, values []float64) {
	for i, v := range values {
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		g := uint8(v * 255)
		base := i * 4
		buf[base+0] = g
		buf[base+1] = g
		buf[base+2] = g
		buf[base+3] = 255
	}
}
