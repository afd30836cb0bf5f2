package render

import "testing"

func TestFillBiomeRGBA(t *testing.T) {
	biomes := []uint8{0, 5, 200}
	elevation := []float64{1, 0, 1}
	buf := make([]byte, len(biomes)*4)
	FillBiomeRGBA(buf, biomes, elevation)

	// Full elevation keeps the palette color exactly.
	deep := BiomePalette[0]
	if buf[0] != deep.R || buf[1] != deep.G || buf[2] != deep.B || buf[3] != 255 {
		t.Fatalf("deep ocean pixel = %v", buf[0:4])
	}
	// Zero elevation darkens to 60%.
	grass := BiomePalette[5]
	if buf[4] != uint8(float64(grass.R)*0.6) {
		t.Fatalf("shaded red channel = %d", buf[4])
	}
	// Out-of-range ids clamp to the last palette entry.
	last := BiomePalette[len(BiomePalette)-1]
	if buf[8] != last.R || buf[9] != last.G || buf[10] != last.B {
		t.Fatalf("unknown biome pixel = %v", buf[8:12])
	}
}

func TestFillHeightRGBA(t *testing.T) {
	buf := make([]byte, 4*4)
	FillHeightRGBA(buf, []float64{0, 1, 0.5, 1.7})
	if buf[0] != 0 || buf[4] != 255 || buf[8] != 127 || buf[12] != 255 {
		t.Fatalf("gray channels = %d %d %d %d", buf[0], buf[4], buf[8], buf[12])
	}
	for i := 0; i < 4; i++ {
		if buf[i*4+3] != 255 {
			t.Fatalf("pixel %d alpha = %d", i, buf[i*4+3])
		}
	}
}
