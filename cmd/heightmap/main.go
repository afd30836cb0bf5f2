package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	"starforge/internal/automaton"
	"starforge/internal/render"
	"starforge/internal/terrain"
)

func main() {
	cfg := terrain.DefaultHeightmapConfig()
	ruleFlag := flag.Int("rule", 110, "automaton rule")
	seedFlag := flag.Int64("seed", 42, "world seed")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "heightmap width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "heightmap height")
	flag.IntVar(&cfg.Runs, "runs", cfg.Runs, "automaton overlay runs")
	flag.Float64Var(&cfg.DetailStrength, "detail", cfg.DetailStrength, "micro-detail strength")
	flag.IntVar(&cfg.TerraceLevels, "terrace", cfg.TerraceLevels, "terrace levels, below 2 to disable")
	flag.Float64Var(&cfg.TerraceSharpness, "terrace-sharpness", 0.6, "terrace blend factor")
	out := flag.String("out", "heightmap.png", "output file")
	flag.Parse()

	rule, err := automaton.NewRule(*ruleFlag)
	if err != nil {
		log.Fatalf("heightmap: %v", err)
	}
	hm, err := terrain.BuildHeightmap(rule, uint32(*seedFlag), cfg)
	if err != nil {
		log.Fatalf("heightmap: %v", err)
	}

	s := terrain.Summarize(hm)
	c := automaton.Classify(rule)
	log.Printf("rule %d (%s): min=%.3f max=%.3f mean=%.3f stddev=%.3f",
		*ruleFlag, c.Label, s.Min, s.Max, s.Mean, s.StdDev)

	buf := make([]byte, hm.W*hm.H*4)
	render.FillHeightRGBA(buf, hm.Values())
	img := &image.RGBA{Pix: buf, Stride: 4 * hm.W, Rect: image.Rect(0, 0, hm.W, hm.H)}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("heightmap: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("heightmap: encode: %v", err)
	}
	log.Printf("wrote %s (%dx%d)", *out, hm.W, hm.H)
}
