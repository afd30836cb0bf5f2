package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"
	"time"

	"starforge/internal/render"
	"starforge/internal/worldgen"
)

func main() {
	seedFlag := flag.Int64("seed", 42, "terrain seed")
	rule := flag.Int("rule", 110, "planet automaton rule")
	moistureRule := flag.Int("moisture-rule", -1, "moisture rule, negative to disable")
	chunkSize := flag.Int("chunk-size", 32, "chunk edge length")
	chunks := flag.Int("chunks", 8, "chunks per side of the exported square")
	workers := flag.Int("workers", 4, "generation workers")
	out := flag.String("out", "map.png", "output file")
	flag.Parse()

	size := *chunkSize
	side := *chunks
	w := side * size
	biomes := make([]uint8, w*w)
	elevation := make([]float64, w*w)

	start := time.Now()
	pool := worldgen.NewPool(*workers)
	go func() {
		for cy := 0; cy < side; cy++ {
			for cx := 0; cx < side; cx++ {
				err := pool.Submit(worldgen.Request{
					ChunkX:       cx,
					ChunkY:       cy,
					ChunkSize:    size,
					Rule:         *rule,
					Seed:         uint32(*seedFlag),
					MoistureRule: *moistureRule,
				})
				if err != nil {
					log.Fatalf("mapexport: %v", err)
				}
			}
		}
		pool.Close()
	}()

	count := 0
	var genMs float64
	for chunk := range pool.Results() {
		count++
		genMs += chunk.GenerationTimeMs
		baseX := chunk.ChunkX * size
		baseY := chunk.ChunkY * size
		for ly := 0; ly < size; ly++ {
			row := (baseY+ly)*w + baseX
			src := ly * chunk.EdgeLength
			for lx := 0; lx < size; lx++ {
				biomes[row+lx] = chunk.Biomes[src+lx]
				elevation[row+lx] = chunk.Elevation[src+lx]
			}
		}
	}

	buf := make([]byte, w*w*4)
	render.FillBiomeRGBA(buf, biomes, elevation)
	img := &image.RGBA{Pix: buf, Stride: 4 * w, Rect: image.Rect(0, 0, w, w)}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("mapexport: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("mapexport: encode: %v", err)
	}

	log.Printf("wrote %s: %dx%d px, %d chunks, %.1f ms generation (%.2f ms/chunk), %s total",
		*out, w, w, count, genMs, genMs/float64(count), time.Since(start).Round(time.Millisecond))
}
