package main

import (
	"flag"
	"fmt"

	"starforge/internal/universe"
)

func main() {
	seedFlag := flag.Int64("seed", 42, "universe seed")
	galaxy := flag.Int("galaxy", 0, "galaxy id")
	x := flag.Int("x", 0, "system grid x")
	y := flag.Int("y", 0, "system grid y")
	radius := flag.Float64("radius", 8, "nearby-system scan radius")
	flag.Parse()

	m := universe.NewManager(uint32(*seedFlag), 32)
	system := m.GenerateStarSystem(*galaxy, *x, *y)

	fmt.Printf("system (%d, %d) of galaxy %d  seed=%d\n", *x, *y, *galaxy, system.Seed)
	fmt.Printf("star: %s  %s  %.0fK\n\n", system.Star.Name, system.Star.Type, system.Star.Temperature)
	fmt.Printf("%-14s %-10s %-9s %6s %6s %6s %6s %6s\n",
		"name", "archetype", "class", "rule", "orbit", "size", "moons", "rings")
	for _, p := range system.Planets {
		rings := "-"
		if p.HasRings {
			rings = "yes"
		}
		fmt.Printf("%-14s %-10s %-9s %6d %6.1f %6.2f %6d %6s\n",
			p.Name, p.Archetype, p.RuleClass, p.Rule, p.OrbitRadius, p.Size, p.MoonCount, rings)
	}

	sites := m.NearbySystems(*galaxy, *x, *y, *radius)
	fmt.Printf("\n%d systems within radius %.1f:\n", len(sites), *radius)
	for _, s := range sites {
		marker := " "
		if s.X == *x && s.Y == *y {
			marker = "*"
		}
		fmt.Printf("%s (%4d, %4d)  d=%5.2f\n", marker, s.X, s.Y, s.Distance)
	}
}
