package terrain

import (
	"testing"

	"starforge/internal/automaton"
)

func smallConfig() HeightmapConfig {
	cfg := DefaultHeightmapConfig()
	cfg.Width = 64
	cfg.Height = 64
	cfg.Runs = 3
	return cfg
}

func TestBuildHeightmapDeterministic(t *testing.T) {
	cfg := smallConfig()
	a, err := BuildHeightmap(automaton.Rule(110), 31337, cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := BuildHeightmap(automaton.Rule(110), 31337, cfg)
	for i, v := range a.Values() {
		if b.Values()[i] != v {
			t.Fatalf("heightmap diverged at %d", i)
		}
	}
}

func TestBuildHeightmapBounds(t *testing.T) {
	cfg := smallConfig()
	cfg.TerraceLevels = 6
	cfg.TerraceSharpness = 0.7
	hm, err := BuildHeightmap(automaton.Rule(30), 7, cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range hm.Values() {
		if v < 0 || v > 1 {
			t.Fatalf("heightmap value %v at %d outside [0,1]", v, i)
		}
	}
	s := Summarize(hm)
	if s.Min < 0 || s.Max > 1 || s.StdDev == 0 {
		t.Fatalf("implausible summary %+v", s)
	}
}

func TestBuildHeightmapSeedSensitivity(t *testing.T) {
	cfg := smallConfig()
	a, _ := BuildHeightmap(automaton.Rule(110), 1, cfg)
	b, _ := BuildHeightmap(automaton.Rule(110), 2, cfg)
	same := 0
	for i := range a.Values() {
		if a.Values()[i] == b.Values()[i] {
			same++
		}
	}
	if same == len(a.Values()) {
		t.Fatal("different seeds produced identical heightmaps")
	}
}
