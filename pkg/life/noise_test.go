package life

import (
	"testing"

	perlin "github.com/aquilax/go-perlin"
)

func TestRandomizeClustered(t *testing.T) {
	e := NewWithConfig(Config{Rows: 24, Cols: 24, Seed: 8})
	e.Step(DefaultRule())

	e.RandomizeClustered(0, 6)
	if e.Population() != 0 {
		t.Fatalf("p=0 population = %d", e.Population())
	}
	if e.Generation() != 0 {
		t.Fatal("clustered fill must reset the generation")
	}

	e.RandomizeClustered(0.4, 6)
	if e.Population() == 0 {
		t.Fatal("p=0.4 produced an empty board")
	}
}

func TestRandomizeClusteredDeterministic(t *testing.T) {
	a := NewWithConfig(Config{Rows: 16, Cols: 20, Seed: 21})
	b := NewWithConfig(Config{Rows: 16, Cols: 20, Seed: 21})
	a.RandomizeClustered(0.35, 5)
	b.RandomizeClustered(0.35, 5)
	if !a.Grid().Equal(b.Grid()) {
		t.Fatal("equal seeds must produce equal clustered boards")
	}
}

func TestClusterNoiseAvoidsLattice(t *testing.T) {
	field := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, 4)
	for _, scale := range []float64{1, 2, DefaultClusterScale} {
		zeros := 0
		for r := 0; r < 20; r++ {
			for c := 0; c < 20; c++ {
				if clusterNoise(field, r, c, scale) == 0 {
					zeros++
				}
			}
		}
		if zeros > 0 {
			t.Fatalf("scale %v: %d of 400 samples had no modulation", scale, zeros)
		}
	}
}

func TestRandomizeClusteredDefaultScale(t *testing.T) {
	a := NewWithConfig(Config{Rows: 16, Cols: 16, Seed: 5})
	b := NewWithConfig(Config{Rows: 16, Cols: 16, Seed: 5})
	a.RandomizeClustered(0.3, 0)
	b.RandomizeClustered(0.3, DefaultClusterScale)
	if !a.Grid().Equal(b.Grid()) {
		t.Fatal("non-positive scale must fall back to DefaultClusterScale")
	}
}
