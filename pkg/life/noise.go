package life

import (
	perlin "github.com/aquilax/go-perlin"
)

const (
	noiseAlpha   = 2
	noiseBeta    = 2
	noiseOctaves = 3

	// DefaultClusterScale is used when a non-positive scale is requested.
	DefaultClusterScale = 8
)

// RandomizeClustered fills the board like Randomize but modulates the local
// density with Perlin noise, so live cells gather in patches roughly scale
// cells across. Each cell is alive with probability p*(1+n) where n is the
// noise value in [-1, 1]. p <= 0 clears the board. The generation resets.
func (e *Engine) RandomizeClustered(p, scale float64) {
	if scale <= 0 {
		scale = DefaultClusterScale
	}
	field := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, e.rng.Int64())
	for r, row := range e.cur {
		for c := range row {
			n := clusterNoise(field, r, c, scale)
			row[c] = 0
			if e.rng.Chance(max(p, 0) * (1 + n)) {
				row[c] = 1
			}
		}
	}
	e.generation = 0
}

// clusterNoise samples the field at the centre of cell (r, c). Perlin noise
// vanishes on integer lattice points, so sampling cell corners would leave
// whole rows and columns unmodulated.
func clusterNoise(field *perlin.Perlin, r, c int, scale float64) float64 {
	return field.Noise2D((float64(c)+0.5)/scale, (float64(r)+0.5)/scale)
}
