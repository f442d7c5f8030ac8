package strip_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unshredder/internal/strip"
)

// TestFindNeighbors_RampChain verifies that on a smooth horizontal ramp
// every interior strip's best neighbors are its true neighbors.
func TestFindNeighbors_RampChain(t *testing.T) {
	strips, err := strip.Extract(rampImage(160, 12), 16, 2)
	require.NoError(t, err)
	require.Len(t, strips, 10)

	report := strip.FindNeighbors(strips, strip.MetricSAD)

	for i, s := range strips {
		if i > 0 {
			assert.Equal(t, i-1, s.Best[strip.SideLeft].Index, "left neighbor of strip %d", i)
		}
		if i < len(strips)-1 {
			assert.Equal(t, i+1, s.Best[strip.SideRight].Index, "right neighbor of strip %d", i)
		}
		assert.NotEqual(t, i, s.Best[strip.SideLeft].Index)
		assert.NotEqual(t, i, s.Best[strip.SideRight].Index)
	}

	// Two scores per ordered pair of distinct strips.
	n := len(strips)
	assert.Len(t, report.Pairs, 2*n*(n-1))
	assert.Greater(t, report.MeanDistance, 0.0)
	assert.Greater(t, report.StdDevDistance, 0.0)
}

// TestFindNeighbors_TieKeepsFirst checks the tie policy: when two
// candidates have byte-identical borders, the earliest-encountered one
// stays best and later equal scores never overwrite it.
func TestFindNeighbors_TieKeepsFirst(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 12, 6))
	fill := func(x0, x1 int, c color.RGBA) {
		for y := 0; y < 6; y++ {
			for x := x0; x < x1; x++ {
				img.SetRGBA(x, y, c)
			}
		}
	}
	fill(0, 4, color.RGBA{R: 100, A: 255})
	fill(4, 8, color.RGBA{R: 0, A: 255})
	fill(8, 12, color.RGBA{R: 0, A: 255}) // identical to strip 1

	strips, err := strip.Extract(img, 4, 1)
	require.NoError(t, err)

	strip.FindNeighbors(strips, strip.MetricSAD)

	// Strips 1 and 2 score identically against strip 0 on both sides;
	// strip 1 was scanned first and must stay.
	assert.Equal(t, 1, strips[0].Best[strip.SideRight].Index)
	assert.Equal(t, 1, strips[0].Best[strip.SideLeft].Index)
}

// TestFindNeighbors_DistancesNonIncreasing checks the best distance per
// side ends at the true minimum across all candidates.
func TestFindNeighbors_DistancesNonIncreasing(t *testing.T) {
	strips, err := strip.Extract(rampImage(64, 10), 16, 2)
	require.NoError(t, err)

	report := strip.FindNeighbors(strips, strip.MetricSAD)

	for _, s := range strips {
		for _, p := range report.Pairs {
			if p.A != s.Index {
				continue
			}
			assert.LessOrEqual(t, s.Best[p.Side].Distance, p.Distance,
				"strip %d side %s", s.Index, p.Side)
		}
	}
}
