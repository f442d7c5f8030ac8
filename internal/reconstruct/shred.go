package reconstruct

import (
	"fmt"
	"image"
	"math/rand"

	"unshredder/internal/raster"
	"unshredder/internal/strip"
)

// Shred is the inverse tool: it splits img into strips and reassembles
// them in a seeded pseudorandom order, producing test inputs for
// Reconstruct. The same seed always yields the same permutation.
func Shred(img image.Image, stripWidth int, seed int64) (*image.RGBA, []int, error) {
	if err := raster.ValidateGeometry(img, stripWidth); err != nil {
		return nil, nil, fmt.Errorf("geometry validation: %w", err)
	}

	// Stride does not matter here; borders are sampled but unused.
	strips, err := strip.Extract(img, stripWidth, 1)
	if err != nil {
		return nil, nil, fmt.Errorf("strip extraction: %w", err)
	}

	order := rand.New(rand.NewSource(seed)).Perm(len(strips))
	return compose(strips, order, img.Bounds(), stripWidth), order, nil
}
