// Package strip implements the core reconstruction algorithm: strip
// extraction, border sampling, pairwise distance scoring, best-neighbor
// matching, left-edge detection, and chain traversal.
package strip

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Side identifies one vertical edge of a strip.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Neighbor is the best-known adjacency candidate on one side of a strip.
// Index is a position in the strip slice, not a pointer; -1 means no
// candidate has been scored yet.
type Neighbor struct {
	Index    int
	Distance float64
}

// Strip is one vertical slice of the shredded input image.
type Strip struct {
	// Index is the strip's position in the shredded input ordering.
	// It identifies the strip; it says nothing about its true position.
	Index int

	// Pixels is the strip's own copy of its pixel block.
	Pixels *image.RGBA

	// Borders holds the subsampled edge columns, indexed by Side.
	// Computed once at construction and never mutated.
	Borders [2][]color.RGBA

	// Best holds the minimum-distance neighbor per side. Distance only
	// ever decreases during matching; equal scores never overwrite.
	Best [2]Neighbor
}

// SampleBorder returns the pixel values along one edge column of img,
// sampled at rows 0, stride, 2*stride, ... while the row is within the
// image height.
func SampleBorder(img image.Image, side Side, stride int) []color.RGBA {
	bounds := img.Bounds()
	x := bounds.Min.X
	if side == SideRight {
		x = bounds.Max.X - 1
	}
	h := bounds.Dy()

	samples := make([]color.RGBA, 0, (h+stride-1)/stride)
	for y := 0; y < h; y += stride {
		r16, g16, b16, a16 := img.At(x, bounds.Min.Y+y).RGBA()
		samples = append(samples, color.RGBA{
			R: uint8(r16 >> 8),
			G: uint8(g16 >> 8),
			B: uint8(b16 >> 8),
			A: uint8(a16 >> 8),
		})
	}
	return samples
}

// Extract splits img into width/stripWidth strips and samples their border
// columns at the given vertical stride. The image width must be an exact
// multiple of stripWidth.
func Extract(img image.Image, stripWidth, stride int) ([]*Strip, error) {
	if stripWidth <= 0 {
		return nil, fmt.Errorf("strip width must be positive, got %d", stripWidth)
	}
	if stride <= 0 {
		return nil, fmt.Errorf("sampling stride must be positive, got %d", stride)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w%stripWidth != 0 {
		return nil, fmt.Errorf("image width %d is not a multiple of strip width %d", w, stripWidth)
	}

	count := w / stripWidth
	strips := make([]*Strip, count)
	for i := 0; i < count; i++ {
		pixels := image.NewRGBA(image.Rect(0, 0, stripWidth, h))
		src := image.Point{X: bounds.Min.X + i*stripWidth, Y: bounds.Min.Y}
		draw.Draw(pixels, pixels.Bounds(), img, src, draw.Src)

		strips[i] = &Strip{
			Index:  i,
			Pixels: pixels,
			Borders: [2][]color.RGBA{
				SideLeft:  SampleBorder(pixels, SideLeft, stride),
				SideRight: SampleBorder(pixels, SideRight, stride),
			},
			Best: [2]Neighbor{
				SideLeft:  {Index: -1, Distance: math.Inf(1)},
				SideRight: {Index: -1, Distance: math.Inf(1)},
			},
		}
	}
	return strips, nil
}
