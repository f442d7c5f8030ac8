// Package reconstruct orchestrates the unshredding pipeline: strip
// extraction, neighbor matching, left-edge detection, chain traversal,
// and composition of the output image.
package reconstruct

import (
	"fmt"
	"image"
	"image/draw"

	"go.uber.org/zap"

	"unshredder/internal/raster"
	"unshredder/internal/strip"
)

// Options configures a reconstruction run.
type Options struct {
	StripWidth       int          // Pixel columns per strip
	SamplingDistance int          // Vertical stride for border sampling
	Metric           strip.Metric // Border distance metric
	Logger           *zap.Logger  // Optional; nil disables logging
}

// DefaultOptions returns the options matching the classic shredded-image
// puzzle: 32-pixel strips sampled every second row, red-channel SAD.
func DefaultOptions() Options {
	return Options{
		StripWidth:       32,
		SamplingDistance: 2,
		Metric:           strip.MetricSAD,
	}
}

// Result holds the reconstructed image together with the trace of how it
// was produced.
type Result struct {
	// Output is the reassembled image, same dimensions as the input.
	Output *image.RGBA
	// Order lists the strips' extraction indices in final left-to-right
	// order.
	Order []int
	// Match is the neighbor-matching trace.
	Match strip.MatchReport
	// Edge is the left-edge detection outcome.
	Edge strip.EdgeReport
}

// Reconstruct reassembles a shredded image. The input width must be an
// exact multiple of opts.StripWidth; a short matching cycle that would
// leave strips out of the output is reported as an error rather than
// truncated silently.
func Reconstruct(img image.Image, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if err := raster.ValidateGeometry(img, opts.StripWidth); err != nil {
		return nil, fmt.Errorf("geometry validation: %w", err)
	}

	strips, err := strip.Extract(img, opts.StripWidth, opts.SamplingDistance)
	if err != nil {
		return nil, fmt.Errorf("strip extraction: %w", err)
	}
	log.Info("extracted strips",
		zap.Int("count", len(strips)),
		zap.Int("stripWidth", opts.StripWidth),
		zap.Int("samplingDistance", opts.SamplingDistance))

	match := strip.FindNeighbors(strips, opts.Metric)
	log.Info("matched neighbors",
		zap.String("metric", opts.Metric.String()),
		zap.Int("pairsScored", len(match.Pairs)),
		zap.Float64("meanDistance", match.MeanDistance),
		zap.Float64("stddevDistance", match.StdDevDistance))

	edge := strip.DetectLeftEdge(strips)
	if edge.Ambiguous() {
		log.Warn("ambiguous left edge, using lowest candidate index",
			zap.Ints("candidates", edge.Candidates),
			zap.Int("head", edge.Head))
	} else {
		log.Info("detected left edge", zap.Int("head", edge.Head))
	}

	order, err := strip.Walk(strips, edge.Head)
	if err != nil {
		return nil, fmt.Errorf("chain traversal: %w", err)
	}
	log.Info("walked chain", zap.Ints("order", order))

	result := &Result{
		Output: compose(strips, order, img.Bounds(), opts.StripWidth),
		Order:  order,
		Match:  match,
		Edge:   edge,
	}
	return result, nil
}

// compose pastes the strips into their final slots: the strip in slot k
// occupies pixel columns [k*stripWidth, (k+1)*stripWidth).
func compose(strips []*strip.Strip, order []int, bounds image.Rectangle, stripWidth int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for slot, idx := range order {
		dst := image.Rect(slot*stripWidth, 0, (slot+1)*stripWidth, bounds.Dy())
		draw.Draw(out, dst, strips[idx].Pixels, image.Point{}, draw.Src)
	}
	return out
}
