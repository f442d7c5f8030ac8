package strip

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"unshredder/pkg/colorutil"
)

// Metric selects how two border columns are scored against each other.
// Lower scores mean better visual continuity.
type Metric int

const (
	// MetricSAD sums the absolute red-channel differences of paired
	// samples. The remaining channels are ignored on purpose: the red
	// channel alone is cheap and discriminates well on photographs.
	MetricSAD Metric = iota
	// MetricSSD sums the squared red-channel differences, punishing
	// large local mismatches harder than SAD.
	MetricSSD
	// MetricLuma sums absolute Rec. 709 luma differences.
	MetricLuma
	// MetricLab sums CIE-Lab distances of paired samples, trading speed
	// for a perceptual notion of continuity.
	MetricLab
)

func (m Metric) String() string {
	switch m {
	case MetricSAD:
		return "sad"
	case MetricSSD:
		return "ssd"
	case MetricLuma:
		return "luma"
	case MetricLab:
		return "lab"
	default:
		return "unknown"
	}
}

// ParseMetric converts a metric name into a Metric.
func ParseMetric(name string) (Metric, error) {
	switch name {
	case "sad":
		return MetricSAD, nil
	case "ssd":
		return MetricSSD, nil
	case "luma":
		return MetricLuma, nil
	case "lab":
		return MetricLab, nil
	default:
		return 0, fmt.Errorf("unknown metric %q (want sad, ssd, luma, or lab)", name)
	}
}

// Distance scores two border columns. The sequences must have equal
// length; both always derive from the same sampling stride and image
// height, so a mismatch is a bug in the caller, not an input condition.
func (m Metric) Distance(a, b []color.RGBA) float64 {
	var sum float64
	switch m {
	case MetricSSD:
		for i := range a {
			d := float64(a[i].R) - float64(b[i].R)
			sum += d * d
		}
	case MetricLuma:
		for i := range a {
			sum += math.Abs(colorutil.Luminance(a[i]) - colorutil.Luminance(b[i]))
		}
	case MetricLab:
		for i := range a {
			ca, _ := colorful.MakeColor(a[i])
			cb, _ := colorful.MakeColor(b[i])
			sum += ca.DistanceLab(cb)
		}
	default:
		for i := range a {
			sum += math.Abs(float64(a[i].R) - float64(b[i].R))
		}
	}
	return sum
}
