package strip

import (
	"fmt"
)

// EdgeReport is the outcome of left-edge detection.
type EdgeReport struct {
	// Head is the extraction index of the chosen leftmost strip.
	Head int
	// Candidates lists every strip whose assigned left neighbor does not
	// point back at it, in extraction order. A well-formed shredded
	// image has exactly one; zero or several means the matching was
	// ambiguous and Head fell back to the lowest candidate index (or
	// strip 0 when there is no candidate at all).
	Candidates []int
}

// Ambiguous reports whether edge detection found anything other than the
// single expected reciprocity break.
func (r EdgeReport) Ambiguous() bool {
	return len(r.Candidates) != 1
}

// DetectLeftEdge finds the strip that starts the chain. Every interior
// strip is the right neighbor of its own left neighbor; the true leftmost
// strip breaks that symmetry because the left neighbor it was assigned
// does not reciprocate. Strips are scanned in extraction order, so the
// returned head is always the lowest-index candidate.
func DetectLeftEdge(strips []*Strip) EdgeReport {
	report := EdgeReport{}
	for _, s := range strips {
		ln := s.Best[SideLeft].Index
		if ln < 0 || strips[ln].Best[SideRight].Index != s.Index {
			report.Candidates = append(report.Candidates, s.Index)
		}
	}
	if len(report.Candidates) > 0 {
		report.Head = report.Candidates[0]
	}
	return report
}

// Walk follows best-right-neighbor links from the head and returns the
// visited extraction indices in final left-to-right order. The loop is
// bounded by the strip count; if the links close a cycle before every
// strip is visited, Walk reports a broken chain instead of silently
// dropping the remainder.
func Walk(strips []*Strip, head int) ([]int, error) {
	total := len(strips)
	if head < 0 || head >= total {
		return nil, fmt.Errorf("chain head %d out of range [0,%d)", head, total)
	}

	order := make([]int, 0, total)
	visited := make([]bool, total)
	current := head
	for len(order) < total {
		if current < 0 {
			return nil, fmt.Errorf("broken chain: no right neighbor after visiting %d of %d strips", len(order), total)
		}
		if visited[current] {
			return nil, fmt.Errorf("broken chain: cycle at strip %d after visiting %d of %d strips", current, len(order), total)
		}
		visited[current] = true
		order = append(order, current)
		current = strips[current].Best[SideRight].Index
	}
	return order, nil
}
