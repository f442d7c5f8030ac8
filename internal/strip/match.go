package strip

import (
	"gonum.org/v1/gonum/stat"
)

// PairScore records one scored candidate adjacency: strip B placed on the
// given side of strip A.
type PairScore struct {
	A        int
	B        int
	Side     Side
	Distance float64
}

// MatchReport carries the trace of a matching pass so callers can log or
// inspect it without the matcher knowing about any logger.
type MatchReport struct {
	// Pairs holds every candidate adjacency scored, in scan order.
	Pairs []PairScore
	// MeanDistance and StdDevDistance describe the distribution of all
	// pair scores. A small spread is a hint that strips are hard to
	// tell apart and matching may be unreliable.
	MeanDistance   float64
	StdDevDistance float64
}

// FindNeighbors scores every ordered pair of distinct strips on both sides
// and keeps, per strip and side, the minimum-distance neighbor. Equal
// scores never overwrite an earlier winner, so ties keep the
// first-encountered candidate. The scan is exhaustive: O(n^2) pairs with
// no pruning.
func FindNeighbors(strips []*Strip, metric Metric) MatchReport {
	report := MatchReport{}
	if len(strips) > 1 {
		report.Pairs = make([]PairScore, 0, 2*len(strips)*(len(strips)-1))
	}

	for _, s := range strips {
		for _, candidate := range strips {
			if candidate.Index == s.Index {
				continue
			}
			// Candidate on the right: s's right border against the
			// candidate's left border, and symmetrically for the left.
			right := metric.Distance(s.Borders[SideRight], candidate.Borders[SideLeft])
			left := metric.Distance(s.Borders[SideLeft], candidate.Borders[SideRight])

			if right < s.Best[SideRight].Distance {
				s.Best[SideRight] = Neighbor{Index: candidate.Index, Distance: right}
			}
			if left < s.Best[SideLeft].Distance {
				s.Best[SideLeft] = Neighbor{Index: candidate.Index, Distance: left}
			}

			report.Pairs = append(report.Pairs,
				PairScore{A: s.Index, B: candidate.Index, Side: SideRight, Distance: right},
				PairScore{A: s.Index, B: candidate.Index, Side: SideLeft, Distance: left},
			)
		}
	}

	if len(report.Pairs) > 0 {
		distances := make([]float64, len(report.Pairs))
		for i, p := range report.Pairs {
			distances[i] = p.Distance
		}
		report.MeanDistance = stat.Mean(distances, nil)
		report.StdDevDistance = stat.StdDev(distances, nil)
	}
	return report
}
