package strip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unshredder/internal/strip"
)

// linked builds strips with preset neighbor links; pixels and borders are
// irrelevant for edge detection and traversal.
func linked(links ...[2]int) []*strip.Strip {
	strips := make([]*strip.Strip, len(links))
	for i, l := range links {
		strips[i] = &strip.Strip{Index: i}
		strips[i].Best[strip.SideLeft] = strip.Neighbor{Index: l[0]}
		strips[i].Best[strip.SideRight] = strip.Neighbor{Index: l[1]}
	}
	return strips
}

// TestDetectLeftEdge_Unique builds a well-formed chain 2 -> 0 -> 1 and
// checks that exactly the head strip breaks reciprocity.
func TestDetectLeftEdge_Unique(t *testing.T) {
	strips := linked(
		[2]int{2, 1}, // strip 0: interior
		[2]int{0, 0}, // strip 1: rightmost; its right link is spurious
		[2]int{1, 0}, // strip 2: head; left link 1 does not reciprocate
	)

	report := strip.DetectLeftEdge(strips)
	assert.Equal(t, []int{2}, report.Candidates)
	assert.Equal(t, 2, report.Head)
	assert.False(t, report.Ambiguous())
}

// TestDetectLeftEdge_SingleStrip degenerates to "the only strip".
func TestDetectLeftEdge_SingleStrip(t *testing.T) {
	strips := linked([2]int{-1, -1})
	report := strip.DetectLeftEdge(strips)
	assert.Equal(t, 0, report.Head)
	assert.Equal(t, []int{0}, report.Candidates)
	assert.False(t, report.Ambiguous())
}

// TestDetectLeftEdge_ZeroCandidates: two strips that mutually reciprocate
// on both sides leave no reciprocity break; detection falls back to strip
// 0 and flags the ambiguity.
func TestDetectLeftEdge_ZeroCandidates(t *testing.T) {
	strips := linked(
		[2]int{1, 1},
		[2]int{0, 0},
	)
	report := strip.DetectLeftEdge(strips)
	assert.Empty(t, report.Candidates)
	assert.Equal(t, 0, report.Head)
	assert.True(t, report.Ambiguous())
}

// TestDetectLeftEdge_MultipleCandidates picks the lowest extraction index.
func TestDetectLeftEdge_MultipleCandidates(t *testing.T) {
	strips := linked(
		[2]int{2, 1}, // 0: candidate, strips[2].right is 1, not 0
		[2]int{2, 2}, // 1: reciprocal via strips[2].right == 1
		[2]int{0, 1}, // 2: candidate, strips[0].right is 1, not 2
	)
	report := strip.DetectLeftEdge(strips)
	require.Equal(t, []int{0, 2}, report.Candidates)
	assert.Equal(t, 0, report.Head)
	assert.True(t, report.Ambiguous())
}

// TestWalk_FullChain follows the links in order.
func TestWalk_FullChain(t *testing.T) {
	strips := linked(
		[2]int{2, 1},
		[2]int{0, 0},
		[2]int{1, 0},
	)
	order, err := strip.Walk(strips, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, order)
}

// TestWalk_ShortCycle reports a broken chain instead of silently dropping
// the strips outside the cycle.
func TestWalk_ShortCycle(t *testing.T) {
	strips := linked(
		[2]int{3, 1},
		[2]int{0, 0}, // 1 points back to 0: cycle of length 2
		[2]int{3, 3},
		[2]int{2, 2},
	)
	_, err := strip.Walk(strips, 0)
	require.Error(t, err)
	assert.ErrorContains(t, err, "broken chain")
}

// TestWalk_MissingNeighbor stops with an error when a link is absent.
func TestWalk_MissingNeighbor(t *testing.T) {
	strips := linked(
		[2]int{-1, 1},
		[2]int{0, -1},
		[2]int{-1, -1},
	)
	_, err := strip.Walk(strips, 0)
	require.Error(t, err)
	assert.ErrorContains(t, err, "broken chain")
}

// TestWalk_HeadOutOfRange rejects invalid heads.
func TestWalk_HeadOutOfRange(t *testing.T) {
	strips := linked([2]int{-1, -1})
	_, err := strip.Walk(strips, 5)
	assert.Error(t, err)
}

// TestWalk_SingleStrip is the trivial chain of length one.
func TestWalk_SingleStrip(t *testing.T) {
	strips := linked([2]int{-1, -1})
	order, err := strip.Walk(strips, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, order)
}
