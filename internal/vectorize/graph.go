package vectorize

import (
	"github.com/ironsheep/floorplan-mcp/internal/sketch"
)

// DefaultMergeDistance is the radius, in pixels, within which stroke
// endpoints collapse into one shared graph node. Freehand wall corners
// rarely land closer than this to each other.
const DefaultMergeDistance = 30.0

// WallGraph is the planar graph derived from wall strokes: deduplicated node
// points and undirected edges as index pairs into Nodes. Nodes keep their
// insertion order; edges keep stroke-processing order.
type WallGraph struct {
	Nodes []sketch.Point `json:"nodes"`
	Edges [][2]int       `json:"edges"`
}

// BuildGraph converts wall strokes into a wall graph.
//
// Each stroke is simplified first, then its consecutive point pairs become
// candidate edges. Endpoints within mergeDistance of an existing node reuse
// that node; the scan is greedy, so the first-seen point anchors the merged
// location. Candidate edges whose endpoints resolve to the same node are
// discarded. Duplicate edges survive this stage; Rectify collapses them.
//
// Strokes with fewer than two points contribute nothing.
func BuildGraph(strokes []sketch.Stroke, mergeDistance, angleTolerance float64) *WallGraph {
	g := &WallGraph{}

	for _, s := range strokes {
		points := Simplify(s.Points, angleTolerance)
		if len(points) < 2 {
			continue
		}

		for i := 0; i < len(points)-1; i++ {
			a := g.resolveNode(points[i], mergeDistance)
			b := g.resolveNode(points[i+1], mergeDistance)
			if a == b {
				continue
			}
			g.Edges = append(g.Edges, [2]int{a, b})
		}
	}

	return g
}

// resolveNode returns the index of an existing node within mergeDistance of
// p, or appends p as a new node. The linear scan is O(nodes) per call, which
// is fine at sketch size.
func (g *WallGraph) resolveNode(p sketch.Point, mergeDistance float64) int {
	for i, n := range g.Nodes {
		if distance(n, p) <= mergeDistance {
			return i
		}
	}
	g.Nodes = append(g.Nodes, p)
	return len(g.Nodes) - 1
}
