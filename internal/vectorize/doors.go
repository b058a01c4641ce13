package vectorize

import (
	"math"

	"github.com/ironsheep/floorplan-mcp/internal/sketch"
)

// DoorSpan is a pair of door endpoints.
type DoorSpan struct {
	Start sketch.Point `json:"start"`
	End   sketch.Point `json:"end"`
}

// Door is a straight opening snapped onto the wall graph. Start and End are
// the snapped endpoints; Original preserves the raw stroke endpoints in
// pixel coordinates for diagnostics and is never rescaled.
type Door struct {
	Start    sketch.Point `json:"start"`
	End      sketch.Point `json:"end"`
	Original DoorSpan     `json:"original"`
}

// ProjectDoors snaps door strokes onto the wall graph.
//
// A door is modeled as a single straight opening: only the first and last
// raw point of each stroke matter, and strokes with fewer than two points
// are skipped. Each endpoint is projected perpendicularly onto every wall
// edge (clamped to the finite segment) and snaps to the closest projection.
//
// maxSnapDistance > 0 rejects stray strokes: when either endpoint's nearest
// wall is farther than that many pixels, the whole stroke is dropped instead
// of being silently relocated. With maxSnapDistance of 0 every stroke snaps
// regardless of distance, and on an edgeless graph the endpoints stay where
// they were drawn.
func ProjectDoors(doorStrokes []sketch.Stroke, g *WallGraph, maxSnapDistance float64) []Door {
	doors := make([]Door, 0, len(doorStrokes))

	for _, s := range doorStrokes {
		if len(s.Points) < 2 {
			continue
		}

		start := s.Points[0]
		end := s.Points[len(s.Points)-1]

		snappedStart, distStart := snapToWalls(start, g)
		snappedEnd, distEnd := snapToWalls(end, g)

		if maxSnapDistance > 0 && (distStart > maxSnapDistance || distEnd > maxSnapDistance) {
			continue
		}

		doors = append(doors, Door{
			Start:    snappedStart,
			End:      snappedEnd,
			Original: DoorSpan{Start: start, End: end},
		})
	}

	return doors
}

// snapToWalls returns the closest point to p on any wall edge and the
// distance to it. On a graph without edges p comes back unchanged with an
// infinite distance.
func snapToWalls(p sketch.Point, g *WallGraph) (sketch.Point, float64) {
	best := p
	bestDist := math.Inf(1)

	for _, e := range g.Edges {
		candidate := closestPointOnSegment(p, g.Nodes[e[0]], g.Nodes[e[1]])
		if d := distance(p, candidate); d < bestDist {
			best = candidate
			bestDist = d
		}
	}

	return best, bestDist
}

// closestPointOnSegment returns the point on segment ab nearest to p. A
// zero-length segment degenerates to its single point.
func closestPointOnSegment(p, a, b sketch.Point) sketch.Point {
	dx := b.X - a.X
	dy := b.Y - a.Y

	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return a
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return sketch.Point{X: a.X + t*dx, Y: a.Y + t*dy}
}
