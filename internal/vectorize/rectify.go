package vectorize

import "math"

// DefaultSnapTolerance is the angular distance from an axis, in degrees,
// within which an edge snaps exactly horizontal or vertical.
const DefaultSnapTolerance = 10.0

// Rectify snaps near-axis-aligned edges onto the axes and removes duplicate
// edges. It mutates the graph in place and returns it.
//
// An edge within snapTolerance of 0°/180° becomes horizontal: both endpoint
// nodes get the average of their y values. Within tolerance of 90°/270° the
// symmetric treatment applies on x. Because nodes are shared, snapping one
// edge can move the endpoint of another edge touching the same node, which
// aligns whole wall runs rather than single segments. Diagonal edges are
// left alone.
//
// Afterwards edges are deduplicated by unordered node pair, keeping the
// first occurrence. The graph is unweighted, so multiplicity carries no
// information.
func Rectify(g *WallGraph, snapTolerance float64) *WallGraph {
	for _, e := range g.Edges {
		a, b := g.Nodes[e[0]], g.Nodes[e[1]]

		angle := math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi
		if angle < 0 {
			angle += 360
		}

		switch {
		case nearAngle(angle, 0, snapTolerance) || nearAngle(angle, 180, snapTolerance):
			y := (a.Y + b.Y) / 2
			g.Nodes[e[0]].Y = y
			g.Nodes[e[1]].Y = y
		case nearAngle(angle, 90, snapTolerance) || nearAngle(angle, 270, snapTolerance):
			x := (a.X + b.X) / 2
			g.Nodes[e[0]].X = x
			g.Nodes[e[1]].X = x
		}
	}

	seen := make(map[[2]int]bool, len(g.Edges))
	deduped := g.Edges[:0]
	for _, e := range g.Edges {
		key := e
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, e)
	}
	g.Edges = deduped

	return g
}

// nearAngle reports whether angle is within tolerance of target on the
// [0°, 360°) circle, wrapping at 360.
func nearAngle(angle, target, tolerance float64) bool {
	d := math.Abs(angle - target)
	if d > 180 {
		d = 360 - d
	}
	return d <= tolerance
}
