package vectorize

import (
	"math"

	"github.com/ironsheep/floorplan-mcp/internal/sketch"
)

// DefaultAngleTolerance is the deviation from a straight path, in degrees,
// below which an interior stroke point is considered noise and dropped.
const DefaultAngleTolerance = 10.0

// Simplify reduces a stroke to its structurally significant vertices.
//
// The first and last point are always kept. Each interior point is kept only
// when the path bends there by more than angleTolerance degrees, measured as
// the deviation from 180° of the angle between the vector back to the
// previous retained point and the vector forward to the next raw point.
//
// Inputs with two or fewer points are returned unchanged. The result is
// never longer than the input and preserves drawing order.
func Simplify(points []sketch.Point, angleTolerance float64) []sketch.Point {
	if len(points) <= 2 {
		return points
	}

	kept := make([]sketch.Point, 0, len(points))
	kept = append(kept, points[0])

	for i := 1; i < len(points)-1; i++ {
		prev := kept[len(kept)-1]
		if bendAngle(prev, points[i], points[i+1]) > angleTolerance {
			kept = append(kept, points[i])
		}
	}

	return append(kept, points[len(points)-1])
}

// bendAngle returns how far the path deviates from straight at cur, in
// degrees. Coincident neighbors leave the bend undefined; they count as
// colinear (0°) so the degenerate point gets dropped.
func bendAngle(prev, cur, next sketch.Point) float64 {
	v1x, v1y := prev.X-cur.X, prev.Y-cur.Y
	v2x, v2y := next.X-cur.X, next.Y-cur.Y

	len1 := math.Hypot(v1x, v1y)
	len2 := math.Hypot(v2x, v2y)
	if len1 == 0 || len2 == 0 {
		return 0
	}

	cos := (v1x*v2x + v1y*v2y) / (len1 * len2)
	// Clamp against floating-point drift before acos.
	cos = math.Max(-1, math.Min(1, cos))

	angle := math.Acos(cos) * 180 / math.Pi
	return 180 - angle
}

func distance(a, b sketch.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
