package vectorize

import (
	"math"
	"testing"

	"github.com/ironsheep/floorplan-mcp/internal/sketch"
)

func doorStroke(points ...sketch.Point) sketch.Stroke {
	return sketch.Stroke{Points: points, Role: sketch.RoleDoor}
}

func approx(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

func TestProjectDoors_SnapsToNearestWall(t *testing.T) {
	g := &WallGraph{
		Nodes: []sketch.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 50}, {X: 100, Y: 50}},
		Edges: [][2]int{{0, 1}, {2, 3}},
	}

	doors := ProjectDoors([]sketch.Stroke{
		doorStroke(sketch.Point{X: 20, Y: 5}, sketch.Point{X: 40, Y: 8}),
	}, g, 0)

	if len(doors) != 1 {
		t.Fatalf("door count: got %d, want 1", len(doors))
	}

	d := doors[0]
	if !approx(d.Start.X, 20) || !approx(d.Start.Y, 0) {
		t.Errorf("start: got %v, want (20,0)", d.Start)
	}
	if !approx(d.End.X, 40) || !approx(d.End.Y, 0) {
		t.Errorf("end: got %v, want (40,0)", d.End)
	}
}

func TestProjectDoors_EndpointsCanSnapToDifferentWalls(t *testing.T) {
	g := &WallGraph{
		Nodes: []sketch.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 50}, {X: 100, Y: 50}},
		Edges: [][2]int{{0, 1}, {2, 3}},
	}

	doors := ProjectDoors([]sketch.Stroke{
		doorStroke(sketch.Point{X: 30, Y: 10}, sketch.Point{X: 30, Y: 45}),
	}, g, 0)

	if len(doors) != 1 {
		t.Fatalf("door count: got %d, want 1", len(doors))
	}
	if !approx(doors[0].Start.Y, 0) {
		t.Errorf("start snapped to y=%v, want 0", doors[0].Start.Y)
	}
	if !approx(doors[0].End.Y, 50) {
		t.Errorf("end snapped to y=%v, want 50", doors[0].End.Y)
	}
}

func TestProjectDoors_ClampsToSegment(t *testing.T) {
	g := &WallGraph{
		Nodes: []sketch.Point{{X: 0, Y: 0}, {X: 100, Y: 0}},
		Edges: [][2]int{{0, 1}},
	}

	// Beyond the wall's end: projection clamps to the endpoint.
	doors := ProjectDoors([]sketch.Stroke{
		doorStroke(sketch.Point{X: 120, Y: 10}, sketch.Point{X: 150, Y: 10}),
	}, g, 0)

	if len(doors) != 1 {
		t.Fatalf("door count: got %d, want 1", len(doors))
	}
	if !approx(doors[0].Start.X, 100) || !approx(doors[0].Start.Y, 0) {
		t.Errorf("start: got %v, want clamp to (100,0)", doors[0].Start)
	}
	if !approx(doors[0].End.X, 100) || !approx(doors[0].End.Y, 0) {
		t.Errorf("end: got %v, want clamp to (100,0)", doors[0].End)
	}
}

func TestProjectDoors_PreservesOriginal(t *testing.T) {
	g := &WallGraph{
		Nodes: []sketch.Point{{X: 0, Y: 0}, {X: 100, Y: 0}},
		Edges: [][2]int{{0, 1}},
	}

	// Interior points are ignored; only first and last matter.
	doors := ProjectDoors([]sketch.Stroke{
		doorStroke(sketch.Point{X: 20, Y: 5}, sketch.Point{X: 30, Y: 40}, sketch.Point{X: 40, Y: 8}),
	}, g, 0)

	if len(doors) != 1 {
		t.Fatalf("door count: got %d, want 1", len(doors))
	}

	orig := doors[0].Original
	if orig.Start != (sketch.Point{X: 20, Y: 5}) || orig.End != (sketch.Point{X: 40, Y: 8}) {
		t.Errorf("original: got %v, want raw stroke endpoints", orig)
	}
}

func TestProjectDoors_ZeroLengthWall(t *testing.T) {
	g := &WallGraph{
		Nodes: []sketch.Point{{X: 50, Y: 50}, {X: 50, Y: 50}},
		Edges: [][2]int{{0, 1}},
	}

	doors := ProjectDoors([]sketch.Stroke{
		doorStroke(sketch.Point{X: 60, Y: 50}, sketch.Point{X: 70, Y: 50}),
	}, g, 0)

	if len(doors) != 1 {
		t.Fatalf("door count: got %d, want 1", len(doors))
	}
	if doors[0].Start != (sketch.Point{X: 50, Y: 50}) {
		t.Errorf("start: got %v, want the degenerate wall's point", doors[0].Start)
	}
}

func TestProjectDoors_SkipsMalformedStrokes(t *testing.T) {
	g := &WallGraph{
		Nodes: []sketch.Point{{X: 0, Y: 0}, {X: 100, Y: 0}},
		Edges: [][2]int{{0, 1}},
	}

	doors := ProjectDoors([]sketch.Stroke{
		{Role: sketch.RoleDoor},
		doorStroke(sketch.Point{X: 50, Y: 5}),
	}, g, 0)

	if len(doors) != 0 {
		t.Errorf("door count: got %d, want 0", len(doors))
	}
}

func TestProjectDoors_NoWallsKeepsEndpoints(t *testing.T) {
	doors := ProjectDoors([]sketch.Stroke{
		doorStroke(sketch.Point{X: 20, Y: 5}, sketch.Point{X: 40, Y: 8}),
	}, &WallGraph{}, 0)

	if len(doors) != 1 {
		t.Fatalf("door count: got %d, want 1", len(doors))
	}
	if doors[0].Start != (sketch.Point{X: 20, Y: 5}) || doors[0].End != (sketch.Point{X: 40, Y: 8}) {
		t.Errorf("endpoints moved without any walls: %v", doors[0])
	}
}

func TestProjectDoors_MaxSnapDistance(t *testing.T) {
	g := &WallGraph{
		Nodes: []sketch.Point{{X: 0, Y: 0}, {X: 100, Y: 0}},
		Edges: [][2]int{{0, 1}},
	}

	strokes := []sketch.Stroke{
		doorStroke(sketch.Point{X: 20, Y: 5}, sketch.Point{X: 40, Y: 8}),
		doorStroke(sketch.Point{X: 20, Y: 500}, sketch.Point{X: 40, Y: 500}),
	}

	// Unlimited snapping keeps both.
	if got := len(ProjectDoors(strokes, g, 0)); got != 2 {
		t.Errorf("unlimited: got %d doors, want 2", got)
	}

	// A cap drops the stray stroke far from every wall.
	doors := ProjectDoors(strokes, g, 50)
	if len(doors) != 1 {
		t.Fatalf("capped: got %d doors, want 1", len(doors))
	}
	if doors[0].Original.Start != (sketch.Point{X: 20, Y: 5}) {
		t.Errorf("wrong door survived: %v", doors[0].Original)
	}
}
