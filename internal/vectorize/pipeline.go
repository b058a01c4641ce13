package vectorize

import (
	"github.com/ironsheep/floorplan-mcp/internal/sketch"
)

// Options tunes the pipeline stages. Zero values mean "use the default"; a
// MaxDoorSnapDistance of 0 keeps the permissive snap-anywhere behavior.
type Options struct {
	// MergeDistance is the node merge radius in pixels (default 30).
	MergeDistance float64

	// AngleTolerance is the simplification tolerance in degrees (default 10).
	AngleTolerance float64

	// SnapTolerance is the axis rectification tolerance in degrees (default 10).
	SnapTolerance float64

	// MaxDoorSnapDistance, when positive, drops door strokes whose endpoints
	// are farther than this many pixels from every wall.
	MaxDoorSnapDistance float64

	// Palette overrides the toolbar colors used for role classification.
	Palette sketch.Palette
}

func (o Options) withDefaults() Options {
	if o.MergeDistance <= 0 {
		o.MergeDistance = DefaultMergeDistance
	}
	if o.AngleTolerance <= 0 {
		o.AngleTolerance = DefaultAngleTolerance
	}
	if o.SnapTolerance <= 0 {
		o.SnapTolerance = DefaultSnapTolerance
	}
	if o.Palette == nil {
		o.Palette = sketch.DefaultPalette()
	}
	return o
}

// Plan is the complete vectorization result for one submission.
type Plan struct {
	Payload

	// ScaleFactor is real-world units per pixel; 0 when no usable dimension
	// was supplied and coordinates stayed in pixel space.
	ScaleFactor float64 `json:"scale_factor,omitempty"`

	// Scaled reports whether normalization ran.
	Scaled bool `json:"scaled"`

	NodeCount int `json:"node_count"`
	WallCount int `json:"wall_count"`
	DoorCount int `json:"door_count"`
}

// Vectorize runs the full stroke-to-plan pipeline on one canvas submission.
//
// Strokes are classified by role (explicit roles win, colors decide the
// rest), wall strokes become the rectified wall graph, door strokes snap
// onto it, and when dimensionValue is positive and the dimension strokes
// span a measurable pixel length, all output coordinates are rescaled to
// real-world units. A missing or unusable dimension degrades to pixel-space
// output; it is not an error.
func Vectorize(strokes []sketch.Stroke, dimensionValue float64, opts Options) *Plan {
	opts = opts.withDefaults()

	classified := make([]sketch.Stroke, len(strokes))
	copy(classified, strokes)
	sketch.ClassifyStrokes(classified, opts.Palette)

	wallStrokes, doorStrokes, dimensionStrokes := sketch.ByRole(classified)

	graph := BuildGraph(wallStrokes, opts.MergeDistance, opts.AngleTolerance)
	Rectify(graph, opts.SnapTolerance)

	doors := ProjectDoors(doorStrokes, graph, opts.MaxDoorSnapDistance)

	referenceLength := sketch.ReferenceLength(dimensionStrokes)
	factor, scaled := Normalize(graph, doors, dimensionValue, referenceLength)

	return &Plan{
		Payload: Payload{
			Walls: graph.Walls(),
			Doors: doors,
		},
		ScaleFactor: factor,
		Scaled:      scaled,
		NodeCount:   len(graph.Nodes),
		WallCount:   len(graph.Edges),
		DoorCount:   len(doors),
	}
}
