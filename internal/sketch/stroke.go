package sketch

// Point is a 2D canvas position in pixel coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Role identifies what a stroke represents on the floor plan.
type Role string

const (
	RoleWall      Role = "wall"
	RoleDoor      Role = "door"
	RoleDimension Role = "dimension"
)

// Stroke is one continuous pen gesture: the points in drawing order plus the
// attributes the drawing surface recorded with it. Color is the pen color as
// "#RRGGBB"; Role, when set, overrides color-based classification.
type Stroke struct {
	Points []Point `json:"points"`
	Color  string  `json:"color,omitempty"`
	Role   Role    `json:"role,omitempty"`
}

// Bounds is an axis-aligned bounding box around stroke points.
type Bounds struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Width returns the horizontal extent of the box.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the box.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// BoundingBox computes the combined bounding box of all points in the given
// strokes. The second return value is false when the strokes contain no
// points at all.
func BoundingBox(strokes []Stroke) (Bounds, bool) {
	var b Bounds
	found := false
	for _, s := range strokes {
		for _, p := range s.Points {
			if !found {
				b = Bounds{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
				found = true
				continue
			}
			if p.X < b.MinX {
				b.MinX = p.X
			}
			if p.X > b.MaxX {
				b.MaxX = p.X
			}
			if p.Y < b.MinY {
				b.MinY = p.Y
			}
			if p.Y > b.MaxY {
				b.MaxY = p.Y
			}
		}
	}
	return b, found
}

// ReferenceLength returns the longer side of the bounding box around the
// given strokes, in pixels. It is the pixel length a dimension annotation
// spans on the canvas, used to derive the real-world scale factor. Returns 0
// when the strokes contain no points.
func ReferenceLength(strokes []Stroke) float64 {
	b, ok := BoundingBox(strokes)
	if !ok {
		return 0
	}
	if w, h := b.Width(), b.Height(); w > h {
		return w
	}
	return b.Height()
}
