package vectorize

// ScaleFactor derives the real-world-units-per-pixel factor from one
// measured dimension: the annotated value divided by the pixel length the
// annotation spans on the canvas. The second return value is false when
// either quantity is missing or non-positive, in which case normalization
// must be skipped rather than dividing by zero.
func ScaleFactor(dimensionValue, referenceLengthPixels float64) (float64, bool) {
	if dimensionValue <= 0 || referenceLengthPixels <= 0 {
		return 0, false
	}
	return dimensionValue / referenceLengthPixels, true
}

// Normalize rescales the graph's nodes and the doors' snapped endpoints into
// real-world units. Door originals stay in pixels; they are a diagnostic
// reference frame. Returns the applied factor, or false without touching
// anything when the inputs cannot produce a valid factor.
func Normalize(g *WallGraph, doors []Door, dimensionValue, referenceLengthPixels float64) (float64, bool) {
	factor, ok := ScaleFactor(dimensionValue, referenceLengthPixels)
	if !ok {
		return 0, false
	}

	for i := range g.Nodes {
		g.Nodes[i].X *= factor
		g.Nodes[i].Y *= factor
	}
	for i := range doors {
		doors[i].Start.X *= factor
		doors[i].Start.Y *= factor
		doors[i].End.X *= factor
		doors[i].End.Y *= factor
	}

	return factor, true
}

// ScalePayload rescales an already-exported payload the same way Normalize
// rescales a live graph: wall endpoints and door snapped endpoints move into
// real-world units, door originals keep their pixel coordinates.
func ScalePayload(p *Payload, dimensionValue, referenceLengthPixels float64) (float64, bool) {
	factor, ok := ScaleFactor(dimensionValue, referenceLengthPixels)
	if !ok {
		return 0, false
	}

	for i := range p.Walls {
		p.Walls[i].Start.X *= factor
		p.Walls[i].Start.Y *= factor
		p.Walls[i].End.X *= factor
		p.Walls[i].End.Y *= factor
	}
	for i := range p.Doors {
		p.Doors[i].Start.X *= factor
		p.Doors[i].Start.Y *= factor
		p.Doors[i].End.X *= factor
		p.Doors[i].End.Y *= factor
	}

	return factor, true
}
