package recognize

import "image"

// Region is a rectangular snapshot area in pixel coordinates, inclusive
// top-left, exclusive bottom-right.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Dimension is a recognized dimension annotation: the numeric value it
// denotes, the raw text it was read from, and the recognizer's confidence
// (0.0 to 1.0, 0 when the backend reports none).
type Dimension struct {
	Value      float64 `json:"value"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// Recognizer reads a dimension annotation from a snapshot region.
//
// A nil *Dimension with a nil error means nothing recognizable was found;
// callers must treat that as "skip scaling", not as a failure. Errors are
// reserved for broken inputs (unreadable image, empty region).
type Recognizer interface {
	RecognizeDimension(img image.Image, region Region) (*Dimension, error)
}

// Null is a Recognizer that never recognizes anything. It keeps the engine
// runnable where no OCR backend is available.
type Null struct{}

// RecognizeDimension always reports nothing found.
func (Null) RecognizeDimension(image.Image, Region) (*Dimension, error) {
	return nil, nil
}
