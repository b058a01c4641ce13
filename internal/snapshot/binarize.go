package snapshot

import (
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
)

// DefaultBinarizeLevel separates pen strokes from the canvas background on
// typical light-background snapshots.
const DefaultBinarizeLevel uint8 = 160

// Binarize prepares a snapshot region for OCR: grayscale, a contrast boost
// to pull faint pen strokes away from the background, then a hard threshold
// to pure black-on-white. level is the grayscale cutoff; 0 uses the default.
func Binarize(img image.Image, level uint8) *image.Gray {
	if level == 0 {
		level = DefaultBinarizeLevel
	}

	gray := effect.Grayscale(img)
	boosted := adjust.Contrast(gray, 0.4)
	return segment.Threshold(boosted, level)
}
