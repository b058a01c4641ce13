package recognize

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/floorplan-mcp/internal/snapshot"
)

// ocrUpscaleFactor enlarges small annotation regions before OCR; handwritten
// dimensions are often only a dozen pixels tall.
const ocrUpscaleFactor = 3

// dimensionWhitelist restricts Tesseract to the characters a dimension
// annotation can contain, cutting down stray-stroke misreads.
const dimensionWhitelist = `0123456789.'"/ `

// Tesseract reads dimension annotations with the Tesseract OCR engine.
// Language is a Tesseract language code; the zero value uses English.
type Tesseract struct {
	Language string
}

// NewTesseract returns a Tesseract recognizer configured for English.
func NewTesseract() *Tesseract {
	return &Tesseract{Language: "eng"}
}

// RecognizeDimension crops the annotation region out of the snapshot,
// preprocesses it for handwriting on canvas (binarize, upscale), runs OCR
// restricted to dimension characters, and parses the result.
//
// Text that doesn't parse as a dimension is reported as nothing found, not
// as an error: a stray doodle in the region must degrade to unscaled output,
// not abort the submission.
func (r *Tesseract) RecognizeDimension(img image.Image, region Region) (*Dimension, error) {
	cropped, err := snapshot.CropRegion(img, region.X1, region.Y1, region.X2, region.Y2)
	if err != nil {
		return nil, err
	}

	prepped := snapshot.Upscale(snapshot.Binarize(cropped, 0), ocrUpscaleFactor)

	// Tesseract needs a file path.
	tmpFile, err := os.CreateTemp("", "dimension-ocr-*.png")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmpFile, prepped); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to encode temp image: %w", err)
	}
	tmpFile.Close()

	language := r.Language
	if language == "" {
		language = "eng"
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetWhitelist(dimensionWhitelist); err != nil {
		return nil, fmt.Errorf("failed to set whitelist: %w", err)
	}
	if err := client.SetImage(tmpPath); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	value, err := ParseDimension(text)
	if err != nil {
		return nil, nil
	}

	return &Dimension{
		Value:      value,
		Text:       text,
		Confidence: wordConfidence(client),
	}, nil
}

// wordConfidence averages Tesseract's word confidences, or 0 when none are
// available.
func wordConfidence(client *gosseract.Client) float64 {
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return 0
	}

	var sum float64
	for _, box := range boxes {
		sum += float64(box.Confidence)
	}
	return sum / float64(len(boxes)) / 100.0
}
