package snapshot

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// CropRegion extracts a rectangular region from a snapshot. Coordinates are
// clamped to the image bounds; the region must still be non-empty after
// clamping. (x1,y1) is inclusive, (x2,y2) exclusive.
func CropRegion(img image.Image, x1, y1, x2, y2 int) (image.Image, error) {
	bounds := img.Bounds()

	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}

	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("region (%d,%d)-(%d,%d) is empty after clamping to snapshot bounds %v",
			x1, y1, x2, y2, bounds)
	}

	return imaging.Crop(img, image.Rect(x1, y1, x2, y2)), nil
}

// Upscale enlarges an image by an integer factor with Lanczos resampling.
// Dimension annotations are often only a dozen pixels tall; OCR accuracy
// improves markedly with a larger rendition. Factors below 2 return the
// image unchanged.
func Upscale(img image.Image, factor int) image.Image {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()*factor, b.Dy()*factor, imaging.Lanczos)
}
