package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// ErrRegionOutOfBounds is wrapped when a crop region does not fit the image.
var ErrRegionOutOfBounds = errors.New("region outside image bounds")

// Region represents a rectangular region within an image.
//
// (X1, Y1) is the top-left corner (inclusive) and (X2, Y2) is the
// bottom-right corner (exclusive).
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Adjustments describes the optional preprocessing applied to an image
// before it is sampled. The zero value leaves the image untouched.
type Adjustments struct {
	// Crop restricts rendering to a region of the source image.
	Crop *Region

	// Width resizes the (cropped) image to this many pixels wide, keeping the
	// aspect ratio. Zero keeps the original size.
	Width int

	// Brightness shifts brightness by a fraction in [-1, 1].
	Brightness float64

	// Contrast scales contrast by a fraction in [-1, 1].
	Contrast float64

	// Gamma applies gamma correction when positive. Zero or 1 is a no-op.
	Gamma float64

	// Invert replaces every pixel by its complement.
	Invert bool
}

// IsZero reports whether a leaves images unchanged.
func (a Adjustments) IsZero() bool {
	return a.Crop == nil && a.Width == 0 && a.Brightness == 0 &&
		a.Contrast == 0 && (a.Gamma == 0 || a.Gamma == 1) && !a.Invert
}

// Validate checks that every adjustment is within its accepted range.
func (a Adjustments) Validate() error {
	if a.Crop != nil && (a.Crop.X1 >= a.Crop.X2 || a.Crop.Y1 >= a.Crop.Y2) {
		return fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}
	if a.Width < 0 {
		return fmt.Errorf("invalid width %d: must not be negative", a.Width)
	}
	if a.Brightness < -1 || a.Brightness > 1 {
		return fmt.Errorf("invalid brightness %g: must be within [-1, 1]", a.Brightness)
	}
	if a.Contrast < -1 || a.Contrast > 1 {
		return fmt.Errorf("invalid contrast %g: must be within [-1, 1]", a.Contrast)
	}
	if a.Gamma < 0 {
		return fmt.Errorf("invalid gamma %g: must not be negative", a.Gamma)
	}
	return nil
}

// Crop extracts a rectangular region from an image.
//
// The region is interpreted relative to the image's top-left corner and must
// lie completely inside it.
func Crop(img image.Image, r Region) (image.Image, error) {
	bounds := img.Bounds()
	if r.X1 < 0 || r.Y1 < 0 || r.X2 > bounds.Dx() || r.Y2 > bounds.Dy() {
		return nil, fmt.Errorf("%w: crop region (%d,%d)-(%d,%d) outside image bounds (0,0)-(%d,%d)",
			ErrRegionOutOfBounds, r.X1, r.Y1, r.X2, r.Y2, bounds.Dx(), bounds.Dy())
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	rect := image.Rect(r.X1, r.Y1, r.X2, r.Y2).Add(bounds.Min)
	return imaging.Crop(img, rect), nil
}

// Preprocess applies a to img in a fixed order: crop, resize, brightness,
// contrast, gamma, invert. It returns img itself when a is the zero value.
func Preprocess(img image.Image, a Adjustments) (image.Image, error) {
	if a.IsZero() {
		return img, nil
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	out := img
	if a.Crop != nil {
		cropped, err := Crop(out, *a.Crop)
		if err != nil {
			return nil, err
		}
		out = cropped
	}
	if a.Width > 0 && a.Width != out.Bounds().Dx() {
		out = imaging.Resize(out, a.Width, 0, imaging.Lanczos)
	}
	if a.Brightness != 0 {
		out = adjust.Brightness(out, a.Brightness)
	}
	if a.Contrast != 0 {
		out = adjust.Contrast(out, a.Contrast)
	}
	if a.Gamma > 0 && a.Gamma != 1 {
		out = adjust.Gamma(out, a.Gamma)
	}
	if a.Invert {
		out = effect.Invert(out)
	}
	return out, nil
}
