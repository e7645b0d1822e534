package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestCrop(t *testing.T) {
	img := createPatternImage(100, 100)

	cropped, err := Crop(img, Region{X1: 50, Y1: 50, X2: 100, Y2: 100})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	b := cropped.Bounds()
	if b.Dx() != 50 || b.Dy() != 50 {
		t.Errorf("dimensions: got %dx%d, want 50x50", b.Dx(), b.Dy())
	}
	if got := NewRaster(cropped).At(0, 0); got != (Pixel{255, 255, 255}) {
		t.Errorf("cropped top-left: got %+v, want white", got)
	}
}

func TestCrop_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name      string
		r         Region
		outOfView bool
	}{
		{"x1 negative", Region{-1, 0, 50, 50}, true},
		{"y1 negative", Region{0, -1, 50, 50}, true},
		{"x2 too large", Region{0, 0, 101, 50}, true},
		{"y2 too large", Region{0, 0, 50, 101}, true},
		{"inverted", Region{50, 50, 10, 10}, false},
		{"empty", Region{10, 10, 10, 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Crop(img, tt.r)
			if err == nil {
				t.Fatal("Crop should fail")
			}
			if errors.Is(err, ErrRegionOutOfBounds) != tt.outOfView {
				t.Errorf("errors.Is(ErrRegionOutOfBounds): got %v, want %v (%v)", !tt.outOfView, tt.outOfView, err)
			}
		})
	}
}

func TestPreprocess_ZeroIsIdentity(t *testing.T) {
	img := createInMemoryImage(4, 4, color.RGBA{1, 2, 3, 255})

	out, err := Preprocess(img, Adjustments{})
	if err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	if out != image.Image(img) {
		t.Error("zero Adjustments should return the input image")
	}
}

func TestPreprocess_Width(t *testing.T) {
	img := createInMemoryImage(100, 50, color.RGBA{128, 128, 128, 255})

	out, err := Preprocess(img, Adjustments{Width: 40})
	if err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	if b := out.Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Errorf("dimensions: got %dx%d, want 40x20", b.Dx(), b.Dy())
	}
}

func TestPreprocess_CropThenWidth(t *testing.T) {
	img := createPatternImage(100, 100)

	out, err := Preprocess(img, Adjustments{
		Crop:  &Region{X1: 0, Y1: 0, X2: 50, Y2: 50},
		Width: 10,
	})
	if err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	if b := out.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Fatalf("dimensions: got %dx%d, want 10x10", b.Dx(), b.Dy())
	}
	if got := NewRaster(out).At(5, 5); got != (Pixel{255, 0, 0}) {
		t.Errorf("center pixel: got %+v, want red", got)
	}
}

func TestPreprocess_Invert(t *testing.T) {
	img := createInMemoryImage(2, 2, color.RGBA{0, 0, 0, 255})

	out, err := Preprocess(img, Adjustments{Invert: true})
	if err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	if got := NewRaster(out).At(1, 1); got != (Pixel{255, 255, 255}) {
		t.Errorf("inverted black: got %+v, want white", got)
	}
}

func TestPreprocess_BrightnessRaises(t *testing.T) {
	img := createInMemoryImage(2, 2, color.RGBA{100, 100, 100, 255})

	out, err := Preprocess(img, Adjustments{Brightness: 0.5})
	if err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	if got := NewRaster(out).At(0, 0); got.R <= 100 {
		t.Errorf("brightened pixel should be lighter than 100, got %+v", got)
	}
}

func TestAdjustments_Validate(t *testing.T) {
	tests := []struct {
		name    string
		a       Adjustments
		wantErr bool
	}{
		{"zero", Adjustments{}, false},
		{"full", Adjustments{Width: 80, Brightness: -1, Contrast: 1, Gamma: 2.2}, false},
		{"negative width", Adjustments{Width: -1}, true},
		{"brightness high", Adjustments{Brightness: 1.5}, true},
		{"contrast low", Adjustments{Contrast: -2}, true},
		{"negative gamma", Adjustments{Gamma: -0.5}, true},
		{"bad crop", Adjustments{Crop: &Region{5, 5, 5, 9}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.a.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate: got %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
