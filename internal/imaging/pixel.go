package imaging

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Pixel is an 8-bit RGB color. Alpha is not represented.
type Pixel struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// PixelOf converts any color to a Pixel through the non-premultiplied NRGBA
// model, discarding alpha.
func PixelOf(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B}
}

// Hex formats the pixel as a lowercase "#rrggbb" string.
func (p Pixel) Hex() string {
	return colorful.Color{
		R: float64(p.R) / 255.0,
		G: float64(p.G) / 255.0,
		B: float64(p.B) / 255.0,
	}.Hex()
}

// Raster is an immutable W×H grid of pixels in row-major order.
type Raster struct {
	width  int
	height int
	pix    []Pixel
}

// NewRaster flattens img into a Raster whose origin is (0,0) regardless of
// img.Bounds().Min.
func NewRaster(img image.Image) *Raster {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	r := &Raster{width: w, height: h, pix: make([]Pixel, w*h)}

	if n, ok := img.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			row := n.Pix[y*n.Stride:]
			for x := 0; x < w; x++ {
				i := x * 4
				r.pix[y*w+x] = Pixel{R: row[i], G: row[i+1], B: row[i+2]}
			}
		}
		return r
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.pix[y*w+x] = PixelOf(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return r
}

// RasterFromPixels builds a Raster from a row-major pixel slice. It panics if
// len(pix) != width*height.
func RasterFromPixels(width, height int, pix []Pixel) *Raster {
	if len(pix) != width*height {
		panic("imaging: pixel count does not match raster size")
	}
	cp := make([]Pixel, len(pix))
	copy(cp, pix)
	return &Raster{width: width, height: height, pix: cp}
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.width }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.height }

// At returns the pixel at (x, y). Coordinates must lie inside the raster.
func (r *Raster) At(x, y int) Pixel {
	return r.pix[y*r.width+x]
}
