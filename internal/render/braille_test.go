package render

import (
	"image"
	"testing"

	"github.com/ironsheep/img-to-ascii/internal/imaging"
)

// solidRaster returns a w×h raster filled with p.
func solidRaster(w, h int, p imaging.Pixel) *imaging.Raster {
	pix := make([]imaging.Pixel, w*h)
	for i := range pix {
		pix[i] = p
	}
	return imaging.RasterFromPixels(w, h, pix)
}

// columnsRaster returns a w×h raster whose pixel color depends only on x.
func columnsRaster(w, h int, col func(x int) imaging.Pixel) *imaging.Raster {
	pix := make([]imaging.Pixel, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix = append(pix, col(x))
		}
	}
	return imaging.RasterFromPixels(w, h, pix)
}

func TestNewDotMask_DotOrder(t *testing.T) {
	// Each natural position must land on the bit of its braille dot.
	tests := []struct {
		pos  int
		want DotMask
	}{
		{0, 0x01}, // dot 1
		{2, 0x02}, // dot 2
		{4, 0x04}, // dot 3
		{1, 0x08}, // dot 4
		{3, 0x10}, // dot 5
		{5, 0x20}, // dot 6
		{6, 0x40}, // dot 7
		{7, 0x80}, // dot 8
	}

	for _, tt := range tests {
		var raised [8]bool
		raised[tt.pos] = true
		if got := NewDotMask(raised); got != tt.want {
			t.Errorf("position %d: got %#02x, want %#02x", tt.pos, got, tt.want)
		}
	}
}

func TestDotMask_RoundTrip(t *testing.T) {
	for v := 0; v < 256; v++ {
		var raised [8]bool
		for i := range raised {
			raised[i] = v&(1<<i) != 0
		}
		if got := NewDotMask(raised).Natural(); got != raised {
			t.Fatalf("pattern %08b: decoded %v, want %v", v, got, raised)
		}
	}
}

func TestDotMask_Rune(t *testing.T) {
	tests := []struct {
		name       string
		m          DotMask
		whitespace bool
		want       rune
	}{
		{"all raised", 0xFF, false, 0x28FF},
		{"empty no whitespace", 0, false, 0x2840},
		{"empty whitespace", 0, true, ' '},
		{"dot 1", 0x01, true, 0x2801},
		{"left column", 0x47, false, '⡇'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Rune(tt.whitespace); got != tt.want {
				t.Errorf("got %U, want %U", got, tt.want)
			}
		})
	}
}

func TestBrailleOffsets(t *testing.T) {
	got := BrailleOffsets(3)
	want := [8]image.Point{{0, 0}, {3, 0}, {0, 3}, {3, 3}, {0, 6}, {3, 6}, {0, 9}, {3, 9}}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRaised(t *testing.T) {
	tests := []struct {
		p    imaging.Pixel
		swap bool
		want bool
	}{
		{gray(0), false, true},
		{gray(255), false, false},
		{gray(127), false, true},
		{gray(128), false, false},
		{gray(0), true, false},
		{gray(255), true, true},
	}

	for _, tt := range tests {
		if got := Raised(tt.p, tt.swap); got != tt.want {
			t.Errorf("Raised(%+v, %v): got %v, want %v", tt.p, tt.swap, got, tt.want)
		}
	}
}

func TestBrailleStrategy_SolidBlocks(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		px   imaging.Pixel
		want rune
	}{
		{"all dark", Config{Mode: ModeBraille}, gray(0), 0x28FF},
		{"all bright", Config{Mode: ModeBraille}, gray(255), 0x2840},
		{"all bright whitespace", Config{Mode: ModeBraille, Whitespace: true}, gray(255), ' '},
		{"all dark swapped", Config{Mode: ModeBraille, Swap: true}, gray(0), 0x2840},
		{"all bright swapped", Config{Mode: ModeBraille, Swap: true}, gray(255), 0x28FF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStrategy(tt.cfg)
			if err != nil {
				t.Fatalf("NewStrategy failed: %v", err)
			}
			cells := s.Encode(solidRaster(2, 4, tt.px), image.Point{}, nil)
			if len(cells) != 1 {
				t.Fatalf("got %d cells, want 1", len(cells))
			}
			if cells[0].Glyph != tt.want {
				t.Errorf("got %U, want %U", cells[0].Glyph, tt.want)
			}
		})
	}
}

func TestBrailleStrategy_Stride(t *testing.T) {
	// With compression 2 only even coordinates are read; odd columns are
	// dark and must be ignored.
	img := columnsRaster(4, 8, func(x int) imaging.Pixel {
		if x%2 == 1 {
			return gray(0)
		}
		return gray(255)
	})

	s, err := NewStrategy(Config{Mode: ModeBraille, Compression: 2})
	if err != nil {
		t.Fatalf("NewStrategy failed: %v", err)
	}
	cells := s.Encode(img, image.Point{}, nil)
	if cells[0].Glyph != BrailleBlank {
		t.Errorf("got %U, want %U", cells[0].Glyph, BrailleBlank)
	}
}
