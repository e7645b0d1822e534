package render

import (
	"errors"
	"testing"
)

func TestNewStrategy_Defaults(t *testing.T) {
	tests := []struct {
		cfg        Config
		wantSpec   SampleSpec
		wantColor  bool
		wantRepeat int
	}{
		{Config{Mode: ModeBlock}, SampleSpec{1, 1, 1}, false, 1},
		{Config{Mode: ModeBlock, Compression: 3, Repeat: 2}, SampleSpec{3, 1, 1}, false, 2},
		{Config{Mode: ModeBraille, Compression: 2}, SampleSpec{2, 2, 4}, false, 1},
		{Config{Mode: ModeColorBlock, Compression: 4}, SampleSpec{4, 1, 1}, true, 3},
		{Config{Mode: ModeColorHTML}, SampleSpec{1, 1, 1}, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.cfg.Mode.String(), func(t *testing.T) {
			s, err := NewStrategy(tt.cfg)
			if err != nil {
				t.Fatalf("NewStrategy failed: %v", err)
			}
			if s.Mode() != tt.cfg.Mode {
				t.Errorf("Mode: got %s, want %s", s.Mode(), tt.cfg.Mode)
			}
			if s.Spec() != tt.wantSpec {
				t.Errorf("Spec: got %+v, want %+v", s.Spec(), tt.wantSpec)
			}
			if s.Colored() != tt.wantColor {
				t.Errorf("Colored: got %v, want %v", s.Colored(), tt.wantColor)
			}
			if s.Repeat() != tt.wantRepeat {
				t.Errorf("Repeat: got %d, want %d", s.Repeat(), tt.wantRepeat)
			}
			cells := s.Encode(solidRaster(8, 8, gray(0)), origin0, nil)
			if len(cells) != tt.wantRepeat {
				t.Errorf("cells per sample: got %d, want %d", len(cells), tt.wantRepeat)
			}
		})
	}
}

func TestNewStrategy_Rejects(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown mode", Config{Mode: Mode(42)}},
		{"negative compression", Config{Mode: ModeBlock, Compression: -1}},
		{"negative repeat", Config{Mode: ModeBlock, Repeat: -2}},
		{"whitespace with block", Config{Mode: ModeBlock, Whitespace: true}},
		{"whitespace with color", Config{Mode: ModeColorBlock, Whitespace: true}},
		{"braille repeat", Config{Mode: ModeBraille, Repeat: 2}},
		{"color html compression", Config{Mode: ModeColorHTML, Compression: 2}},
		{"color html swap", Config{Mode: ModeColorHTML, Swap: true}},
		{"color block swap", Config{Mode: ModeColorBlock, Swap: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStrategy(tt.cfg)
			if !errors.Is(err, ErrUnsupportedConfiguration) {
				t.Errorf("got %v, want ErrUnsupportedConfiguration", err)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	for m, name := range modeNames {
		got, err := ParseMode(name)
		if err != nil {
			t.Fatalf("ParseMode(%q) failed: %v", name, err)
		}
		if got != m {
			t.Errorf("ParseMode(%q): got %s, want %s", name, got, m)
		}
	}

	if got, err := ParseMode(" Color-Block "); err != nil || got != ModeColorBlock {
		t.Errorf("ParseMode should normalize case and hyphens, got %s, %v", got, err)
	}
	if _, err := ParseMode("sixel"); !errors.Is(err, ErrUnsupportedConfiguration) {
		t.Errorf("ParseMode(sixel): got %v, want ErrUnsupportedConfiguration", err)
	}
}

func TestMode_String(t *testing.T) {
	if got := Mode(9).String(); got != "Mode(9)" {
		t.Errorf("got %s, want Mode(9)", got)
	}
}
