package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"motifmark/internal/layout"
)

var red = color.NRGBA{R: 0xff, A: 0xff}

func diagram() layout.Diagram {
	return layout.Diagram{
		Canvas: layout.Canvas{Width: 200, Height: 100},
		Tracks: []layout.Track{{
			Index: 1,
			Y:     50,
			Label: layout.Label{X: 5, Y: 15, Text: "G1", Bold: true},
			Line:  layout.Rect{X0: 20, Y0: 49, X1: 180, Y1: 51},
			Exon:  layout.Rect{X0: 50, Y0: 30, X1: 150, Y1: 70},
			Ticks: []layout.Tick{{Motif: "AC", Box: layout.Rect{X0: 90, Y0: 40, X1: 110, Y1: 60}, Color: red}},
		}},
		Legend: []layout.LegendRow{{
			Motif:  "AC",
			Swatch: layout.Rect{X0: 20, Y0: 85, X1: 60, Y1: 95},
			Label:  layout.Label{X: 70, Y: 90, Text: "AC"},
			Color:  red,
		}},
	}
}

func rgb(img image.Image, x, y int) (uint8, uint8, uint8) {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

func TestDrawPixels(t *testing.T) {
	s, err := Draw(diagram(), Options{})
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	defer s.Close()

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf, PNG); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("size = %v", b)
	}
	checks := []struct {
		name    string
		x, y    int
		r, g, b uint8
	}{
		{"background", 190, 5, 0xff, 0xff, 0xff},
		{"exon", 60, 50, 0, 0, 0},
		{"tick over exon", 100, 50, 0xff, 0, 0},
		{"legend swatch", 40, 90, 0xff, 0, 0},
	}
	for _, c := range checks {
		r, g, b := rgb(img, c.x, c.y)
		if r != c.r || g != c.g || b != c.b {
			t.Errorf("%s @(%d,%d) = %d,%d,%d want %d,%d,%d", c.name, c.x, c.y, r, g, b, c.r, c.g, c.b)
		}
	}
}

func TestSurfaceLifecycle(t *testing.T) {
	s, err := Draw(diagram(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf, PNG); err != nil {
		t.Fatal(err)
	}
	if _, err := s.WriteTo(&buf, PNG); !errors.Is(err, ErrAlreadyWritten) {
		t.Fatalf("second write err = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal("Close must be idempotent")
	}
	if err := s.WriteFile(filepath.Join(t.TempDir(), "x.png")); !errors.Is(err, ErrClosed) {
		t.Fatalf("write after close err = %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.png", "out.jpg", "out.tiff"} {
		s, err := Draw(diagram(), Options{FontSize: 10})
		if err != nil {
			t.Fatal(err)
		}
		fn := filepath.Join(dir, name)
		if err := s.WriteFile(fn); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		s.Close()
		if st, err := os.Stat(fn); err != nil || st.Size() == 0 {
			t.Fatalf("%s not written: %v", name, err)
		}
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 3 {
		t.Fatalf("temp files left behind: %v", entries)
	}
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{"a.png": PNG, "A.PNG": PNG, "b.jpeg": JPEG, "c.JPG": JPEG, "d.tif": TIFF, "-": PNG}
	for in, want := range tests {
		if got, err := FormatFor(in); err != nil || got != want {
			t.Errorf("FormatFor(%q) = %q,%v want %q", in, got, err, want)
		}
	}
	if _, err := FormatFor("x.svg"); err == nil {
		t.Error("svg must be rejected")
	}
	if _, err := New(layout.Canvas{}); err == nil {
		t.Error("zero canvas must be rejected")
	}
}
