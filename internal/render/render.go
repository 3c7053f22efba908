// Package render draws a layout.Diagram on a gonum raster canvas and writes
// it out as an image file. It is the only package that touches the surface.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"motifmark/internal/layout"
)

// One layout unit is one point; at 72 DPI that is one pixel.
const dpi = 72

var (
	ErrClosed         = errors.New("render: surface closed")
	ErrAlreadyWritten = errors.New("render: surface already written")
)

// Format is a raster output encoding.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	TIFF Format = "tiff"
)

// FormatFor picks the encoding from a file extension; "" and "-" mean PNG.
func FormatFor(path string) (Format, error) {
	if path == "" || path == "-" {
		return PNG, nil
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".tif", ".tiff":
		return TIFF, nil
	default:
		return "", fmt.Errorf("unsupported image extension %q (png, jpeg or tiff)", ext)
	}
}

// Options tune text rendering.
type Options struct {
	FontSize float64
}

// Surface owns one raster canvas. It is flushed at most once and must be
// closed by the caller.
type Surface struct {
	img     *vgimg.Canvas
	dc      draw.Canvas
	height  vg.Length
	written bool
}

// New allocates a white canvas of the given size.
func New(c layout.Canvas) (*Surface, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return nil, fmt.Errorf("render: invalid canvas %vx%v", c.Width, c.Height)
	}
	w, h := vg.Length(c.Width), vg.Length(c.Height)
	img := vgimg.NewWith(
		vgimg.UseWH(w, h),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(color.White),
	)
	return &Surface{img: img, dc: draw.New(img), height: h}, nil
}

// Draw creates a surface and paints d on it.
func Draw(d layout.Diagram, o Options) (*Surface, error) {
	s, err := New(d.Canvas)
	if err != nil {
		return nil, err
	}
	if o.FontSize <= 0 {
		o.FontSize = 14
	}
	regular := textStyle(o.FontSize, xfont.WeightNormal)
	bold := textStyle(o.FontSize, xfont.WeightBold)

	for _, t := range d.Tracks {
		s.fill(t.Line, color.Black)
		s.fill(t.Exon, color.Black)
		for _, tk := range t.Ticks {
			s.fill(tk.Box, tk.Color)
		}
		s.text(t.Label, regular, bold)
	}
	for _, row := range d.Legend {
		s.fill(row.Swatch, row.Color)
		s.text(row.Label, regular, bold)
	}
	return s, nil
}

func textStyle(size float64, w xfont.Weight) text.Style {
	return text.Style{
		Color:   color.Black,
		Font:    font.Font{Typeface: "Liberation", Variant: "Sans", Size: font.Length(size), Weight: w},
		XAlign:  text.XLeft,
		YAlign:  text.YCenter,
		Handler: plot.DefaultTextHandler,
	}
}

// pt flips a top-down layout coordinate into vg's bottom-up space.
func (s *Surface) pt(x, y float64) vg.Point {
	return vg.Point{X: vg.Length(x), Y: s.height - vg.Length(y)}
}

func (s *Surface) fill(r layout.Rect, c color.Color) {
	if s.img == nil || r.Width() <= 0 || r.Height() <= 0 {
		return
	}
	s.dc.FillPolygon(c, []vg.Point{
		s.pt(r.X0, r.Y0), s.pt(r.X1, r.Y0), s.pt(r.X1, r.Y1), s.pt(r.X0, r.Y1),
	})
}

func (s *Surface) text(l layout.Label, regular, bold text.Style) {
	if s.img == nil || l.Text == "" {
		return
	}
	sty := regular
	if l.Bold {
		sty = bold
	}
	s.dc.FillText(sty, s.pt(l.X, l.Y), l.Text)
}

// WriteTo encodes the canvas to w. Only one write per surface is allowed.
func (s *Surface) WriteTo(w io.Writer, f Format) (int64, error) {
	if s.img == nil {
		return 0, ErrClosed
	}
	if s.written {
		return 0, ErrAlreadyWritten
	}
	var wt io.WriterTo
	switch f {
	case PNG, "":
		wt = vgimg.PngCanvas{Canvas: s.img}
	case JPEG:
		wt = vgimg.JpegCanvas{Canvas: s.img}
	case TIFF:
		wt = vgimg.TiffCanvas{Canvas: s.img}
	default:
		return 0, fmt.Errorf("render: unknown format %q", f)
	}
	s.written = true
	return wt.WriteTo(w)
}

// WriteFile writes the image next to path and renames it into place, so a
// failed write never leaves a partial file behind.
func (s *Surface) WriteFile(path string) (err error) {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	if s.img == nil {
		return ErrClosed
	}
	if s.written {
		return ErrAlreadyWritten
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err = s.WriteTo(tmp, f); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Close releases the canvas. Safe to call more than once.
func (s *Surface) Close() error {
	s.img = nil
	s.dc = draw.Canvas{}
	return nil
}
