// Package layout turns built gene records into diagram geometry. It never
// draws; coordinates are pixels with y growing downward.
package layout

import (
	"image/color"

	"motifmark/internal/gene"
	"motifmark/internal/palette"
)

// Settings are the diagram dimensions, all in pixels.
type Settings struct {
	Margin          float64 `mapstructure:"margin"` // left of base 1
	RightPad        float64 `mapstructure:"right-pad"`
	TrackHeight     float64 `mapstructure:"track-height"`
	LegendRowHeight float64 `mapstructure:"legend-row-height"`
	HeaderMargin    float64 `mapstructure:"header-margin"`
	SeqStroke       float64 `mapstructure:"seq-stroke"`
	ExonHeight      float64 `mapstructure:"exon-height"`
	TickHeight      float64 `mapstructure:"tick-height"`
	LabelOffset     float64 `mapstructure:"label-offset"` // label baseline above the track
	LegendSwatch    float64 `mapstructure:"legend-swatch"`
}

// DefaultSettings fits sequences up to 1000 bases in an 1120 px wide image.
func DefaultSettings() Settings {
	return Settings{
		Margin:          100,
		RightPad:        20,
		TrackHeight:     100,
		LegendRowHeight: 25,
		HeaderMargin:    50,
		SeqStroke:       2,
		ExonHeight:      30,
		TickHeight:      20,
		LabelOffset:     25,
		LegendSwatch:    40,
	}
}

// Rect is an axis-aligned box, (X0,Y0) top-left.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Label is a text anchor: X is the left edge, Y the vertical center.
type Label struct {
	X, Y float64
	Text string
	Bold bool
}

// Tick marks one motif match.
type Tick struct {
	Motif string
	Box   Rect
	Color color.Color
}

// Track is the geometry for one gene.
type Track struct {
	Index int
	Y     float64
	Label Label
	Line  Rect
	Exon  Rect
	Ticks []Tick
}

// LegendRow pairs a motif with its color sample.
type LegendRow struct {
	Motif  string
	Swatch Rect
	Label  Label
	Color  color.Color
}

// Canvas is the output size.
type Canvas struct {
	Width, Height float64
}

// Diagram is everything the renderer needs.
type Diagram struct {
	Canvas Canvas
	Tracks []Track
	Legend []LegendRow
}

// Size returns the canvas for n tracks, m legend rows and the longest
// sequence length maxLen.
func (s Settings) Size(n, m, maxLen int) Canvas {
	return Canvas{
		Width:  s.Margin + float64(maxLen) + s.RightPad,
		Height: float64(n)*s.TrackHeight + float64(m)*s.LegendRowHeight + s.HeaderMargin,
	}
}

// span converts an inclusive 1-based span to x pixels covering its bases.
func (s Settings) span(sp gene.Span) (float64, float64) {
	return s.Margin + float64(sp.Start-1), s.Margin + float64(sp.End)
}

func band(x0, x1, y, h float64) Rect {
	return Rect{X0: x0, Y0: y - h/2, X1: x1, Y1: y + h/2}
}

// Compute lays out recs (already in track order) with the given colors.
func Compute(recs []gene.Record, colors palette.Assignment, s Settings) Diagram {
	d := Diagram{Canvas: s.Size(len(recs), colors.Len(), gene.MaxLen(recs))}

	for _, r := range recs {
		y := float64(r.Track) * s.TrackHeight
		ex0, ex1 := s.span(r.Exon)
		t := Track{
			Index: r.Track,
			Y:     y,
			Label: Label{X: s.Margin, Y: y - s.LabelOffset, Text: r.Label(), Bold: true},
			Line:  band(s.Margin, s.Margin+float64(len(r.Seq)), y, s.SeqStroke),
			Exon:  band(ex0, ex1, y, s.ExonHeight),
		}
		for _, m := range r.Matches {
			x0, x1 := s.span(m.Span)
			t.Ticks = append(t.Ticks, Tick{Motif: m.Motif, Box: band(x0, x1, y, s.TickHeight), Color: colorOf(colors, m.Motif)})
		}
		d.Tracks = append(d.Tracks, t)
	}

	top := float64(len(recs))*s.TrackHeight + s.HeaderMargin/2
	for i, k := range colors.Keys() {
		y := top + float64(i)*s.LegendRowHeight + s.LegendRowHeight/2
		d.Legend = append(d.Legend, LegendRow{
			Motif:  k,
			Swatch: band(s.Margin, s.Margin+s.LegendSwatch, y, s.SeqStroke*3),
			Label:  Label{X: s.Margin + s.LegendSwatch + 10, Y: y, Text: k},
			Color:  colorOf(colors, k),
		})
	}
	return d
}

func colorOf(a palette.Assignment, k string) color.Color {
	if c, ok := a.Get(k); ok {
		return c.Color()
	}
	return color.Black
}
