// Package palette assigns each motif a legend color. Colors are drawn from a
// small grid of channel levels so any two motifs differ by at least one
// quantum in some channel.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"
)

// Quantum is the minimum channel separation between two assigned colors, in 0..255 units.
const Quantum = 32

// Levels are the candidate channel values (0..255).
var Levels = [...]uint8{0, 32, 64, 96, 128, 160, 192, 224, 240}

// ErrExhausted is returned when no distinct candidate is left.
var ErrExhausted = errors.New("palette exhausted")

// RGB is a color with channels in [0,1].
type RGB struct {
	R, G, B float64
}

func (c RGB) bytes() (uint8, uint8, uint8) {
	return uint8(c.R*255 + 0.5), uint8(c.G*255 + 0.5), uint8(c.B*255 + 0.5)
}

// Color converts to an opaque image/color value.
func (c RGB) Color() color.Color {
	r, g, b := c.bytes()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// Hex formats as #rrggbb.
func (c RGB) Hex() string {
	r, g, b := c.bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Distinct reports whether a and b differ by at least Quantum in some channel.
func Distinct(a, b RGB) bool {
	ar, ag, ab := a.bytes()
	br, bg, bb := b.bytes()
	return absDiff(ar, br) >= Quantum || absDiff(ag, bg) >= Quantum || absDiff(ab, bb) >= Quantum
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// Options controls the sampling. With Seeded false the wall clock seeds it.
type Options struct {
	Seed   int64
	Seeded bool
}

// Assignment maps motif raw text to its color. Keys keep insertion order.
type Assignment struct {
	keys   []string
	colors map[string]RGB
}

func (a Assignment) Len() int       { return len(a.keys) }
func (a Assignment) Keys() []string { return append([]string(nil), a.keys...) }

func (a Assignment) Get(k string) (RGB, bool) {
	c, ok := a.colors[k]
	return c, ok
}

type triple [3]uint8

func (t triple) rgb() RGB {
	return RGB{float64(t[0]) / 255, float64(t[1]) / 255, float64(t[2]) / 255}
}

// candidates lists every level triple except near-white ones.
func candidates() []triple {
	out := make([]triple, 0, len(Levels)*len(Levels)*len(Levels))
	for _, r := range Levels {
		for _, g := range Levels {
			for _, b := range Levels {
				if r >= 224 && g >= 224 && b >= 224 {
					continue
				}
				out = append(out, triple{r, g, b})
			}
		}
	}
	return out
}

// Assign colors keys in order. Same keys and seed give the same result.
func Assign(keys []string, opt Options) (Assignment, error) {
	seed := opt.Seed
	if !opt.Seeded {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
	pool := candidates()
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	a := Assignment{colors: make(map[string]RGB, len(keys))}
	var chosen []RGB
next:
	for _, k := range keys {
		if _, dup := a.colors[k]; dup {
			continue
		}
		for len(pool) > 0 {
			c := pool[0].rgb()
			pool = pool[1:]
			if distinctFromAll(c, chosen) {
				chosen = append(chosen, c)
				a.keys = append(a.keys, k)
				a.colors[k] = c
				continue next
			}
		}
		return Assignment{}, fmt.Errorf("%w: %d motifs, only %d distinct colors available", ErrExhausted, countUnique(keys), len(chosen))
	}
	return a, nil
}

func distinctFromAll(c RGB, chosen []RGB) bool {
	for _, o := range chosen {
		if !Distinct(c, o) {
			return false
		}
	}
	return true
}

func countUnique(keys []string) int {
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		seen[k] = struct{}{}
	}
	return len(seen)
}
