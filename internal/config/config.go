// Package config is for run-wide settings unmarshalled from Viper. Values
// come from defaults, an optional config file and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"motifmark/internal/layout"
)

// ErrInvalid marks a setting that fails validation.
var ErrInvalid = errors.New("invalid configuration")

// Report formats accepted by --report.
var Reports = []string{"none", "text", "json"}

// RenderConfig tunes the raster output.
type RenderConfig struct {
	FontSize float64 `mapstructure:"font-size"`
}

// Config is the root-level settings struct.
type Config struct {
	// color seed; only used when Seeded
	Seed   int64 `mapstructure:"seed"`
	Seeded bool  `mapstructure:"-"`

	// fail instead of warn on more than one upper-case run
	StrictExons bool `mapstructure:"strict-exons"`

	// match table on stdout: none | text | json
	Report string `mapstructure:"report"`

	Quiet bool `mapstructure:"quiet"`

	Layout layout.Settings `mapstructure:"layout"`
	Render RenderConfig    `mapstructure:"render"`
}

// SetDefaults registers every key so config files may override any of them.
func SetDefaults(v *viper.Viper) {
	d := layout.DefaultSettings()
	v.SetDefault("strict-exons", false)
	v.SetDefault("report", "none")
	v.SetDefault("quiet", false)
	v.SetDefault("layout.margin", d.Margin)
	v.SetDefault("layout.right-pad", d.RightPad)
	v.SetDefault("layout.track-height", d.TrackHeight)
	v.SetDefault("layout.legend-row-height", d.LegendRowHeight)
	v.SetDefault("layout.header-margin", d.HeaderMargin)
	v.SetDefault("layout.seq-stroke", d.SeqStroke)
	v.SetDefault("layout.exon-height", d.ExonHeight)
	v.SetDefault("layout.tick-height", d.TickHeight)
	v.SetDefault("layout.label-offset", d.LabelOffset)
	v.SetDefault("layout.legend-swatch", d.LegendSwatch)
	v.SetDefault("render.font-size", 14.0)
}

// BindFlags binds the named flags of fs to the same-named keys of v.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, names ...string) error {
	for _, n := range names {
		f := fs.Lookup(n)
		if f == nil {
			return fmt.Errorf("config: no flag %q", n)
		}
		if err := v.BindPFlag(n, f); err != nil {
			return err
		}
	}
	return nil
}

// ReadFile merges a YAML/TOML/JSON settings file into v.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	return nil
}

// New decodes v into a Config and validates it.
func New(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	c.Seeded = v.IsSet("seed")
	return c, c.Validate()
}

// Validate rejects sizes that cannot produce a diagram.
func (c Config) Validate() error {
	ok := false
	for _, r := range Reports {
		if c.Report == r {
			ok = true
		}
	}
	if !ok {
		return fmt.Errorf("%w: report %q (want none, text or json)", ErrInvalid, c.Report)
	}
	l := c.Layout
	positive := map[string]float64{
		"layout.track-height":      l.TrackHeight,
		"layout.legend-row-height": l.LegendRowHeight,
		"layout.seq-stroke":        l.SeqStroke,
		"layout.exon-height":       l.ExonHeight,
		"layout.tick-height":       l.TickHeight,
		"layout.legend-swatch":     l.LegendSwatch,
		"render.font-size":         c.Render.FontSize,
	}
	for _, k := range sortedKeys(positive) {
		if positive[k] <= 0 {
			return fmt.Errorf("%w: %s must be > 0 (got %v)", ErrInvalid, k, positive[k])
		}
	}
	nonNeg := map[string]float64{
		"layout.margin":        l.Margin,
		"layout.right-pad":     l.RightPad,
		"layout.header-margin": l.HeaderMargin,
		"layout.label-offset":  l.LabelOffset,
	}
	for _, k := range sortedKeys(nonNeg) {
		if nonNeg[k] < 0 {
			return fmt.Errorf("%w: %s must be >= 0 (got %v)", ErrInvalid, k, nonNeg[k])
		}
	}
	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
