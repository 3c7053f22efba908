// internal/pipeline/pipeline.go
package pipeline

import (
	"motifmark/internal/fasta"
	"motifmark/internal/gene"
	"motifmark/internal/layout"
	"motifmark/internal/motif"
	"motifmark/internal/palette"
)

// Config names the inputs and knobs of one run.
type Config struct {
	FastaPath   string
	MotifPath   string
	StrictExons bool
	Palette     palette.Options
	Layout      layout.Settings
}

// Result is everything computed before rendering. Read-only.
type Result struct {
	Patterns []motif.Pattern
	Colors   palette.Assignment
	Records  []gene.Record
	Diagram  layout.Diagram
	Warnings []string
}

// Run loads both inputs and computes the layout. The first error aborts.
func Run(cfg Config) (Result, error) {
	var res Result

	pats, err := motif.Load(cfg.MotifPath)
	if err != nil {
		return res, err
	}
	res.Patterns = pats

	res.Colors, err = palette.Assign(motif.Raws(pats), cfg.Palette)
	if err != nil {
		return res, err
	}

	recs, err := fasta.ReadFile(cfg.FastaPath)
	if err != nil {
		return res, err
	}

	built, warns, err := gene.Build(recs, pats, gene.Options{StrictExons: cfg.StrictExons})
	res.Warnings = warns
	if err != nil {
		return res, err
	}
	res.Records = built
	res.Diagram = layout.Compute(built, res.Colors, cfg.Layout)
	return res, nil
}
