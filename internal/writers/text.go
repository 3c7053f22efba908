// internal/writers/text.go
package writers

import (
	"fmt"
	"io"

	"motifmark/internal/pipeline"
)

// TSVHeader is the header row of the text report.
const TSVHeader = "gene\ttrack\tmotif\tstart\tend\tstrand"

// ExonLabel is the motif column value of exon rows.
const ExonLabel = "exon"

func init() { Register("text", WriteText) }

// WriteText prints one exon row and one row per match for every gene.
func WriteText(w io.Writer, res pipeline.Result) error {
	if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
		return err
	}
	for _, r := range res.Records {
		strand := "+"
		if r.RevComp {
			strand = "-"
		}
		if _, err := fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%d\t%s\n", r.Gene, r.Track, ExonLabel, r.Exon.Start, r.Exon.End, strand); err != nil {
			return err
		}
		for _, m := range r.Matches {
			if _, err := fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%d\t%s\n", r.Gene, r.Track, m.Motif, m.Start, m.End, strand); err != nil {
				return err
			}
		}
	}
	return nil
}
