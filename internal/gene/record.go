// internal/gene/record.go
package gene

import (
	"fmt"

	"motifmark/internal/fasta"
	"motifmark/internal/motif"
)

// Record is a parsed gene with its exon and motif hits. Read-only once built.
type Record struct {
	fasta.Record
	Exon    Span
	Matches []motif.Match
}

// Label is the track caption.
func (r Record) Label() string {
	name := r.Gene
	if name == "" {
		name = "(unnamed)"
	}
	if r.RevComp {
		name += " (reverse complement)"
	}
	return name
}

// RecordError ties an error to the gene that caused it.
type RecordError struct {
	Gene  string
	Track int
	Err   error
}

func (e *RecordError) Error() string {
	name := e.Gene
	if name == "" {
		name = "(unnamed)"
	}
	return fmt.Sprintf("gene %s (record %d): %v", name, e.Track, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Options controls Build.
type Options struct {
	// StrictExons makes more than one upper-case run an error instead of a warning.
	StrictExons bool
}

// Build locates the exon and scans motifs for every record, in input order.
// It returns the records plus non-fatal warnings; the first error aborts.
func Build(recs []fasta.Record, patterns []motif.Pattern, opt Options) ([]Record, []string, error) {
	out := make([]Record, 0, len(recs))
	var warns []string
	for _, fr := range recs {
		exon, runs, err := LocateExon(fr.Seq)
		if err != nil {
			return nil, warns, &RecordError{Gene: fr.Gene, Track: fr.Track, Err: err}
		}
		if runs > 1 {
			if opt.StrictExons {
				return nil, warns, &RecordError{Gene: fr.Gene, Track: fr.Track,
					Err: fmt.Errorf("%w: %d runs", ErrMultipleExons, runs)}
			}
			warns = append(warns, fmt.Sprintf("gene %s has %d upper-case runs; using the first (%d-%d) as the exon",
				Record{Record: fr}.Label(), runs, exon.Start, exon.End))
		}
		out = append(out, Record{
			Record:  fr,
			Exon:    exon,
			Matches: motif.Scan(fr.Seq, fr.Track, patterns),
		})
	}
	return out, warns, nil
}

// MaxLen is the longest sequence length among recs.
func MaxLen(recs []Record) int {
	n := 0
	for _, r := range recs {
		if len(r.Seq) > n {
			n = len(r.Seq)
		}
	}
	return n
}
