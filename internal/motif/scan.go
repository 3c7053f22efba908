// internal/motif/scan.go
package motif

// Span is a 1-based, inclusive range of bases. Exons and motif hits share it
// so that drawing math stays the same for both.
type Span struct {
	Start int
	End   int
}

// Len is the number of bases covered.
func (s Span) Len() int { return s.End - s.Start + 1 }

// Stop is the 1-based position one past the last base.
func (s Span) Stop() int { return s.End + 1 }

// Match is one occurrence of a motif in a sequence.
type Match struct {
	Motif string // Pattern.Raw
	Span
	Track int
}

// Scan reports every occurrence of every pattern in seq, overlaps included.
// Order: patterns as given, then by position.
func Scan(seq []byte, track int, patterns []Pattern) []Match {
	var out []Match
	for _, p := range patterns {
		out = append(out, scanOne(seq, track, p)...)
	}
	return out
}

func scanOne(seq []byte, track int, p Pattern) []Match {
	pl := p.Len()
	if pl == 0 || len(seq) < pl {
		return nil
	}
	end := len(seq) - pl
	var out []Match
	for pos := 0; pos <= end; pos++ {
		if !p.Matches(seq[pos : pos+pl]) {
			continue
		}
		out = append(out, Match{
			Motif: p.Raw,
			Span:  Span{Start: pos + 1, End: pos + pl},
			Track: track,
		})
	}
	return out
}
