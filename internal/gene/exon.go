// internal/gene/exon.go
package gene

import (
	"errors"

	"motifmark/internal/motif"
)

// Span is the shared 1-based inclusive range type.
type Span = motif.Span

var (
	// ErrNoExonFound marks a sequence without any upper-case letter.
	ErrNoExonFound = errors.New("no exon found (no upper-case run)")
	// ErrMultipleExons marks more than one upper-case run under strict checking.
	ErrMultipleExons = errors.New("multiple upper-case runs")
)

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

// LocateExon returns the first contiguous upper-case run of seq and the
// number of disjoint runs seen. "acgtACGTacgt" → {5 8}, 1.
func LocateExon(seq []byte) (Span, int, error) {
	var (
		first Span
		runs  int
	)
	for i := 0; i < len(seq); {
		if !isUpper(seq[i]) {
			i++
			continue
		}
		j := i
		for j < len(seq) && isUpper(seq[j]) {
			j++
		}
		if runs == 0 {
			first = Span{Start: i + 1, End: j}
		}
		runs++
		i = j
	}
	if runs == 0 {
		return Span{}, 0, ErrNoExonFound
	}
	return first, runs, nil
}
