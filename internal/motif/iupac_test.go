// internal/motif/iupac_test.go
package motif

import (
	"strings"
	"testing"
)

var codeClasses = map[byte]string{
	'A': "A", 'C': "C", 'G': "G", 'T': "T", 'U': "U",
	'R': "AG", 'Y': "CT", 'S': "CG", 'W': "AT",
	'K': "GT", 'M': "AC", 'B': "CGT", 'D': "AGT",
	'H': "ACT", 'V': "ACG", 'N': "ACGT",
}

// Each single-letter motif matches exactly its class, in both cases.
func TestSingleCodeMatchesItsClass(t *testing.T) {
	for code, class := range codeClasses {
		for _, raw := range []string{string(code), strings.ToLower(string(code))} {
			p, err := Compile(raw)
			if err != nil {
				t.Fatalf("Compile(%q): %v", raw, err)
			}
			for _, b := range []byte("ACGTUacgtu") {
				want := strings.IndexByte(class, upper(b)) >= 0
				if got := p.Matches([]byte{b}); got != want {
					t.Errorf("motif %q vs base %q = %v, want %v", raw, b, got, want)
				}
			}
		}
	}
}

func TestBases(t *testing.T) {
	tests := []struct {
		code byte
		want string
	}{
		{'y', "CT"},
		{'N', "ACGT"},
		{'u', "U"},
		{'X', ""},
	}
	for _, tt := range tests {
		if got := Bases(tt.code); got != tt.want {
			t.Errorf("Bases(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestSequenceAmbiguityNeverMatches(t *testing.T) {
	p := MustCompile("N")
	for _, b := range []byte("NnRY-.") {
		if p.Matches([]byte{b}) {
			t.Errorf("sequence char %q must not match motif N", b)
		}
	}
}
