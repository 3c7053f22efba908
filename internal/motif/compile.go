// internal/motif/compile.go
package motif

import (
	"errors"
	"fmt"
)

// ErrInvalidMotifCharacter marks a motif containing a non-IUPAC character.
var ErrInvalidMotifCharacter = errors.New("invalid motif character")

// InvalidCharacterError carries the offending motif and character.
type InvalidCharacterError struct {
	Motif  string
	Char   byte
	Column int // 1-based; 0 when the motif is empty
}

func (e *InvalidCharacterError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("%v: empty motif", ErrInvalidMotifCharacter)
	}
	return fmt.Sprintf("%v %q at column %d of motif %q", ErrInvalidMotifCharacter, e.Char, e.Column, e.Motif)
}

func (e *InvalidCharacterError) Unwrap() error { return ErrInvalidMotifCharacter }

// Pattern is a compiled motif. Raw keeps the text exactly as written; it is
// both the legend label and the key that links matches to colors.
type Pattern struct {
	Raw  string
	mask []uint8
}

// Compile turns an IUPAC motif into a Pattern. Matching is case-insensitive.
func Compile(raw string) (Pattern, error) {
	if raw == "" {
		return Pattern{}, &InvalidCharacterError{Motif: raw}
	}
	mask := make([]uint8, len(raw))
	for i := 0; i < len(raw); i++ {
		m, ok := codeMask(raw[i])
		if !ok {
			return Pattern{}, &InvalidCharacterError{Motif: raw, Char: raw[i], Column: i + 1}
		}
		mask[i] = m
	}
	return Pattern{Raw: raw, mask: mask}, nil
}

// MustCompile is Compile for literals known to be valid.
func MustCompile(raw string) Pattern {
	p, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// Len is the motif length in bases.
func (p Pattern) Len() int { return len(p.mask) }

// Matches reports whether window has the motif's length and every base is
// allowed by the code at the same position.
func (p Pattern) Matches(window []byte) bool {
	n := len(p.mask)
	if n == 0 || len(window) != n {
		return false
	}
	for i, m := range p.mask {
		if baseMask(window[i])&m == 0 {
			return false
		}
	}
	return true
}
