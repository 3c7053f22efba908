// internal/motif/iupac.go
package motif

// 5-bit mask per literal base; U is kept apart from T.
const (
	bitA uint8 = 1 << iota
	bitC
	bitG
	bitT
	bitU
)

var codeMap = map[byte]uint8{
	'A': bitA, 'C': bitC, 'G': bitG, 'T': bitT, 'U': bitU,
	'R': bitA | bitG,
	'Y': bitC | bitT,
	'S': bitG | bitC,
	'W': bitA | bitT,
	'K': bitG | bitT,
	'M': bitA | bitC,
	'B': bitC | bitG | bitT,
	'D': bitA | bitG | bitT,
	'H': bitA | bitC | bitT,
	'V': bitA | bitC | bitG,
	'N': bitA | bitC | bitG | bitT,
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c
}

// codeMask returns the class mask of an IUPAC code (either case).
func codeMask(c byte) (uint8, bool) {
	m, ok := codeMap[upper(c)]
	return m, ok
}

// baseMask maps a sequence character to its literal base bit.
// Ambiguity codes and gaps in the sequence itself never match.
func baseMask(c byte) uint8 {
	switch upper(c) {
	case 'A':
		return bitA
	case 'C':
		return bitC
	case 'G':
		return bitG
	case 'T':
		return bitT
	case 'U':
		return bitU
	}
	return 0
}

// Bases returns the literal bases an IUPAC code stands for, in ACGTU order.
// Example: Bases('y') == "CT".
func Bases(code byte) string {
	m, ok := codeMask(code)
	if !ok {
		return ""
	}
	out := make([]byte, 0, 4)
	for i, b := range []byte("ACGTU") {
		if m&(1<<uint(i)) != 0 {
			out = append(out, b)
		}
	}
	return string(out)
}

// IsCode reports whether c is one of the 16 one-letter IUPAC nucleotide codes.
func IsCode(c byte) bool {
	_, ok := codeMask(c)
	return ok
}
