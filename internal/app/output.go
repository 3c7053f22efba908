// internal/app/output.go
package app

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultOutput derives the image path from the FASTA path: same directory,
// same stem, .png extension. genes.fa.gz → genes.png.
func DefaultOutput(fastaPath string) (string, error) {
	if fastaPath == "-" || fastaPath == "" {
		return "", fmt.Errorf("%w: --output is required when reading FASTA from stdin", ErrUsage)
	}
	base := filepath.Base(fastaPath)
	base = strings.TrimSuffix(base, ".gz")
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return filepath.Join(filepath.Dir(fastaPath), base+".png"), nil
}
