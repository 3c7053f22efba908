// internal/motif/loader.go
package motif

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"motifmark/internal/cmdutil"
)

// Load reads a motif file: one motif per line, blank lines and '#'
// comments skipped, exact duplicates dropped (first one wins).
func Load(path string) ([]Pattern, error) {
	rc, err := cmdutil.Open(path)
	if err != nil { return nil, err }
	defer rc.Close()
	return Read(rc, path)
}

// Read is Load over an open reader; name is used in error messages.
func Read(r io.Reader, name string) ([]Pattern, error) {
	var list []Pattern
	seen := map[string]struct{}{}
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' { continue }
		if _, dup := seen[line]; dup { continue }
		p, err := Compile(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, ln, err)
		}
		seen[line] = struct{}{}
		list = append(list, p)
	}
	if err := sc.Err(); err != nil { return nil, fmt.Errorf("%s: %w", name, err) }
	return list, nil
}

// Raws returns the raw text of each pattern, in order.
func Raws(list []Pattern) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.Raw
	}
	return out
}
