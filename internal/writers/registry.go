// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"motifmark/internal/pipeline"
)

// ReportFunc writes one report format.
type ReportFunc func(w io.Writer, res pipeline.Result) error

// Report registry (format → handler). Filled from init() in the format files.
var reports = map[string]ReportFunc{}

// Register adds a format (idempotent, last wins).
func Register(format string, fn ReportFunc) { reports[format] = fn }

// Formats lists the registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(reports))
	for f := range reports {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the registered writer. "none" and "" write nothing.
func Write(format string, w io.Writer, res pipeline.Result) error {
	if format == "" || format == "none" {
		return nil
	}
	fn, ok := reports[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, res)
}
