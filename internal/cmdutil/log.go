// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Logger writes prefixed status lines (normally to stderr). A nil Dst
// discards everything; Quiet drops INFO and WARN lines.
type Logger struct {
	Dst   io.Writer
	Quiet bool
}

func (l Logger) Infof(format string, a ...any) { Infof(l.Dst, l.Quiet, format, a...) }
func (l Logger) Warnf(format string, a ...any) { Warnf(l.Dst, l.Quiet, format, a...) }

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet || dst == nil {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

func Infof(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet || dst == nil {
		return
	}
	_, _ = fmt.Fprintf(dst, "INFO: "+format+"\n", a...)
}

// Errorf prints an error line; errors are never silenced by Quiet.
func Errorf(dst io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(dst, "error: "+format+"\n", a...)
}
