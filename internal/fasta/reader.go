// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"motifmark/internal/cmdutil"
)

// ErrMalformedHeader marks a '>' line without a gene name.
var ErrMalformedHeader = errors.New("malformed FASTA header")

// HeaderError locates a malformed header.
type HeaderError struct {
	Line int
	Text string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("line %d: %v %q (no gene name after '>')", e.Line, ErrMalformedHeader, e.Text)
}

func (e *HeaderError) Unwrap() error { return ErrMalformedHeader }

// Record is one FASTA entry in file order. Seq keeps case: upper-case
// letters mark the exon.
type Record struct {
	Gene    string
	Header  string // header text after the gene name
	Seq     []byte
	RevComp bool
	Track   int // 1-based
}

const rcTag = "reverse complement"

// ReadFile parses path ("-" for stdin, gzip transparently).
func ReadFile(path string) ([]Record, error) {
	rc, err := cmdutil.Open(path)
	if err != nil { return nil, err }
	defer rc.Close()
	recs, err := Parse(rc)
	if err != nil { return nil, fmt.Errorf("%s: %w", path, err) }
	return recs, nil
}

// Parse splits r into records. A body with no header at all becomes a single
// unnamed record; lines before the first header are otherwise ignored.
func Parse(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)
	var (
		out      []Record
		cur      *Record
		preamble []byte
		ln       int
	)
	flush := func() {
		if cur != nil {
			out = append(out, *cur)
		}
	}
	for {
		line, err := br.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		eof := err == io.EOF
		if eof && len(line) == 0 {
			break
		}
		ln++
		line = bytes.TrimRight(line, "\r\n")

		if len(line) > 0 && line[0] == '>' { // new header
			flush()
			gene, rest, ok := splitHeader(string(line[1:]))
			if !ok {
				return nil, &HeaderError{Line: ln, Text: string(line)}
			}
			cur = &Record{
				Gene:    gene,
				Header:  rest,
				Seq:     []byte{},
				RevComp: strings.Contains(strings.ToLower(rest), rcTag),
				Track:   len(out) + 1,
			}
		} else if cur != nil {
			cur.Seq = appendStripped(cur.Seq, line)
		} else {
			preamble = appendStripped(preamble, line)
		}
		if eof { break }
	}
	if cur == nil { // no header in the whole input
		if preamble == nil {
			preamble = []byte{}
		}
		return []Record{{Seq: preamble, Track: 1}}, nil
	}
	flush()
	return out, nil
}

// splitHeader returns the gene token and the (trimmed) rest of the header.
func splitHeader(h string) (gene, rest string, ok bool) {
	if h == "" || isSpace(h[0]) {
		return "", "", false
	}
	i := strings.IndexFunc(h, func(r rune) bool { return r < 0x80 && isSpace(byte(r)) })
	if i < 0 {
		return h, "", true
	}
	return h[:i], strings.TrimSpace(h[i:]), true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\v' || c == '\f' || c == '\r' || c == '\n'
}

// appendStripped appends line to dst without any whitespace, case unchanged.
func appendStripped(dst, line []byte) []byte {
	for _, c := range line {
		if !isSpace(c) {
			dst = append(dst, c)
		}
	}
	return dst
}
