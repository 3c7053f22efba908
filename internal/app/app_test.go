package app

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"motifmark/internal/version"
)

func TestDefaultOutput(t *testing.T) {
	tests := map[string]string{
		"genes.fa":               "genes.png",
		"data/genes.fasta.gz":    filepath.Join("data", "genes.png"),
		"/tmp/Figure_1_motif.fa": "/tmp/Figure_1_motif.png",
		"noext":                  "noext.png",
	}
	for in, want := range tests {
		got, err := DefaultOutput(in)
		if err != nil || got != want {
			t.Errorf("DefaultOutput(%q) = %q, %v want %q", in, got, err, want)
		}
	}
	if _, err := DefaultOutput("-"); !errors.Is(err, ErrUsage) {
		t.Errorf("stdin without --output: err = %v", err)
	}
}

func TestHelpAndVersion(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := Run([]string{"--help"}, &out, &errBuf); code != ExitOK {
		t.Fatalf("--help exit %d", code)
	}
	for _, want := range []string{"--fasta", "--motifs", "--seed", "--report"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("help lacks %s", want)
		}
	}
	if strings.Contains(out.String(), "--profile") {
		t.Error("--profile should be hidden")
	}
	out.Reset()
	if code := Run([]string{"--version"}, &out, &errBuf); code != ExitOK || !strings.Contains(out.String(), version.Version) {
		t.Fatalf("--version exit %d out %q", code, out.String())
	}
}

func TestConfigFileLayout(t *testing.T) {
	dir := t.TempDir()
	fa := filepath.Join(dir, "g.fa")
	mo := filepath.Join(dir, "m.txt")
	cf := filepath.Join(dir, "settings.toml")
	_ = os.WriteFile(fa, []byte(">G1\nacgtACGTacgt\n"), 0o644)
	_ = os.WriteFile(mo, []byte("AC\nGT\n"), 0o644)
	_ = os.WriteFile(cf, []byte("seed = 3\nquiet = true\n[layout]\nmargin = 10\ntrack-height = 40\nright-pad = 0\n"), 0o644)

	var out, errBuf bytes.Buffer
	code := Run([]string{"-f", fa, "-m", mo, "--config", cf, "-o", "-"}, &out, &errBuf)
	if code != ExitOK {
		t.Fatalf("exit %d: %s", code, errBuf.String())
	}
	if errBuf.Len() != 0 {
		t.Errorf("quiet from config ignored: %q", errBuf.String())
	}
	img, err := png.Decode(&out)
	if err != nil {
		t.Fatal(err)
	}
	// 10 + 12 + 0 wide; 1*40 + 2*25 + 50 high
	if b := img.Bounds(); b.Dx() != 22 || b.Dy() != 140 {
		t.Fatalf("size = %v", b)
	}
}

func TestBadInvocations(t *testing.T) {
	dir := t.TempDir()
	cases := [][]string{
		{"-f", "-", "-m", "m.txt"},                     // stdin without --output
		{"-f", "a.fa", "-m", "m.txt", "--profile", "x"}, // unknown profile mode
		{"-f", "a.fa", "-m", "m.txt", "stray"},          // positional
		{"-f", "a.fa", "-m", "m.txt", "--config", filepath.Join(dir, "none.yaml")},
	}
	for _, argv := range cases {
		var out, errBuf bytes.Buffer
		if code := Run(argv, &out, &errBuf); code != ExitUsage {
			t.Errorf("%v: exit %d, want %d (%s)", argv, code, ExitUsage, errBuf.String())
		}
	}
}
