// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"motifmark/internal/cmdutil"
	"motifmark/internal/config"
	"motifmark/internal/palette"
	"motifmark/internal/pipeline"
	"motifmark/internal/render"
	"motifmark/internal/version"
	"motifmark/internal/writers"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitInput       = 1 // bad or missing input
	ExitUsage       = 2 // bad flags or config
	ExitWrite       = 3 // image or report could not be written
	ExitInterrupted = 130
)

// ErrUsage marks a command-line or configuration mistake.
var ErrUsage = errors.New("usage error")

// exitError carries the exit code chosen by the command body.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func fail(code int, err error) error { return &exitError{code: code, err: err} }

type flags struct {
	fasta      string
	motifs     string
	output     string
	configFile string
	profile    string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "motifmark",
		Short: "Draw exons and IUPAC motif sites of FASTA genes as an image",
		Long: `Draw exons and IUPAC motif sites of FASTA genes as an image.

Each FASTA record becomes one track. The single run of upper-case letters in
a record is its exon; every (overlapping) hit of every motif is drawn as a
colored tick, and a legend maps motifs to colors. Motifs may use any IUPAC
nucleotide code and match case-insensitively.`,
		Example: `  motifmark -f genes.fa -m motifs.txt
  motifmark -f genes.fa.gz -m motifs.txt -o figure.png --seed 7
  motifmark -f genes.fa -m motifs.txt --report text | column -t`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	fs.StringVarP(&f.fasta, "fasta", "f", "", "FASTA file with one upper-case exon per record ('-' = stdin, .gz ok)")
	fs.StringVarP(&f.motifs, "motifs", "m", "", "motif file, one IUPAC motif per line")
	fs.StringVarP(&f.output, "output", "o", "", "image path (.png, .jpg, .tiff; '-' = PNG on stdout) [<fasta stem>.png]")
	fs.StringVar(&f.configFile, "config", "", "settings file (yaml, toml or json)")
	fs.Int64("seed", 0, "color seed; same seed and motifs give the same colors [random]")
	fs.Bool("strict-exons", false, "fail when a record has more than one upper-case run")
	fs.String("report", "none", "match table on stdout: none | text | json")
	fs.BoolP("quiet", "q", false, "suppress INFO/WARN lines on stderr")
	fs.StringVar(&f.profile, "profile", "", "(dev) enable profiling one of `cpu|mem|block`")
	_ = fs.MarkHidden("profile")

	_ = cmd.MarkFlagRequired("fasta")
	_ = cmd.MarkFlagRequired("motifs")
	return cmd
}

func loadConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	v := viper.New()
	config.SetDefaults(v)
	if err := config.BindFlags(v, cmd.Flags(), "seed", "strict-exons", "report", "quiet"); err != nil {
		return config.Config{}, err
	}
	if err := config.ReadFile(v, f.configFile); err != nil {
		return config.Config{}, err
	}
	return config.New(v)
}

func startProfile(mode string) (interface{ Stop() }, error) {
	opts := []func(*profile.Profile){profile.ProfilePath("."), profile.Quiet, profile.NoShutdownHook}
	switch strings.ToLower(mode) {
	case "":
		return nil, nil
	case "cpu":
		return profile.Start(append(opts, profile.CPUProfile)...), nil
	case "mem":
		return profile.Start(append(opts, profile.MemProfile)...), nil
	case "block":
		return profile.Start(append(opts, profile.BlockProfile)...), nil
	}
	return nil, fmt.Errorf("%w: invalid --profile %q", ErrUsage, mode)
}

func run(cmd *cobra.Command, f flags, stdout, stderr io.Writer) error {
	conf, err := loadConfig(cmd, f)
	if err != nil {
		return fail(ExitUsage, err)
	}
	log := cmdutil.Logger{Dst: stderr, Quiet: conf.Quiet}

	prof, err := startProfile(f.profile)
	if err != nil {
		return fail(ExitUsage, err)
	}
	if prof != nil {
		defer prof.Stop()
	}

	out := f.output
	if out == "" {
		if out, err = DefaultOutput(f.fasta); err != nil {
			return fail(ExitUsage, err)
		}
	}
	format, err := render.FormatFor(out)
	if err != nil {
		return fail(ExitUsage, fmt.Errorf("%w: %v", ErrUsage, err))
	}
	if out == "-" && conf.Report != "none" {
		return fail(ExitUsage, fmt.Errorf("%w: --report needs stdout, but the image is going there (--output -)", ErrUsage))
	}

	res, err := pipeline.Run(pipeline.Config{
		FastaPath:   f.fasta,
		MotifPath:   f.motifs,
		StrictExons: conf.StrictExons,
		Palette:     palette.Options{Seed: conf.Seed, Seeded: conf.Seeded},
		Layout:      conf.Layout,
	})
	for _, w := range res.Warnings {
		log.Warnf("%s", w)
	}
	if err != nil {
		return fail(ExitInput, err)
	}
	if err := cmd.Context().Err(); err != nil {
		return fail(ExitInterrupted, err)
	}

	surf, err := render.Draw(res.Diagram, render.Options{FontSize: conf.Render.FontSize})
	if err != nil {
		return fail(ExitWrite, err)
	}
	defer surf.Close()

	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	if out == "-" {
		if _, err := surf.WriteTo(outw, format); err != nil && !writers.IsBrokenPipe(err) {
			return fail(ExitWrite, err)
		}
	} else {
		if err := surf.WriteFile(out); err != nil {
			return fail(ExitWrite, fmt.Errorf("write %s: %w", out, err))
		}
		log.Infof("wrote %s (%d genes, %d motifs)", out, len(res.Records), len(res.Patterns))
	}

	if err := writers.Write(conf.Report, outw, res); err != nil && !writers.IsBrokenPipe(err) {
		return fail(ExitWrite, err)
	}
	if err := outw.Flush(); err != nil && !writers.IsBrokenPipe(err) {
		return fail(ExitWrite, err)
	}
	return nil
}

// RunContext executes one invocation and returns the process exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(argv)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		cmdutil.Errorf(stderr, "%v", ee.err)
		return ee.code
	}
	// Anything cobra rejected before RunE: unknown flag, missing required flag, stray args.
	cmdutil.Errorf(stderr, "%v", err)
	_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.Name())
	return ExitUsage
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
