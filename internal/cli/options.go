// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"ganflu/internal/clibase"
	"ganflu/internal/miniprot"
	"ganflu/internal/reference"
)

// Options holds all ganflu CLI flags.
type Options struct {
	clibase.Common

	// Input
	Input  string
	Target string
	DBDir  string

	// Output
	Output  string // stem path; derived from Input when empty
	Isolate string

	// Aligner
	Miniprot string
	KmerSize int
}

// NewFlagSet returns a FlagSet with ContinueOnError and ganflu's usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "influenza genome annotation", func(out io.Writer, def func(string) string) {
		fmt.Fprintf(out, "Usage: %s -i in.fa -t IAV|IBV [options]\n", name)
		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -i, --input file            Genome segments FASTA (plain, .gz, or '-') [*]")
		fmt.Fprintln(out, "  -t, --target string         Virus type: IAV | IBV [*]")
		fmt.Fprintf(out, "  -d, --db-dir dir            Reference directory (default $%s/<target>, then <exe>/db/<target>)\n", reference.EnvDB)
		fmt.Fprintln(out, "\nRecords:")
		fmt.Fprintln(out, "  -o, --output path           Output stem; files land next to it (default: input basename)")
		fmt.Fprintln(out, "      --isolate string        Isolate name, e.g. A/Narita/1/2009 (default: output stem)")
		fmt.Fprintln(out, "\nAligner:")
		fmt.Fprintf(out, "      --miniprot path         miniprot binary [%s]\n", def("miniprot"))
		fmt.Fprintf(out, "      --kmer int              miniprot k-mer size (-J) [%s]\n", def("kmer"))
	})
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	clibase.Register(fs, &opt.Common)

	fs.StringVar(&opt.Input, "input", "", "genome FASTA [*]")
	fs.StringVar(&opt.Input, "i", "", "alias of --input")
	fs.StringVar(&opt.Target, "target", "", "virus type: IAV | IBV [*]")
	fs.StringVar(&opt.Target, "t", "", "alias of --target")
	fs.StringVar(&opt.DBDir, "db-dir", "", "reference directory")
	fs.StringVar(&opt.DBDir, "d", "", "alias of --db-dir")

	fs.StringVar(&opt.Output, "output", "", "output stem")
	fs.StringVar(&opt.Output, "o", "", "alias of --output")
	fs.StringVar(&opt.Isolate, "isolate", "", "isolate name")

	fs.StringVar(&opt.Miniprot, "miniprot", miniprot.DefaultBinary, "miniprot binary")
	fs.IntVar(&opt.KmerSize, "kmer", miniprot.DefaultKmerSize, "miniprot k-mer size")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if opt.Version {
		return opt, nil
	}
	if opt.Examples {
		return opt, clibase.ErrPrintedAndExitOK
	}
	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if err := clibase.Required("input", opt.Input, "target", opt.Target); err != nil {
		return opt, err
	}
	if !reference.ValidTarget(opt.Target) {
		return opt, fmt.Errorf("invalid --target %q (want %s)", opt.Target, strings.Join(reference.Targets, " | "))
	}
	if opt.Input == "-" && opt.Output == "" {
		return opt, errors.New("--output is required when reading from stdin")
	}
	if opt.KmerSize < 1 {
		return opt, errors.New("--kmer must be ≥ 1")
	}
	return opt, clibase.Validate(&opt.Common)
}

// Stem returns the output basename without extension.
func (o Options) Stem() string {
	src := o.Output
	if src == "" {
		src = o.Input
	}
	base := filepath.Base(src)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// WorkDir is the directory all output files are written to: the output's
// directory, or the input's when no output is given.
func (o Options) WorkDir() (string, error) {
	src := o.Output
	if src == "" {
		src = o.Input
	}
	abs, err := filepath.Abs(src)
	if err != nil {
		return "", err
	}
	return filepath.Dir(abs), nil
}

// IsolateName falls back to the output stem.
func (o Options) IsolateName() string {
	if o.Isolate != "" {
		return o.Isolate
	}
	return o.Stem()
}

// Examples prints the ganflu quickstart.
func Examples(out io.Writer) {
	clibase.PrintExamples(out, "ganflu", func(w io.Writer) {
		fmt.Fprintln(w, "  # annotate an influenza A genome; writes sample.gff3 and sample.gbk next to it")
		fmt.Fprintln(w, "  ganflu -i sample.fa -t IAV --isolate A/Narita/1/2009")
		fmt.Fprintln(w, "\n  # influenza B, JSON output into results/")
		fmt.Fprintln(w, "  ganflu -i sample.fa -t IBV -o results/sample -f json")
		fmt.Fprintln(w, "\n  # custom reference directory")
		fmt.Fprintln(w, "  ganflu -i sample.fa -t IAV -d /srv/ganflu/db/IAV")
	})
}
