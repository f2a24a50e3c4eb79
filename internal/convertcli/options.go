// internal/convertcli/options.go
package convertcli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"ganflu/internal/clibase"
)

// Options holds all gff3togbk CLI flags.
type Options struct {
	clibase.Common

	Input   string // genome FASTA
	GFF     string // aligner GFF3
	TOML    string // reference configuration
	Output  string // destination file, '-' for stdout
	Isolate string
}

// NewFlagSet returns a FlagSet with ContinueOnError and gff3togbk's usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "GFF3 + FASTA to annotated GenBank", func(out io.Writer, _ func(string) string) {
		fmt.Fprintf(out, "Usage: %s -i in.fa -g in.gff3 -t ref.toml -o out.gbk -s isolate [options]\n", name)
		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -i, --input file            Genome segments FASTA (plain, .gz, or '-') [*]")
		fmt.Fprintln(out, "  -g, --gff file              miniprot GFF3 [*]")
		fmt.Fprintln(out, "  -t, --toml file             Reference TOML [*]")
		fmt.Fprintln(out, "\nRecords:")
		fmt.Fprintln(out, "  -o, --output file           Output file, '-' for stdout [*]")
		fmt.Fprintln(out, "  -s, --isolate string        Isolate name [*]")
	})
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	clibase.Register(fs, &opt.Common)

	fs.StringVar(&opt.Input, "input", "", "genome FASTA [*]")
	fs.StringVar(&opt.Input, "i", "", "alias of --input")
	fs.StringVar(&opt.GFF, "gff", "", "miniprot GFF3 [*]")
	fs.StringVar(&opt.GFF, "g", "", "alias of --gff")
	fs.StringVar(&opt.TOML, "toml", "", "reference TOML [*]")
	fs.StringVar(&opt.TOML, "t", "", "alias of --toml")
	fs.StringVar(&opt.Output, "output", "", "output file [*]")
	fs.StringVar(&opt.Output, "o", "", "alias of --output")
	fs.StringVar(&opt.Isolate, "isolate", "", "isolate name [*]")
	fs.StringVar(&opt.Isolate, "s", "", "alias of --isolate")

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
	if err := clibase.Required("input", opt.Input, "gff", opt.GFF, "toml", opt.TOML,
		"output", opt.Output, "isolate", opt.Isolate); err != nil {
		return opt, err
	}
	return opt, clibase.Validate(&opt.Common)
}

// Examples prints the gff3togbk quickstart.
func Examples(out io.Writer) {
	clibase.PrintExamples(out, "gff3togbk", func(w io.Writer) {
		fmt.Fprintln(w, "  # convert an existing miniprot run")
		fmt.Fprintln(w, "  gff3togbk -i sample.fa -g sample.gff3 -t db/IAV/IAV.toml -o sample.gbk -s A/Narita/1/2009")
		fmt.Fprintln(w, "\n  # JSON to stdout")
		fmt.Fprintln(w, "  gff3togbk -i sample.fa -g sample.gff3 -t IAV.toml -o - -s A/Narita/1/2009 -f json")
	})
}
