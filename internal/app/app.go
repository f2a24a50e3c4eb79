// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"

	"ganflu/internal/appcore"
	"ganflu/internal/cli"
	"ganflu/internal/clibase"
	"ganflu/internal/logging"
	"ganflu/internal/miniprot"
	"ganflu/internal/reference"
	"ganflu/internal/version"
	"ganflu/internal/writers"
)

const name = "ganflu"

// Extensions per output format.
var extensions = map[string]string{
	writers.FormatGenBank: ".gbk",
	writers.FormatJSON:    ".json",
	writers.FormatJSONL:   ".jsonl",
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	switch {
	case errors.Is(err, flag.ErrHelp):
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, 0)
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		cli.Examples(outw)
		return flush(outw, stderr, 0)
	case err != nil:
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(outw, stderr, 0)
	}

	logger, err := logging.New(stderr, name, opts.LogLevel, opts.Quiet)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if err := run(parent, opts, logger); err != nil {
		logger.Error(err.Error())
		return appcore.ExitCode(err)
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// run locates the reference, aligns its proteome against the input with
// miniprot, then converts the resulting GFF3 into annotated records.
func run(ctx context.Context, opts cli.Options, logger *log.Logger) error {
	dir, err := reference.Dir(opts.DBDir, opts.Target)
	if err != nil {
		return &appcore.InputError{Err: err}
	}
	tomlPath, err := reference.FindTOML(dir)
	if err != nil {
		return &appcore.InputError{Err: err}
	}
	ref, err := reference.Load(tomlPath, logger)
	if err != nil {
		return &appcore.InputError{Err: err}
	}
	if err := ref.RequireProteome(); err != nil {
		return &appcore.InputError{Err: err}
	}
	logger.Debug("loaded reference", "file", tomlPath, "antigens", ref.AntigenNames())

	work, err := opts.WorkDir()
	if err != nil {
		return err
	}
	stem := filepath.Join(work, opts.Stem())
	gff := stem + ".gff3"

	err = miniprot.Run(ctx, miniprot.Options{
		Binary:   opts.Miniprot,
		KmerSize: opts.KmerSize,
		Input:    opts.Input,
		Proteome: ref.ProteomePath(),
		Output:   gff,
		Stderr:   filepath.Join(work, miniprot.StderrFileName),
	}, logger)
	if errors.Is(err, miniprot.ErrBinaryNotFound) {
		return &appcore.InputError{Err: err}
	} else if err != nil {
		return err
	}

	return appcore.Convert(ctx, appcore.Options{
		FASTA:      opts.Input,
		GFF:        gff,
		Ref:        ref,
		Isolate:    opts.IsolateName(),
		CodonTable: opts.CodonTable,
		Threads:    opts.Threads,
		Format:     opts.Format,
		Output:     stem + extensions[opts.Format],
	}, nil, logger)
}

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
