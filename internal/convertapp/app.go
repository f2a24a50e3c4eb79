// internal/convertapp/app.go
package convertapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"ganflu/internal/appcore"
	"ganflu/internal/clibase"
	"ganflu/internal/convertcli"
	"ganflu/internal/logging"
	"ganflu/internal/reference"
	"ganflu/internal/version"
	"ganflu/internal/writers"
)

const name = "gff3togbk"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := convertcli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := convertcli.ParseArgs(fs, argv)
	switch {
	case errors.Is(err, flag.ErrHelp):
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, 0)
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		convertcli.Examples(outw)
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

	ref, err := reference.Load(opts.TOML, logger)
	if err != nil {
		logger.Error(err.Error())
		return 2
	}
	err = appcore.Convert(parent, appcore.Options{
		FASTA:      opts.Input,
		GFF:        opts.GFF,
		Ref:        ref,
		Isolate:    opts.Isolate,
		CodonTable: opts.CodonTable,
		Threads:    opts.Threads,
		Format:     opts.Format,
		Output:     opts.Output,
	}, outw, logger)
	if err != nil {
		logger.Error(err.Error())
		return appcore.ExitCode(err)
	}
	return flush(outw, stderr, 0)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
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
