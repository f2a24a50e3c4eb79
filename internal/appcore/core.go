// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"ganflu/internal/fasta"
	"ganflu/internal/gff3"
	"ganflu/internal/pipeline"
	"ganflu/internal/record"
	"ganflu/internal/reference"
	"ganflu/internal/resolve"
	"ganflu/internal/translate"
	"ganflu/internal/writers"
)

// Options describe one GFF3-to-records conversion.
type Options struct {
	FASTA   string
	GFF     string
	Ref     *reference.Config
	Isolate string

	CodonTable int
	Threads    int // 0 = all CPUs

	Format string
	Output string // destination file, "-" = stdout

	Now func() time.Time // record date; defaults to time.Now
}

// InputError marks a failure caused by user-supplied files or flags.
type InputError struct{ Err error }

func (e *InputError) Error() string { return e.Err.Error() }
func (e *InputError) Unwrap() error { return e.Err }

func inputErr(err error) error {
	if err == nil {
		return nil
	}
	return &InputError{Err: err}
}

// Annotate reads the FASTA and GFF3 inputs and returns one translated
// record per input sequence.
func Annotate(ctx context.Context, o Options, logger *log.Logger) ([]record.Genome, error) {
	seqs, err := fasta.ReadFile(ctx, o.FASTA)
	if err != nil {
		return nil, inputErr(err)
	}
	logger.Debug("read sequences", "file", o.FASTA, "n", len(seqs))

	recs, err := gff3.ParseFile(o.GFF)
	if err != nil {
		return nil, inputErr(err)
	}
	logger.Debug("parsed GFF3", "file", o.GFF, "records", len(recs))

	res, err := resolve.Resolve(recs, resolve.Rules{
		Antigens: o.Ref.AntigenNames(),
		Slippage: o.Ref.SlippageNames(),
	})
	if err != nil {
		return nil, inputErr(err)
	}
	n := 0
	for _, id := range res.SeqIDs {
		n += len(res.For(id))
	}
	logger.Info("resolved features", "sequences", len(res.SeqIDs), "features", n)

	asm := record.Assembler{Ref: o.Ref, Isolate: o.Isolate, Now: o.Now, Logger: logger}
	genomes, err := asm.Build(seqs, res)
	if err != nil {
		return nil, inputErr(err)
	}
	for _, id := range res.SeqIDs {
		if !hasSeq(seqs, id) {
			logger.Warn("GFF3 sequence not in FASTA; features dropped", "seq", id)
		}
	}

	tr, err := translate.New(o.CodonTable)
	if err != nil {
		return nil, inputErr(err)
	}
	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	if err := pipeline.Translate(ctx, pipeline.Config{Threads: thr}, genomes, tr); err != nil {
		return nil, err
	}
	if len(genomes) > 0 {
		logger.Info("annotated records", "n", len(genomes), "serotype", genomes[0].Annotations.Serotype)
	}
	return genomes, nil
}

func hasSeq(seqs []fasta.Record, id string) bool {
	for _, s := range seqs {
		if s.ID == id {
			return true
		}
	}
	return false
}

// Convert runs Annotate and writes the result. Nothing is written unless
// every record was annotated.
func Convert(ctx context.Context, o Options, stdout io.Writer, logger *log.Logger) error {
	genomes, err := Annotate(ctx, o, logger)
	if err != nil {
		return err
	}
	if err := WriteOutput(o.Format, o.Output, stdout, genomes); err != nil {
		return err
	}
	if o.Output != "-" {
		logger.Info("wrote output", "file", o.Output, "format", o.Format)
	}
	return nil
}

// WriteOutput writes genomes to path ("-" = stdout). Files are written to
// a temporary sibling and renamed into place.
func WriteOutput(format, path string, stdout io.Writer, genomes []record.Genome) error {
	if path == "-" {
		bw := bufio.NewWriter(stdout)
		if err := writers.Write(format, bw, genomes); err != nil {
			return err
		}
		if err := bw.Flush(); err != nil && !writers.IsBrokenPipe(err) {
			return err
		}
		return nil
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := writers.Write(format, tmp, genomes); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// ExitCode maps an error to the process exit status: 0 ok, 2 input,
// 3 runtime, 130 interrupted.
func ExitCode(err error) int {
	var ie *InputError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	case errors.As(err, &ie):
		return 2
	}
	return 3
}
