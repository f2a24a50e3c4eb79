// internal/miniprot/miniprot.go
package miniprot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Defaults match the reference proteome builds shipped with ganflu.
const (
	DefaultBinary   = "miniprot"
	DefaultPrefix   = "MP"
	DefaultKmerSize = 15
	StderrFileName  = "miniprot.stderr"
)

// ErrBinaryNotFound is returned when the aligner is not on PATH.
var ErrBinaryNotFound = errors.New("aligner binary not found")

// AlignerError reports a non-zero exit of the aligner.
type AlignerError struct {
	ExitCode int
	Stderr   string // last lines of the stderr log
	Log      string // path of the full stderr log
}

func (e *AlignerError) Error() string {
	msg := fmt.Sprintf("miniprot exited with status %d (see %s)", e.ExitCode, e.Log)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Options describe one aligner run.
type Options struct {
	Binary   string // default "miniprot"
	Prefix   string // feature ID prefix (-P), default "MP"
	KmerSize int    // -J, default 15

	Input    string // nucleotide FASTA
	Proteome string // reference protein FASTA
	Output   string // GFF3 destination
	Stderr   string // stderr log destination
}

func (o Options) withDefaults() Options {
	if o.Binary == "" {
		o.Binary = DefaultBinary
	}
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	if o.KmerSize <= 0 {
		o.KmerSize = DefaultKmerSize
	}
	return o
}

// Args returns the aligner command line without the binary.
func (o Options) Args() []string {
	o = o.withDefaults()
	return []string{"-P", o.Prefix, "--gff", "-J", fmt.Sprint(o.KmerSize), o.Input, o.Proteome}
}

// LookPath resolves the aligner binary.
func LookPath(bin string) (string, error) {
	if bin == "" {
		bin = DefaultBinary
	}
	p, err := exec.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrBinaryNotFound, bin)
	}
	return p, nil
}

// Run aligns o.Proteome against o.Input, writing GFF3 to o.Output and the
// aligner's stderr to o.Stderr.
func Run(ctx context.Context, o Options, logger *log.Logger) error {
	o = o.withDefaults()
	bin, err := LookPath(o.Binary)
	if err != nil {
		return err
	}
	logger.Debug("found aligner", "path", bin)

	out, err := os.Create(o.Output)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	errf, err := os.Create(o.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = errf.Close() }()

	args := o.Args()
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = out
	cmd.Stderr = errf
	logger.Info("running aligner", "cmd", bin+" "+strings.Join(args, " "))

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			_ = errf.Sync()
			return &AlignerError{ExitCode: ee.ExitCode(), Stderr: tail(o.Stderr, 3), Log: o.Stderr}
		}
		return fmt.Errorf("run %s: %w", bin, err)
	}
	return out.Sync()
}

func tail(path string, n int) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	lines := strings.Split(string(bytes.TrimSpace(b)), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, " | ")
}
