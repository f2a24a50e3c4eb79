// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"ganflu/internal/logging"
	"ganflu/internal/writers"
)

// Common holds CLI fields shared by ganflu and gff3togbk.
type Common struct {
	// Annotation
	CodonTable int

	// Performance
	Threads int

	// Output
	Format string // genbank|json|jsonl

	// Misc
	LogLevel string
	Quiet    bool
	Version  bool
	Examples bool
}

// Register wires shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	fs.IntVar(&c.CodonTable, "codon-table", 1, "NCBI translation table [1]")

	fs.IntVar(&c.Threads, "threads", 0, "records translated concurrently (0=all CPUs) [0]")

	fs.StringVar(&c.Format, "format", writers.FormatGenBank, "output: "+strings.Join(writers.Names(), " | ")+" [genbank]")
	fs.StringVar(&c.Format, "f", writers.FormatGenBank, "alias of --format")

	fs.StringVar(&c.LogLevel, "log-level", "info", "log level: "+strings.Join(logging.Levels, " | ")+" [info]")
	fs.BoolVar(&c.Quiet, "quiet", false, "only log errors [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Examples, "examples", false, "print usage examples and exit [false]")
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if c.CodonTable < 1 {
		return errors.New("--codon-table must be ≥ 1")
	}
	if _, ok := writers.Formats[c.Format]; !ok {
		return fmt.Errorf("invalid --format %q", c.Format)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Required returns an error naming the first empty flag in pairs of
// (flag name, value).
func Required(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return fmt.Errorf("--%s is required", pairs[i])
		}
	}
	return nil
}
