// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"ganflu/internal/record"
)

// WriteFunc serializes a full set of records.
type WriteFunc func(w io.Writer, genomes []record.Genome) error

// Formats maps a format name to its writer. Populated in init() blocks.
var Formats = map[string]WriteFunc{}

// Register adds or replaces (last wins) the writer for format.
func Register(format string, fn WriteFunc) { Formats[format] = fn }

// Names lists the registered formats in sorted order.
func Names() []string {
	out := make([]string, 0, len(Formats))
	for k := range Formats {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format. A broken pipe is
// not reported as an error.
func Write(format string, w io.Writer, genomes []record.Genome) error {
	fn, ok := Formats[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	if err := fn(w, genomes); err != nil && !IsBrokenPipe(err) {
		return err
	}
	return nil
}
