// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs when --examples was given.
// ganflu and gff3togbk print their quickstart and exit 0 on it.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples writes a "<tool>: quickstart" header, the tool's example
// command lines from body, and a pointer to --help.
func PrintExamples(out io.Writer, tool string, body func(io.Writer)) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s: quickstart\n\n", tool)
	if body != nil {
		body(out)
	}
	_, _ = fmt.Fprintf(out, "\nRun %s --help for all flags.\n", tool)
}
