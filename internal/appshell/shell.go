// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is a tool entry point; it returns the process exit status.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs fn on the process arguments and exits with its status.
func Main(fn RunFunc) {
	os.Exit(Exec(fn, os.Args[1:], os.Stdout, os.Stderr))
}

// Exec runs fn under a context cancelled by SIGINT/SIGTERM. No arguments
// means -h. A run that was interrupted yet reports success exits 130.
func Exec(fn RunFunc, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	code := fn(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
