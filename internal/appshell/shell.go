// Package appshell turns a RunContext-style entry point into a process:
// signals become context cancellation and the return value becomes the exit
// status.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Runner is the shape of app.RunContext.
type Runner func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

const interruptedStatus = 130

// Main never returns.
func Main(run Runner) {
	// A closed stdout surfaces as EPIPE on write instead of killing the process.
	signal.Ignore(syscall.SIGPIPE)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Exec(ctx, run, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// Exec runs argv through run. Bare invocations print help. A run that
// reports success after ctx was canceled yields 130.
func Exec(ctx context.Context, run Runner, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	code := run(ctx, argv, stdout, stderr)
	if code == 0 && ctx.Err() != nil {
		return interruptedStatus
	}
	return code
}
