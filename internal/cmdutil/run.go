package cmdutil

import (
	"context"
	"errors"
	"fmt"

	"dbgraph/internal/writers"
)

// Exit codes shared by all subcommands.
const (
	ExitOK       = 0
	ExitInput    = 2
	ExitOutput   = 3
	ExitCanceled = 130
)

// ErrOutput marks failures writing results, as opposed to bad input.
var ErrOutput = errors.New("output error")

// Output tags err as an output failure. nil stays nil.
func Output(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrOutput, err)
}

// ExitCode maps an error to the process exit code. A broken pipe counts as
// success.
func ExitCode(err error) int {
	switch {
	case err == nil, writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ExitCanceled
	case errors.Is(err, ErrOutput):
		return ExitOutput
	default:
		return ExitInput
	}
}
