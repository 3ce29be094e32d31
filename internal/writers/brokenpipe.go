package writers

import (
	"errors"
	"io"
	"syscall"
)

// Errors that mean the reader on the other end went away: a pipe into `head`,
// or a socket whose peer hung up.
var downstreamGone = []error{
	syscall.EPIPE,
	syscall.ECONNRESET,
	io.ErrClosedPipe,
}

// IsBrokenPipe reports whether err, or anything it wraps, says the consumer
// of our output has exited.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	for _, target := range downstreamGone {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
