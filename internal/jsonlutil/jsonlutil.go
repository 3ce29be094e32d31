package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"dbgraph/internal/jsonutil"
)

// Buffered writers are pooled across streams; each stream rebinds one to its
// output and returns it on exit.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Start runs a goroutine that encodes every value received on the returned
// channel as one JSON line. The error channel yields exactly once, after the
// input channel is closed or encode fails. Errors matching isBroken on the
// final flush are dropped.
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := jsonutil.NewEncoder(bw, 0)

		var err error
		for v := range in {
			if err == nil {
				err = encode(enc, v)
			}
		}
		if err == nil {
			err = bw.Flush()
		}
		if isBroken(err) {
			err = nil
		}
		done <- err
	}()

	return in, done
}
