package writers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"dbgraph/internal/jsonlutil"
	"dbgraph/pkg/api"
)

// StartCheckWriter spins up a writer goroutine for check results. "jsonl"
// writes one api.CheckResultV1 per line; "text" writes one line per input.
func StartCheckWriter(out io.Writer, format string, bufSize int) (chan<- api.CheckResultV1, <-chan error) {
	if format == "jsonl" {
		return jsonlutil.Start[api.CheckResultV1](out, bufSize,
			func(enc *json.Encoder, r api.CheckResultV1) error { return enc.Encode(r) },
			IsBrokenPipe,
		)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan api.CheckResultV1, bufSize)
	errCh := make(chan error, 1)

	go func() {
		if format != "text" {
			for range in {
			}
			errCh <- fmt.Errorf("unknown check format %q (no writer registered)", format)
			return
		}
		bw := bufio.NewWriter(out)
		var err error
		for r := range in {
			if err != nil {
				continue
			}
			if r.OK {
				_, err = fmt.Fprintf(bw, "%s\tok\tnodes=%d edges=%d\n", r.Input, r.Nodes, r.Edges)
			} else {
				_, err = fmt.Fprintf(bw, "%s\tFAIL\t%s\n", r.Input, r.Error)
			}
		}
		if err == nil {
			err = bw.Flush()
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()

	return in, errCh
}
