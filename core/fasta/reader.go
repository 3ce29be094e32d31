// core/fasta/reader.go
package fasta

import (
	"context"
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Record is one FASTA entry. Desc is the header text after the first
// whitespace, empty if there is none.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// Reader pulls records one at a time.
type Reader struct {
	r *fasta.Reader
	n int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA))}
}

// Read returns the next record, or io.EOF after the last one.
func (r *Reader) Read() (Record, error) {
	s, err := r.r.Read()
	if err == io.EOF {
		return Record{}, io.EOF
	}
	if err != nil {
		return Record{}, fmt.Errorf("fasta record %d: %w", r.n+1, err)
	}
	r.n++
	l, ok := s.(*linear.Seq)
	if !ok {
		return Record{}, fmt.Errorf("fasta record %d: unexpected sequence type %T", r.n, s)
	}
	out := make([]byte, len(l.Seq))
	for i, c := range l.Seq {
		out[i] = byte(c)
	}
	return Record{ID: l.Name(), Desc: l.Description(), Seq: out}, nil
}

// StreamCtx reads every record from r and hands it to emit. It returns
// promptly with ctx.Err() once ctx is done.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	rd := NewReader(r)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, err := rd.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
}

// StreamPathCtx opens path (see Open) and streams its records.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamCtx(ctx, rc, emit)
}
