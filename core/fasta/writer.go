// core/fasta/writer.go
package fasta

import (
	"fmt"
	"io"
)

// WriteRecord writes r as a two-line FASTA record. The header is ">ID" when
// Desc is empty and ">ID Desc" otherwise; the sequence is not wrapped.
func WriteRecord(w io.Writer, r Record) error {
	var err error
	if r.Desc == "" {
		_, err = fmt.Fprintf(w, ">%s\n%s\n", r.ID, r.Seq)
	} else {
		_, err = fmt.Fprintf(w, ">%s %s\n%s\n", r.ID, r.Desc, r.Seq)
	}
	return err
}
