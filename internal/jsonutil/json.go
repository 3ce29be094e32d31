// Package jsonutil holds the encoder settings shared by the JSON and JSONL
// report writers.
package jsonutil

import (
	"encoding/json"
	"io"
	"strings"
)

// NewEncoder returns an encoder that keeps <, > and & literal, so input paths
// round-trip unchanged. indent > 0 switches to multi-line output.
func NewEncoder(w io.Writer, indent int) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	return enc
}

// WriteDocument writes v as a single two-space indented document.
func WriteDocument(w io.Writer, v any) error {
	return NewEncoder(w, 2).Encode(v)
}
