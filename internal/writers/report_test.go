package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"dbgraph/pkg/api"
)

func TestWriteStats(t *testing.T) {
	s := api.GraphStatsV1{Input: "u.fa", Layout: "edge", Records: 3, Nodes: 8, Edges: 6}

	var b bytes.Buffer
	if err := WriteStats(&b, "json", s); err != nil {
		t.Fatalf("json: %v", err)
	}
	var back api.GraphStatsV1
	if err := json.Unmarshal(b.Bytes(), &back); err != nil || back != s {
		t.Fatalf("json stats: %v %+v", err, back)
	}

	b.Reset()
	if err := WriteStats(&b, "text", s); err != nil {
		t.Fatalf("text: %v", err)
	}
	if !strings.Contains(b.String(), "nodes") || !strings.Contains(b.String(), " 8\n") {
		t.Fatalf("text stats: %q", b.String())
	}

	if err := WriteStats(&b, "xml", s); err == nil {
		t.Fatalf("expected error for unknown stats format")
	}
}

func TestCheckWriterJSONL(t *testing.T) {
	var b bytes.Buffer
	in, done := StartCheckWriter(&b, "jsonl", 1)
	in <- api.CheckResultV1{Input: "a.fa", OK: true, Nodes: 8, Edges: 6}
	in <- api.CheckResultV1{Input: "b.fa", Error: "boom"}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("jsonl: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 || !strings.Contains(lines[1], `"error":"boom"`) {
		t.Fatalf("jsonl lines: %q", lines)
	}
}

func TestCheckWriterText(t *testing.T) {
	var b bytes.Buffer
	in, done := StartCheckWriter(&b, "text", 0)
	in <- api.CheckResultV1{Input: "a.fa", OK: true, Nodes: 8, Edges: 6}
	in <- api.CheckResultV1{Input: "b.fa", Error: "boom"}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("text: %v", err)
	}
	want := "a.fa\tok\tnodes=8 edges=6\nb.fa\tFAIL\tboom\n"
	if b.String() != want {
		t.Fatalf("got %q want %q", b.String(), want)
	}
}

func TestUnknownCheckFormatError(t *testing.T) {
	var b bytes.Buffer
	in, done := StartCheckWriter(&b, "???", 1)
	in <- api.CheckResultV1{Input: "a.fa"}
	close(in)
	err := <-done
	if err == nil || !strings.Contains(err.Error(), "unknown check format") {
		t.Fatalf("want 'unknown check format' error, got: %v", err)
	}
}
