// Package writers turns graphs and reports into serialized outputs.
//
// Graph formats are looked up in a registry keyed by format name, so the CLI
// never switches on formats itself. JSON and JSONL reports go through pkg/api
// (v1) for a stable wire format.
package writers
