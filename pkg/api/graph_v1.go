// pkg/api/graph_v1.go
package api

// GraphStatsV1 is the stable JSON schema for `dbgraph stats`.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type GraphStatsV1 struct {
	Input           string `json:"input"`
	Layout          string `json:"layout"` // "edge" | "node"
	Strategy        string `json:"strategy,omitempty"`
	KmerSize        int    `json:"kmer_size,omitempty"`
	Records         int    `json:"records"`
	Nodes           int    `json:"nodes"`
	Edges           int    `json:"edges"`
	SelfMirrorNodes int    `json:"self_mirror_nodes"`
	SelfMirrorEdges int    `json:"self_mirror_edges"`
}

// CheckResultV1 is one JSONL line of `dbgraph check --json`.
type CheckResultV1 struct {
	Input string `json:"input"`
	OK    bool   `json:"ok"`
	Nodes int    `json:"nodes,omitempty"`
	Edges int    `json:"edges,omitempty"`
	Error string `json:"error,omitempty"`
}
