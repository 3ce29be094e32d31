// Package bcalm2 reads and writes bcalm2 unitig FASTA.
//
// Header layout:
//
//	>ID [LN:i:<len>] [KC:i:<total>] [km:f:<mean>] [L:<+|->:<id>:<+|->]...
//
// Each L: token is an overlap from one side of this unitig to one side of
// another. Unitigs can be read node-centric (one node per unitig) or
// edge-centric (one edge per unitig, nodes are the (k-1)-overlaps).
package bcalm2
