// Package biclique implements the biclique-cover store (spec component
// C3): parsing a cover file into an ordered, append-only vector of
// bicliques plus a node→biclique-ids multi-map, and validating every
// claimed (dmr, gene) pair against a core.Graph.
//
// The cover file format (spec.md §6) is an optional `- key: value`
// header terminated by a `# Clusters` sentinel, followed by one
// whitespace-tokenized biclique per non-blank line. Parsing follows
// the teacher's plain top-down scanner style (no parser-combinator
// library; the grammar is one sentinel line plus space-split tokens,
// which a regexp/scanner library would not simplify).
package biclique
