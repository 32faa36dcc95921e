// Package annotate implements the per-(timepoint, node) annotation
// upsert/merge (spec component C7), grounded on
// original_source/database/operations.py's
// upsert_dmr_timepoint_annotation / upsert_gene_timepoint_annotation /
// update_gene_metadata: scalar fields overwrite when a new value is
// supplied, biclique_ids merge as a set and re-serialize sorted, and
// node_type/hub status follow a sticky, monotonic lattice rather than
// a plain overwrite ("once split, always split"; once a node is a hub
// within a timepoint it stays a hub there). Records are kept per
// (timepoint, node), so roles never merge across timepoints.
package annotate
