// Package config loads the single configuration struct spec.md §6
// names — gene_id_base, timepoint_offsets, biclique_file_pattern,
// minimize_dominating_set, triconnected_enabled, and
// validate_cover_against_graph — via viper, in the shape of
// junjiewwang-perf-analysis's pkg/config: defaults set first, then a
// config file layered on top, then environment variables, then
// validated.
package config
