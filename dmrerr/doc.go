// Package dmrerr defines the typed error taxonomy returned across every
// public entry point of the analysis engine (spec.md §7): Invalid,
// MissingCover, DegenerateCover, IdOverflow, BipartitionViolation, and
// Persistence. Each wraps a sentinel base error so callers can branch
// with errors.Is/errors.As without depending on string matching, the
// same convention the graph library uses for its own sentinel errors
// (core.ErrBipartitionViolation and friends).
//
// Propagation policy (spec.md §7): recoverable errors (Invalid,
// MissingCover) are logged and skipped at the site of detection.
// Structural errors (BipartitionViolation, DegenerateCover, IdOverflow)
// bubble to the pipeline driver, which rolls back persistence for that
// timepoint and surfaces the structured error to the caller. Errors
// from a collaborator (package collab) that do not already match one
// of these types are wrapped as Persistence.
package dmrerr
