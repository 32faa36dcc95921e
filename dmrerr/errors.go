// File: errors.go
// Role: Sentinel base errors plus typed wrappers carrying the context
// spec.md §7 requires at each failure site (timepoint, component id,
// edge). Each typed error's Unwrap method returns its sentinel, so
// callers can match either the sentinel (errors.Is) or the concrete
// type (errors.As), mirroring flow.EdgeError in the graph library.
package dmrerr

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every typed error below satisfies errors.Is against
// exactly one of these via its Unwrap method.
var (
	ErrInvalid              = errors.New("dmrerr: invalid input")
	ErrMissingCover         = errors.New("dmrerr: no biclique file for timepoint")
	ErrDegenerateCover      = errors.New("dmrerr: component has original edges but no permanent ones")
	ErrIdOverflow           = errors.New("dmrerr: dmr id window exhausted")
	ErrBipartitionViolation = errors.New("dmrerr: edge crosses bipartition")
	ErrPersistence          = errors.New("dmrerr: persistence failure")
)

// Invalid wraps ErrInvalid with a human-readable reason, e.g. a
// malformed row, an unparsable config value, or a caller-supplied
// node_set that named no graph node.
type Invalid struct {
	Reason string
}

func (e *Invalid) Error() string { return fmt.Sprintf("invalid input: %s", e.Reason) }
func (e *Invalid) Unwrap() error { return ErrInvalid }

// NewInvalid constructs an *Invalid with the given reason.
func NewInvalid(reason string) *Invalid { return &Invalid{Reason: reason} }

// MissingCover wraps ErrMissingCover for a specific timepoint. Per
// spec.md §7 this is non-fatal: the pipeline downgrades to a
// persist-graph-and-basic-stats-only run for that timepoint.
type MissingCover struct {
	Timepoint string
}

func (e *MissingCover) Error() string {
	return fmt.Sprintf("no biclique file for timepoint %q", e.Timepoint)
}
func (e *MissingCover) Unwrap() error { return ErrMissingCover }

// NewMissingCover constructs a *MissingCover for timepoint tp.
func NewMissingCover(tp string) *MissingCover { return &MissingCover{Timepoint: tp} }

// DegenerateCover wraps ErrDegenerateCover for one connected component.
// Per spec.md §7 this excludes that component from annotation while
// the run continues for the rest.
type DegenerateCover struct {
	ComponentID int
}

func (e *DegenerateCover) Error() string {
	return fmt.Sprintf("component %d has original edges but no permanent ones", e.ComponentID)
}
func (e *DegenerateCover) Unwrap() error { return ErrDegenerateCover }

// NewDegenerateCover constructs a *DegenerateCover for componentID.
func NewDegenerateCover(componentID int) *DegenerateCover {
	return &DegenerateCover{ComponentID: componentID}
}

// IdOverflow wraps ErrIdOverflow for one timepoint. Per spec.md §7
// this is fatal for that timepoint: the run aborts and leaves the
// timepoint in its pre-run state.
type IdOverflow struct {
	Timepoint string
}

func (e *IdOverflow) Error() string {
	return fmt.Sprintf("dmr id window exhausted for timepoint %q", e.Timepoint)
}
func (e *IdOverflow) Unwrap() error { return ErrIdOverflow }

// NewIdOverflow constructs an *IdOverflow for timepoint tp.
func NewIdOverflow(tp string) *IdOverflow { return &IdOverflow{Timepoint: tp} }

// BipartitionViolation wraps ErrBipartitionViolation for one
// attempted edge. Per spec.md §7 this is fatal for graph
// construction: the batch is rolled back.
type BipartitionViolation struct {
	DMR, Gene uint64
}

func (e *BipartitionViolation) Error() string {
	return fmt.Sprintf("edge (%d,%d) crosses bipartition", e.DMR, e.Gene)
}
func (e *BipartitionViolation) Unwrap() error { return ErrBipartitionViolation }

// NewBipartitionViolation constructs a *BipartitionViolation for the
// attempted (dmr, gene) pair.
func NewBipartitionViolation(dmr, gene uint64) *BipartitionViolation {
	return &BipartitionViolation{DMR: dmr, Gene: gene}
}

// Persistence wraps ErrPersistence with the underlying cause. Per
// spec.md §7 this is fatal for the timepoint and its transaction
// rolls back; it is also the catch-all for unknown-source errors
// raised by a collab.Persistence/DataSource implementation.
type Persistence struct {
	Cause error
}

func (e *Persistence) Error() string { return fmt.Sprintf("persistence failure: %v", e.Cause) }
func (e *Persistence) Unwrap() error { return errors.Join(ErrPersistence, e.Cause) }

// NewPersistence wraps cause as a *Persistence error. If cause is
// already a *Persistence it is returned unchanged (no double-wrap).
func NewPersistence(cause error) *Persistence {
	var p *Persistence
	if errors.As(cause, &p) {
		return p
	}
	return &Persistence{Cause: cause}
}
