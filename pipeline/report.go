// File: report.go
// Role: Report, the per-run summary returned by Run, grounded on
// original_source/biclique_analysis/reporting.py's per-run
// warning-by-class counts plus summary statistics, realized here with
// gonum/stat instead of hand-rolled mean/stddev loops.
package pipeline

import (
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Status names the overall outcome of one Run call, per spec.md §7's
// "User-visible behavior".
type Status uint8

const (
	StatusSucceeded Status = iota
	StatusSucceededWithWarnings
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSucceededWithWarnings:
		return "succeeded-with-warnings"
	case StatusFailed:
		return "failed"
	default:
		return "succeeded"
	}
}

// MarshalJSON renders Status as its string name rather than its
// underlying ordinal, so a Report serializes readably in the JSON report
// the CLI's run command writes (to --report FILE or stdout).
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Report summarizes one timepoint run: its outcome, the warnings
// encountered by class, structural counts, and aggregate statistics
// over the dominating set and the decomposition's components.
type Report struct {
	RunID     uuid.UUID
	Timepoint string
	Status    Status

	// WarningCounts counts non-fatal issues by class (e.g.
	// "unresolved_gene_symbol", "missing_cover", "degenerate_cover"),
	// mirroring reporting.py's per-run class tally.
	WarningCounts map[string]int

	DMRCount          int
	GeneCount         int
	EdgeCount         int
	ComponentCount    int
	BicliqueCount     int
	DominatingSetSize int

	// MeanAreaStat/StdDevAreaStat summarize area_stat over the selected
	// dominating set; both are 0 when the set is empty.
	MeanAreaStat   float64
	StdDevAreaStat float64

	// MeanComponentDensity summarizes density across every connected
	// component of G_orig.
	MeanComponentDensity float64
}

func (r *Report) addWarning(class string) {
	if r.WarningCounts == nil {
		r.WarningCounts = make(map[string]int)
	}
	r.WarningCounts[class]++
}

func (r *Report) finalizeStatus() {
	if r.Status == StatusFailed {
		return
	}
	total := 0
	for _, n := range r.WarningCounts {
		total += n
	}
	if total > 0 {
		r.Status = StatusSucceededWithWarnings
	} else {
		r.Status = StatusSucceeded
	}
}
