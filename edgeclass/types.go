package edgeclass

import "github.com/methylgraph/dmrcore/core"

// Label names which of the three disjoint sets an edge falls into
// (spec.md §4.6).
type Label uint8

const (
	// Permanent edges are original edges some biclique also claims
	// (present in both G_orig and E_cover).
	Permanent Label = iota
	// FalsePositive edges are original edges no biclique claimed.
	FalsePositive
	// FalseNegative edges are cover-asserted but absent from the raw
	// data (the "COVER-only" source per spec.md §4.6 — carried by
	// Label alone, since core.SourceTag has no entry for it).
	FalseNegative
)

func (l Label) String() string {
	switch l {
	case FalsePositive:
		return "false_positive"
	case FalseNegative:
		return "false_negative"
	default:
		return "permanent"
	}
}

// EdgeInfo is one classified (dmr, gene) pair, carrying the original
// edge's source tags when it has one (spec.md §4.6 "edge_info record
// with its classification label and a set of source tags").
type EdgeInfo struct {
	DMR        core.NodeID
	Gene       core.NodeID
	Label      Label
	SourceTags []core.SourceTag
}

// Classification is one component's edge partition.
type Classification struct {
	Permanent     []EdgeInfo
	FalsePositive []EdgeInfo
	FalseNegative []EdgeInfo
}

// ComponentStats holds the per-component derived statistics of
// spec.md §4.6's closing paragraph.
type ComponentStats struct {
	Accuracy          float64
	Noise             float64
	FalsePositiveRate float64
	FalseNegativeRate float64
}

// Stats computes accuracy/noise/false-positive-rate/false-negative-rate
// from a Classification. All ratios are 0 when their denominator is 0
// (an empty component has nothing to be accurate or noisy about).
func (c *Classification) Stats() ComponentStats {
	origCount := len(c.Permanent) + len(c.FalsePositive)
	coverCount := len(c.Permanent) + len(c.FalseNegative)
	unionCount := len(c.Permanent) + len(c.FalsePositive) + len(c.FalseNegative)

	var stats ComponentStats
	if unionCount > 0 {
		stats.Accuracy = float64(len(c.Permanent)) / float64(unionCount)
	}
	if coverCount > 0 {
		stats.Noise = float64(len(c.FalseNegative)) / float64(coverCount)
		stats.FalseNegativeRate = stats.Noise
	}
	if origCount > 0 {
		stats.FalsePositiveRate = float64(len(c.FalsePositive)) / float64(origCount)
	}
	return stats
}
