package dominate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/methylgraph/dmrcore/core"
	"github.com/methylgraph/dmrcore/dominate"
)

const geneBase core.NodeID = 100000

var fixedNow = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestSolveEmptyGraphYieldsEmptySet(t *testing.T) {
	b := core.NewBuilder(geneBase)
	g, err := b.Finalize()
	require.NoError(t, err)

	records := dominate.Solve(g, nil, fixedNow, dominate.Options{Minimize: true})
	assert.Empty(t, records)
}

func TestSolveK33SelectsOneDMR(t *testing.T) {
	b := core.NewBuilder(geneBase)
	for d := core.NodeID(0); d < 3; d++ {
		for v := geneBase; v < geneBase+3; v++ {
			require.NoError(t, b.AddEdge(d, v, core.SourceNearby))
		}
	}
	g, err := b.Finalize()
	require.NoError(t, err)

	records := dominate.Solve(g, nil, fixedNow, dominate.Options{Minimize: true})
	require.Len(t, records, 1)
	assert.Equal(t, 3, records[0].NewlyDominatedCount)
}

func TestSolveDegreeOneGeneForcesItsUniqueDMR(t *testing.T) {
	b := core.NewBuilder(geneBase)
	require.NoError(t, b.AddEdge(0, geneBase, core.SourceNearby)) // degree-1 gene
	g, err := b.Finalize()
	require.NoError(t, err)

	records := dominate.Solve(g, nil, fixedNow, dominate.Options{Minimize: true})
	require.Len(t, records, 1)
	assert.Equal(t, core.NodeID(0), records[0].DMR)
}

func TestSolvePrefersLargerAreaOnUtilityTie(t *testing.T) {
	// K_{2,2}: both DMRs are adjacent to both genes, so no gene has
	// degree 1 and both DMRs seed the heap with utility 2. Area breaks
	// the tie, and the larger-area DMR 1 alone dominates every gene.
	b := core.NewBuilder(geneBase)
	require.NoError(t, b.AddEdge(0, geneBase, core.SourceNearby))
	require.NoError(t, b.AddEdge(0, geneBase+1, core.SourceNearby))
	require.NoError(t, b.AddEdge(1, geneBase, core.SourceNearby))
	require.NoError(t, b.AddEdge(1, geneBase+1, core.SourceNearby))
	g, err := b.Finalize()
	require.NoError(t, err)

	area := map[core.NodeID]float64{0: 5.0, 1: 10.0}
	records := dominate.Solve(g, area, fixedNow, dominate.Options{Minimize: false})
	require.Len(t, records, 1)
	assert.Equal(t, core.NodeID(1), records[0].DMR)
}

func TestSolveZeroDegreeGeneNotRequiredDominated(t *testing.T) {
	b := core.NewBuilder(geneBase)
	require.NoError(t, b.AddGene(geneBase)) // isolated gene, degree 0
	require.NoError(t, b.AddEdge(0, geneBase+1, core.SourceNearby))
	g, err := b.Finalize()
	require.NoError(t, err)

	records := dominate.Solve(g, nil, fixedNow, dominate.Options{Minimize: true})
	require.Len(t, records, 1)
	assert.Equal(t, core.NodeID(0), records[0].DMR)
}

func TestSolveMinimizeRemovesRedundantDMR(t *testing.T) {
	// Every gene has degree 2, so nothing is forced by the degree-1
	// sweep. Greedy picks dmr0 first (utility 2, largest area), then
	// dmr1 (covers g2) and dmr2 (covers g3). After that, g0 is still
	// covered by dmr1 and g1 by dmr2, so minimization removes dmr0.
	b := core.NewBuilder(geneBase)
	require.NoError(t, b.AddEdge(0, geneBase, core.SourceNearby))   // dmr0-g0
	require.NoError(t, b.AddEdge(0, geneBase+1, core.SourceNearby)) // dmr0-g1
	require.NoError(t, b.AddEdge(1, geneBase, core.SourceNearby))   // dmr1-g0
	require.NoError(t, b.AddEdge(1, geneBase+2, core.SourceNearby)) // dmr1-g2
	require.NoError(t, b.AddEdge(2, geneBase+1, core.SourceNearby)) // dmr2-g1
	require.NoError(t, b.AddEdge(2, geneBase+3, core.SourceNearby)) // dmr2-g3
	require.NoError(t, b.AddEdge(3, geneBase+2, core.SourceNearby)) // dmr3-g2
	require.NoError(t, b.AddEdge(4, geneBase+3, core.SourceNearby)) // dmr4-g3
	g, err := b.Finalize()
	require.NoError(t, err)

	area := map[core.NodeID]float64{0: 10.0, 1: 5.0, 2: 5.0, 3: 1.0, 4: 1.0}
	records := dominate.Solve(g, area, fixedNow, dominate.Options{Minimize: true})
	require.Len(t, records, 2)
	assert.Equal(t, core.NodeID(1), records[0].DMR)
	assert.Equal(t, core.NodeID(2), records[1].DMR)
}
