package decompose_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/methylgraph/dmrcore/biclique"
	"github.com/methylgraph/dmrcore/core"
	"github.com/methylgraph/dmrcore/decompose"
	"github.com/methylgraph/dmrcore/idspace"
)

const geneBase core.NodeID = 100000

var fiveGenes = []string{"g0", "g1", "g2", "g3", "g4"}

func buildGenes(t *testing.T) *idspace.GeneIndex {
	t.Helper()
	gi, err := idspace.NewGeneIndex(fiveGenes, geneBase)
	require.NoError(t, err)
	return gi
}

func geneID(t *testing.T, gi *idspace.GeneIndex, symbol string) core.NodeID {
	t.Helper()
	id, ok := gi.Lookup(symbol)
	require.True(t, ok)
	return id
}

func emptyStore(t *testing.T) *biclique.Store {
	t.Helper()
	gi, err := idspace.NewGeneIndex(nil, geneBase)
	require.NoError(t, err)
	store, err := biclique.Parse(strings.NewReader(""), gi, geneBase)
	require.NoError(t, err)
	return store
}

func TestSingleEdgeGraphIsOneSingleNodeFreeComponent(t *testing.T) {
	b := core.NewBuilder(geneBase)
	require.NoError(t, b.AddEdge(0, geneBase, core.SourceNearby))
	g, err := b.Finalize()
	require.NoError(t, err)

	res, err := decompose.Decompose(g, emptyStore(t), decompose.Options{TriconnectedEnabled: true})
	require.NoError(t, err)

	require.Len(t, res.Connected, 1)
	assert.Equal(t, decompose.Simple, res.Connected[0].Category)
	assert.Equal(t, []core.NodeID{0, geneBase}, res.Connected[0].Members)
}

func TestK33IsOneInterestingComponentAndBlock(t *testing.T) {
	gi := buildGenes(t)
	g0, g1, g2 := geneID(t, gi, "g0"), geneID(t, gi, "g1"), geneID(t, gi, "g2")

	b := core.NewBuilder(geneBase)
	for d := core.NodeID(0); d < 3; d++ {
		for _, v := range []core.NodeID{g0, g1, g2} {
			require.NoError(t, b.AddEdge(d, v, core.SourceNearby))
		}
	}
	g, err := b.Finalize()
	require.NoError(t, err)

	input := "# Clusters\n0 1 2 g0 g1 g2\n"
	store, err := biclique.Parse(strings.NewReader(input), gi, geneBase)
	require.NoError(t, err)

	res, err := decompose.Decompose(g, store, decompose.Options{TriconnectedEnabled: true})
	require.NoError(t, err)

	require.Len(t, res.Connected, 1)
	assert.Equal(t, decompose.Interesting, res.Connected[0].Category)
	assert.Equal(t, 9, res.Connected[0].EdgeCount)

	require.Len(t, res.Biconnected, 1)
	assert.Len(t, res.Biconnected[0].Members, 6)
}

func TestTwoK33SharingGeneIsOneComplexComponent(t *testing.T) {
	gi := buildGenes(t)
	g0, g1, g2, g3, g4 := geneID(t, gi, "g0"), geneID(t, gi, "g1"), geneID(t, gi, "g2"), geneID(t, gi, "g3"), geneID(t, gi, "g4")

	b := core.NewBuilder(geneBase)
	// First K_{3,3}: DMRs 0-2, genes g0,g1,g2
	for d := core.NodeID(0); d < 3; d++ {
		for _, v := range []core.NodeID{g0, g1, g2} {
			require.NoError(t, b.AddEdge(d, v, core.SourceNearby))
		}
	}
	// Second K_{3,3}: DMRs 3-5, genes g2,g3,g4 (shares g2)
	for d := core.NodeID(3); d < 6; d++ {
		for _, v := range []core.NodeID{g2, g3, g4} {
			require.NoError(t, b.AddEdge(d, v, core.SourceNearby))
		}
	}
	g, err := b.Finalize()
	require.NoError(t, err)

	input := "# Clusters\n" +
		"0 1 2 g0 g1 g2\n" +
		"3 4 5 g2 g3 g4\n"
	store, err := biclique.Parse(strings.NewReader(input), gi, geneBase)
	require.NoError(t, err)

	res, err := decompose.Decompose(g, store, decompose.Options{TriconnectedEnabled: true})
	require.NoError(t, err)

	require.Len(t, res.Connected, 1)
	assert.Equal(t, decompose.Complex, res.Connected[0].Category)
	assert.Len(t, res.Connected[0].BicliqueIDs, 2)
}
