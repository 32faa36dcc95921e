package collab_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/methylgraph/dmrcore/annotate"
	"github.com/methylgraph/dmrcore/biclique"
	"github.com/methylgraph/dmrcore/collab"
	"github.com/methylgraph/dmrcore/core"
	"github.com/methylgraph/dmrcore/decompose"
)

func TestUpsertTimepointIsIdempotentByName(t *testing.T) {
	m := collab.NewMemoryStore()
	ctx := context.Background()

	id1, err := m.UpsertTimepoint(ctx, "wk1", "Sheet1", "first pass", 0)
	require.NoError(t, err)
	id2, err := m.UpsertTimepoint(ctx, "wk1", "Sheet1", "updated description", 0)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
}

func TestInsertGeneDedupsBySymbol(t *testing.T) {
	m := collab.NewMemoryStore()
	ctx := context.Background()

	id1, ok1, err1 := m.InsertGene(ctx, "foxp2", nil, nil, nil)
	require.NoError(t, err1)
	require.True(t, ok1)

	id2, ok2, err2 := m.InsertGene(ctx, "foxp2", nil, nil, nil)
	require.NoError(t, err2)
	require.True(t, ok2)

	assert.Equal(t, id1, id2)
}

func TestInsertGeneRejectsEmptySymbol(t *testing.T) {
	m := collab.NewMemoryStore()
	_, ok, err := m.InsertGene(context.Background(), "", nil, nil, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLinkComponentBicliqueAcceptsOutOfOrderIDs(t *testing.T) {
	m := collab.NewMemoryStore()
	ctx := context.Background()

	tp, err := m.UpsertTimepoint(ctx, "wk1", "", "", 0)
	require.NoError(t, err)

	compID, err := m.InsertComponent(ctx, tp, decompose.Original, decompose.Interesting, collab.ComponentCounts{DMRCount: 3, GeneCount: 3, EdgeCount: 9}, 1.0)
	require.NoError(t, err)

	bc2, err := m.InsertBiclique(ctx, tp, compID, []core.NodeID{1}, []core.NodeID{100001}, biclique.Interesting)
	require.NoError(t, err)
	bc1, err := m.InsertBiclique(ctx, tp, compID, []core.NodeID{0}, []core.NodeID{100000}, biclique.Interesting)
	require.NoError(t, err)

	require.NoError(t, m.LinkComponentBiclique(ctx, compID, bc2))
	require.NoError(t, m.LinkComponentBiclique(ctx, compID, bc1))
}

func TestReplaceForTimepointRunsFn(t *testing.T) {
	m := collab.NewMemoryStore()
	ctx := context.Background()

	tp, err := m.UpsertTimepoint(ctx, "wk1", "", "", 0)
	require.NoError(t, err)
	compID, err := m.InsertComponent(ctx, tp, decompose.Original, decompose.Simple, collab.ComponentCounts{}, 0)
	require.NoError(t, err)
	_, err = m.InsertBiclique(ctx, tp, compID, nil, nil, biclique.Empty)
	require.NoError(t, err)

	ran := false
	err = m.ReplaceForTimepoint(ctx, tp, func(ctx context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestUpsertDMRAnnotationSucceeds(t *testing.T) {
	m := collab.NewMemoryStore()
	ctx := context.Background()

	tp, err := m.UpsertTimepoint(ctx, "wk1", "", "", 0)
	require.NoError(t, err)
	dmrID, err := m.InsertDMR(ctx, tp, 7, nil)
	require.NoError(t, err)

	rec := annotate.Record{ComponentID: 2, Role: annotate.Hub}
	require.NoError(t, m.UpsertDMRAnnotation(ctx, tp, dmrID, rec))
}

func TestMemoryDataSourceYieldsConfiguredRows(t *testing.T) {
	ds := &collab.MemoryDataSource{
		ByTimepoint: map[string][]collab.Row{
			"wk1": {
				{DMRNumber: 1, NearbyGene: "foxp2"},
				{DMRNumber: 2, NearbyGene: "shank3"},
			},
		},
	}

	it, err := ds.Rows(context.Background(), "wk1")
	require.NoError(t, err)
	defer it.Close()

	var rows []collab.Row
	for it.Next() {
		rows = append(rows, it.Row())
	}
	require.NoError(t, it.Err())
	require.Len(t, rows, 2)
	assert.Equal(t, "foxp2", rows[0].NearbyGene)
}

func TestMemoryDataSourceUnknownTimepointYieldsNoRows(t *testing.T) {
	ds := &collab.MemoryDataSource{}
	it, err := ds.Rows(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, it.Next())
}
