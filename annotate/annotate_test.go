package annotate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/methylgraph/dmrcore/annotate"
	"github.com/methylgraph/dmrcore/core"
)

func intPtr(i int) *int                      { return &i }
func boolPtr(b bool) *bool                   { return &b }
func rolePtr(r annotate.Role) *annotate.Role { return &r }

func TestUpsertCreatesNewRecord(t *testing.T) {
	var a annotate.Annotator
	rec := a.Upsert("t1", core.NodeID(5), annotate.Update{
		ComponentID: intPtr(2),
		Degree:      intPtr(3),
		IsIsolate:   boolPtr(false),
	})
	assert.Equal(t, 2, rec.ComponentID)
	assert.Equal(t, 3, rec.Degree)
	assert.Equal(t, annotate.Regular, rec.Role)
}

func TestUpsertScalarsOverwrite(t *testing.T) {
	var a annotate.Annotator
	a.Upsert("t1", core.NodeID(5), annotate.Update{ComponentID: intPtr(1)})
	rec := a.Upsert("t1", core.NodeID(5), annotate.Update{ComponentID: intPtr(9)})
	assert.Equal(t, 9, rec.ComponentID)
}

func TestUpsertNilFieldsLeaveExistingValueUntouched(t *testing.T) {
	var a annotate.Annotator
	a.Upsert("t1", core.NodeID(5), annotate.Update{ComponentID: intPtr(1), Degree: intPtr(4)})
	rec := a.Upsert("t1", core.NodeID(5), annotate.Update{ComponentID: intPtr(2)})
	assert.Equal(t, 2, rec.ComponentID)
	assert.Equal(t, 4, rec.Degree) // untouched
}

func TestUpsertBicliqueIDsMergeAsSortedSet(t *testing.T) {
	var a annotate.Annotator
	a.Upsert("t1", core.NodeID(5), annotate.Update{BicliqueIDs: []int{3, 1}})
	rec := a.Upsert("t1", core.NodeID(5), annotate.Update{BicliqueIDs: []int{1, 2}})
	assert.Equal(t, []int{1, 2, 3}, rec.BicliqueIDs)
}

func TestUpsertSplitRoleIsSticky(t *testing.T) {
	var a annotate.Annotator
	a.Upsert("t1", core.NodeID(5), annotate.Update{Role: rolePtr(annotate.Split)})
	rec := a.Upsert("t1", core.NodeID(5), annotate.Update{Role: rolePtr(annotate.Regular)})
	assert.Equal(t, annotate.Split, rec.Role)
}

func TestUpsertHubRoleIsSticky(t *testing.T) {
	var a annotate.Annotator
	a.Upsert("t1", core.NodeID(5), annotate.Update{Role: rolePtr(annotate.Hub)})
	rec := a.Upsert("t1", core.NodeID(5), annotate.Update{Role: rolePtr(annotate.Regular)})
	assert.Equal(t, annotate.Hub, rec.Role)
}

func TestUpsertRegularToHubTransition(t *testing.T) {
	var a annotate.Annotator
	a.Upsert("t1", core.NodeID(5), annotate.Update{Role: rolePtr(annotate.Regular)})
	rec := a.Upsert("t1", core.NodeID(5), annotate.Update{Role: rolePtr(annotate.Hub)})
	assert.Equal(t, annotate.Hub, rec.Role)
}

func TestUpsertScopedPerTimepoint(t *testing.T) {
	var a annotate.Annotator
	a.Upsert("t1", core.NodeID(5), annotate.Update{ComponentID: intPtr(1)})
	a.Upsert("t2", core.NodeID(5), annotate.Update{ComponentID: intPtr(9)})

	r1, ok1 := a.Get("t1", core.NodeID(5))
	require.True(t, ok1)
	assert.Equal(t, 1, r1.ComponentID)

	r2, ok2 := a.Get("t2", core.NodeID(5))
	require.True(t, ok2)
	assert.Equal(t, 9, r2.ComponentID)
}

func TestGetMissingReturnsFalse(t *testing.T) {
	var a annotate.Annotator
	_, ok := a.Get("t1", core.NodeID(99))
	assert.False(t, ok)
}

func TestGeneSubtypeFromSourceTag(t *testing.T) {
	assert.Equal(t, annotate.SubtypeNearby, annotate.GeneSubtypeFromSourceTag(core.SourceNearby))
	assert.Equal(t, annotate.SubtypeEnhancer, annotate.GeneSubtypeFromSourceTag(core.SourceEnhancer))
	assert.Equal(t, annotate.SubtypePromoter, annotate.GeneSubtypeFromSourceTag(core.SourcePromoter))
}
