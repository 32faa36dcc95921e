package pipeline_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/methylgraph/dmrcore/collab"
	"github.com/methylgraph/dmrcore/config"
	"github.com/methylgraph/dmrcore/dmrerr"
	"github.com/methylgraph/dmrcore/idspace"
	"github.com/methylgraph/dmrcore/pipeline"
)

func ptr(f float64) *float64 { return &f }

func newGenes(t *testing.T, base idspace.NodeID) *idspace.GeneIndex {
	t.Helper()
	genes, err := idspace.NewGeneIndex([]string{"geneA", "geneB", "geneC"}, base)
	require.NoError(t, err)
	return genes
}

func newDataSource(rows []collab.Row) *collab.MemoryDataSource {
	return &collab.MemoryDataSource{ByTimepoint: map[string][]collab.Row{"wk1": rows}}
}

func openerFor(content string) pipeline.CoverFileOpener {
	return func(string) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(content)), nil
	}
}

func noCoverOpener() pipeline.CoverFileOpener {
	return func(string) (io.ReadCloser, error) {
		return nil, pipeline.ErrNoCoverFile
	}
}

func baseConfig() *config.Config {
	return &config.Config{
		GeneIDBase:                100,
		BicliqueFilePattern:       "cover_%s.txt",
		MinimizeDominatingSet:     true,
		TriconnectedEnabled:       true,
		ValidateCoverAgainstGraph: true,
	}
}

func TestRunHappyPathClassifiesEdgesAndAnnotates(t *testing.T) {
	genes := newGenes(t, 100)
	rows := []collab.Row{
		{DMRNumber: 0, AreaStat: ptr(2.0), NearbyGene: "geneA"},
		{DMRNumber: 1, AreaStat: ptr(1.0), NearbyGene: "geneB", EnhancerGenes: []string{"geneC"}},
	}
	ds := newDataSource(rows)
	store := collab.NewMemoryStore()
	cover := "# Clusters\n0 geneA\n"

	report, err := pipeline.Run(context.Background(), baseConfig(), genes, "wk1", "sheet1", "first pass", ds, store, openerFor(cover))
	require.NoError(t, err)

	assert.Equal(t, 2, report.DMRCount)
	assert.Equal(t, 3, report.GeneCount)
	assert.Equal(t, 3, report.EdgeCount)
	assert.Equal(t, 1, report.BicliqueCount)
	assert.Greater(t, report.ComponentCount, 0)

	// The second component's cover claims nothing, so it is degenerate
	// and excluded from annotation while the run still succeeds overall.
	assert.Equal(t, 1, report.WarningCounts["degenerate_cover"])
	assert.Equal(t, pipeline.StatusSucceededWithWarnings, report.Status)
}

func TestRunMissingCoverPersistsGraphOnly(t *testing.T) {
	genes := newGenes(t, 100)
	rows := []collab.Row{
		{DMRNumber: 0, AreaStat: ptr(1.0), NearbyGene: "geneA"},
	}
	ds := newDataSource(rows)
	store := collab.NewMemoryStore()

	report, err := pipeline.Run(context.Background(), baseConfig(), genes, "wk1", "sheet1", "", ds, store, noCoverOpener())
	require.NoError(t, err)

	assert.Equal(t, 1, report.DMRCount)
	assert.Equal(t, 1, report.GeneCount)
	assert.Equal(t, 0, report.BicliqueCount)
	assert.Equal(t, 1, report.WarningCounts["missing_cover"])
	assert.Equal(t, pipeline.StatusSucceededWithWarnings, report.Status)
}

func TestRunIdOverflowAbortsBeforePersisting(t *testing.T) {
	genes := newGenes(t, 1)
	rows := []collab.Row{
		{DMRNumber: 5, NearbyGene: "geneA"},
	}
	ds := newDataSource(rows)
	store := collab.NewMemoryStore()

	report, err := pipeline.Run(context.Background(), baseConfig(), genes, "wk1", "", "", ds, store, noCoverOpener())
	require.Error(t, err)

	var overflow *dmrerr.IdOverflow
	assert.True(t, errors.As(err, &overflow))
	assert.Equal(t, pipeline.StatusFailed, report.Status)
}

func TestRunNoOpenerSkipsCover(t *testing.T) {
	genes := newGenes(t, 100)
	rows := []collab.Row{
		{DMRNumber: 0, NearbyGene: "geneA"},
	}
	ds := newDataSource(rows)
	store := collab.NewMemoryStore()

	report, err := pipeline.Run(context.Background(), baseConfig(), genes, "wk1", "", "", ds, store, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, report.WarningCounts["missing_cover"])
}
