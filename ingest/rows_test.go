package ingest_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/methylgraph/dmrcore/ingest"
)

func writeRows(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestFileDataSourceReadsJSONLRows(t *testing.T) {
	dir := t.TempDir()
	writeRows(t, dir, "rows_wk1.jsonl", "{\"dmr_number\":0,\"area_stat\":1.5,\"nearby_gene\":\"Foxp3\"}\n"+
		"\n"+
		"{\"dmr_number\":1,\"enhancer_genes\":[\"Gata3\",\"Tbx21\"]}\n")

	ds := &ingest.FileDataSource{Dir: dir, Pattern: "rows_%s.jsonl"}
	it, err := ds.Rows(context.Background(), "wk1")
	require.NoError(t, err)
	defer it.Close()

	var rows []string
	for it.Next() {
		row := it.Row()
		rows = append(rows, row.NearbyGene)
		if row.DMRNumber == 1 {
			assert.Equal(t, []string{"Gata3", "Tbx21"}, row.EnhancerGenes)
		}
	}
	require.NoError(t, it.Err())
	assert.Len(t, rows, 2)
}

func TestFileDataSourceMissingFile(t *testing.T) {
	ds := &ingest.FileDataSource{Dir: t.TempDir(), Pattern: "rows_%s.jsonl"}
	_, err := ds.Rows(context.Background(), "missing")
	require.Error(t, err)
}

func TestCollectGeneSymbolsAcrossTimepoints(t *testing.T) {
	dir := t.TempDir()
	writeRows(t, dir, "rows_wk1.jsonl", "{\"dmr_number\":0,\"nearby_gene\":\"Foxp3\",\"promoter_genes\":[\"Il2\"]}\n")
	writeRows(t, dir, "rows_wk2.jsonl", "{\"dmr_number\":0,\"nearby_gene\":\"Gata3\"}\n")

	symbols, err := ingest.CollectGeneSymbols(dir, "rows_%s.jsonl", []string{"wk1", "wk2", "wk3"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Foxp3", "Il2", "Gata3"}, symbols)
}
