package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/methylgraph/dmrcore/config"
)

func TestLoadFromReaderAppliesDefaults(t *testing.T) {
	cfg, err := config.LoadFromReader("yaml", []byte(""))
	require.NoError(t, err)

	assert.EqualValues(t, 100000, cfg.GeneIDBase)
	assert.Equal(t, "bicliques_%s.txt", cfg.BicliqueFilePattern)
	assert.Equal(t, "rows_%s.jsonl", cfg.RowFilePattern)
	assert.True(t, cfg.MinimizeDominatingSet)
	assert.True(t, cfg.TriconnectedEnabled)
	assert.True(t, cfg.ValidateCoverAgainstGraph)
}

func TestLoadFromReaderOverridesDefaults(t *testing.T) {
	yaml := []byte(`
gene_id_base: 200000
biclique_file_pattern: "cover_%s.txt"
minimize_dominating_set: false
triconnected_enabled: false
timepoint_offsets:
  wk1: 0
  wk2: 50000
`)
	cfg, err := config.LoadFromReader("yaml", yaml)
	require.NoError(t, err)

	assert.EqualValues(t, 200000, cfg.GeneIDBase)
	assert.Equal(t, "cover_%s.txt", cfg.BicliqueFilePattern)
	assert.False(t, cfg.MinimizeDominatingSet)
	assert.False(t, cfg.TriconnectedEnabled)
	assert.Equal(t, 0, cfg.OffsetFor("wk1"))
	assert.Equal(t, 50000, cfg.OffsetFor("wk2"))
	assert.Equal(t, 0, cfg.OffsetFor("unconfigured"))
}

func TestValidateRejectsZeroGeneIDBase(t *testing.T) {
	cfg := &config.Config{BicliqueFilePattern: "x_%s.txt"}
	err := cfg.Validate()
	require.Error(t, err)
}

func TestValidateRejectsEmptyPattern(t *testing.T) {
	cfg := &config.Config{GeneIDBase: 100000}
	err := cfg.Validate()
	require.Error(t, err)
}
