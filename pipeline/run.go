// File: run.go
// Role: Run, the eight-step per-timepoint driver of spec.md §4.8,
// structured the way builder.go's own comment describes the
// teacher's BuildGraph orchestrator: "resolve config once, apply
// steps in order, wrap errors once".
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"

	"github.com/methylgraph/dmrcore/biclique"
	"github.com/methylgraph/dmrcore/collab"
	"github.com/methylgraph/dmrcore/config"
	"github.com/methylgraph/dmrcore/core"
	"github.com/methylgraph/dmrcore/decompose"
	"github.com/methylgraph/dmrcore/dmrerr"
	"github.com/methylgraph/dmrcore/dominate"
	"github.com/methylgraph/dmrcore/idspace"
)

// Run drives one timepoint end to end per spec.md §4.8's numbered
// steps. genes must already be built (spec.md §5: "the gene-id map is
// built once before any timepoint runs"); callers processing multiple
// timepoints share one *idspace.GeneIndex across concurrent Run calls.
func Run(
	ctx context.Context,
	cfg *config.Config,
	genes *idspace.GeneIndex,
	timepoint, sheetName, description string,
	ds collab.DataSource,
	persist collab.Persistence,
	openCover CoverFileOpener,
) (*Report, error) {
	report := &Report{RunID: uuid.New(), Timepoint: timepoint}
	logger := log.With().Str("run_id", report.RunID.String()).Str("timepoint", timepoint).Logger()
	logger.Info().Msg("pipeline run starting")

	// Steps 1-3: fetch rows and build G_orig via C2 before touching
	// persistence at all, so an IdOverflow abort (spec.md §7: fatal,
	// pre-run state) leaves nothing written.
	ts := idspace.NewTimepointSpace(core.NodeID(cfg.OffsetFor(timepoint)), genes.GeneIDBase())

	rows, err := ds.Rows(ctx, timepoint)
	if err != nil {
		report.Status = StatusFailed
		return report, dmrerr.NewPersistence(err)
	}
	defer rows.Close()

	orig, areaByDMR, err := buildGraph(ts, genes, rows, report, &logger)
	if err != nil {
		report.Status = StatusFailed
		return report, err
	}
	if err := rows.Err(); err != nil {
		report.Status = StatusFailed
		return report, dmrerr.NewPersistence(err)
	}
	report.DMRCount = orig.DMRCount()
	report.GeneCount = orig.GeneCount()
	report.EdgeCount = orig.EdgeCount()

	tpID, err := persist.UpsertTimepoint(ctx, timepoint, sheetName, description, cfg.OffsetFor(timepoint))
	if err != nil {
		report.Status = StatusFailed
		return report, dmrerr.NewPersistence(err)
	}

	var runErr error
	err = persist.ReplaceForTimepoint(ctx, tpID, func(ctx context.Context) error {
		runErr = runBody(ctx, cfg, genes, ts, timepoint, tpID, orig, areaByDMR, persist, openCover, report, &logger)
		return runErr
	})
	if err != nil {
		report.Status = StatusFailed
		if runErr != nil {
			return report, runErr
		}
		return report, dmrerr.NewPersistence(err)
	}

	report.finalizeStatus()
	logger.Info().Str("status", report.Status.String()).Int("warnings", warningTotal(report)).Msg("pipeline run finished")
	return report, nil
}

func warningTotal(r *Report) int {
	total := 0
	for _, n := range r.WarningCounts {
		total += n
	}
	return total
}

// buildGraph implements spec.md §4.8 step 3: consume every row,
// resolving DMR/gene ids via C1 and building G_orig via C2's Builder.
// A gene symbol that fails to resolve is a warning, not a fatal error
// (spec.md §4.3's "Unresolved symbols emit a warning and are
// dropped" applies equally here to raw-row gene references).
func buildGraph(ts *idspace.TimepointSpace, genes *idspace.GeneIndex, rows collab.RowIterator, report *Report, logger *zerolog.Logger) (*core.Graph, map[core.NodeID]float64, error) {
	b := core.NewBuilder(genes.GeneIDBase())
	areaByDMR := make(map[core.NodeID]float64)

	resolveAndAdd := func(dmrID core.NodeID, symbol string, tag core.SourceTag) {
		if symbol == "" {
			return
		}
		geneID, ok := genes.Lookup(symbol)
		if !ok {
			report.addWarning("unresolved_gene_symbol")
			logger.Warn().Str("symbol", symbol).Msg("gene symbol not in global index")
			return
		}
		if err := b.AddEdge(dmrID, geneID, tag); err != nil {
			report.addWarning("edge_build_error")
			logger.Warn().Err(err).Msg("dropped malformed edge")
		}
	}

	for rows.Next() {
		row := rows.Row()
		dmrID, err := ts.DMRID(uint64(row.DMRNumber))
		if err != nil {
			if errors.Is(err, idspace.ErrIdOverflow) {
				return nil, nil, dmrerr.NewIdOverflow(report.Timepoint)
			}
			return nil, nil, err
		}
		if err := b.AddDMR(dmrID); err != nil {
			return nil, nil, err
		}
		if row.AreaStat != nil {
			areaByDMR[dmrID] = *row.AreaStat
		}

		resolveAndAdd(dmrID, row.NearbyGene, core.SourceNearby)
		for _, g := range row.EnhancerGenes {
			resolveAndAdd(dmrID, g, core.SourceEnhancer)
		}
		for _, g := range row.PromoterGenes {
			resolveAndAdd(dmrID, g, core.SourcePromoter)
		}
	}

	g, err := b.Finalize()
	if err != nil {
		return nil, nil, err
	}
	return g, areaByDMR, nil
}

// runBody implements spec.md §4.8 steps 4-8, run inside the
// persistence collaborator's ReplaceForTimepoint scope.
func runBody(
	ctx context.Context,
	cfg *config.Config,
	genes *idspace.GeneIndex,
	ts *idspace.TimepointSpace,
	timepoint string,
	tpID collab.TimepointID,
	orig *core.Graph,
	areaByDMR map[core.NodeID]float64,
	persist collab.Persistence,
	openCover CoverFileOpener,
	report *Report,
	logger *zerolog.Logger,
) error {
	dmrIDs, geneIDs, err := persistGraphNodes(ctx, ts, genes, orig, areaByDMR, tpID, persist)
	if err != nil {
		return err
	}

	// Step 4: load the cover if present; else persist only C2.
	store, hasCover, err := loadCover(openCover, timepoint, genes, orig.GeneIDBase())
	if err != nil {
		return err
	}
	if !hasCover {
		report.addWarning("missing_cover")
		logger.Warn().Msg("no biclique cover file; persisting graph only")
		return nil
	}

	if cfg.ValidateCoverAgainstGraph {
		missing := store.Validate(orig)
		if missing > 0 {
			report.addWarning("claimed_but_missing_pairs")
			logger.Warn().Int("missing_pairs", missing).Msg("cover claims pairs absent from the original graph")
		}
	}
	report.BicliqueCount = store.Len()

	// Step 5: build G_split, run C4 on both graphs.
	res, err := decompose.Decompose(orig, store, decompose.Options{TriconnectedEnabled: cfg.TriconnectedEnabled})
	if err != nil {
		return err
	}
	report.ComponentCount = len(res.Connected)
	report.MeanComponentDensity = meanComponentDensity(res.Connected)

	// Step 6: run C5 on G_orig; persist dominating-set records.
	domRecords := dominate.Solve(orig, areaByDMR, time.Now(), dominate.Options{Minimize: cfg.MinimizeDominatingSet})
	if err := persist.StoreDominatingSet(ctx, tpID, domRecords); err != nil {
		return dmrerr.NewPersistence(err)
	}
	report.DominatingSetSize = len(domRecords)
	report.MeanAreaStat, report.StdDevAreaStat = areaStats(domRecords)

	hubs := make(map[core.NodeID]struct{}, len(domRecords))
	for _, r := range domRecords {
		hubs[r.DMR] = struct{}{}
	}

	persistedComponents, err := persistComponents(ctx, persist, tpID, res)
	if err != nil {
		return err
	}
	if err := persistBicliques(ctx, persist, tpID, store, res, persistedComponents); err != nil {
		return err
	}

	// Step 7: for each split-graph component, classify its edges.
	if err := classifyAndPersistEdges(ctx, persist, tpID, orig, store, res, dmrIDs, geneIDs, report, logger); err != nil {
		return err
	}

	// Step 8: annotate every node that participated.
	return annotateNodes(ctx, persist, tpID, orig, store, res, persistedComponents, hubs, timepoint, dmrIDs, geneIDs)
}

func meanComponentDensity(components []decompose.Component) float64 {
	if len(components) == 0 {
		return 0
	}
	densities := make([]float64, len(components))
	for i, c := range components {
		densities[i] = c.Density
	}
	return stat.Mean(densities, nil)
}

func areaStats(records []dominate.Record) (mean, stddev float64) {
	if len(records) == 0 {
		return 0, 0
	}
	areas := make([]float64, len(records))
	for i, r := range records {
		areas[i] = r.AreaAtSelection
	}
	if len(areas) == 1 {
		return areas[0], 0
	}
	mean, stddev = stat.MeanStdDev(areas, nil)
	return mean, stddev
}

func loadCover(openCover CoverFileOpener, timepoint string, genes *idspace.GeneIndex, maxDMRID core.NodeID) (*biclique.Store, bool, error) {
	if openCover == nil {
		return nil, false, nil
	}
	rc, err := openCover(timepoint)
	if err != nil {
		if errors.Is(err, ErrNoCoverFile) {
			return nil, false, nil
		}
		return nil, false, dmrerr.NewPersistence(err)
	}
	defer rc.Close()

	store, err := biclique.Parse(rc, genes, maxDMRID)
	if err != nil {
		return nil, false, dmrerr.NewInvalid(err.Error())
	}
	return store, true, nil
}
