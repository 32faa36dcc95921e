// File: persist.go
// Role: The per-run write-side helpers that thread G_orig/G_split
// decomposition results, the dominating set, and edge classification
// through the Persistence collaborator and package annotate's
// upsert lattice. Split out of run.go so Run itself reads as the
// eight-step outline spec.md §4.8 gives, not the persistence plumbing.
package pipeline

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/methylgraph/dmrcore/annotate"
	"github.com/methylgraph/dmrcore/biclique"
	"github.com/methylgraph/dmrcore/collab"
	"github.com/methylgraph/dmrcore/core"
	"github.com/methylgraph/dmrcore/decompose"
	"github.com/methylgraph/dmrcore/dmrerr"
	"github.com/methylgraph/dmrcore/edgeclass"
	"github.com/methylgraph/dmrcore/idspace"
)

// persistGraphNodes records every DMR and gene of orig, returning the
// NodeID -> persistence-id maps later steps thread through.
func persistGraphNodes(
	ctx context.Context,
	ts *idspace.TimepointSpace,
	genes *idspace.GeneIndex,
	orig *core.Graph,
	areaByDMR map[core.NodeID]float64,
	tpID collab.TimepointID,
	persist collab.Persistence,
) (map[core.NodeID]collab.DMRID, map[core.NodeID]collab.GeneID, error) {
	dmrIDs := make(map[core.NodeID]collab.DMRID)
	for _, d := range orig.NodesOfKind(core.KindDMR) {
		dmrNumber := int(d - ts.Offset())
		var area *float64
		if a, ok := areaByDMR[d]; ok {
			area = &a
		}
		id, err := persist.InsertDMR(ctx, tpID, dmrNumber, area)
		if err != nil {
			return nil, nil, dmrerr.NewPersistence(err)
		}
		dmrIDs[d] = id
	}

	geneIDs := make(map[core.NodeID]collab.GeneID)
	for _, v := range orig.NodesOfKind(core.KindGene) {
		symbol, ok := genes.Symbol(v)
		if !ok {
			continue
		}
		display := genes.DisplaySymbol(symbol)
		id, inserted, err := persist.InsertGene(ctx, display, nil, nil, nil)
		if err != nil {
			return nil, nil, dmrerr.NewPersistence(err)
		}
		if !inserted {
			continue
		}
		geneIDs[v] = id
	}

	return dmrIDs, geneIDs, nil
}

// componentIDSet mirrors decompose.Result's four component slices with
// the persistence-assigned id of each entry at the matching index.
type componentIDSet struct {
	connected, biconnected, triconnected, split []collab.ComponentID
}

func persistComponents(ctx context.Context, persist collab.Persistence, tpID collab.TimepointID, res *decompose.Result) (*componentIDSet, error) {
	insertAll := func(components []decompose.Component) ([]collab.ComponentID, error) {
		ids := make([]collab.ComponentID, len(components))
		for i, c := range components {
			counts := collab.ComponentCounts{DMRCount: c.DMRCount, GeneCount: c.GeneCount, EdgeCount: c.EdgeCount}
			id, err := persist.InsertComponent(ctx, tpID, c.GraphType, c.Category, counts, c.Density)
			if err != nil {
				return nil, dmrerr.NewPersistence(err)
			}
			ids[i] = id
		}
		return ids, nil
	}

	out := &componentIDSet{}
	var err error
	if out.connected, err = insertAll(res.Connected); err != nil {
		return nil, err
	}
	if out.biconnected, err = insertAll(res.Biconnected); err != nil {
		return nil, err
	}
	if out.triconnected, err = insertAll(res.Triconnected); err != nil {
		return nil, err
	}
	if out.split, err = insertAll(res.SplitConnected); err != nil {
		return nil, err
	}
	return out, nil
}

func containsID(ids []int, target int) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}

// persistBicliques records each biclique once, attributed to the first
// G_orig connected component it intersects, then links it to every
// component (of any of the three decomposition kinds) that intersects it.
func persistBicliques(
	ctx context.Context,
	persist collab.Persistence,
	tpID collab.TimepointID,
	store *biclique.Store,
	res *decompose.Result,
	ids *componentIDSet,
) error {
	for _, b := range store.Bicliques() {
		primaryIdx := -1
		for i, c := range res.Connected {
			if containsID(c.BicliqueIDs, b.ID) {
				primaryIdx = i
				break
			}
		}
		if primaryIdx < 0 {
			continue
		}

		bicliqueID, err := persist.InsertBiclique(ctx, tpID, ids.connected[primaryIdx], b.DMRs, b.Genes, b.Category())
		if err != nil {
			return dmrerr.NewPersistence(err)
		}

		linked := make(map[collab.ComponentID]struct{})
		link := func(components []decompose.Component, compIDs []collab.ComponentID) error {
			for i, c := range components {
				if !containsID(c.BicliqueIDs, b.ID) {
					continue
				}
				cid := compIDs[i]
				if _, done := linked[cid]; done {
					continue
				}
				linked[cid] = struct{}{}
				if err := persist.LinkComponentBiclique(ctx, cid, bicliqueID); err != nil {
					return dmrerr.NewPersistence(err)
				}
			}
			return nil
		}
		if err := link(res.Connected, ids.connected); err != nil {
			return err
		}
		if err := link(res.Biconnected, ids.biconnected); err != nil {
			return err
		}
		if err := link(res.Triconnected, ids.triconnected); err != nil {
			return err
		}
		if err := link(res.SplitConnected, ids.split); err != nil {
			return err
		}
	}
	return nil
}

// classifyAndPersistEdges implements spec.md §4.8 step 7: classify
// every split-graph component's edges and persist them. A component
// whose cover is degenerate (original edges present, none claimed) is
// skipped with a warning, per spec.md §7's per-component propagation
// policy, rather than aborting the whole run.
func classifyAndPersistEdges(
	ctx context.Context,
	persist collab.Persistence,
	tpID collab.TimepointID,
	orig *core.Graph,
	store *biclique.Store,
	res *decompose.Result,
	dmrIDs map[core.NodeID]collab.DMRID,
	geneIDs map[core.NodeID]collab.GeneID,
	report *Report,
	logger *zerolog.Logger,
) error {
	for idx, comp := range res.SplitConnected {
		cls, err := edgeclass.Classify(orig, store, comp.Members, idx)
		if err != nil {
			var degenerate *dmrerr.DegenerateCover
			if errors.As(err, &degenerate) {
				report.addWarning("degenerate_cover")
				logger.Warn().Int("component", idx).Msg("component has original edges but no permanent cover edges")
				continue
			}
			return err
		}

		if err := persistEdgeInfos(ctx, persist, tpID, cls.Permanent, edgeclass.Permanent, dmrIDs, geneIDs); err != nil {
			return err
		}
		if err := persistEdgeInfos(ctx, persist, tpID, cls.FalsePositive, edgeclass.FalsePositive, dmrIDs, geneIDs); err != nil {
			return err
		}
		if err := persistEdgeInfos(ctx, persist, tpID, cls.FalseNegative, edgeclass.FalseNegative, dmrIDs, geneIDs); err != nil {
			return err
		}
	}
	return nil
}

func persistEdgeInfos(
	ctx context.Context,
	persist collab.Persistence,
	tpID collab.TimepointID,
	infos []edgeclass.EdgeInfo,
	label edgeclass.Label,
	dmrIDs map[core.NodeID]collab.DMRID,
	geneIDs map[core.NodeID]collab.GeneID,
) error {
	for _, e := range infos {
		dID, ok := dmrIDs[e.DMR]
		if !ok {
			continue
		}
		gID, ok := geneIDs[e.Gene]
		if !ok {
			continue
		}
		editType := ""
		if len(e.SourceTags) > 0 {
			editType = e.SourceTags[0].String()
		}
		if err := persist.InsertEdgeDetails(ctx, tpID, dID, gID, label, editType); err != nil {
			return dmrerr.NewPersistence(err)
		}
	}
	return nil
}

// annotateNodes implements spec.md §4.8 step 8: every node that
// participates in a split-graph component gets a merged annotation
// record, via package annotate's upsert lattice. Components whose cover
// is degenerate (dmrerr.DegenerateCover) are excluded from annotation.
func annotateNodes(
	ctx context.Context,
	persist collab.Persistence,
	tpID collab.TimepointID,
	orig *core.Graph,
	store *biclique.Store,
	res *decompose.Result,
	ids *componentIDSet,
	hubs map[core.NodeID]struct{},
	timepoint string,
	dmrIDs map[core.NodeID]collab.DMRID,
	geneIDs map[core.NodeID]collab.GeneID,
) error {
	var ann annotate.Annotator

	for idx, comp := range res.SplitConnected {
		// classifyAndPersistEdges has already counted the warning for a
		// degenerate component; here it is only skipped.
		if _, err := edgeclass.Classify(orig, store, comp.Members, idx); err != nil {
			var degenerate *dmrerr.DegenerateCover
			if errors.As(err, &degenerate) {
				continue
			}
			return err
		}
		componentID := int(ids.split[idx])
		isIsolate := len(comp.Members) == 1

		for _, m := range comp.Members {
			degree := res.SplitGraph.Degree(m)
			bids := store.BicliquesFor(m)

			var role annotate.Role
			var geneSubtype *annotate.GeneSubtype
			if orig.IsDMR(m) {
				if _, isHub := hubs[m]; isHub {
					role = annotate.Hub
				}
			} else {
				if len(bids) >= 2 {
					role = annotate.Split
				}
				if nbrs := orig.Neighbors(m); len(nbrs) > 0 {
					if tags := orig.EdgeSourceTags(nbrs[0], m); len(tags) > 0 {
						st := annotate.GeneSubtypeFromSourceTag(tags[0])
						geneSubtype = &st
					}
				}
			}

			update := annotate.Update{
				ComponentID: &componentID,
				Degree:      &degree,
				Role:        &role,
				IsIsolate:   &isIsolate,
				BicliqueIDs: bids,
				GeneSubtype: geneSubtype,
			}
			rec := ann.Upsert(timepoint, m, update)

			if orig.IsDMR(m) {
				dID, ok := dmrIDs[m]
				if !ok {
					continue
				}
				if err := persist.UpsertDMRAnnotation(ctx, tpID, dID, rec); err != nil {
					return dmrerr.NewPersistence(err)
				}
			} else {
				gID, ok := geneIDs[m]
				if !ok {
					continue
				}
				if err := persist.UpsertGeneAnnotation(ctx, tpID, gID, rec); err != nil {
					return dmrerr.NewPersistence(err)
				}
			}
		}
	}
	return nil
}
