// File: memory.go
// Role: An in-memory Persistence + DataSource pair for tests and the
// CLI's demo/dry-run mode. Not a production store; no file or network
// I/O, just the bookkeeping spec.md §6 requires, guarded by a single
// mutex the way a small reference fake typically is.
package collab

import (
	"context"
	"sort"
	"sync"

	"github.com/methylgraph/dmrcore/annotate"
	"github.com/methylgraph/dmrcore/biclique"
	"github.com/methylgraph/dmrcore/core"
	"github.com/methylgraph/dmrcore/decompose"
	"github.com/methylgraph/dmrcore/dominate"
	"github.com/methylgraph/dmrcore/edgeclass"
)

// MemoryTimepoint is one upserted timepoint's metadata.
type MemoryTimepoint struct {
	ID          TimepointID
	Name        string
	SheetName   string
	Description string
	Offset      int
}

// MemoryBiclique is one persisted biclique row.
type MemoryBiclique struct {
	ID          BicliqueID
	ComponentID ComponentID
	DMRIDs      []core.NodeID
	GeneIDs     []core.NodeID
	Category    biclique.Category
}

// MemoryComponent is one persisted component row.
type MemoryComponent struct {
	ID        ComponentID
	GraphType decompose.GraphType
	Category  decompose.Category
	Counts    ComponentCounts
	Density   float64
	Bicliques []BicliqueID
}

// MemoryEdge is one persisted classified edge row.
type MemoryEdge struct {
	DMRID    DMRID
	GeneID   GeneID
	Label    edgeclass.Label
	EditType string
}

// MemoryStore is a minimal in-process Persistence implementation. The
// zero value is ready to use.
type MemoryStore struct {
	mu sync.Mutex

	timepoints   map[TimepointID]MemoryTimepoint
	timepointSeq TimepointID

	genes   map[string]GeneID
	geneSeq GeneID
	dmrSeq  DMRID
	bcSeq   BicliqueID
	compSeq ComponentID

	bicliques  map[BicliqueID]MemoryBiclique
	components map[ComponentID]MemoryComponent
	dmrAnnos   map[TimepointID]map[DMRID]annotate.Record
	geneAnnos  map[TimepointID]map[GeneID]annotate.Record
	edges      map[TimepointID][]MemoryEdge
	domSets    map[TimepointID][]dominate.Record
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		timepoints: make(map[TimepointID]MemoryTimepoint),
		genes:      make(map[string]GeneID),
		bicliques:  make(map[BicliqueID]MemoryBiclique),
		components: make(map[ComponentID]MemoryComponent),
		dmrAnnos:   make(map[TimepointID]map[DMRID]annotate.Record),
		geneAnnos:  make(map[TimepointID]map[GeneID]annotate.Record),
		edges:      make(map[TimepointID][]MemoryEdge),
		domSets:    make(map[TimepointID][]dominate.Record),
	}
}

var _ Persistence = (*MemoryStore)(nil)

func (m *MemoryStore) UpsertTimepoint(_ context.Context, name, sheetName, description string, offset int) (TimepointID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, tp := range m.timepoints {
		if tp.Name == name {
			tp.SheetName = sheetName
			tp.Description = description
			tp.Offset = offset
			m.timepoints[id] = tp
			return id, nil
		}
	}
	m.timepointSeq++
	id := m.timepointSeq
	m.timepoints[id] = MemoryTimepoint{ID: id, Name: name, SheetName: sheetName, Description: description, Offset: offset}
	return id, nil
}

func (m *MemoryStore) InsertGene(_ context.Context, symbol string, _, _, _ *string) (GeneID, bool, error) {
	if symbol == "" {
		return 0, false, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if id, ok := m.genes[symbol]; ok {
		return id, true, nil
	}
	m.geneSeq++
	m.genes[symbol] = m.geneSeq
	return m.geneSeq, true, nil
}

func (m *MemoryStore) InsertDMR(_ context.Context, _ TimepointID, _ int, _ *float64) (DMRID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dmrSeq++
	return m.dmrSeq, nil
}

func (m *MemoryStore) InsertBiclique(_ context.Context, _ TimepointID, componentID ComponentID, dmrIDs, geneIDs []core.NodeID, category biclique.Category) (BicliqueID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bcSeq++
	id := m.bcSeq
	m.bicliques[id] = MemoryBiclique{ID: id, ComponentID: componentID, DMRIDs: dmrIDs, GeneIDs: geneIDs, Category: category}
	return id, nil
}

func (m *MemoryStore) InsertComponent(_ context.Context, _ TimepointID, graphType decompose.GraphType, category decompose.Category, counts ComponentCounts, density float64) (ComponentID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.compSeq++
	id := m.compSeq
	m.components[id] = MemoryComponent{ID: id, GraphType: graphType, Category: category, Counts: counts, Density: density}
	return id, nil
}

func (m *MemoryStore) LinkComponentBiclique(_ context.Context, componentID ComponentID, bicliqueID BicliqueID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	comp, ok := m.components[componentID]
	if !ok {
		return nil
	}
	comp.Bicliques = append(comp.Bicliques, bicliqueID)
	sort.Slice(comp.Bicliques, func(i, j int) bool { return comp.Bicliques[i] < comp.Bicliques[j] })
	m.components[componentID] = comp
	return nil
}

func (m *MemoryStore) UpsertDMRAnnotation(_ context.Context, timepointID TimepointID, dmrID DMRID, rec annotate.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dmrAnnos[timepointID] == nil {
		m.dmrAnnos[timepointID] = make(map[DMRID]annotate.Record)
	}
	m.dmrAnnos[timepointID][dmrID] = rec
	return nil
}

func (m *MemoryStore) UpsertGeneAnnotation(_ context.Context, timepointID TimepointID, geneID GeneID, rec annotate.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.geneAnnos[timepointID] == nil {
		m.geneAnnos[timepointID] = make(map[GeneID]annotate.Record)
	}
	m.geneAnnos[timepointID][geneID] = rec
	return nil
}

func (m *MemoryStore) InsertEdgeDetails(_ context.Context, timepointID TimepointID, dmrID DMRID, geneID GeneID, label edgeclass.Label, editType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.edges[timepointID] = append(m.edges[timepointID], MemoryEdge{DMRID: dmrID, GeneID: geneID, Label: label, EditType: editType})
	return nil
}

func (m *MemoryStore) StoreDominatingSet(_ context.Context, timepointID TimepointID, records []dominate.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.domSets[timepointID] = records
	return nil
}

// ReplaceForTimepoint clears the edge, dominating-set and annotation
// rows for timepointID and every biclique and component row of every
// timepoint, then runs fn. If fn errors, the
// cleared state is not restored — callers that need true rollback
// should wrap a real transactional store instead; this fake exists for
// tests and dry runs, not crash safety.
func (m *MemoryStore) ReplaceForTimepoint(ctx context.Context, timepointID TimepointID, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	// This fake does not scope bicliques/components by timepoint, so a
	// replace wipes all of them; a real store scopes the DELETE by
	// timepoint_id instead.
	m.bicliques = make(map[BicliqueID]MemoryBiclique)
	m.components = make(map[ComponentID]MemoryComponent)
	delete(m.edges, timepointID)
	delete(m.domSets, timepointID)
	delete(m.dmrAnnos, timepointID)
	delete(m.geneAnnos, timepointID)
	m.mu.Unlock()

	return fn(ctx)
}
