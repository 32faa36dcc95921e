// File: rows.go
// Role: A line-delimited JSON DataSource, the concrete row source the
// command-line tool wires in place of a real spreadsheet loader.
// Decoding uses goccy/go-json rather than encoding/json, matching the
// rest of the pack's preference for it over the stdlib codec.
package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/methylgraph/dmrcore/collab"
)

// rowRecord mirrors collab.Row's shape for JSON decoding; a nil
// AreaStat round-trips as a missing or null "area_stat" field.
type rowRecord struct {
	DMRNumber     int               `json:"dmr_number"`
	AreaStat      *float64          `json:"area_stat,omitempty"`
	NearbyGene    string            `json:"nearby_gene,omitempty"`
	EnhancerGenes []string          `json:"enhancer_genes,omitempty"`
	PromoterGenes []string          `json:"promoter_genes,omitempty"`
	Annotations   map[string]string `json:"annotations,omitempty"`
}

func (r rowRecord) toRow() collab.Row {
	return collab.Row{
		DMRNumber:     r.DMRNumber,
		AreaStat:      r.AreaStat,
		NearbyGene:    r.NearbyGene,
		EnhancerGenes: r.EnhancerGenes,
		PromoterGenes: r.PromoterGenes,
		Annotations:   r.Annotations,
	}
}

// FileDataSource serves collab.Row values from a line-delimited JSON
// file per timepoint, one rowRecord object per line, named by
// formatting Pattern with the timepoint inside Dir.
type FileDataSource struct {
	Dir     string
	Pattern string
}

var _ collab.DataSource = (*FileDataSource)(nil)

// Path returns the row file path for timepoint.
func (d *FileDataSource) Path(timepoint string) string {
	name := fmt.Sprintf(d.Pattern, timepoint)
	if d.Dir == "" {
		return name
	}
	return d.Dir + string(os.PathSeparator) + name
}

func (d *FileDataSource) Rows(_ context.Context, timepoint string) (collab.RowIterator, error) {
	f, err := os.Open(d.Path(timepoint))
	if err != nil {
		return nil, err
	}
	return &jsonlRowIterator{f: f, scanner: bufio.NewScanner(f)}, nil
}

type jsonlRowIterator struct {
	f       *os.File
	scanner *bufio.Scanner
	row     collab.Row
	err     error
}

func (it *jsonlRowIterator) Next() bool {
	for it.scanner.Scan() {
		line := it.scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec rowRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			it.err = fmt.Errorf("ingest: decoding row: %w", err)
			return false
		}
		it.row = rec.toRow()
		return true
	}
	it.err = it.scanner.Err()
	return false
}

func (it *jsonlRowIterator) Row() collab.Row { return it.row }
func (it *jsonlRowIterator) Err() error      { return it.err }
func (it *jsonlRowIterator) Close() error    { return it.f.Close() }

// CollectGeneSymbols reads every timepoint's row file and returns the
// full set of raw gene symbols seen across all of them (nearby,
// enhancer, and promoter columns alike), for building the single
// shared gene index before any timepoint is processed (spec.md §5).
func CollectGeneSymbols(dir, pattern string, timepoints []string) ([]string, error) {
	var symbols []string
	for _, tp := range timepoints {
		ds := &FileDataSource{Dir: dir, Pattern: pattern}
		f, err := os.Open(ds.Path(tp))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		if err := collectFromFile(f, &symbols); err != nil {
			f.Close()
			return nil, err
		}
		f.Close()
	}
	return symbols, nil
}

func collectFromFile(r io.Reader, symbols *[]string) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec rowRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return fmt.Errorf("ingest: decoding row: %w", err)
		}
		if rec.NearbyGene != "" {
			*symbols = append(*symbols, rec.NearbyGene)
		}
		*symbols = append(*symbols, rec.EnhancerGenes...)
		*symbols = append(*symbols, rec.PromoterGenes...)
	}
	return scanner.Err()
}
