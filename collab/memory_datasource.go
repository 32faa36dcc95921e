// File: memory_datasource.go
// Role: An in-memory DataSource backed by a preloaded map of rows per
// timepoint, for tests and CLI dry runs.
package collab

import "context"

// MemoryDataSource serves Rows from a fixed in-memory map, keyed by
// timepoint name.
type MemoryDataSource struct {
	ByTimepoint map[string][]Row
}

var _ DataSource = (*MemoryDataSource)(nil)

func (d *MemoryDataSource) Rows(_ context.Context, timepoint string) (RowIterator, error) {
	rows := d.ByTimepoint[timepoint]
	return &sliceRowIterator{rows: rows, index: -1}, nil
}

type sliceRowIterator struct {
	rows  []Row
	index int
}

func (it *sliceRowIterator) Next() bool {
	it.index++
	return it.index < len(it.rows)
}

func (it *sliceRowIterator) Row() Row {
	return it.rows[it.index]
}

func (it *sliceRowIterator) Err() error {
	return nil
}

func (it *sliceRowIterator) Close() error {
	return nil
}
