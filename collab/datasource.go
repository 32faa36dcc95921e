// File: datasource.go
// Role: The DataSource contract, spec.md §6's "A row iterator
// yielding, per timepoint" — the core consumes rows without parsing
// spreadsheets itself.
package collab

import "context"

// DataSource yields a timepoint's raw interaction rows. The core never
// parses a spreadsheet directly; it only ranges over the iterator a
// concrete implementation (outside this module) supplies.
type DataSource interface {
	// Rows returns an iterator over timepoint's rows. The caller must
	// call Close when done, even after an early break.
	Rows(ctx context.Context, timepoint string) (RowIterator, error)
}

// RowIterator walks a timepoint's rows one at a time, in the style of
// bufio.Scanner: call Next until it returns false, then check Err.
type RowIterator interface {
	Next() bool
	Row() Row
	Err() error
	Close() error
}
