// File: cover.go
// Role: The biclique-cover-file I/O suspension point (spec.md §5:
// "the only I/O suspension points inside the core are (i) reading the
// biclique cover file and (ii) writing... through the persistence
// collaborator"). Kept as a small caller-supplied function so Run
// itself never touches the filesystem directly, matching spec.md §1's
// "spreadsheet ingestion... treated as external collaborators" spirit
// even though the cover file is read by the core per §4.3.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoCoverFile signals that no cover file exists for a timepoint —
// the spec.md §4.8 step-4 "else skip" branch, not an error condition.
var ErrNoCoverFile = errors.New("pipeline: no biclique cover file for timepoint")

// CoverFileOpener opens the biclique cover file for timepoint,
// returning ErrNoCoverFile (wrapped or bare) when none exists.
type CoverFileOpener func(timepoint string) (io.ReadCloser, error)

// FileCoverFileOpener builds a CoverFileOpener that formats pattern
// with timepoint (spec.md §6's biclique_file_pattern) and opens the
// resulting path from disk.
func FileCoverFileOpener(pattern string) CoverFileOpener {
	return func(timepoint string) (io.ReadCloser, error) {
		path := fmt.Sprintf(pattern, timepoint)
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, ErrNoCoverFile
			}
			return nil, err
		}
		return f, nil
	}
}
