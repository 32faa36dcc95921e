// File: parse.go
// Role: Cover-file scanner (spec.md §6 format) into a Store.
//
// Grammar: an optional header of `- key: value` lines, a `# Clusters`
// sentinel, then one whitespace-tokenized biclique per non-blank
// line. This is a two-state line scanner (header vs. clusters), the
// same shape as the teacher's config/CLI parsers — no parser-combinator
// or regexp library buys anything over strings.Fields/strconv here.
package biclique

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/methylgraph/dmrcore/core"
	"github.com/methylgraph/dmrcore/idspace"
)

const clustersSentinel = "# Clusters"

// Parse reads a cover file from r and resolves its tokens against
// genes (for symbol lookups) and maxDMRID (the exclusive upper bound
// separating DMR integers from gene symbols, normally g.GeneIDBase()).
//
// Unresolved gene symbols are dropped with a warning (spec.md §4.3);
// a biclique left with an empty DMR or gene side after resolution is
// dropped with a warning. The returned Store's bicliques are indexed
// 0..n-1 in file order.
func Parse(r io.Reader, genes *idspace.GeneIndex, maxDMRID core.NodeID) (*Store, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	header := parseHeader(scanner)

	var bicliques []Biclique
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		dmrSet := make(map[core.NodeID]struct{})
		geneSet := make(map[core.NodeID]struct{})
		for _, tok := range strings.Fields(line) {
			resolveToken(tok, genes, maxDMRID, dmrSet, geneSet)
		}

		if len(dmrSet) == 0 || len(geneSet) == 0 {
			log.Warn().Str("line", line).Msg("biclique: dropping biclique with empty side after resolution")
			continue
		}

		b := Biclique{
			ID:    len(bicliques),
			DMRs:  sortedKeys(dmrSet),
			Genes: sortedKeys(geneSet),
		}
		bicliques = append(bicliques, b)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Store{
		header:    header,
		bicliques: bicliques,
		byNode:    buildNodeIndex(bicliques),
	}, nil
}

// parseHeader consumes lines up to and including the `# Clusters`
// sentinel, recognizing `- key: value` lines for the four known keys.
// A file with no sentinel is treated as header-only (empty Store).
func parseHeader(scanner *bufio.Scanner) Header {
	var h Header
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == clustersSentinel {
			return h
		}
		if line == "" || !strings.HasPrefix(line, "-") {
			continue
		}

		kv := strings.SplitN(strings.TrimPrefix(line, "-"), ":", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		val, err := strconv.Atoi(strings.TrimSpace(kv[1]))
		if err != nil {
			log.Warn().Str("key", key).Str("value", kv[1]).Msg("biclique: unparseable header value, skipping")
			continue
		}

		switch key {
		case "Nb operations":
			h.NbOperations = val
		case "Nb splits":
			h.NbSplits = val
		case "Nb deletions":
			h.NbDeletions = val
		case "Nb additions":
			h.NbAdditions = val
		}
	}
	return h
}

// resolveToken classifies one whitespace token as a DMR integer
// (< maxDMRID) or a gene symbol, adding it to the appropriate set.
// Unresolved symbols log a warning and are dropped, per spec.md §4.3.
func resolveToken(tok string, genes *idspace.GeneIndex, maxDMRID core.NodeID, dmrSet, geneSet map[core.NodeID]struct{}) {
	if n, err := strconv.ParseUint(tok, 10, 64); err == nil {
		id := core.NodeID(n)
		if id < maxDMRID {
			dmrSet[id] = struct{}{}
			return
		}
		// A non-negative integer ≥ maxDMRID cannot be a DMR id; fall
		// through and try it as a gene symbol (defensive: genuine
		// inputs never name a gene with an all-digit symbol).
	}

	id, ok := genes.Lookup(tok)
	if !ok {
		log.Warn().Str("token", tok).Msg("biclique: unresolved gene symbol, dropping token")
		return
	}
	geneSet[id] = struct{}{}
}

func sortedKeys(set map[core.NodeID]struct{}) []core.NodeID {
	out := make([]core.NodeID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
