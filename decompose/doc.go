// Package decompose implements the structural decomposer (spec
// component C4): connected components via disjoint-set union
// (grounded on the teacher's prim_kruskal.Kruskal DSU), biconnected
// components via a Tarjan articulation-point DFS (grounded on the
// teacher's dfs.DFS pre/post-order walker), and a layered
// triconnected-component approximation (spec.md §4.4 step-by-step
// recipe, an explicit permitted shortcut of full SPQR decomposition).
//
// Two graphs are examined: G_orig (the core.Graph as built from raw
// rows) and G_split (G_orig plus every edge any biclique in package
// biclique asserts). Decompose runs all three decompositions against
// G_orig and only the connected-components pass against G_split (no
// biconnected or triconnected pass is made over G_split), and classifies each resulting component per spec.md
// §4.4's category rules, additionally carrying a component→biclique
// cross-reference index (a supplemented feature grounded on
// original_source/component_analyzer.py).
package decompose
