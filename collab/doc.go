// Package collab declares the two external collaborator contracts
// spec.md §6 names — Persistence and DataSource — plus an in-memory
// reference implementation of each for tests and the CLI's demo/dry-run
// mode. The core (packages core/biclique/decompose/dominate/edgeclass/
// annotate/pipeline) depends only on these interfaces, never on a
// concrete database or spreadsheet reader: "Deliberately out of scope
// (treated as external collaborators): spreadsheet ingestion,
// environment/config loading, the relational persistence layer...".
package collab
