// Package ingest reads graph.csv, drivers.csv and riders.csv (spec.md §6)
// into a *graph.Graph and []transport.Driver/[]transport.Rider, using
// stdlib encoding/csv.
//
// No CSV library appears anywhere in the retrieved example pack, and
// spec.md §1 scopes CSV ingestion itself as outside the core's hard part
// (it is listed among the surrounding I/O, not the eligibility/assignment
// algorithms the spec calls out as the system's core) — encoding/csv is the
// one stdlib choice in this module that is not a deliberate deviation from
// an available ecosystem library, since none exists in the pack for this.
//
// Grounded on load_drivers/load_riders/read_graph_from_csv in
// original_source/WithOpenStreetMap/mainDeRide.py and
// mainDeRideFair.py's GraphManager.read_graph_from_csv, translated from
// csv.DictReader to Go's struct-tag-free encoding/csv with manual column
// lookup (their header row is skipped positionally; here it is matched by
// name, since Go has no direct DictReader equivalent).
package ingest
