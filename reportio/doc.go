// Package reportio writes an Assignment and its Metrics to CSV and a
// human-readable summary, mirroring output_results in
// original_source/WithOpenStreetMap/mainDeRide.py and mainDeRideFair.py
// (which write a per-driver results block plus summary statistics to a log
// file) and the "fairness_metrics"/"stats" text blocks mainSCIP*.py print
// alongside their solver output.
package reportio
