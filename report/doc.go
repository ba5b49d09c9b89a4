// Package report implements the Report Builder (spec.md §4.7): it turns a
// completed transport.Assignment into transport.Metrics — total served,
// per-driver loads, mean, variance, standard deviation, Gini coefficient,
// seat utilization, zero-load driver count, load spread and fairness ratio.
//
// Grounded on the fairness-metrics sections of
// original_source/WithOpenStreetMap/mainSCIP*.py (load_spread,
// fairness_ratio) plus spec.md §4.7's Gini formula, which none of those
// original scripts compute.
package report
