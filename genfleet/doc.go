// Package genfleet generates random driver and rider fleets for
// benchmarking, sampling (source, destination) endpoint pairs from a
// graph's own edge list rather than arbitrary node pairs — so every
// generated driver or rider starts from a route the graph actually
// contains.
//
// Grounded on CreacteRandomDriver.py and CreacteRandomRider.py in
// original_source/WithOpenStreetMap: both scripts read graph.csv's edges
// once, then repeatedly pick a random edge's (source, destination) as the
// new entity's endpoints. Drivers additionally get seats ~ [1,5] and
// threshold ~ [10,50], matching CreacteRandomDriver.py's randint calls.
package genfleet
