package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/deride-go/rideshare/graph"
	"github.com/deride-go/rideshare/transport"
)

// InputError wraps a malformed-CSV or unknown-node condition (spec.md §7)
// with the row number it occurred on, 1-indexed counting the header as row
// 0.
type InputError struct {
	File string
	Row  int
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("ingest: %s row %d: %v", e.File, e.Row, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

var (
	// ErrMissingColumn indicates a CSV file is missing a required header.
	ErrMissingColumn = errors.New("ingest: missing required column")
	// ErrMalformedValue indicates a field failed to parse as its expected type.
	ErrMalformedValue = errors.New("ingest: malformed value")
)

// Graph parses graph.csv (header source,destination,weight) into a *graph.Graph.
func Graph(r io.Reader) (*graph.Graph, error) {
	rows, header, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	idx, err := columnIndex(header, "source", "destination", "weight")
	if err != nil {
		return nil, &InputError{File: "graph.csv", Row: 0, Err: err}
	}

	var edges []graph.EdgeInput
	for i, row := range rows {
		weight, err := strconv.ParseInt(row[idx["weight"]], 10, 64)
		if err != nil {
			return nil, &InputError{File: "graph.csv", Row: i + 1, Err: fmt.Errorf("%w: weight %q", ErrMalformedValue, row[idx["weight"]])}
		}
		edges = append(edges, graph.EdgeInput{
			Source:      row[idx["source"]],
			Destination: row[idx["destination"]],
			Weight:      weight,
		})
	}

	g, err := graph.Build(edges)
	if err != nil {
		return nil, &InputError{File: "graph.csv", Row: 0, Err: err}
	}

	return g, nil
}

// Drivers parses drivers.csv (header id,source,destination,seats,threshold)
// into a []transport.Driver, rejecting any row referencing a node absent
// from g.
func Drivers(r io.Reader, g *graph.Graph) ([]transport.Driver, error) {
	rows, header, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	idx, err := columnIndex(header, "id", "source", "destination", "seats", "threshold")
	if err != nil {
		return nil, &InputError{File: "drivers.csv", Row: 0, Err: err}
	}

	drivers := make([]transport.Driver, 0, len(rows))
	for i, row := range rows {
		source, destination := row[idx["source"]], row[idx["destination"]]
		if !g.HasNode(source) || !g.HasNode(destination) {
			return nil, &InputError{File: "drivers.csv", Row: i + 1, Err: transport.ErrUnknownNode}
		}

		seats, err := strconv.Atoi(row[idx["seats"]])
		if err != nil {
			return nil, &InputError{File: "drivers.csv", Row: i + 1, Err: fmt.Errorf("%w: seats %q", ErrMalformedValue, row[idx["seats"]])}
		}
		threshold, err := strconv.Atoi(row[idx["threshold"]])
		if err != nil {
			return nil, &InputError{File: "drivers.csv", Row: i + 1, Err: fmt.Errorf("%w: threshold %q", ErrMalformedValue, row[idx["threshold"]])}
		}

		d, err := transport.NewDriver(row[idx["id"]], source, destination, seats, threshold)
		if err != nil {
			return nil, &InputError{File: "drivers.csv", Row: i + 1, Err: err}
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

// Riders parses riders.csv (header id,source,destination) into a
// []transport.Rider, rejecting any row referencing a node absent from g.
func Riders(r io.Reader, g *graph.Graph) ([]transport.Rider, error) {
	rows, header, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	idx, err := columnIndex(header, "id", "source", "destination")
	if err != nil {
		return nil, &InputError{File: "riders.csv", Row: 0, Err: err}
	}

	riders := make([]transport.Rider, 0, len(rows))
	for i, row := range rows {
		source, destination := row[idx["source"]], row[idx["destination"]]
		if !g.HasNode(source) || !g.HasNode(destination) {
			return nil, &InputError{File: "riders.csv", Row: i + 1, Err: transport.ErrUnknownNode}
		}

		rd, err := transport.NewRider(row[idx["id"]], source, destination)
		if err != nil {
			return nil, &InputError{File: "riders.csv", Row: i + 1, Err: err}
		}
		riders = append(riders, rd)
	}

	return riders, nil
}

func readCSV(r io.Reader) ([][]string, []string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, &InputError{Row: 0, Err: errors.New("ingest: empty file")}
		}

		return nil, nil, &InputError{Row: 0, Err: err}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, &InputError{Row: -1, Err: err}
	}

	return rows, header, nil
}

func columnIndex(header []string, required ...string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	return idx, nil
}
