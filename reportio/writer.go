package reportio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/deride-go/rideshare/transport"
)

// WriteAssignmentCSV writes one row per driver: id, source, destination,
// initial seats, remaining seats, committed path, accepted rider IDs.
func WriteAssignmentCSV(w io.Writer, a *transport.Assignment) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"driver_id", "source", "destination", "initial_seats", "remaining_seats", "path", "accepted_riders"}); err != nil {
		return err
	}

	for _, da := range a.Drivers {
		row := []string{
			da.Driver.ID,
			da.Driver.Source,
			da.Driver.Destination,
			strconv.Itoa(da.Driver.InitialSeats),
			strconv.Itoa(da.RemainingSeats),
			strings.Join(da.Path, "|"),
			strings.Join(da.AcceptedRiders, "|"),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}

// WriteMetricsCSV writes a single-row CSV summary of m.
func WriteMetricsCSV(w io.Writer, m transport.Metrics) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"run_id", "variant", "total_riders", "total_served", "mean", "variance",
		"std_dev", "gini", "seat_utilization", "zero_load_drivers", "spread", "fairness_ratio",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := []string{
		m.RunID,
		m.Variant,
		strconv.Itoa(m.TotalRiders),
		strconv.Itoa(m.TotalServed),
		formatFloat(m.Mean),
		formatFloat(m.Variance),
		formatFloat(m.StdDev),
		formatFloat(m.Gini),
		formatFloat(m.SeatUtilization),
		strconv.Itoa(m.ZeroLoadDrivers),
		strconv.Itoa(m.Spread),
		formatFloat(m.FairnessRatio),
	}
	if err := cw.Write(row); err != nil {
		return err
	}

	return cw.Error()
}

// WriteSummary writes a human-readable report block, rounding floating
// summaries at presentation time only (spec.md §4.7).
func WriteSummary(w io.Writer, m transport.Metrics) error {
	_, err := fmt.Fprintf(w,
		"Variant: %s (run %s)\n"+
			"Total riders: %d, served: %d\n"+
			"Mean load: %.3f, variance: %.3f, std-dev: %.3f\n"+
			"Gini coefficient: %.3f\n"+
			"Seat utilization: %.3f\n"+
			"Zero-load drivers: %d\n"+
			"Load spread (max - min): %d\n"+
			"Fairness ratio (min/max): %.3f\n",
		m.Variant, m.RunID, m.TotalRiders, m.TotalServed,
		m.Mean, m.Variance, m.StdDev,
		m.Gini,
		m.SeatUtilization,
		m.ZeroLoadDrivers,
		m.Spread,
		m.FairnessRatio,
	)

	return err
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
