// Command rideshare wires the Ingest, Graph Store, Path Oracle,
// Eligibility Engine, the greedy and ILP assigners, and the Report
// Builder into a runnable CLI.
//
// Grounded on RideShareSystem.run in mainDeRide.py for the wiring order
// (load graph, load drivers/riders, build eligibility, assign, report) and
// on transitorykris-kbgp/cmd's plain flag-free main+log style for the
// overall shape — no CLI framework appears anywhere in the retrieved
// pack, so stdlib flag is used here (see DESIGN.md).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/deride-go/rideshare/deride"
	"github.com/deride-go/rideshare/deridefair"
	"github.com/deride-go/rideshare/eligibility"
	"github.com/deride-go/rideshare/graph"
	"github.com/deride-go/rideshare/ilp"
	"github.com/deride-go/rideshare/ingest"
	"github.com/deride-go/rideshare/pathoracle"
	"github.com/deride-go/rideshare/rideconfig"
	"github.com/deride-go/rideshare/report"
	"github.com/deride-go/rideshare/reportio"
	"github.com/deride-go/rideshare/tiebreak"
	"github.com/deride-go/rideshare/transport"
)

// Variant names accepted by -variant and compare's built-in fan-out.
const (
	variantDeRide        = "deride"
	variantDeRideFair    = "deridefair"
	variantMaxRiders     = "ilp-max-riders"
	variantMinMax        = "ilp-minmax"
	variantTwoPhase      = "ilp-two-phase"
	variantLexicographic = "ilp-lexicographic"
)

var allVariants = []string{variantDeRide, variantDeRideFair, variantMaxRiders, variantMinMax, variantTwoPhase, variantLexicographic}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "assign":
		err = runAssign(os.Args[2:])
	case "compare":
		err = runCompare(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		if errors.Is(err, errInfeasible) {
			log.Println(err)
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: rideshare <assign|compare> -graph=graph.csv -drivers=drivers.csv -riders=riders.csv [-out=dir] [-variant=name]")
}

var errInfeasible = errors.New("rideshare: no assignment produced (infeasible)")

type sharedFlags struct {
	graphPath   string
	driversPath string
	ridersPath  string
	outDir      string
}

func bindSharedFlags(fs *flag.FlagSet) *sharedFlags {
	sf := &sharedFlags{}
	fs.StringVar(&sf.graphPath, "graph", "", "path to graph.csv (source,destination,weight)")
	fs.StringVar(&sf.driversPath, "drivers", "", "path to drivers.csv")
	fs.StringVar(&sf.ridersPath, "riders", "", "path to riders.csv")
	fs.StringVar(&sf.outDir, "out", ".", "directory to write per-variant CSV output into")

	return sf
}

// runtime bundles the inputs every run (single-variant or one leg of a
// compare fan-out) needs. It is loaded once per invocation and shared
// read-only by all runs; each run builds its own oracle in runVariant.
type runtime struct {
	cfg     *rideconfig.Config
	g       *graph.Graph
	drivers []transport.Driver
	riders  []transport.Rider
}

func loadRuntime(sf *sharedFlags) (*runtime, error) {
	if sf.graphPath == "" || sf.driversPath == "" || sf.ridersPath == "" {
		return nil, fmt.Errorf("rideshare: -graph, -drivers and -riders are all required")
	}

	cfg, err := rideconfig.Load()
	if err != nil {
		return nil, fmt.Errorf("rideshare: loading config: %w", err)
	}

	graphFile, err := os.Open(sf.graphPath)
	if err != nil {
		return nil, fmt.Errorf("rideshare: opening %s: %w", sf.graphPath, err)
	}
	defer graphFile.Close()

	g, err := ingest.Graph(graphFile)
	if err != nil {
		return nil, fmt.Errorf("rideshare: loading graph: %w", err)
	}

	driversFile, err := os.Open(sf.driversPath)
	if err != nil {
		return nil, fmt.Errorf("rideshare: opening %s: %w", sf.driversPath, err)
	}
	defer driversFile.Close()

	drivers, err := ingest.Drivers(driversFile, g)
	if err != nil {
		return nil, fmt.Errorf("rideshare: loading drivers: %w", err)
	}

	ridersFile, err := os.Open(sf.ridersPath)
	if err != nil {
		return nil, fmt.Errorf("rideshare: opening %s: %w", sf.ridersPath, err)
	}
	defer ridersFile.Close()

	riders, err := ingest.Riders(ridersFile, g)
	if err != nil {
		return nil, fmt.Errorf("rideshare: loading riders: %w", err)
	}

	return &runtime{cfg: cfg, g: g, drivers: drivers, riders: riders}, nil
}

// runVariant executes one assignment variant end-to-end: fresh oracle,
// fresh eligibility matrix, fresh tie-break source (seeded from cfg plus
// variantIndex so concurrent compare legs stay independent yet
// reproducible), assign, then report.
func runVariant(ctx context.Context, rt *runtime, variant string, variantIndex int) (*transport.Assignment, transport.Metrics, error) {
	oracle := pathoracle.New(rt.g)

	var matrix *transport.EligibilityMatrix
	var err error
	if variant == variantDeRide {
		matrix, err = eligibility.BuildDeRide(oracle, rt.g, rt.drivers, rt.riders, rt.cfg.CorridorRadius)
	} else {
		matrix, err = eligibility.Build(oracle, rt.drivers, rt.riders)
	}
	if err != nil {
		return nil, transport.Metrics{}, fmt.Errorf("rideshare: building eligibility: %w", err)
	}

	seed := rt.cfg.RNGSeed + int64(variantIndex)
	mode := tiebreak.Deterministic
	if rt.cfg.TieBreakMode == rideconfig.TieBreakRandom {
		mode = tiebreak.Random
	}
	tie := tiebreak.New(tiebreak.WithSeed(seed), tiebreak.WithMode(mode))

	var assignment *transport.Assignment
	switch variant {
	case variantDeRide:
		assignment, err = deride.Assign(oracle, rt.g, matrix, deride.WithCorridorRadius(rt.cfg.CorridorRadius), deride.WithTieBreak(tie))
	case variantDeRideFair:
		assignment, err = deridefair.Assign(oracle, matrix, deridefair.WithTieBreak(tie))
	case variantMaxRiders:
		model := ilp.NewModel(matrix)
		assignment, err = ilp.MaxRiders(model), nil
	case variantMinMax:
		assignment, err = runILPBounded(ctx, rt.cfg, matrix, ilp.MinMaxScalarization)
	case variantTwoPhase:
		assignment, err = runILPBounded(ctx, rt.cfg, matrix, ilp.ClassicalTwoPhaseMaxMin)
	case variantLexicographic:
		assignment, err = runILPBounded(ctx, rt.cfg, matrix, ilp.LexicographicMaxMin)
	default:
		return nil, transport.Metrics{}, fmt.Errorf("rideshare: unknown variant %q", variant)
	}
	if err != nil {
		return nil, transport.Metrics{}, fmt.Errorf("rideshare: running %s: %w", variant, err)
	}

	assignment.RunID = uuid.NewString()
	assignment.Variant = variant
	metrics := report.Build(assignment, len(rt.riders))

	return assignment, metrics, nil
}

func runILPBounded(ctx context.Context, cfg *rideconfig.Config, matrix *transport.EligibilityMatrix, solve func(context.Context, *ilp.Model) *transport.Assignment) (*transport.Assignment, error) {
	model := ilp.NewModel(matrix)

	runCtx := ctx
	if cfg.SolverTimeLimitSSet {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, secondsToDuration(cfg.SolverTimeLimitS))
		defer cancel()
	}

	return solve(runCtx, model), nil
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func runAssign(args []string) error {
	fs := flag.NewFlagSet("assign", flag.ExitOnError)
	sf := bindSharedFlags(fs)
	variant := fs.String("variant", variantDeRide, "assignment variant to run")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rt, err := loadRuntime(sf)
	if err != nil {
		return err
	}

	assignment, metrics, err := runVariant(context.Background(), rt, *variant, 0)
	if err != nil {
		return err
	}
	if err := writeOutput(sf.outDir, *variant, assignment, metrics); err != nil {
		return err
	}
	if assignment.TotalServed() == 0 && len(rt.riders) > 0 {
		return errInfeasible
	}

	return nil
}

func runCompare(args []string) error {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	sf := bindSharedFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	rt, err := loadRuntime(sf)
	if err != nil {
		return err
	}

	ctx := context.Background()
	type outcome struct {
		assignment *transport.Assignment
		metrics    transport.Metrics
	}
	results := make([]outcome, len(allVariants))

	group, gctx := errgroup.WithContext(ctx)
	for i, variant := range allVariants {
		i, variant := i, variant
		group.Go(func() error {
			assignment, metrics, err := runVariant(gctx, rt, variant, i)
			if err != nil {
				return err
			}
			results[i] = outcome{assignment: assignment, metrics: metrics}

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	for i, variant := range allVariants {
		if err := writeOutput(sf.outDir, variant, results[i].assignment, results[i].metrics); err != nil {
			return err
		}
	}

	return nil
}

func writeOutput(outDir, variant string, assignment *transport.Assignment, metrics transport.Metrics) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("rideshare: creating %s: %w", outDir, err)
	}

	assignmentFile, err := os.Create(fmt.Sprintf("%s/%s.assignment.csv", outDir, variant))
	if err != nil {
		return err
	}
	defer assignmentFile.Close()
	if err := reportio.WriteAssignmentCSV(assignmentFile, assignment); err != nil {
		return fmt.Errorf("rideshare: writing assignment CSV: %w", err)
	}

	metricsFile, err := os.Create(fmt.Sprintf("%s/%s.metrics.csv", outDir, variant))
	if err != nil {
		return err
	}
	defer metricsFile.Close()
	if err := reportio.WriteMetricsCSV(metricsFile, metrics); err != nil {
		return fmt.Errorf("rideshare: writing metrics CSV: %w", err)
	}

	return reportio.WriteSummary(os.Stdout, metrics)
}
