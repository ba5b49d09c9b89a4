package transport

import "errors"

// Sentinel errors shared by every component operating on the data model.
var (
	// ErrUnknownNode indicates a Driver or Rider references a node absent
	// from the loaded graph.Graph (spec.md §7 InputError).
	ErrUnknownNode = errors.New("transport: node not found in graph")

	// ErrDegenerateEndpoints indicates a Driver or Rider was constructed
	// with Source == Destination, which spec.md §3 forbids.
	ErrDegenerateEndpoints = errors.New("transport: source and destination must differ")

	// ErrNegativeSeats indicates a Driver was constructed with seats < 0.
	ErrNegativeSeats = errors.New("transport: seats must be non-negative")

	// ErrNegativeThreshold indicates a Driver was constructed with a
	// negative detour threshold.
	ErrNegativeThreshold = errors.New("transport: threshold must be non-negative")
)

// Driver is a ride offer: a source, a destination, a seat capacity and a
// percent detour tolerance (threshold). Constructed once from ingest and
// never mutated; per-run remaining capacity lives on Assignment, not here.
type Driver struct {
	ID           string
	Source       string
	Destination  string
	InitialSeats int
	ThresholdPct int
}

// NewDriver validates and constructs a Driver per spec.md §3's invariants.
func NewDriver(id, source, destination string, seats, thresholdPct int) (Driver, error) {
	if source == destination {
		return Driver{}, ErrDegenerateEndpoints
	}
	if seats < 0 {
		return Driver{}, ErrNegativeSeats
	}
	if thresholdPct < 0 {
		return Driver{}, ErrNegativeThreshold
	}

	return Driver{ID: id, Source: source, Destination: destination, InitialSeats: seats, ThresholdPct: thresholdPct}, nil
}

// Rider is a ride request: a source and a destination.
type Rider struct {
	ID          string
	Source      string
	Destination string
}

// NewRider validates and constructs a Rider per spec.md §3's invariants.
func NewRider(id, source, destination string) (Rider, error) {
	if source == destination {
		return Rider{}, ErrDegenerateEndpoints
	}

	return Rider{ID: id, Source: source, Destination: destination}, nil
}

// EligibilityMatrix is the binary driver x rider feasibility matrix ER plus
// its column-sum vector offers. ER[d][r] and Offers[r] are indexed
// positionally against the Drivers/Riders slices the matrix was built from.
//
// Ownership: built once by eligibility.Build, then owned exclusively and
// mutated in place by whichever assigner (deride or deridefair) is
// currently running against it. ILP variants read the same feasibility mask
// but never mutate it (they derive a fresh ilp.Model instead).
type EligibilityMatrix struct {
	Drivers []Driver
	Riders  []Rider

	// ER[d][r] == true iff rider r is currently eligible for driver d.
	ER [][]bool

	// Offers[r] == number of drivers currently eligible for rider r; always
	// equal to the column sum of ER (spec.md invariant 4).
	Offers []int
}

// NewEligibilityMatrix allocates a zeroed matrix sized for drivers x riders.
func NewEligibilityMatrix(drivers []Driver, riders []Rider) *EligibilityMatrix {
	er := make([][]bool, len(drivers))
	for d := range er {
		er[d] = make([]bool, len(riders))
	}

	return &EligibilityMatrix{
		Drivers: drivers,
		Riders:  riders,
		ER:      er,
		Offers:  make([]int, len(riders)),
	}
}

// RecomputeOffers resets Offers[r] to the column sum of ER, enforcing
// spec.md invariant 4 after any mutation of ER.
func (m *EligibilityMatrix) RecomputeOffers() {
	for r := range m.Offers {
		sum := 0
		for d := range m.ER {
			if m.ER[d][r] {
				sum++
			}
		}
		m.Offers[r] = sum
	}
}

// DriverAssignment is one driver's outcome: the committed path (empty until
// the first rider is accepted for variants that commit a path lazily) and
// the ordered list of accepted rider IDs.
type DriverAssignment struct {
	Driver         Driver
	Path           []string
	AcceptedRiders []string
	RemainingSeats int
}

// Accept appends riderID to the driver's accepted list and decrements
// RemainingSeats. Callers are responsible for enforcing the capacity
// invariant (spec.md invariant 1) before calling Accept.
func (a *DriverAssignment) Accept(riderID string) {
	a.AcceptedRiders = append(a.AcceptedRiders, riderID)
	a.RemainingSeats--
}

// Load is the number of riders currently accepted by this driver.
func (a *DriverAssignment) Load() int { return len(a.AcceptedRiders) }

// Assignment is the outcome of one assigner run: one DriverAssignment per
// input driver (append-only; RemainingSeats = InitialSeats - len(Accepted)),
// plus a RunID correlating this run's Assignment with its Metrics in logs
// and CSV output when several variants are compared in one invocation
// (spec.md §5 "benchmarking multiple variants").
type Assignment struct {
	RunID   string
	Variant string
	Drivers []DriverAssignment
}

// TotalServed returns the number of riders accepted across all drivers.
func (a *Assignment) TotalServed() int {
	total := 0
	for _, d := range a.Drivers {
		total += d.Load()
	}

	return total
}

// Metrics is the Report Builder's output, per spec.md §4.7.
type Metrics struct {
	RunID           string
	Variant         string
	TotalRiders     int
	TotalServed     int
	Loads           []int
	Mean            float64
	Variance        float64
	StdDev          float64
	Gini            float64
	SeatUtilization float64
	ZeroLoadDrivers int
	Spread          int
	FairnessRatio   float64
}
