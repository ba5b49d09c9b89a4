package ilp

import "github.com/deride-go/rideshare/transport"

// Model is an immutable snapshot of one eligibility matrix, decoupled from
// transport.EligibilityMatrix because every ILP variant reads the same
// feasibility mask concurrently without mutating it (unlike the greedy
// assigners, which own and mutate their matrix in place).
type Model struct {
	Drivers []transport.Driver
	Riders  []transport.Rider
	ER      [][]bool
	Seats   []int
}

// NewModel snapshots an eligibility matrix into a Model. Seats is seeded
// from each driver's InitialSeats.
func NewModel(m *transport.EligibilityMatrix) *Model {
	seats := make([]int, len(m.Drivers))
	for i, d := range m.Drivers {
		seats[i] = d.InitialSeats
	}

	er := make([][]bool, len(m.ER))
	for i, row := range m.ER {
		er[i] = append([]bool{}, row...)
	}

	return &Model{Drivers: m.Drivers, Riders: m.Riders, ER: er, Seats: seats}
}

// assignment is an internal in-progress solution: assignment[r] is the
// driver index serving rider r, or -1 if unserved.
type assignment []int

// loads returns the per-driver load vector for a complete assignment.
func (a assignment) loads(numDrivers int) []int {
	loads := make([]int, numDrivers)
	for _, d := range a {
		if d >= 0 {
			loads[d]++
		}
	}

	return loads
}

// served returns the number of riders with a driver assigned.
func (a assignment) served() int {
	n := 0
	for _, d := range a {
		if d >= 0 {
			n++
		}
	}

	return n
}

// toResult converts a completed assignment search into a transport.Assignment.
func (m *Model) toResult(variant string, a assignment) *transport.Assignment {
	das := make([]transport.DriverAssignment, len(m.Drivers))
	for i, d := range m.Drivers {
		das[i] = transport.DriverAssignment{Driver: d, RemainingSeats: m.Seats[i]}
	}
	for r, d := range a {
		if d >= 0 {
			das[d].Accept(m.Riders[r].ID)
		}
	}

	return &transport.Assignment{Variant: variant, Drivers: das}
}
