package genfleet

import (
	"fmt"
	"math/rand"

	"github.com/deride-go/rideshare/graph"
	"github.com/deride-go/rideshare/transport"
)

// Option configures a generation run.
type Option func(*config)

type config struct {
	rng          *rand.Rand
	seatsMin     int
	seatsMax     int
	thresholdMin int
	thresholdMax int
}

// WithSeed sets the generator's seed; omitted, generation uses the fixed
// default seed 1, so unseeded runs repeat as well.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithSeatsRange overrides the inclusive seats range (default [1,5], per
// CreacteRandomDriver.py's random.randint(1, 5)).
func WithSeatsRange(min, max int) Option {
	return func(c *config) { c.seatsMin, c.seatsMax = min, max }
}

// WithThresholdRange overrides the inclusive threshold-percent range
// (default [10,50], per CreacteRandomDriver.py's random.randint(10, 50)).
func WithThresholdRange(min, max int) Option {
	return func(c *config) { c.thresholdMin, c.thresholdMax = min, max }
}

func newConfig(opts []Option) *config {
	c := &config{rng: rand.New(rand.NewSource(1)), seatsMin: 1, seatsMax: 5, thresholdMin: 10, thresholdMax: 50}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Drivers generates n drivers, each endpointed on a uniformly sampled edge
// of g.
func Drivers(g *graph.Graph, n int, opts ...Option) ([]transport.Driver, error) {
	c := newConfig(opts)
	edges := g.Edges()
	if len(edges) == 0 {
		return nil, fmt.Errorf("genfleet: graph has no edges to sample from")
	}

	drivers := make([]transport.Driver, 0, n)
	for i := 1; i <= n; i++ {
		e := edges[c.rng.Intn(len(edges))]
		seats := c.seatsMin + c.rng.Intn(c.seatsMax-c.seatsMin+1)
		threshold := c.thresholdMin + c.rng.Intn(c.thresholdMax-c.thresholdMin+1)

		d, err := transport.NewDriver(fmt.Sprintf("d%d", i), e.From, e.To, seats, threshold)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

// Riders generates n riders, each endpointed on a uniformly sampled edge of g.
func Riders(g *graph.Graph, n int, opts ...Option) ([]transport.Rider, error) {
	c := newConfig(opts)
	edges := g.Edges()
	if len(edges) == 0 {
		return nil, fmt.Errorf("genfleet: graph has no edges to sample from")
	}

	riders := make([]transport.Rider, 0, n)
	for i := 1; i <= n; i++ {
		e := edges[c.rng.Intn(len(edges))]

		r, err := transport.NewRider(fmt.Sprintf("r%d", i), e.From, e.To)
		if err != nil {
			return nil, err
		}
		riders = append(riders, r)
	}

	return riders, nil
}
