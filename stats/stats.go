/*package stats records counters describing a migration run with Prometheus
collectors. Batch runs dump them to a textfile at exit.
*/
package stats

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector bundles the run counters. A nil *Collector is valid and records
// nothing, so callers never need to check whether statistics are enabled.
type Collector struct {
	gatherer prometheus.Gatherer

	Evaluations   prometheus.Counter
	InvalidOrbits prometheus.Counter
	TrapReversals prometheus.Counter
	Steps         prometheus.Counter
	SimTime       prometheus.Gauge
}

// NewCollector registers the run counters against reg, defaulting to the
// global Prometheus registry when reg is nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{gatherer: gatherer}
	var err error

	if c.Evaluations, err = registerCounter(reg, prometheus.CounterOpts{
		Name: "discedge_force_evaluations_total",
		Help: "Number of disc-edge force evaluations.",
	}); err != nil {
		return nil, err
	}
	if c.InvalidOrbits, err = registerCounter(reg, prometheus.CounterOpts{
		Name: "discedge_invalid_orbits_total",
		Help: "Evaluations where no orbit could be computed and semimajor axis damping was skipped.",
	}); err != nil {
		return nil, err
	}
	if c.TrapReversals, err = registerCounter(reg, prometheus.CounterOpts{
		Name: "discedge_trap_reversals_total",
		Help: "Evaluations where the planet trap reversed the direction of migration.",
	}); err != nil {
		return nil, err
	}
	if c.Steps, err = registerCounter(reg, prometheus.CounterOpts{
		Name: "discedge_steps_total",
		Help: "Number of integrator steps taken.",
	}); err != nil {
		return nil, err
	}
	if c.SimTime, err = registerGauge(reg, prometheus.GaugeOpts{
		Name: "discedge_sim_time",
		Help: "Current simulation time in code units.",
	}); err != nil {
		return nil, err
	}

	return c, nil
}

// ObserveForce records one force evaluation. noOrbit is set when the orbit
// of the body could not be computed and trap is the trap multiplier used, if
// trapped is set.
func (c *Collector) ObserveForce(noOrbit, trapped bool, trap float64) {
	if c == nil {
		return
	}
	c.Evaluations.Inc()
	if noOrbit {
		c.InvalidOrbits.Inc()
	}
	if trapped && trap < 0 {
		c.TrapReversals.Inc()
	}
}

// ObserveStep records an integrator step ending at time t.
func (c *Collector) ObserveStep(t float64) {
	if c == nil {
		return
	}
	c.Steps.Inc()
	c.SimTime.Set(t)
}

// WriteTextfile writes every metric in the collector's registry to fname in
// the Prometheus text exposition format.
func (c *Collector) WriteTextfile(fname string) error {
	if c == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(fname, c.gatherer); err != nil {
		return fmt.Errorf("Could not write metrics to '%s': %w", fname, err)
	}
	return nil
}

func registerCounter(
	reg prometheus.Registerer, opts prometheus.CounterOpts,
) (prometheus.Counter, error) {
	counter := prometheus.NewCounter(opts)
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", opts.Name)
		}
		return nil, err
	}
	return counter, nil
}

func registerGauge(
	reg prometheus.Registerer, opts prometheus.GaugeOpts,
) (prometheus.Gauge, error) {
	gauge := prometheus.NewGauge(opts)
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", opts.Name)
		}
		return nil, err
	}
	return gauge, nil
}
