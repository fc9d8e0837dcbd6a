// This file declares the YAML plan schema, its defaults and validation,
// and the LoadPlan / ParsePlan entry points.
package experiment

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrBadPlan is returned when a plan fails validation. Every validation
// failure wraps it together with the offending scenario and field.
var ErrBadPlan = errors.New("experiment: invalid plan")

// Generator shapes a scenario may request. They map onto the builder
// package's constructors.
const (
	ShapeSparse  = "sparse"
	ShapeDense   = "dense"
	ShapePath    = "path"
	ShapeLayered = "layered"
)

// Plan defaults applied by Validate.
const (
	defaultPlanName    = "experiment"
	defaultParallelism = 1
	defaultRepetitions = 1
	defaultSeed        = int64(42)
	defaultTimeout     = 30 * time.Second
	defaultAvgDegree   = 5.0
	defaultProbability = 0.3
	defaultWidth       = 4
	defaultFanout      = 2
)

// Duration decodes human-readable YAML durations such as "500ms" or "10s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std converts back to the standard library type.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Plan is the top-level experiment description loaded from YAML.
type Plan struct {
	// Name labels the run in logs. Defaults to "experiment".
	Name string `yaml:"name"`

	// Parallelism bounds the number of jobs in flight. Defaults to 1.
	Parallelism int `yaml:"parallelism"`

	// Scenarios lists the experiments to run. At least one is required.
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario describes one sweep: a generator shape applied to a list of
// vertex counts with a number of repetitions per size.
type Scenario struct {
	Name        string   `yaml:"name"`
	Shape       string   `yaml:"shape"`
	Sizes       []int    `yaml:"sizes"`
	Seed        int64    `yaml:"seed"`
	SeedLabel   string   `yaml:"seed_label"`
	Repetitions int      `yaml:"repetitions"`
	Timeout     Duration `yaml:"timeout"`

	// Shape parameters. Each shape reads its own and ignores the rest.
	AvgDegree   float64 `yaml:"avg_degree"`
	Probability float64 `yaml:"probability"`
	Width       int     `yaml:"width"`
	Fanout      int     `yaml:"fanout"`
}

// ParsePlan decodes a plan from YAML and validates it.
func ParsePlan(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPlan, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadPlan reads and parses the plan stored at path.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("experiment: %w", err)
	}
	return ParsePlan(data)
}

// Validate applies defaults in place and rejects inconsistent plans.
//
// Defaults: name "experiment", parallelism 1, one repetition, seed 42
// (unless a seed label is set), 30s timeout, avg_degree 5, probability
// 0.3, width 4, fanout 2.
func (p *Plan) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil plan", ErrBadPlan)
	}
	if p.Name == "" {
		p.Name = defaultPlanName
	}
	if p.Parallelism == 0 {
		p.Parallelism = defaultParallelism
	}
	if p.Parallelism < 1 {
		return fmt.Errorf("%w: parallelism %d", ErrBadPlan, p.Parallelism)
	}
	if len(p.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios", ErrBadPlan)
	}
	names := make(map[string]bool, len(p.Scenarios))
	for i := range p.Scenarios {
		sc := &p.Scenarios[i]
		if err := sc.validate(); err != nil {
			return err
		}
		if names[sc.Name] {
			return fmt.Errorf("%w: duplicate scenario name %q", ErrBadPlan, sc.Name)
		}
		names[sc.Name] = true
	}
	return nil
}

func (sc *Scenario) validate() error {
	if sc.Name == "" {
		return fmt.Errorf("%w: scenario without a name", ErrBadPlan)
	}
	if sc.Shape == "" {
		sc.Shape = ShapeSparse
	}
	switch sc.Shape {
	case ShapeSparse, ShapeDense, ShapePath, ShapeLayered:
	default:
		return fmt.Errorf("%w: scenario %q: unknown shape %q", ErrBadPlan, sc.Name, sc.Shape)
	}
	if len(sc.Sizes) == 0 {
		return fmt.Errorf("%w: scenario %q: no sizes", ErrBadPlan, sc.Name)
	}
	for _, n := range sc.Sizes {
		if n < 1 {
			return fmt.Errorf("%w: scenario %q: size %d", ErrBadPlan, sc.Name, n)
		}
	}
	if sc.Seed == 0 && sc.SeedLabel == "" {
		sc.Seed = defaultSeed
	}
	if sc.Repetitions == 0 {
		sc.Repetitions = defaultRepetitions
	}
	if sc.Repetitions < 1 {
		return fmt.Errorf("%w: scenario %q: repetitions %d", ErrBadPlan, sc.Name, sc.Repetitions)
	}
	if sc.Timeout == 0 {
		sc.Timeout = Duration(defaultTimeout)
	}
	if sc.Timeout < 0 {
		return fmt.Errorf("%w: scenario %q: negative timeout", ErrBadPlan, sc.Name)
	}

	switch sc.Shape {
	case ShapeSparse:
		if sc.AvgDegree == 0 {
			sc.AvgDegree = defaultAvgDegree
		}
		if !(sc.AvgDegree >= 0) {
			return fmt.Errorf("%w: scenario %q: avg_degree %g", ErrBadPlan, sc.Name, sc.AvgDegree)
		}
	case ShapeDense:
		if sc.Probability == 0 {
			sc.Probability = defaultProbability
		}
		if !(sc.Probability >= 0 && sc.Probability <= 1) {
			return fmt.Errorf("%w: scenario %q: probability %g", ErrBadPlan, sc.Name, sc.Probability)
		}
	case ShapeLayered:
		if sc.Width == 0 {
			sc.Width = defaultWidth
		}
		if sc.Width < 1 {
			return fmt.Errorf("%w: scenario %q: width %d", ErrBadPlan, sc.Name, sc.Width)
		}
		if sc.Fanout == 0 {
			sc.Fanout = defaultFanout
		}
		if sc.Fanout < 0 {
			return fmt.Errorf("%w: scenario %q: fanout %d", ErrBadPlan, sc.Name, sc.Fanout)
		}
		for _, n := range sc.Sizes {
			if n%sc.Width != 0 {
				return fmt.Errorf("%w: scenario %q: size %d not divisible by width %d",
					ErrBadPlan, sc.Name, n, sc.Width)
			}
		}
	}
	return nil
}
