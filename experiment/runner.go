// This file implements the Runner: job enumeration, bounded parallel
// execution, and per-job measurement of the three solvers.
package experiment

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Xavierblaze6/sssp-algorithm/builder"
	"github.com/Xavierblaze6/sssp-algorithm/hybrid"
)

// Record is the measurement of one (scenario, size, repetition) job.
type Record struct {
	RunID    string
	Scenario string
	Shape    string
	N        int
	M        int
	Rep      int
	Seed     string

	// Engine timings. The Dijkstra and BMSSP columns come from the
	// comparison pass; the hybrid columns from a separate budgeted solve.
	DijkstraTime      time.Duration
	BMSSPTime         time.Duration
	HybridTime        time.Duration
	HybridPrimaryTime time.Duration
	HybridFillTime    time.Duration

	// Coverage.
	DijkstraReached int
	BMSSPReached    int
	HybridReached   int
	Filled          int
	Degraded        bool

	// Agreement against the reference engine.
	Mismatches int
	Missing    int
	Extra      int
	AvgError   float64

	// Recursion diagnostics, zero when the hybrid solve degraded.
	K             int
	T             int
	MaxDistance   float64
	AvgDistance   float64
	AvgPathLength float64
	MaxPathLength int64
}

// Report is the outcome of one full plan execution.
type Report struct {
	RunID     string
	Plan      string
	StartedAt time.Time
	Elapsed   time.Duration

	// Records holds one entry per job in plan order: scenarios in plan
	// sequence, sizes in listed order, repetitions ascending.
	Records []Record
}

// Runner executes plans. The zero value is not usable; call NewRunner.
type Runner struct {
	log    logrus.FieldLogger
	source int
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger replaces the default standard logger. Panics on nil.
func WithLogger(log logrus.FieldLogger) RunnerOption {
	if log == nil {
		panic("experiment: WithLogger(nil)")
	}
	return func(r *Runner) { r.log = log }
}

// WithSource sets the source vertex for every solve. Panics on negative
// ids; sizes smaller than the source fail at run time instead.
func WithSource(v int) RunnerOption {
	if v < 0 {
		panic("experiment: WithSource negative vertex")
	}
	return func(r *Runner) { r.source = v }
}

// NewRunner returns a Runner logging through logrus.StandardLogger and
// solving from vertex 0.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{log: logrus.StandardLogger(), source: 0}
	for _, o := range opts {
		o(r)
	}
	return r
}

// job is one (scenario, size, repetition) cell of the plan.
type job struct {
	idx      int
	scenario Scenario
	size     int
	rep      int
}

// enumerate flattens the plan into its job list, in plan order.
func enumerate(p *Plan) []job {
	var jobs []job
	for _, sc := range p.Scenarios {
		for _, n := range sc.Sizes {
			for rep := 0; rep < sc.Repetitions; rep++ {
				jobs = append(jobs, job{idx: len(jobs), scenario: sc, size: n, rep: rep})
			}
		}
	}
	return jobs
}

// Run validates the plan and executes every job under the configured
// parallelism bound. The first failing job cancels the rest.
func (r *Runner) Run(ctx context.Context, plan *Plan) (*Report, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	runID := uuid.NewString()
	started := time.Now()
	log := r.log.WithFields(logrus.Fields{"run_id": runID, "plan": plan.Name})

	jobs := enumerate(plan)
	log.WithFields(logrus.Fields{
		"scenarios":   len(plan.Scenarios),
		"jobs":        len(jobs),
		"parallelism": plan.Parallelism,
	}).Info("experiment run starting")

	records := make([]Record, len(jobs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(plan.Parallelism)
	for i := range jobs {
		jb := jobs[i]
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			rec, err := r.runJob(egCtx, runID, jb)
			if err != nil {
				return fmt.Errorf("experiment: scenario %q n=%d rep=%d: %w",
					jb.scenario.Name, jb.size, jb.rep, err)
			}
			records[jb.idx] = rec
			log.WithFields(logrus.Fields{
				"scenario":    jb.scenario.Name,
				"n":           jb.size,
				"rep":         jb.rep,
				"dijkstra_ms": rec.DijkstraTime.Milliseconds(),
				"bmssp_ms":    rec.BMSSPTime.Milliseconds(),
				"hybrid_ms":   rec.HybridTime.Milliseconds(),
				"mismatches":  rec.Mismatches,
				"degraded":    rec.Degraded,
			}).Info("job finished")
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	rep := &Report{
		RunID:     runID,
		Plan:      plan.Name,
		StartedAt: started,
		Elapsed:   time.Since(started),
		Records:   records,
	}
	log.WithFields(logrus.Fields{
		"jobs":    len(jobs),
		"elapsed": rep.Elapsed.String(),
	}).Info("experiment run complete")
	return rep, nil
}

// runJob builds the job's graph, compares the two engines, then times a
// budgeted hybrid solve over the same input.
func (r *Runner) runJob(ctx context.Context, runID string, jb job) (Record, error) {
	sc := jb.scenario

	cons, err := constructorFor(sc, jb.size)
	if err != nil {
		return Record{}, err
	}
	seedOpts, seedDesc := seedOptions(sc, jb.size, jb.rep)
	g, err := builder.Build(jb.size, seedOpts, cons)
	if err != nil {
		return Record{}, err
	}

	cmp, err := hybrid.Compare(g, r.source)
	if err != nil {
		return Record{}, err
	}

	start := time.Now()
	hres, err := hybrid.Solve(ctx, g, r.source, hybrid.WithTimeout(sc.Timeout.Std()))
	hybridDur := time.Since(start)
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		RunID:    runID,
		Scenario: sc.Name,
		Shape:    sc.Shape,
		N:        jb.size,
		M:        g.EdgeCount(),
		Rep:      jb.rep,
		Seed:     seedDesc,

		DijkstraTime:      cmp.DijkstraDuration,
		BMSSPTime:         cmp.BMSSPDuration,
		HybridTime:        hybridDur,
		HybridPrimaryTime: hres.PrimaryDuration,
		HybridFillTime:    hres.FallbackDuration,

		DijkstraReached: cmp.DijkstraReached,
		BMSSPReached:    cmp.BMSSPReached,
		HybridReached:   len(hres.Dist),
		Filled:          hres.Filled,
		Degraded:        hres.Degraded,

		Mismatches: len(cmp.Mismatches),
		Missing:    len(cmp.MissingFromBMSSP),
		Extra:      len(cmp.ExtraInBMSSP),
		AvgError:   avgError(cmp.Mismatches),
	}
	if hres.Diag != nil {
		rec.K = hres.Diag.K
		rec.T = hres.Diag.T
		rec.MaxDistance = hres.Diag.MaxDistance
		rec.AvgDistance = hres.Diag.AvgDistance
		rec.AvgPathLength = hres.Diag.AvgPathLength
		rec.MaxPathLength = hres.Diag.MaxPathLength
	}
	return rec, nil
}

// constructorFor maps a scenario shape onto its builder constructor.
func constructorFor(sc Scenario, size int) (builder.Constructor, error) {
	switch sc.Shape {
	case ShapeSparse:
		return builder.Sparse(sc.AvgDegree), nil
	case ShapeDense:
		return builder.Dense(sc.Probability), nil
	case ShapePath:
		return builder.Path(), nil
	case ShapeLayered:
		return builder.Layered(size/sc.Width, sc.Width, sc.Fanout), nil
	}
	return nil, fmt.Errorf("%w: shape %q", ErrBadPlan, sc.Shape)
}

// seedOptions derives the builder seeding for one job, plus the string
// recorded in the CSV. Numeric seeds advance by size and repetition the
// same way the historical sweeps did; labels get the job coordinates
// appended.
func seedOptions(sc Scenario, size, rep int) ([]builder.Option, string) {
	if sc.SeedLabel != "" {
		label := fmt.Sprintf("%s/%d/%d", sc.SeedLabel, size, rep)
		return []builder.Option{builder.WithSeedLabel(label)}, label
	}
	seed := sc.Seed + int64(size) + int64(rep)
	return []builder.Option{builder.WithSeed(seed)}, strconv.FormatInt(seed, 10)
}

// avgError is the mean absolute disagreement across mismatched vertices.
func avgError(mismatches []hybrid.Mismatch) float64 {
	if len(mismatches) == 0 {
		return 0
	}
	var sum float64
	for _, mm := range mismatches {
		sum += math.Abs(mm.BMSSP - mm.Dijkstra)
	}
	return sum / float64(len(mismatches))
}
