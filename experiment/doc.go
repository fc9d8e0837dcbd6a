// Package experiment runs benchmark sweeps described by YAML plans.
//
// A Plan lists Scenarios; each scenario names a generator shape, the
// vertex counts to sweep, seeding, per-solve timeout and repetition
// count. Runner.Run builds every (scenario, size, repetition) graph
// through the builder package, measures the reference solver, the
// recursive solver and the budgeted hybrid over it, and collects one
// Record per job. Jobs run under an errgroup bounded by the plan's
// parallelism, with logrus progress logging keyed by a per-run uuid.
//
// WriteCSV renders a Report for spreadsheets and downstream plotting,
// one row per job with timings in milliseconds, coverage and mismatch
// counts, and the recursion's diagnostics columns.
//
// A minimal plan:
//
//	name: nightly
//	parallelism: 2
//	scenarios:
//	  - name: sparse-sweep
//	    shape: sparse
//	    avg_degree: 5.0
//	    sizes: [100, 1000, 5000]
//	    repetitions: 3
//	    timeout: 10s
//
// Unset fields fall back to documented defaults, so the shortest useful
// scenario is a name plus a size list.
package experiment
