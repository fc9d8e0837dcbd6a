// Package hybrid orchestrates the two solvers behind one entry point.
//
// # Overview
//
// Solve prefers the recursive solver and keeps Dijkstra as a safety net:
// the primary runs on a worker goroutine under a wall-clock budget, and
// the result degrades to a wholesale Dijkstra pass when the budget lapses
// or the primary fails. On a successful primary run, vertices the
// recursion left unresolved are topped up from a Dijkstra pass, so the
// combined distance map is as complete as the reference solver can make
// it. WithoutFill turns the top-up off for callers that want the raw
// primary coverage.
//
// Compare runs both engines over the same input and reports coverage,
// per-vertex mismatches beyond an absolute tolerance, and timings. The
// experiment harness and the compare subcommand build on it, and it is
// the recommended oracle when validating changes to the recursion.
//
// # Thread safety
//
// Solve and Compare are safe for concurrent use on distinct graphs. A
// degraded Solve abandons its worker rather than interrupting it; the
// worker keeps reading the graph until its recursion unwinds, so do not
// mutate g right after a degraded return.
//
// See also: bmssp for the primary solver, dijkstra for the reference.
package hybrid
