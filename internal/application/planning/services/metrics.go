package services

import "time"

// SolverMetrics receives telemetry from the plan solver. The production
// implementation lives in the metrics adapter; the solver itself only
// depends on this interface.
type SolverMetrics interface {
	// ObserveSolve records a finished solve with its outcome label
	// ("solved", "no_solution", "not_found") and wall-clock duration
	ObserveSolve(target string, outcome string, duration time.Duration)

	// CandidateTried records one (planet, configuration, operator)
	// candidate being attempted during the assignment search
	CandidateTried()

	// Backtracked records one undo of a tentative assignment
	Backtracked()
}

// NoopSolverMetrics discards all telemetry
type NoopSolverMetrics struct{}

func (NoopSolverMetrics) ObserveSolve(string, string, time.Duration) {}
func (NoopSolverMetrics) CandidateTried()                            {}
func (NoopSolverMetrics) Backtracked()                               {}
