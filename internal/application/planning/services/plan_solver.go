package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/andrescamacho/pi-planner/internal/domain/catalog"
	"github.com/andrescamacho/pi-planner/internal/domain/planning"
)

// PlanSolver produces a complete, constraint-satisfying production plan
// for a target product, or reports that none exists.
//
// The solve runs in two phases. Phase 1 computes the dependency closure:
// the set of products that must be produced, seeded from the first valid
// configuration found per product. Phase 2 assigns a (planet,
// configuration, operator) triple to each required product via
// depth-first search with chronological backtracking; the first complete
// assignment wins.
//
// A solver instance is safe for concurrent solves only because every
// piece of mutable search state is owned by the in-flight call.
type PlanSolver struct {
	products  catalog.ProductRepository
	planets   planning.PlanetRepository
	operators planning.OperatorRepository
	resolver  *ConfigurationResolver
	metrics   SolverMetrics
}

// NewPlanSolver creates a solver over the given repositories
func NewPlanSolver(
	products catalog.ProductRepository,
	planets planning.PlanetRepository,
	operators planning.OperatorRepository,
) *PlanSolver {
	return &PlanSolver{
		products:  products,
		planets:   planets,
		operators: operators,
		resolver:  NewConfigurationResolver(products),
		metrics:   NoopSolverMetrics{},
	}
}

// NewPlanSolverWithMetrics creates a solver that reports telemetry to
// the given recorder
func NewPlanSolverWithMetrics(
	products catalog.ProductRepository,
	planets planning.PlanetRepository,
	operators planning.OperatorRepository,
	metrics SolverMetrics,
) *PlanSolver {
	solver := NewPlanSolver(products, planets, operators)
	solver.metrics = metrics
	return solver
}

// Solve computes a production plan for the target product. The context
// covers only the repository loads; the search itself has no suspension
// points and no cancellation primitive, so callers needing bounded
// latency must cap their inputs.
func (s *PlanSolver) Solve(ctx context.Context, targetProduct string) (planning.ProductionPlan, error) {
	started := time.Now()

	plan, err := s.solve(ctx, targetProduct)

	outcome := "solved"
	if err != nil {
		switch err.(type) {
		case *planning.ErrProductNotFound:
			outcome = "not_found"
		default:
			outcome = "no_solution"
		}
	}
	s.metrics.ObserveSolve(targetProduct, outcome, time.Since(started))

	return plan, err
}

func (s *PlanSolver) solve(ctx context.Context, targetProduct string) (planning.ProductionPlan, error) {
	if _, ok := s.products.FindByName(targetProduct); !ok {
		return planning.ProductionPlan{}, &planning.ErrProductNotFound{Product: targetProduct}
	}

	planets, err := s.planets.FindAll(ctx)
	if err != nil {
		return planning.ProductionPlan{}, err
	}
	operators, err := s.operators.FindAll(ctx)
	if err != nil {
		return planning.ProductionPlan{}, err
	}

	required, err := s.dependencyClosure(targetProduct)
	if err != nil {
		return planning.ProductionPlan{}, err
	}

	state := &searchState{
		usedPlanets:  make(map[string]bool),
		operatorLoad: make(map[string]int),
		requiredSet:  make(map[string]bool, len(required)),
	}
	for _, product := range required {
		state.requiredSet[product] = true
	}

	if !s.assign(required, 0, planets, operators, state) {
		return planning.ProductionPlan{}, &planning.ErrNoSolutionFound{
			Product: targetProduct,
			Reason:  "assignment search exhausted all planet/operator combinations",
		}
	}

	return planning.ProductionPlan{
		ID:          uuid.New().String(),
		Target:      targetProduct,
		Assignments: state.assignments,
	}, nil
}

// dependencyClosure computes the ordered set of products that must be
// produced to realize the target. Each product is seeded from the first
// valid configuration found, trying planet types in their fixed
// enumeration order; alternate strategies are explored later by the
// assignment search, not here. A product with no valid configuration on
// any planet type is a hard stop.
func (s *PlanSolver) dependencyClosure(targetProduct string) ([]string, error) {
	var required []string
	seen := make(map[string]bool)
	queue := []string{targetProduct}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if seen[current] {
			continue
		}

		config, found := s.firstConfiguration(current)
		if !found {
			return nil, &planning.ErrNoSolutionFound{
				Product: current,
				Reason:  "no valid factory configuration on any planet type",
			}
		}

		seen[current] = true
		required = append(required, current)

		for _, imported := range config.ImportedInputs {
			if !seen[imported] {
				queue = append(queue, imported)
			}
		}
	}

	return required, nil
}

// firstConfiguration returns the first configuration the resolver
// yields for the product across planet types in fixed order
func (s *PlanSolver) firstConfiguration(product string) (planning.FactoryConfiguration, bool) {
	for _, planetType := range catalog.AllPlanetTypes {
		configs := s.resolver.FindValidConfigurations(planetType, product)
		if len(configs) > 0 {
			return configs[0], true
		}
	}
	return planning.FactoryConfiguration{}, false
}

// searchState is the mutable state owned by a single assignment search:
// the partial plan, the planets already claimed, and the per-operator
// load. Every claim has a matching release on the failure path.
type searchState struct {
	assignments  []planning.PlanetAssignment
	usedPlanets  map[string]bool
	operatorLoad map[string]int
	requiredSet  map[string]bool
}

func (st *searchState) claim(assignment planning.PlanetAssignment) {
	st.assignments = append(st.assignments, assignment)
	st.usedPlanets[assignment.Planet] = true
	st.operatorLoad[assignment.Operator]++
}

func (st *searchState) release(assignment planning.PlanetAssignment) {
	st.assignments = st.assignments[:len(st.assignments)-1]
	delete(st.usedPlanets, assignment.Planet)
	st.operatorLoad[assignment.Operator]--
}

func (st *searchState) produced(product string) bool {
	for _, a := range st.assignments {
		if a.Output == product {
			return true
		}
	}
	return false
}

// assign fills positions of the required list one at a time via
// depth-first search. Candidate order is planet, then configuration,
// then operator; the first complete assignment propagates up without
// further search.
func (s *PlanSolver) assign(
	required []string,
	position int,
	planets []planning.Planet,
	operators []planning.Operator,
	state *searchState,
) bool {
	if position == len(required) {
		return true
	}

	product := required[position]
	if state.produced(product) {
		return s.assign(required, position+1, planets, operators, state)
	}

	for _, planet := range planets {
		if state.usedPlanets[planet.ID] {
			continue
		}

		for _, config := range s.resolver.FindValidConfigurations(planet.Type, product) {
			if !s.importsSchedulable(config, state) {
				continue
			}

			for _, operator := range operators {
				if state.operatorLoad[operator.Name] >= operator.Capacity {
					continue
				}

				s.metrics.CandidateTried()
				assignment := planning.PlanetAssignment{
					Operator:       operator.Name,
					Planet:         planet.ID,
					PlanetType:     planet.Type,
					ImportedInputs: config.ImportedInputs,
					MinedInputs:    config.MinedInputs,
					Output:         product,
				}

				state.claim(assignment)
				if s.assign(required, position+1, planets, operators, state) {
					return true
				}
				state.release(assignment)
				s.metrics.Backtracked()
			}
		}
	}

	return false
}

// importsSchedulable verifies every imported input of a candidate
// configuration is either already produced or still in the required
// set, so it can be produced at a later position. Configurations whose
// imports fall outside the closure would leave unsatisfied inputs in
// the finished plan.
func (s *PlanSolver) importsSchedulable(config planning.FactoryConfiguration, state *searchState) bool {
	for _, imported := range config.ImportedInputs {
		if state.requiredSet[imported] || state.produced(imported) {
			continue
		}
		return false
	}
	return true
}
