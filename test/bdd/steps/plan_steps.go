package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/pi-planner/internal/adapters/persistence"
	"github.com/andrescamacho/pi-planner/internal/application/planning/services"
	"github.com/andrescamacho/pi-planner/internal/domain/catalog"
	"github.com/andrescamacho/pi-planner/internal/domain/planning"
)

type planContext struct {
	planets    *persistence.MemoryPlanetRepository
	operators  *persistence.MemoryOperatorRepository
	capacities map[string]int
	plan       planning.ProductionPlan
	err        error
}

func (pc *planContext) reset() {
	pc.planets = persistence.NewMemoryPlanetRepository()
	pc.operators = persistence.NewMemoryOperatorRepository()
	pc.capacities = make(map[string]int)
	pc.plan = planning.ProductionPlan{}
	pc.err = nil
}

// Setup steps

func (pc *planContext) aPlanetOfType(id, planetType string) error {
	parsed, err := catalog.ParsePlanetType(planetType)
	if err != nil {
		return err
	}
	return pc.planets.Save(context.Background(), planning.NewPlanet(id, parsed, nil))
}

func (pc *planContext) anOperatorWithCapacity(name string, capacity int) error {
	pc.capacities[name] = capacity
	return pc.operators.Save(context.Background(), planning.NewOperator(name, capacity))
}

// Action steps

func (pc *planContext) iSolveAPlanFor(product string) error {
	solver := services.NewPlanSolver(catalog.New(), pc.planets, pc.operators)
	pc.plan, pc.err = solver.Solve(context.Background(), product)
	return nil
}

// Assertion steps

func (pc *planContext) thePlanShouldHaveAssignments(count int) error {
	if pc.err != nil {
		return fmt.Errorf("expected a plan, got error: %v", pc.err)
	}
	if len(pc.plan.Assignments) != count {
		return fmt.Errorf("expected %d assignments, got %d", count, len(pc.plan.Assignments))
	}
	return nil
}

func (pc *planContext) shouldBeProducedOnBy(product, planetID, operator string) error {
	if pc.err != nil {
		return fmt.Errorf("expected a plan, got error: %v", pc.err)
	}
	assignment, ok := pc.plan.ProducerOf(product)
	if !ok {
		return fmt.Errorf("no assignment produces %q", product)
	}
	if assignment.Planet != planetID {
		return fmt.Errorf("expected %q on planet %q, got %q", product, planetID, assignment.Planet)
	}
	if assignment.Operator != operator {
		return fmt.Errorf("expected %q run by %q, got %q", product, operator, assignment.Operator)
	}
	return nil
}

func (pc *planContext) everyOperatorShouldStayWithinCapacity() error {
	if pc.err != nil {
		return fmt.Errorf("expected a plan, got error: %v", pc.err)
	}
	for name, load := range pc.plan.OperatorLoad() {
		capacity, known := pc.capacities[name]
		if !known {
			return fmt.Errorf("plan uses unknown operator %q", name)
		}
		if load > capacity {
			return fmt.Errorf("operator %q runs %d planets, capacity is %d", name, load, capacity)
		}
	}
	return nil
}

func (pc *planContext) solvingShouldFailBecauseTheProductIsUnknown() error {
	var notFound *planning.ErrProductNotFound
	if !errors.As(pc.err, &notFound) {
		return fmt.Errorf("expected product-not-found error, got %v", pc.err)
	}
	return nil
}

func (pc *planContext) solvingShouldFailBecauseNoSolutionExists() error {
	var noSolution *planning.ErrNoSolutionFound
	if !errors.As(pc.err, &noSolution) {
		return fmt.Errorf("expected no-solution error, got %v", pc.err)
	}
	return nil
}

func InitializePlanScenario(ctx *godog.ScenarioContext) {
	solveCtx := &planContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		solveCtx.reset()
		return ctx, nil
	})

	ctx.Step(`^a planet "([^"]*)" of type "([^"]*)"$`, solveCtx.aPlanetOfType)
	ctx.Step(`^an operator "([^"]*)" with capacity (\d+)$`, solveCtx.anOperatorWithCapacity)
	ctx.Step(`^I solve a plan for "([^"]*)"$`, solveCtx.iSolveAPlanFor)
	ctx.Step(`^the plan should have (\d+) assignments?$`, solveCtx.thePlanShouldHaveAssignments)
	ctx.Step(`^"([^"]*)" should be produced on "([^"]*)" by "([^"]*)"$`, solveCtx.shouldBeProducedOnBy)
	ctx.Step(`^every operator should stay within capacity$`, solveCtx.everyOperatorShouldStayWithinCapacity)
	ctx.Step(`^solving should fail because the product is unknown$`, solveCtx.solvingShouldFailBecauseTheProductIsUnknown)
	ctx.Step(`^solving should fail because no solution exists$`, solveCtx.solvingShouldFailBecauseNoSolutionExists)
}
