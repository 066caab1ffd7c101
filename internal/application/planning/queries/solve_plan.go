package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/pi-planner/internal/application/common"
	"github.com/andrescamacho/pi-planner/internal/application/planning/services"
	"github.com/andrescamacho/pi-planner/internal/domain/planning"
)

// SolvePlanQuery requests a production plan for a target product
type SolvePlanQuery struct {
	TargetProduct string
}

// SolvePlanResponse carries the computed plan
type SolvePlanResponse struct {
	Plan planning.ProductionPlan
}

// SolvePlanHandler handles the SolvePlan query
type SolvePlanHandler struct {
	solver *services.PlanSolver
}

// NewSolvePlanHandler creates a new SolvePlanHandler
func NewSolvePlanHandler(solver *services.PlanSolver) *SolvePlanHandler {
	return &SolvePlanHandler{solver: solver}
}

// Handle executes the SolvePlan query
func (h *SolvePlanHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*SolvePlanQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SolvePlanQuery")
	}

	if query.TargetProduct == "" {
		return nil, fmt.Errorf("target product must be provided")
	}

	plan, err := h.solver.Solve(ctx, query.TargetProduct)
	if err != nil {
		return nil, err
	}

	return &SolvePlanResponse{Plan: plan}, nil
}
