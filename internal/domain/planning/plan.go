package planning

import "github.com/andrescamacho/pi-planner/internal/domain/catalog"

// PlanetAssignment binds one planet and one operator to producing one
// product under one configuration for the duration of a plan.
type PlanetAssignment struct {
	Operator       string             `json:"operator"`
	Planet         string             `json:"planet"`
	PlanetType     catalog.PlanetType `json:"planet_type"`
	ImportedInputs []string           `json:"imported_inputs"`
	MinedInputs    []string           `json:"mined_inputs"`
	Output         string             `json:"output"`
}

// ProductionPlan is the ordered set of assignments realizing a target
// product and everything it transitively depends on.
//
// Invariants maintained by the solver: no planet appears twice, no
// operator exceeds its capacity, and every imported input of an
// assignment is the output of another assignment in the same plan.
type ProductionPlan struct {
	ID          string             `json:"id"`
	Target      string             `json:"target"`
	Assignments []PlanetAssignment `json:"assignments"`
}

// ProducerOf returns the assignment producing the named product, if any
func (p ProductionPlan) ProducerOf(product string) (PlanetAssignment, bool) {
	for _, a := range p.Assignments {
		if a.Output == product {
			return a, true
		}
	}
	return PlanetAssignment{}, false
}

// OperatorLoad counts assignments per operator name
func (p ProductionPlan) OperatorLoad() map[string]int {
	load := make(map[string]int)
	for _, a := range p.Assignments {
		load[a.Operator]++
	}
	return load
}
