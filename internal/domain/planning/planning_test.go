package planning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/pi-planner/internal/domain/catalog"
	"github.com/andrescamacho/pi-planner/internal/domain/planning"
)

func TestProductionPlan_ProducerOf(t *testing.T) {
	plan := planning.ProductionPlan{
		Target: "coolant",
		Assignments: []planning.PlanetAssignment{
			{Operator: "alice", Planet: "ocean-1", Output: "water"},
			{Operator: "alice", Planet: "barren-1", Output: "coolant"},
		},
	}

	producer, ok := plan.ProducerOf("water")
	require.True(t, ok)
	assert.Equal(t, "ocean-1", producer.Planet)

	_, ok = plan.ProducerOf("electrolytes")
	assert.False(t, ok)
}

func TestProductionPlan_OperatorLoad(t *testing.T) {
	plan := planning.ProductionPlan{
		Assignments: []planning.PlanetAssignment{
			{Operator: "alice", Planet: "a", Output: "water"},
			{Operator: "alice", Planet: "b", Output: "electrolytes"},
			{Operator: "bob", Planet: "c", Output: "coolant"},
		},
	}

	load := plan.OperatorLoad()
	assert.Equal(t, 2, load["alice"])
	assert.Equal(t, 1, load["bob"])
}

func TestFactoryConfiguration_Accessors(t *testing.T) {
	config := planning.FactoryConfiguration{
		StartTier:      catalog.TierP1,
		EndTier:        catalog.TierP2,
		ImportedInputs: []string{"water", "electrolytes"},
		Outputs:        []string{"coolant"},
	}

	assert.Equal(t, "coolant", config.Output())
	assert.True(t, config.Imports())
	assert.False(t, config.Mines())

	assert.Equal(t, "", planning.FactoryConfiguration{}.Output())
}

func TestOperatorSkills_DefaultCapacity(t *testing.T) {
	assert.Equal(t, 1, planning.OperatorSkills{}.DefaultCapacity())
	assert.Equal(t, 4, planning.OperatorSkills{InterplanetaryConsolidation: 3}.DefaultCapacity())
}

func TestErrorMessages(t *testing.T) {
	assert.EqualError(t,
		&planning.ErrProductNotFound{Product: "unobtainium"},
		"product not found: unobtainium")

	assert.EqualError(t,
		&planning.ErrInvalidProductTier{Product: "water", Expected: catalog.TierP2, Actual: catalog.TierP1},
		"product water has incorrect tier: expected P2, got P1")

	assert.EqualError(t,
		&planning.ErrMissingIngredients{Product: "coolant", Missing: []string{"electrolytes", "water"}},
		"product coolant is missing ingredients: electrolytes, water")

	assert.EqualError(t,
		&planning.ErrPlanetCannotMine{PlanetType: catalog.PlanetLava, Resource: "aqueous_liquids"},
		"planet type Lava cannot mine resource aqueous_liquids")

	assert.EqualError(t,
		&planning.ErrNoSolutionFound{Product: "coolant"},
		"no solution found for coolant")
}
