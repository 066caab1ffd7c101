package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/pi-planner/internal/application/common"
	"github.com/andrescamacho/pi-planner/internal/application/planning/queries"
	"github.com/andrescamacho/pi-planner/internal/application/planning/services"
	"github.com/andrescamacho/pi-planner/internal/domain/catalog"
	"github.com/andrescamacho/pi-planner/test/helpers"
)

func newMediator(t *testing.T) common.Mediator {
	t.Helper()

	products := catalog.New()
	planets := helpers.NewPlanetRepository(t, helpers.Planet("ocean-1", catalog.PlanetOceanic))
	operators := helpers.NewOperatorRepository(t, helpers.Operator("alice", 1))

	med := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*queries.SolvePlanQuery](med,
		queries.NewSolvePlanHandler(services.NewPlanSolver(products, planets, operators))))
	require.NoError(t, common.RegisterHandler[*queries.ListConfigurationsQuery](med,
		queries.NewListConfigurationsHandler(services.NewConfigurationResolver(products))))
	return med
}

func TestSolvePlanQuery(t *testing.T) {
	med := newMediator(t)

	response, err := med.Send(context.Background(), &queries.SolvePlanQuery{TargetProduct: "water"})

	require.NoError(t, err)
	result, ok := response.(*queries.SolvePlanResponse)
	require.True(t, ok)
	assert.Equal(t, "water", result.Plan.Target)
	assert.Len(t, result.Plan.Assignments, 1)
}

func TestSolvePlanQuery_EmptyTarget(t *testing.T) {
	med := newMediator(t)

	_, err := med.Send(context.Background(), &queries.SolvePlanQuery{})

	assert.Error(t, err)
}

func TestListConfigurationsQuery(t *testing.T) {
	med := newMediator(t)

	response, err := med.Send(context.Background(), &queries.ListConfigurationsQuery{
		PlanetType:    "oceanic",
		TargetProduct: "water",
	})

	require.NoError(t, err)
	result, ok := response.(*queries.ListConfigurationsResponse)
	require.True(t, ok)
	require.Len(t, result.Configurations, 1)
	assert.Equal(t, []string{"water"}, result.Configurations[0].Outputs)
}

func TestListConfigurationsQuery_UnknownPlanetType(t *testing.T) {
	med := newMediator(t)

	_, err := med.Send(context.Background(), &queries.ListConfigurationsQuery{
		PlanetType:    "molten",
		TargetProduct: "water",
	})

	assert.Error(t, err)
}
