package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/pi-planner/internal/application/planning/services"
	"github.com/andrescamacho/pi-planner/internal/domain/catalog"
	"github.com/andrescamacho/pi-planner/internal/domain/planning"
)

func newResolver() *services.ConfigurationResolver {
	return services.NewConfigurationResolver(catalog.New())
}

func TestFindValidConfigurations_P1DirectExtraction(t *testing.T) {
	resolver := newResolver()

	configs := resolver.FindValidConfigurations(catalog.PlanetOceanic, "water")

	require.Len(t, configs, 1)
	config := configs[0]
	assert.Equal(t, catalog.TierP0, config.StartTier)
	assert.Equal(t, catalog.TierP1, config.EndTier)
	assert.Equal(t, []string{"aqueous_liquids"}, config.MinedInputs)
	assert.Empty(t, config.ImportedInputs)
	assert.Equal(t, []string{"water"}, config.Outputs)
}

func TestFindValidConfigurations_P1WrongPlanetType(t *testing.T) {
	resolver := newResolver()

	// Lava planets supply no aqueous_liquids
	configs := resolver.FindValidConfigurations(catalog.PlanetLava, "water")

	assert.Empty(t, configs)
}

func TestFindValidConfigurations_P2ImportStrategy(t *testing.T) {
	resolver := newResolver()

	// No planet type supplies both aqueous_liquids and ionic_solutions,
	// so only the import strategy remains for coolant.
	configs := resolver.FindValidConfigurations(catalog.PlanetBarren, "coolant")

	require.Len(t, configs, 1)
	config := configs[0]
	assert.Equal(t, catalog.TierP1, config.StartTier)
	assert.Equal(t, catalog.TierP2, config.EndTier)
	assert.ElementsMatch(t, []string{"water", "electrolytes"}, config.ImportedInputs)
	assert.Empty(t, config.MinedInputs)
}

func TestFindValidConfigurations_P2SelfSufficient(t *testing.T) {
	resolver := newResolver()

	// Gas planets supply both ionic_solutions and suspended_plasma, so
	// rocket_fuel resolves to the self-sufficient strategy plus the
	// import strategy, in priority order.
	configs := resolver.FindValidConfigurations(catalog.PlanetGas, "rocket_fuel")

	require.Len(t, configs, 2)

	selfSufficient := configs[0]
	assert.Equal(t, catalog.TierP0, selfSufficient.StartTier)
	assert.Equal(t, catalog.TierP2, selfSufficient.EndTier)
	assert.ElementsMatch(t, []string{"ionic_solutions", "suspended_plasma"}, selfSufficient.MinedInputs)
	assert.Empty(t, selfSufficient.ImportedInputs)

	importing := configs[1]
	assert.Equal(t, catalog.TierP1, importing.StartTier)
	assert.ElementsMatch(t, []string{"electrolytes", "plasmoids"}, importing.ImportedInputs)
	assert.Empty(t, importing.MinedInputs)
}

func TestFindValidConfigurations_P4WithoutExtraction(t *testing.T) {
	resolver := newResolver()

	configs := resolver.FindValidConfigurations(catalog.PlanetBarren, "broadcast_node")

	require.Len(t, configs, 1)
	config := configs[0]
	assert.Equal(t, catalog.TierP2, config.StartTier)
	assert.Equal(t, catalog.TierP4, config.EndTier)
	assert.ElementsMatch(t,
		[]string{"neocoms", "data_chips", "high_tech_transmitters"},
		config.ImportedInputs)
	assert.Empty(t, config.MinedInputs)
}

func TestFindValidConfigurations_P4WithExtraction(t *testing.T) {
	resolver := newResolver()

	// sterile_conduit is extraction-bound. Its collected ingredient
	// chain contains the P1 water, whose raw aqueous_liquids becomes
	// the mined pick on planets supplying it.
	configs := resolver.FindValidConfigurations(catalog.PlanetOceanic, "sterile_conduit")

	require.Len(t, configs, 1)
	config := configs[0]
	assert.Equal(t, catalog.TierP2, config.StartTier)
	assert.Equal(t, catalog.TierP4, config.EndTier)
	require.Len(t, config.MinedInputs, 1)
	assert.NotContains(t, config.ImportedInputs, config.MinedInputs[0])
	assert.True(t, config.Mines())
	assert.True(t, config.Imports())
}

func TestFindValidConfigurations_P4WithExtractionDeterministic(t *testing.T) {
	resolver := newResolver()

	first := resolver.FindValidConfigurations(catalog.PlanetOceanic, "sterile_conduit")
	second := resolver.FindValidConfigurations(catalog.PlanetOceanic, "sterile_conduit")

	assert.Equal(t, first, second)
}

func TestFindValidConfigurations_ExtractionBoundNeedsCompatiblePlanet(t *testing.T) {
	resolver := newResolver()

	oceanic := resolver.FindValidConfigurations(catalog.PlanetOceanic, "sterile_conduit")
	require.NotEmpty(t, oceanic)
	mined := oceanic[0].MinedInputs[0]

	types, ok := catalog.New().PlanetTypesFor(mined)
	require.True(t, ok)
	for _, pt := range types {
		assert.NotEqual(t, catalog.PlanetIce, pt,
			"test assumes Ice does not supply %s", mined)
	}

	ice := resolver.FindValidConfigurations(catalog.PlanetIce, "sterile_conduit")
	assert.Empty(t, ice)
}

func TestFindValidConfigurations_UnknownProduct(t *testing.T) {
	resolver := newResolver()

	configs := resolver.FindValidConfigurations(catalog.PlanetOceanic, "unobtainium")

	assert.Empty(t, configs)
}

func TestFindValidConfigurations_P3HasNoStrategy(t *testing.T) {
	resolver := newResolver()

	// No strategy spans into P3 outputs, matching the production chain
	// where P3 commodities are never planet-built in isolation.
	configs := resolver.FindValidConfigurations(catalog.PlanetOceanic, "robotics")

	assert.Empty(t, configs)
}

func TestFindValidConfigurations_PriorityOrder(t *testing.T) {
	resolver := newResolver()

	configs := resolver.FindValidConfigurations(catalog.PlanetGas, "rocket_fuel")
	require.Len(t, configs, 2)

	// Self-sufficient P0->P2 outranks the P1->P2 import strategy
	assert.Equal(t, catalog.TierP0, configs[0].StartTier)
	assert.Equal(t, catalog.TierP1, configs[1].StartTier)
}

func TestCheckPlanetCompatibility(t *testing.T) {
	products := catalog.New()

	err := services.CheckPlanetCompatibility(products, catalog.PlanetOceanic, []string{"aqueous_liquids"})
	assert.NoError(t, err)

	err = services.CheckPlanetCompatibility(products, catalog.PlanetLava, []string{"aqueous_liquids"})
	var cannotMine *planning.ErrPlanetCannotMine
	require.ErrorAs(t, err, &cannotMine)
	assert.Equal(t, catalog.PlanetLava, cannotMine.PlanetType)
	assert.Equal(t, "aqueous_liquids", cannotMine.Resource)

	err = services.CheckPlanetCompatibility(products, catalog.PlanetLava, []string{"unobtainium"})
	var notFound *planning.ErrProductNotFound
	assert.ErrorAs(t, err, &notFound)

	// Empty resource list is trivially compatible
	err = services.CheckPlanetCompatibility(products, catalog.PlanetLava, nil)
	assert.NoError(t, err)
}

func TestCheckPlanetCompatibility_ExactTableMatch(t *testing.T) {
	products := catalog.New()

	for _, raw := range products.FindByTier(catalog.TierP0) {
		types, ok := products.PlanetTypesFor(raw.Name)
		require.True(t, ok)

		supported := make(map[catalog.PlanetType]bool, len(types))
		for _, pt := range types {
			supported[pt] = true
		}

		for _, pt := range catalog.AllPlanetTypes {
			err := services.CheckPlanetCompatibility(products, pt, []string{raw.Name})
			if supported[pt] {
				assert.NoError(t, err, "%s should be minable on %s", raw.Name, pt)
			} else {
				assert.Error(t, err, "%s should not be minable on %s", raw.Name, pt)
			}
		}
	}
}
