package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/pi-planner/internal/domain/catalog"
)

func TestCatalog_TierCounts(t *testing.T) {
	products := catalog.New()

	assert.Len(t, products.FindByTier(catalog.TierP0), 15)
	assert.Len(t, products.FindByTier(catalog.TierP1), 15)
	assert.Len(t, products.FindByTier(catalog.TierP2), 21)
	assert.Len(t, products.FindByTier(catalog.TierP3), 21)
	assert.Len(t, products.FindByTier(catalog.TierP4), 8)
	assert.Len(t, products.All(), 80)
}

func TestCatalog_FindByName(t *testing.T) {
	products := catalog.New()

	water, ok := products.FindByName("water")
	require.True(t, ok)
	assert.Equal(t, catalog.TierP1, water.Tier)
	assert.Equal(t, []string{"aqueous_liquids"}, water.Ingredients)
	assert.False(t, water.IsRaw())

	raw, ok := products.FindByName("aqueous_liquids")
	require.True(t, ok)
	assert.Equal(t, catalog.TierP0, raw.Tier)
	assert.True(t, raw.IsRaw())

	_, ok = products.FindByName("unobtainium")
	assert.False(t, ok)
}

func TestCatalog_RecipeChains(t *testing.T) {
	products := catalog.New()

	coolant, ok := products.FindByName("coolant")
	require.True(t, ok)
	assert.Equal(t, catalog.TierP2, coolant.Tier)
	assert.ElementsMatch(t, []string{"water", "electrolytes"}, coolant.Ingredients)

	// The three extraction-bound P4 recipes each reach below P3
	sterileConduit, ok := products.FindByName("sterile_conduit")
	require.True(t, ok)
	assert.Contains(t, sterileConduit.Ingredients, "water")

	nanoFactory, ok := products.FindByName("nano_factory")
	require.True(t, ok)
	assert.Contains(t, nanoFactory.Ingredients, "reactive_metals")

	applicators, ok := products.FindByName("organic_mortar_applicators")
	require.True(t, ok)
	assert.Contains(t, applicators.Ingredients, "bacteria")
}

func TestCatalog_PlanetTypesFor(t *testing.T) {
	products := catalog.New()

	types, ok := products.PlanetTypesFor("aqueous_liquids")
	require.True(t, ok)
	assert.ElementsMatch(t, []catalog.PlanetType{catalog.PlanetOceanic, catalog.PlanetTemperate}, types)

	types, ok = products.PlanetTypesFor("felsic_magma")
	require.True(t, ok)
	assert.Equal(t, []catalog.PlanetType{catalog.PlanetLava}, types)

	// Processed products have no planet-type entry
	_, ok = products.PlanetTypesFor("water")
	assert.False(t, ok)
}

func TestCatalog_EveryRawMaterialHasASource(t *testing.T) {
	products := catalog.New()

	for _, raw := range products.FindByTier(catalog.TierP0) {
		types, ok := products.PlanetTypesFor(raw.Name)
		require.True(t, ok, "raw material %s has no resource table entry", raw.Name)
		assert.NotEmpty(t, types, "raw material %s has no supplying planet type", raw.Name)
	}
}

func TestCatalog_EveryIngredientExists(t *testing.T) {
	products := catalog.New()

	for _, product := range products.All() {
		for _, ingredient := range product.Ingredients {
			_, ok := products.FindByName(ingredient)
			assert.True(t, ok, "product %s references unknown ingredient %s", product.Name, ingredient)
		}
	}
}

func TestRequiresExtraction(t *testing.T) {
	assert.True(t, catalog.RequiresExtraction("nano_factory"))
	assert.True(t, catalog.RequiresExtraction("organic_mortar_applicators"))
	assert.True(t, catalog.RequiresExtraction("sterile_conduit"))
	assert.False(t, catalog.RequiresExtraction("broadcast_node"))
	assert.False(t, catalog.RequiresExtraction("water"))
}

func TestParsePlanetType(t *testing.T) {
	pt, err := catalog.ParsePlanetType("oceanic")
	require.NoError(t, err)
	assert.Equal(t, catalog.PlanetOceanic, pt)

	_, err = catalog.ParsePlanetType("molten")
	assert.Error(t, err)
}

func TestTier_String(t *testing.T) {
	assert.Equal(t, "P0", catalog.TierP0.String())
	assert.Equal(t, "P4", catalog.TierP4.String())
}

func TestNewFixture(t *testing.T) {
	fixture := catalog.NewFixture(
		[]catalog.Product{
			catalog.NewRawMaterial("ore"),
			catalog.NewProduct("ingot", catalog.TierP1, []string{"ore"}),
		},
		map[string][]catalog.PlanetType{
			"ore": {catalog.PlanetBarren},
		},
	)

	ingot, ok := fixture.FindByName("ingot")
	require.True(t, ok)
	assert.Equal(t, []string{"ore"}, ingot.Ingredients)

	types, ok := fixture.PlanetTypesFor("ore")
	require.True(t, ok)
	assert.Equal(t, []catalog.PlanetType{catalog.PlanetBarren}, types)
}
