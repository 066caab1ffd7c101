package persistence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/pi-planner/internal/adapters/persistence"
	"github.com/andrescamacho/pi-planner/internal/domain/catalog"
)

func TestLoadPlanetsJSON(t *testing.T) {
	data := []byte(`[
		{"id": "ocean-1", "planet_type": "Oceanic", "resources": ["aqueous_liquids"]},
		{"id": "lava-1", "planet_type": "Lava", "resources": []}
	]`)

	planets, err := persistence.LoadPlanetsJSON(data)

	require.NoError(t, err)
	require.Len(t, planets, 2)
	assert.Equal(t, "ocean-1", planets[0].ID)
	assert.Equal(t, catalog.PlanetOceanic, planets[0].Type)
	assert.Equal(t, []string{"aqueous_liquids"}, planets[0].Resources)
}

func TestLoadPlanetsJSON_UnknownPlanetType(t *testing.T) {
	data := []byte(`[{"id": "x", "planet_type": "Molten"}]`)

	_, err := persistence.LoadPlanetsJSON(data)

	var loadErr *persistence.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "planets", loadErr.Source)
}

func TestLoadPlanetsJSON_MissingID(t *testing.T) {
	data := []byte(`[{"planet_type": "Oceanic"}]`)

	_, err := persistence.LoadPlanetsJSON(data)

	var loadErr *persistence.LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadPlanetsJSON_Malformed(t *testing.T) {
	_, err := persistence.LoadPlanetsJSON([]byte(`{not json`))

	var loadErr *persistence.LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadOperatorsJSON_ExplicitCapacity(t *testing.T) {
	data := []byte(`[{"name": "alice", "planets": 3}]`)

	operators, err := persistence.LoadOperatorsJSON(data)

	require.NoError(t, err)
	require.Len(t, operators, 1)
	assert.Equal(t, "alice", operators[0].Name)
	assert.Equal(t, 3, operators[0].Capacity)
}

func TestLoadOperatorsJSON_ExplicitZeroCapacity(t *testing.T) {
	// An explicit zero stays zero; it must not fall back to the
	// skill-derived default.
	data := []byte(`[{"name": "alice", "planets": 0, "skills": {"interplanetary_consolidation": 4}}]`)

	operators, err := persistence.LoadOperatorsJSON(data)

	require.NoError(t, err)
	require.Len(t, operators, 1)
	assert.Equal(t, 0, operators[0].Capacity)
}

func TestLoadOperatorsJSON_CapacityFromSkills(t *testing.T) {
	data := []byte(`[
		{"name": "alice", "skills": {"interplanetary_consolidation": 2}},
		{"name": "bob", "skills": {}}
	]`)

	operators, err := persistence.LoadOperatorsJSON(data)

	require.NoError(t, err)
	require.Len(t, operators, 2)
	assert.Equal(t, 3, operators[0].Capacity)
	assert.Equal(t, 1, operators[1].Capacity)
}

func TestLoadOperatorsJSON_MissingName(t *testing.T) {
	data := []byte(`[{"planets": 2}]`)

	_, err := persistence.LoadOperatorsJSON(data)

	var loadErr *persistence.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "operators", loadErr.Source)
}

func TestLoadPlanetsFile_NotFound(t *testing.T) {
	_, err := persistence.LoadPlanetsFile("/does/not/exist.json")

	var loadErr *persistence.LoadError
	assert.ErrorAs(t, err, &loadErr)
}
