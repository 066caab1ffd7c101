package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/pi-planner/internal/adapters/persistence"
	"github.com/andrescamacho/pi-planner/internal/domain/catalog"
	"github.com/andrescamacho/pi-planner/internal/domain/planning"
	"github.com/andrescamacho/pi-planner/test/helpers"
)

func TestPlanetRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlanetRepository(db)

	planet := planning.NewPlanet("ocean-1", catalog.PlanetOceanic, []string{"aqueous_liquids"})

	// Act - Save
	err := repo.Save(context.Background(), planet)

	// Assert
	require.NoError(t, err)

	// Act - FindByID
	found, err := repo.FindByID(context.Background(), "ocean-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, planet.ID, found.ID)
	assert.Equal(t, planet.Type, found.Type)
	assert.Equal(t, planet.Resources, found.Resources)
}

func TestPlanetRepository_SaveReplacesExisting(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlanetRepository(db)

	planet := planning.NewPlanet("ocean-1", catalog.PlanetOceanic, nil)
	require.NoError(t, repo.Save(context.Background(), planet))

	planet.Type = catalog.PlanetTemperate
	require.NoError(t, repo.Save(context.Background(), planet))

	found, err := repo.FindByID(context.Background(), "ocean-1")
	require.NoError(t, err)
	assert.Equal(t, catalog.PlanetTemperate, found.Type)

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPlanetRepository_FindAllOrdered(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlanetRepository(db)

	require.NoError(t, repo.Save(context.Background(), planning.NewPlanet("c", catalog.PlanetStorm, nil)))
	require.NoError(t, repo.Save(context.Background(), planning.NewPlanet("a", catalog.PlanetOceanic, nil)))
	require.NoError(t, repo.Save(context.Background(), planning.NewPlanet("b", catalog.PlanetLava, nil)))

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
	assert.Equal(t, "c", all[2].ID)
}

func TestPlanetRepository_Delete(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlanetRepository(db)

	require.NoError(t, repo.Save(context.Background(), planning.NewPlanet("ocean-1", catalog.PlanetOceanic, nil)))

	require.NoError(t, repo.Delete(context.Background(), "ocean-1"))

	_, err := repo.FindByID(context.Background(), "ocean-1")
	assert.Error(t, err)

	err = repo.Delete(context.Background(), "ocean-1")
	assert.Error(t, err)
}

func TestOperatorRepository_SaveAndFind(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormOperatorRepository(db)

	operator := planning.Operator{
		Name:     "alice",
		Capacity: 3,
		Skills:   planning.OperatorSkills{InterplanetaryConsolidation: 2},
	}

	require.NoError(t, repo.Save(context.Background(), operator))

	found, err := repo.FindByName(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, operator.Name, found.Name)
	assert.Equal(t, operator.Capacity, found.Capacity)
	assert.Equal(t, 2, found.Skills.InterplanetaryConsolidation)
}

func TestOperatorRepository_FindAllOrdered(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormOperatorRepository(db)

	require.NoError(t, repo.Save(context.Background(), planning.NewOperator("bob", 1)))
	require.NoError(t, repo.Save(context.Background(), planning.NewOperator("alice", 2)))

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "alice", all[0].Name)
	assert.Equal(t, "bob", all[1].Name)
}

func TestOperatorRepository_Delete(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormOperatorRepository(db)

	require.NoError(t, repo.Save(context.Background(), planning.NewOperator("alice", 1)))
	require.NoError(t, repo.Delete(context.Background(), "alice"))

	err := repo.Delete(context.Background(), "alice")
	assert.Error(t, err)
}
