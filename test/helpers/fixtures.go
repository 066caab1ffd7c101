package helpers

import (
	"context"
	"testing"

	"github.com/andrescamacho/pi-planner/internal/adapters/persistence"
	"github.com/andrescamacho/pi-planner/internal/domain/catalog"
	"github.com/andrescamacho/pi-planner/internal/domain/planning"
)

// NewPlanetRepository builds an in-memory planet repository seeded with
// the given planets
func NewPlanetRepository(t *testing.T, planets ...planning.Planet) *persistence.MemoryPlanetRepository {
	t.Helper()
	repo := persistence.NewMemoryPlanetRepository()
	for _, planet := range planets {
		if err := repo.Save(context.Background(), planet); err != nil {
			t.Fatalf("failed to seed planet %s: %v", planet.ID, err)
		}
	}
	return repo
}

// NewOperatorRepository builds an in-memory operator repository seeded
// with the given operators
func NewOperatorRepository(t *testing.T, operators ...planning.Operator) *persistence.MemoryOperatorRepository {
	t.Helper()
	repo := persistence.NewMemoryOperatorRepository()
	for _, operator := range operators {
		if err := repo.Save(context.Background(), operator); err != nil {
			t.Fatalf("failed to seed operator %s: %v", operator.Name, err)
		}
	}
	return repo
}

// Planet is a shorthand planet constructor for test rosters
func Planet(id string, planetType catalog.PlanetType) planning.Planet {
	return planning.NewPlanet(id, planetType, nil)
}

// Operator is a shorthand operator constructor for test rosters
func Operator(name string, capacity int) planning.Operator {
	return planning.NewOperator(name, capacity)
}
