package planning

import "context"

// PlanetRepository defines access to the planet inventory
type PlanetRepository interface {
	// Save persists a planet record, replacing any record with the same ID
	Save(ctx context.Context, planet Planet) error

	// FindByID retrieves a planet by ID
	FindByID(ctx context.Context, id string) (Planet, error)

	// FindAll retrieves every planet, ordered by ID
	FindAll(ctx context.Context) ([]Planet, error)

	// Delete removes a planet record
	Delete(ctx context.Context, id string) error
}

// OperatorRepository defines access to the operator roster
type OperatorRepository interface {
	// Save persists an operator record, replacing any record with the same name
	Save(ctx context.Context, operator Operator) error

	// FindByName retrieves an operator by name
	FindByName(ctx context.Context, name string) (Operator, error)

	// FindAll retrieves every operator, ordered by name
	FindAll(ctx context.Context) ([]Operator, error)

	// Delete removes an operator record
	Delete(ctx context.Context, name string) error
}
