package persistence

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/andrescamacho/pi-planner/internal/domain/planning"
)

// MemoryPlanetRepository is an in-memory PlanetRepository. It backs
// one-shot solves fed from JSON files and keeps tests free of database
// setup.
type MemoryPlanetRepository struct {
	mu      sync.RWMutex
	planets map[string]planning.Planet
}

// NewMemoryPlanetRepository creates an empty in-memory planet repository
func NewMemoryPlanetRepository() *MemoryPlanetRepository {
	return &MemoryPlanetRepository{planets: make(map[string]planning.Planet)}
}

// Save persists a planet record, replacing any record with the same ID
func (r *MemoryPlanetRepository) Save(ctx context.Context, planet planning.Planet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.planets[planet.ID] = planet
	return nil
}

// FindByID retrieves a planet by ID
func (r *MemoryPlanetRepository) FindByID(ctx context.Context, id string) (planning.Planet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	planet, ok := r.planets[id]
	if !ok {
		return planning.Planet{}, fmt.Errorf("planet not found: %s", id)
	}
	return planet, nil
}

// FindAll retrieves every planet, ordered by ID
func (r *MemoryPlanetRepository) FindAll(ctx context.Context) ([]planning.Planet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]planning.Planet, 0, len(r.planets))
	for _, planet := range r.planets {
		out = append(out, planet)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Delete removes a planet record
func (r *MemoryPlanetRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.planets[id]; !ok {
		return fmt.Errorf("planet not found: %s", id)
	}
	delete(r.planets, id)
	return nil
}

// MemoryOperatorRepository is an in-memory OperatorRepository
type MemoryOperatorRepository struct {
	mu        sync.RWMutex
	operators map[string]planning.Operator
}

// NewMemoryOperatorRepository creates an empty in-memory operator repository
func NewMemoryOperatorRepository() *MemoryOperatorRepository {
	return &MemoryOperatorRepository{operators: make(map[string]planning.Operator)}
}

// Save persists an operator record, replacing any record with the same name
func (r *MemoryOperatorRepository) Save(ctx context.Context, operator planning.Operator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operators[operator.Name] = operator
	return nil
}

// FindByName retrieves an operator by name
func (r *MemoryOperatorRepository) FindByName(ctx context.Context, name string) (planning.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	operator, ok := r.operators[name]
	if !ok {
		return planning.Operator{}, fmt.Errorf("operator not found: %s", name)
	}
	return operator, nil
}

// FindAll retrieves every operator, ordered by name
func (r *MemoryOperatorRepository) FindAll(ctx context.Context) ([]planning.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]planning.Operator, 0, len(r.operators))
	for _, operator := range r.operators {
		out = append(out, operator)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete removes an operator record
func (r *MemoryOperatorRepository) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.operators[name]; !ok {
		return fmt.Errorf("operator not found: %s", name)
	}
	delete(r.operators, name)
	return nil
}
