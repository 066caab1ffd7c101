package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrescamacho/pi-planner/internal/domain/catalog"
	"github.com/andrescamacho/pi-planner/internal/domain/planning"
)

// GormPlanetRepository implements PlanetRepository using GORM
type GormPlanetRepository struct {
	db *gorm.DB
}

// NewGormPlanetRepository creates a new GORM planet repository
func NewGormPlanetRepository(db *gorm.DB) *GormPlanetRepository {
	return &GormPlanetRepository{db: db}
}

// Save persists a planet record, replacing any record with the same ID
func (r *GormPlanetRepository) Save(ctx context.Context, planet planning.Planet) error {
	model, err := planetToModel(planet)
	if err != nil {
		return fmt.Errorf("failed to convert planet to model: %w", err)
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save planet %s: %w", planet.ID, result.Error)
	}

	return nil
}

// FindByID retrieves a planet by ID
func (r *GormPlanetRepository) FindByID(ctx context.Context, id string) (planning.Planet, error) {
	var model PlanetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return planning.Planet{}, fmt.Errorf("planet not found: %s", id)
		}
		return planning.Planet{}, fmt.Errorf("failed to find planet: %w", result.Error)
	}

	return modelToPlanet(&model)
}

// FindAll retrieves every planet, ordered by ID
func (r *GormPlanetRepository) FindAll(ctx context.Context) ([]planning.Planet, error) {
	var models []PlanetModel
	result := r.db.WithContext(ctx).Order("id").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list planets: %w", result.Error)
	}

	planets := make([]planning.Planet, 0, len(models))
	for i := range models {
		planet, err := modelToPlanet(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert planet %s: %w", models[i].ID, err)
		}
		planets = append(planets, planet)
	}

	return planets, nil
}

// Delete removes a planet record
func (r *GormPlanetRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&PlanetModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete planet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("planet not found: %s", id)
	}
	return nil
}

func planetToModel(planet planning.Planet) (*PlanetModel, error) {
	resources, err := json.Marshal(planet.Resources)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resources: %w", err)
	}

	return &PlanetModel{
		ID:         planet.ID,
		PlanetType: string(planet.Type),
		Resources:  string(resources),
	}, nil
}

func modelToPlanet(model *PlanetModel) (planning.Planet, error) {
	planetType, err := catalog.ParsePlanetType(model.PlanetType)
	if err != nil {
		return planning.Planet{}, err
	}

	var resources []string
	if model.Resources != "" {
		if err := json.Unmarshal([]byte(model.Resources), &resources); err != nil {
			return planning.Planet{}, fmt.Errorf("failed to unmarshal resources: %w", err)
		}
	}

	return planning.NewPlanet(model.ID, planetType, resources), nil
}
