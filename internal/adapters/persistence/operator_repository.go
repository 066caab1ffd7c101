package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrescamacho/pi-planner/internal/domain/planning"
)

// GormOperatorRepository implements OperatorRepository using GORM
type GormOperatorRepository struct {
	db *gorm.DB
}

// NewGormOperatorRepository creates a new GORM operator repository
func NewGormOperatorRepository(db *gorm.DB) *GormOperatorRepository {
	return &GormOperatorRepository{db: db}
}

// Save persists an operator record, replacing any record with the same name
func (r *GormOperatorRepository) Save(ctx context.Context, operator planning.Operator) error {
	skills, err := json.Marshal(operator.Skills)
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}

	model := &OperatorModel{
		Name:     operator.Name,
		Capacity: operator.Capacity,
		Skills:   string(skills),
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save operator %s: %w", operator.Name, result.Error)
	}

	return nil
}

// FindByName retrieves an operator by name
func (r *GormOperatorRepository) FindByName(ctx context.Context, name string) (planning.Operator, error) {
	var model OperatorModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return planning.Operator{}, fmt.Errorf("operator not found: %s", name)
		}
		return planning.Operator{}, fmt.Errorf("failed to find operator: %w", result.Error)
	}

	return modelToOperator(&model)
}

// FindAll retrieves every operator, ordered by name
func (r *GormOperatorRepository) FindAll(ctx context.Context) ([]planning.Operator, error) {
	var models []OperatorModel
	result := r.db.WithContext(ctx).Order("name").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list operators: %w", result.Error)
	}

	operators := make([]planning.Operator, 0, len(models))
	for i := range models {
		operator, err := modelToOperator(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert operator %s: %w", models[i].Name, err)
		}
		operators = append(operators, operator)
	}

	return operators, nil
}

// Delete removes an operator record
func (r *GormOperatorRepository) Delete(ctx context.Context, name string) error {
	result := r.db.WithContext(ctx).Where("name = ?", name).Delete(&OperatorModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete operator: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("operator not found: %s", name)
	}
	return nil
}

func modelToOperator(model *OperatorModel) (planning.Operator, error) {
	var skills planning.OperatorSkills
	if model.Skills != "" {
		if err := json.Unmarshal([]byte(model.Skills), &skills); err != nil {
			return planning.Operator{}, fmt.Errorf("failed to unmarshal skills: %w", err)
		}
	}

	return planning.Operator{
		Name:     model.Name,
		Capacity: model.Capacity,
		Skills:   skills,
	}, nil
}
