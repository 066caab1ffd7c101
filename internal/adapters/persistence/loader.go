package persistence

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/andrescamacho/pi-planner/internal/domain/planning"
)

// LoadError is the error kind for malformed external planet/operator
// data. It is raised at load time only and never surfaces from a solve.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// operatorRecord is the external operator representation. Capacity is a
// pointer so an omitted field can fall back to the skill-derived value
// while an explicit zero stays zero.
type operatorRecord struct {
	Name     string                  `json:"name" validate:"required"`
	Capacity *int                    `json:"planets" validate:"omitempty,min=0"`
	Skills   planning.OperatorSkills `json:"skills"`
}

// LoadPlanetsJSON parses planet records from JSON and validates each
// record before returning it
func LoadPlanetsJSON(data []byte) ([]planning.Planet, error) {
	var planets []planning.Planet
	if err := json.Unmarshal(data, &planets); err != nil {
		return nil, &LoadError{Source: "planets", Err: err}
	}

	validate := validator.New()
	for _, planet := range planets {
		if err := validate.Struct(planet); err != nil {
			return nil, &LoadError{Source: "planets", Err: err}
		}
		if !planet.Type.Valid() {
			return nil, &LoadError{
				Source: "planets",
				Err:    fmt.Errorf("planet %s has unknown planet type %q", planet.ID, planet.Type),
			}
		}
	}

	return planets, nil
}

// LoadOperatorsJSON parses operator records from JSON. Records without
// an explicit capacity get the capacity their skill block grants.
func LoadOperatorsJSON(data []byte) ([]planning.Operator, error) {
	var records []operatorRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &LoadError{Source: "operators", Err: err}
	}

	validate := validator.New()
	operators := make([]planning.Operator, 0, len(records))
	for _, record := range records {
		if err := validate.Struct(record); err != nil {
			return nil, &LoadError{Source: "operators", Err: err}
		}

		capacity := record.Skills.DefaultCapacity()
		if record.Capacity != nil {
			capacity = *record.Capacity
		}

		operators = append(operators, planning.Operator{
			Name:     record.Name,
			Capacity: capacity,
			Skills:   record.Skills,
		})
	}

	return operators, nil
}

// LoadPlanetsFile reads and parses a planets JSON file
func LoadPlanetsFile(path string) ([]planning.Planet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: "planets", Err: err}
	}
	return LoadPlanetsJSON(data)
}

// LoadOperatorsFile reads and parses an operators JSON file
func LoadOperatorsFile(path string) ([]planning.Operator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: "operators", Err: err}
	}
	return LoadOperatorsJSON(data)
}
