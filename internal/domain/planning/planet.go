package planning

import "github.com/andrescamacho/pi-planner/internal/domain/catalog"

// Planet is a production site available to the solver. The Resources
// list records what surveys found on the planet itself; mining validity
// is decided by the catalog's resource table keyed on Type, so the list
// is informational only.
type Planet struct {
	ID        string             `json:"id" validate:"required"`
	Type      catalog.PlanetType `json:"planet_type" validate:"required"`
	Resources []string           `json:"resources"`
}

// NewPlanet creates a planet record
func NewPlanet(id string, planetType catalog.PlanetType, resources []string) Planet {
	return Planet{
		ID:        id,
		Type:      planetType,
		Resources: resources,
	}
}
