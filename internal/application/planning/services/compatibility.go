package services

import (
	"github.com/andrescamacho/pi-planner/internal/domain/catalog"
	"github.com/andrescamacho/pi-planner/internal/domain/planning"
)

// CheckPlanetCompatibility decides whether a planet type can supply
// every listed raw resource. It consults the catalog's resource table
// only; a planet's own declared resource list plays no part. Pure
// function, no state.
func CheckPlanetCompatibility(
	products catalog.ProductRepository,
	planetType catalog.PlanetType,
	resources []string,
) error {
	for _, resource := range resources {
		validTypes, ok := products.PlanetTypesFor(resource)
		if !ok {
			return &planning.ErrProductNotFound{Product: resource}
		}

		supported := false
		for _, t := range validTypes {
			if t == planetType {
				supported = true
				break
			}
		}
		if !supported {
			return &planning.ErrPlanetCannotMine{
				PlanetType: planetType,
				Resource:   resource,
			}
		}
	}

	return nil
}
