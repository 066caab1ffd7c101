package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/pi-planner/internal/application/common"
	"github.com/andrescamacho/pi-planner/internal/application/planning/services"
	"github.com/andrescamacho/pi-planner/internal/domain/catalog"
	"github.com/andrescamacho/pi-planner/internal/domain/planning"
)

// ListConfigurationsQuery requests every valid factory configuration
// for a product on a planet type. An empty result is not an error; it
// means the product cannot be produced on that planet type.
type ListConfigurationsQuery struct {
	PlanetType    string
	TargetProduct string
}

// ListConfigurationsResponse carries the enumerated configurations
type ListConfigurationsResponse struct {
	Configurations []planning.FactoryConfiguration
}

// ListConfigurationsHandler handles the ListConfigurations query
type ListConfigurationsHandler struct {
	resolver *services.ConfigurationResolver
}

// NewListConfigurationsHandler creates a new ListConfigurationsHandler
func NewListConfigurationsHandler(resolver *services.ConfigurationResolver) *ListConfigurationsHandler {
	return &ListConfigurationsHandler{resolver: resolver}
}

// Handle executes the ListConfigurations query
func (h *ListConfigurationsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ListConfigurationsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListConfigurationsQuery")
	}

	planetType, err := catalog.ParsePlanetType(query.PlanetType)
	if err != nil {
		return nil, err
	}
	if query.TargetProduct == "" {
		return nil, fmt.Errorf("target product must be provided")
	}

	configs := h.resolver.FindValidConfigurations(planetType, query.TargetProduct)
	return &ListConfigurationsResponse{Configurations: configs}, nil
}
