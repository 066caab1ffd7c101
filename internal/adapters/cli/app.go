package cli

import (
	"context"
	"fmt"
	"reflect"

	"github.com/andrescamacho/pi-planner/internal/adapters/metrics"
	"github.com/andrescamacho/pi-planner/internal/adapters/persistence"
	"github.com/andrescamacho/pi-planner/internal/application/common"
	"github.com/andrescamacho/pi-planner/internal/application/planning/queries"
	"github.com/andrescamacho/pi-planner/internal/application/planning/services"
	"github.com/andrescamacho/pi-planner/internal/domain/catalog"
	"github.com/andrescamacho/pi-planner/internal/domain/planning"
	"github.com/andrescamacho/pi-planner/internal/infrastructure/config"
	"github.com/andrescamacho/pi-planner/internal/infrastructure/database"
)

// app bundles the wired application services a command needs
type app struct {
	cfg       *config.Config
	catalog   *catalog.Catalog
	planets   planning.PlanetRepository
	operators planning.OperatorRepository
	solver    *services.PlanSolver
	resolver  *services.ConfigurationResolver
	mediator  common.Mediator
}

// newApp wires repositories, solver and mediator. When planetsFile or
// operatorsFile is set, that side comes from the JSON file through an
// in-memory repository instead of the database; the database is only
// opened when at least one side still needs it.
func newApp(planetsFile, operatorsFile string) (*app, error) {
	cfg := config.LoadConfigOrDefault(configPath)

	products := catalog.New()

	var planets planning.PlanetRepository
	var operators planning.OperatorRepository

	if planetsFile != "" {
		repo := persistence.NewMemoryPlanetRepository()
		records, err := persistence.LoadPlanetsFile(planetsFile)
		if err != nil {
			return nil, err
		}
		for _, planet := range records {
			if err := repo.Save(context.Background(), planet); err != nil {
				return nil, err
			}
		}
		planets = repo
	}

	if operatorsFile != "" {
		repo := persistence.NewMemoryOperatorRepository()
		records, err := persistence.LoadOperatorsFile(operatorsFile)
		if err != nil {
			return nil, err
		}
		for _, operator := range records {
			if err := repo.Save(context.Background(), operator); err != nil {
				return nil, err
			}
		}
		operators = repo
	}

	if planets == nil || operators == nil {
		db, err := database.NewConnection(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		if planets == nil {
			planets = persistence.NewGormPlanetRepository(db)
		}
		if operators == nil {
			operators = persistence.NewGormOperatorRepository(db)
		}
	}

	solver := services.NewPlanSolver(products, planets, operators)
	resolver := services.NewConfigurationResolver(products)

	med := common.NewMediator()

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()

		solverCollector := metrics.NewSolverMetricsCollector()
		if err := solverCollector.Register(); err != nil {
			return nil, fmt.Errorf("failed to register solver metrics: %w", err)
		}
		solver = services.NewPlanSolverWithMetrics(products, planets, operators, solverCollector)

		queryCollector := metrics.NewQueryMetricsCollector()
		if err := queryCollector.Register(); err != nil {
			return nil, fmt.Errorf("failed to register query metrics: %w", err)
		}
		med.Use(metrics.PrometheusMiddleware(queryCollector))

		metrics.StartServer(&cfg.Metrics)
	}

	if err := registerHandlers(med, solver, resolver); err != nil {
		return nil, err
	}

	return &app{
		cfg:       cfg,
		catalog:   products,
		planets:   planets,
		operators: operators,
		solver:    solver,
		resolver:  resolver,
		mediator:  med,
	}, nil
}

func registerHandlers(med common.Mediator, solver *services.PlanSolver, resolver *services.ConfigurationResolver) error {
	handlers := map[reflect.Type]common.RequestHandler{
		reflect.TypeOf(&queries.SolvePlanQuery{}):          queries.NewSolvePlanHandler(solver),
		reflect.TypeOf(&queries.ListConfigurationsQuery{}): queries.NewListConfigurationsHandler(resolver),
	}

	for requestType, handler := range handlers {
		if err := med.Register(requestType, handler); err != nil {
			return fmt.Errorf("failed to register handler for %s: %w", requestType, err)
		}
	}

	return nil
}
