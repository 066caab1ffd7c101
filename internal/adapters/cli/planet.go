package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/pi-planner/internal/adapters/persistence"
	"github.com/andrescamacho/pi-planner/internal/domain/catalog"
	"github.com/andrescamacho/pi-planner/internal/domain/planning"
)

// NewPlanetCommand creates the planet command with subcommands
func NewPlanetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planet",
		Short: "Manage the planet roster",
		Long: `Manage the roster of planets available to the plan solver.

Examples:
  pi-planner planet add my-ocean oceanic
  pi-planner planet add my-lava lava --resources base_metals,felsic_magma
  pi-planner planet list
  pi-planner planet remove my-ocean
  pi-planner planet import planets.json`,
	}

	cmd.AddCommand(newPlanetAddCommand())
	cmd.AddCommand(newPlanetListCommand())
	cmd.AddCommand(newPlanetRemoveCommand())
	cmd.AddCommand(newPlanetImportCommand())

	return cmd
}

// newPlanetAddCommand creates the planet add subcommand
func newPlanetAddCommand() *cobra.Command {
	var resources []string

	cmd := &cobra.Command{
		Use:   "add <id> <type>",
		Short: "Add a planet to the roster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			planetType, err := catalog.ParsePlanetType(args[1])
			if err != nil {
				return err
			}

			application, err := newApp("", "")
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			planet := planning.NewPlanet(id, planetType, resources)
			if err := application.planets.Save(ctx, planet); err != nil {
				return fmt.Errorf("failed to save planet: %w", err)
			}

			fmt.Printf("✓ Planet %s added (%s)\n", id, planetType)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&resources, "resources", nil,
		"Resources present on the planet (informational)")

	return cmd
}

// newPlanetListCommand creates the planet list subcommand
func newPlanetListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all planets in the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp("", "")
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			planets, err := application.planets.FindAll(ctx)
			if err != nil {
				return fmt.Errorf("failed to list planets: %w", err)
			}

			if len(planets) == 0 {
				fmt.Println("no planets registered")
				return nil
			}

			for _, planet := range planets {
				if len(planet.Resources) > 0 {
					fmt.Printf("  %-24s %-10s %s\n",
						planet.ID, planet.Type, strings.Join(planet.Resources, ", "))
					continue
				}
				fmt.Printf("  %-24s %s\n", planet.ID, planet.Type)
			}
			fmt.Printf("\n%d planets\n", len(planets))

			return nil
		},
	}
}

// newPlanetRemoveCommand creates the planet remove subcommand
func newPlanetRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a planet from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			application, err := newApp("", "")
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := application.planets.Delete(ctx, id); err != nil {
				return fmt.Errorf("failed to remove planet: %w", err)
			}

			fmt.Printf("✓ Planet %s removed\n", id)
			return nil
		},
	}
}

// newPlanetImportCommand creates the planet import subcommand
func newPlanetImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import planets from a JSON file into the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planets, err := persistence.LoadPlanetsFile(args[0])
			if err != nil {
				return err
			}

			application, err := newApp("", "")
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			for _, planet := range planets {
				if err := application.planets.Save(ctx, planet); err != nil {
					return fmt.Errorf("failed to save planet %s: %w", planet.ID, err)
				}
			}

			fmt.Printf("✓ Imported %d planets\n", len(planets))
			return nil
		},
	}
}
