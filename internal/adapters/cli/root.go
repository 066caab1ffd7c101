package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pi-planner",
		Short: "PI Planner - plan tiered planetary production chains",
		Long: `PI Planner resolves factory configurations and solves full production
plans for tiered planetary-industry manufacturing chains. Given a target
product, a set of planets, and the operators that run them, it assigns one
factory per planet so that every intermediate product the target needs is
produced somewhere.

Examples:
  pi-planner plan coolant --planets planets.json --operators operators.json
  pi-planner catalog products --tier 2
  pi-planner catalog configs oceanic water
  pi-planner planet add my-ocean oceanic
  pi-planner operator add alice --planets 3`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewPlanCommand())
	rootCmd.AddCommand(NewCatalogCommand())
	rootCmd.AddCommand(NewPlanetCommand())
	rootCmd.AddCommand(NewOperatorCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
