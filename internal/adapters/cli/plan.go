package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/pi-planner/internal/application/planning/queries"
)

// NewPlanCommand creates the plan command
func NewPlanCommand() *cobra.Command {
	var (
		planetsFile   string
		operatorsFile string
		jsonOutput    bool
	)

	cmd := &cobra.Command{
		Use:   "plan <product>",
		Short: "Solve a production plan for a target product",
		Long: `Solve a production plan for a target product.

The solver computes the set of products the target depends on, then
searches for an assignment of one factory configuration per planet such
that every product in that set has exactly one producer, no planet or
operator is oversubscribed, and every configuration is compatible with
its planet's type.

Planets and operators come from the database by default. Pass --planets
and --operators to plan against JSON files instead.

Examples:
  pi-planner plan water --planets planets.json --operators operators.json
  pi-planner plan coolant
  pi-planner plan robotics --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targetProduct := args[0]

			application, err := newApp(planetsFile, operatorsFile)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), application.cfg.Solver.Timeout)
			defer cancel()

			response, err := application.mediator.Send(ctx, &queries.SolvePlanQuery{
				TargetProduct: targetProduct,
			})
			if err != nil {
				return err
			}

			result, ok := response.(*queries.SolvePlanResponse)
			if !ok {
				return fmt.Errorf("unexpected response type %T", response)
			}

			if jsonOutput {
				encoded, err := json.MarshalIndent(result.Plan, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode plan: %w", err)
				}
				fmt.Println(string(encoded))
				return nil
			}

			fmt.Print(FormatPlan(result.Plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&planetsFile, "planets", "", "Path to a planets JSON file (defaults to database)")
	cmd.Flags().StringVar(&operatorsFile, "operators", "", "Path to an operators JSON file (defaults to database)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the plan as JSON")

	return cmd
}
