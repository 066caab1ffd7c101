package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/pi-planner/internal/adapters/persistence"
	"github.com/andrescamacho/pi-planner/internal/domain/planning"
)

// NewOperatorCommand creates the operator command with subcommands
func NewOperatorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "operator",
		Short: "Manage the operator roster",
		Long: `Manage the roster of operators available to the plan solver.

An operator's capacity is the number of planets it can run at once.
When --planets is omitted, capacity derives from the consolidation
skill level: one planet plus one per level.

Examples:
  pi-planner operator add alice --planets 3
  pi-planner operator add bob --consolidation 2
  pi-planner operator list
  pi-planner operator remove alice
  pi-planner operator import operators.json`,
	}

	cmd.AddCommand(newOperatorAddCommand())
	cmd.AddCommand(newOperatorListCommand())
	cmd.AddCommand(newOperatorRemoveCommand())
	cmd.AddCommand(newOperatorImportCommand())

	return cmd
}

// newOperatorAddCommand creates the operator add subcommand
func newOperatorAddCommand() *cobra.Command {
	var (
		capacity      int
		consolidation int
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an operator to the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			if consolidation < 0 || consolidation > 5 {
				return fmt.Errorf("consolidation level must be between 0 and 5, got %d", consolidation)
			}

			operator := planning.Operator{
				Name: name,
				Skills: planning.OperatorSkills{
					InterplanetaryConsolidation: consolidation,
				},
			}
			if cmd.Flags().Changed("planets") {
				if capacity < 0 {
					return fmt.Errorf("planet capacity cannot be negative, got %d", capacity)
				}
				operator.Capacity = capacity
			} else {
				operator.Capacity = operator.Skills.DefaultCapacity()
			}

			application, err := newApp("", "")
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := application.operators.Save(ctx, operator); err != nil {
				return fmt.Errorf("failed to save operator: %w", err)
			}

			fmt.Printf("✓ Operator %s added (capacity %d)\n", name, operator.Capacity)
			return nil
		},
	}

	cmd.Flags().IntVar(&capacity, "planets", 0,
		"Planet capacity (default: derived from skills)")
	cmd.Flags().IntVar(&consolidation, "consolidation", 0,
		"Interplanetary consolidation skill level (0-5)")

	return cmd
}

// newOperatorListCommand creates the operator list subcommand
func newOperatorListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all operators in the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp("", "")
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			operators, err := application.operators.FindAll(ctx)
			if err != nil {
				return fmt.Errorf("failed to list operators: %w", err)
			}

			if len(operators) == 0 {
				fmt.Println("no operators registered")
				return nil
			}

			for _, operator := range operators {
				fmt.Printf("  %-24s capacity %d\n", operator.Name, operator.Capacity)
			}
			fmt.Printf("\n%d operators\n", len(operators))

			return nil
		},
	}
}

// newOperatorRemoveCommand creates the operator remove subcommand
func newOperatorRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove an operator from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			application, err := newApp("", "")
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := application.operators.Delete(ctx, name); err != nil {
				return fmt.Errorf("failed to remove operator: %w", err)
			}

			fmt.Printf("✓ Operator %s removed\n", name)
			return nil
		},
	}
}

// newOperatorImportCommand creates the operator import subcommand
func newOperatorImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import operators from a JSON file into the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			operators, err := persistence.LoadOperatorsFile(args[0])
			if err != nil {
				return err
			}

			application, err := newApp("", "")
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			for _, operator := range operators {
				if err := application.operators.Save(ctx, operator); err != nil {
					return fmt.Errorf("failed to save operator %s: %w", operator.Name, err)
				}
			}

			fmt.Printf("✓ Imported %d operators\n", len(operators))
			return nil
		},
	}
}
