package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/pi-planner/internal/application/common"
	"github.com/andrescamacho/pi-planner/internal/application/planning/queries"
	"github.com/andrescamacho/pi-planner/internal/application/planning/services"
	"github.com/andrescamacho/pi-planner/internal/domain/catalog"
)

// NewCatalogCommand creates the catalog command with subcommands
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the product and resource catalog",
		Long: `Inspect the static product and resource catalog.

Examples:
  pi-planner catalog products
  pi-planner catalog products --tier 2
  pi-planner catalog resources
  pi-planner catalog configs oceanic water`,
	}

	cmd.AddCommand(newCatalogProductsCommand())
	cmd.AddCommand(newCatalogResourcesCommand())
	cmd.AddCommand(newCatalogConfigsCommand())

	return cmd
}

// newCatalogProductsCommand creates the catalog products subcommand
func newCatalogProductsCommand() *cobra.Command {
	var tier int

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products, optionally filtered by tier",
		RunE: func(cmd *cobra.Command, args []string) error {
			products := catalog.New()

			var listing []catalog.Product
			if cmd.Flags().Changed("tier") {
				if tier < 0 || tier > 4 {
					return fmt.Errorf("tier must be between 0 and 4, got %d", tier)
				}
				listing = products.FindByTier(catalog.Tier(tier))
			} else {
				listing = products.All()
			}

			for _, product := range listing {
				if product.IsRaw() {
					fmt.Printf("  %-34s %s\n", product.Name, product.Tier)
					continue
				}
				fmt.Printf("  %-34s %s  <- %s\n",
					product.Name, product.Tier, strings.Join(product.Ingredients, ", "))
			}
			fmt.Printf("\n%d products\n", len(listing))

			return nil
		},
	}

	cmd.Flags().IntVar(&tier, "tier", 0, "Only list products of this tier (0-4)")

	return cmd
}

// newCatalogResourcesCommand creates the catalog resources subcommand
func newCatalogResourcesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "List raw resources and the planet types that yield them",
		RunE: func(cmd *cobra.Command, args []string) error {
			products := catalog.New()

			for _, product := range products.FindByTier(catalog.TierP0) {
				types, ok := products.PlanetTypesFor(product.Name)
				if !ok {
					continue
				}
				names := make([]string, len(types))
				for i, t := range types {
					names[i] = string(t)
				}
				fmt.Printf("  %-26s %s\n", product.Name, strings.Join(names, ", "))
			}

			return nil
		},
	}
}

// newCatalogConfigsCommand creates the catalog configs subcommand
func newCatalogConfigsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configs <planet-type> <product>",
		Short: "List factory configurations producing a product on a planet type",
		Long: `List every factory configuration that can produce the given product
on a planet of the given type, in resolution priority order.

Examples:
  pi-planner catalog configs oceanic water
  pi-planner catalog configs lava consumer_electronics`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			planetType, targetProduct := args[0], args[1]

			// Catalog queries never touch planet or operator state, so
			// wire the resolver without opening the database.
			med := common.NewMediator()
			resolver := services.NewConfigurationResolver(catalog.New())
			if err := common.RegisterHandler[*queries.ListConfigurationsQuery](
				med, queries.NewListConfigurationsHandler(resolver)); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			response, err := med.Send(ctx, &queries.ListConfigurationsQuery{
				PlanetType:    planetType,
				TargetProduct: targetProduct,
			})
			if err != nil {
				return err
			}

			result, ok := response.(*queries.ListConfigurationsResponse)
			if !ok {
				return fmt.Errorf("unexpected response type %T", response)
			}

			if len(result.Configurations) == 0 {
				fmt.Printf("no configuration produces %s on a %s planet\n", targetProduct, planetType)
				return nil
			}

			for i, config := range result.Configurations {
				fmt.Printf("  [%d] %s -> %s\n", i+1, config.StartTier, config.EndTier)
				fmt.Printf("      outputs:  %s\n", strings.Join(config.Outputs, ", "))
				if len(config.MinedInputs) > 0 {
					fmt.Printf("      mines:    %s\n", strings.Join(config.MinedInputs, ", "))
				}
				if len(config.ImportedInputs) > 0 {
					fmt.Printf("      imports:  %s\n", strings.Join(config.ImportedInputs, ", "))
				}
			}

			return nil
		},
	}

	return cmd
}
