package services

import (
	"sort"

	"github.com/andrescamacho/pi-planner/internal/domain/catalog"
	"github.com/andrescamacho/pi-planner/internal/domain/planning"
)

// ConfigurationResolver enumerates the valid production strategies for
// a product on a given planet type. Each strategy is attempted
// independently; a strategy that fails simply does not appear in the
// result set, so an empty result means "cannot be produced here", not
// an error.
type ConfigurationResolver struct {
	products catalog.ProductRepository
}

// NewConfigurationResolver creates a resolver over a product catalog
func NewConfigurationResolver(products catalog.ProductRepository) *ConfigurationResolver {
	return &ConfigurationResolver{products: products}
}

// FindValidConfigurations returns every production strategy that both
// resolves for the target product and passes the planet compatibility
// check for whatever it mines, in fixed strategy-priority order:
// P2->P4 without extraction, P2->P4 with extraction, P0->P2 direct,
// P1->P2 import, P0->P1 direct extraction.
func (r *ConfigurationResolver) FindValidConfigurations(
	planetType catalog.PlanetType,
	targetProduct string,
) []planning.FactoryConfiguration {
	var configurations []planning.FactoryConfiguration

	tryStrategy := func(config planning.FactoryConfiguration, err error) {
		if err != nil {
			// Strategy does not apply to this product
			return
		}
		if err := CheckPlanetCompatibility(r.products, planetType, config.MinedInputs); err != nil {
			// Planet type cannot supply what the strategy mines
			return
		}
		configurations = append(configurations, config)
	}

	tryStrategy(r.p2ToP4WithoutExtraction(targetProduct))
	tryStrategy(r.p2ToP4WithExtraction(targetProduct))
	tryStrategy(r.p0ToP2(targetProduct))

	product, ok := r.products.FindByName(targetProduct)
	if !ok {
		return configurations
	}

	if product.Tier == catalog.TierP2 {
		tryStrategy(r.p1ToP2(product.Ingredients, []string{targetProduct}))
	}

	if product.Tier == catalog.TierP1 && len(product.Ingredients) == 1 {
		tryStrategy(r.p0ToP1(product.Ingredients, []string{targetProduct}))
	}

	return configurations
}

// p2ToP4WithoutExtraction builds the import-everything strategy for P4
// products that are not extraction-bound. All direct ingredients must
// sit strictly below P4 and are imported wholesale.
func (r *ConfigurationResolver) p2ToP4WithoutExtraction(output string) (planning.FactoryConfiguration, error) {
	if catalog.RequiresExtraction(output) {
		return planning.FactoryConfiguration{}, &planning.ErrRequiresExtraction{Product: output}
	}

	product, ok := r.products.FindByName(output)
	if !ok {
		return planning.FactoryConfiguration{}, &planning.ErrProductNotFound{Product: output}
	}
	if product.Tier != catalog.TierP4 {
		return planning.FactoryConfiguration{}, &planning.ErrInvalidProductTier{
			Product:  output,
			Expected: catalog.TierP4,
			Actual:   product.Tier,
		}
	}

	imported := make([]string, 0, len(product.Ingredients))
	for _, ingredient := range product.Ingredients {
		ingredientProduct, ok := r.products.FindByName(ingredient)
		if !ok {
			return planning.FactoryConfiguration{}, &planning.ErrProductNotFound{Product: ingredient}
		}
		if ingredientProduct.Tier >= catalog.TierP4 {
			return planning.FactoryConfiguration{}, &planning.ErrInvalidProductTier{
				Product:  ingredient,
				Expected: catalog.TierP3,
				Actual:   ingredientProduct.Tier,
			}
		}
		imported = append(imported, ingredient)
	}
	sort.Strings(imported)

	return planning.FactoryConfiguration{
		StartTier:      catalog.TierP2,
		EndTier:        catalog.TierP4,
		ImportedInputs: imported,
		Outputs:        []string{output},
	}, nil
}

// p2ToP4WithExtraction builds the strategy for extraction-bound P4
// products. The ingredient chain is collected down through two levels
// below the direct ingredients; one collected member is chosen for
// local extraction (the lexicographically smallest P0, or failing that
// the smallest P1 whose single ingredient is P0) and the rest are
// imported.
func (r *ConfigurationResolver) p2ToP4WithExtraction(output string) (planning.FactoryConfiguration, error) {
	product, ok := r.products.FindByName(output)
	if !ok {
		return planning.FactoryConfiguration{}, &planning.ErrProductNotFound{Product: output}
	}
	if !catalog.RequiresExtraction(output) {
		return planning.FactoryConfiguration{}, &planning.ErrNoExtractionRequired{Product: output}
	}
	if product.Tier != catalog.TierP4 {
		return planning.FactoryConfiguration{}, &planning.ErrInvalidProductTier{
			Product:  output,
			Expected: catalog.TierP4,
			Actual:   product.Tier,
		}
	}

	collected := make(map[string]bool)
	for _, ingredient := range product.Ingredients {
		ingredientProduct, ok := r.products.FindByName(ingredient)
		if !ok {
			return planning.FactoryConfiguration{}, &planning.ErrProductNotFound{Product: ingredient}
		}
		if ingredientProduct.Tier == catalog.TierP4 {
			return planning.FactoryConfiguration{}, &planning.ErrInvalidProductTier{
				Product:  ingredient,
				Expected: catalog.TierP3,
				Actual:   ingredientProduct.Tier,
			}
		}
		collected[ingredient] = true

		for _, sub := range ingredientProduct.Ingredients {
			collected[sub] = true
			if subProduct, ok := r.products.FindByName(sub); ok {
				for _, subSub := range subProduct.Ingredients {
					collected[subSub] = true
				}
			}
		}
	}

	// Deterministic extraction pick: candidates in lexicographic order
	candidates := make([]string, 0, len(collected))
	for name := range collected {
		candidates = append(candidates, name)
	}
	sort.Strings(candidates)

	buildConfig := func(mined, dropped string) planning.FactoryConfiguration {
		imported := make([]string, 0, len(candidates)-1)
		for _, name := range candidates {
			if name != dropped {
				imported = append(imported, name)
			}
		}
		return planning.FactoryConfiguration{
			StartTier:      catalog.TierP2,
			EndTier:        catalog.TierP4,
			ImportedInputs: imported,
			MinedInputs:    []string{mined},
			Outputs:        []string{output},
		}
	}

	for _, name := range candidates {
		member, ok := r.products.FindByName(name)
		if !ok {
			continue
		}
		if member.Tier == catalog.TierP0 {
			return buildConfig(name, name), nil
		}
	}

	// No raw material in the closure; fall back to a P1 member whose
	// single ingredient is P0 and mine that ingredient instead.
	for _, name := range candidates {
		member, ok := r.products.FindByName(name)
		if !ok || member.Tier != catalog.TierP1 || len(member.Ingredients) != 1 {
			continue
		}
		rawName := member.Ingredients[0]
		if raw, ok := r.products.FindByName(rawName); ok && raw.Tier == catalog.TierP0 {
			return buildConfig(rawName, name), nil
		}
	}

	return planning.FactoryConfiguration{}, &planning.ErrNoMinableResource{Product: output}
}

// p0ToP2 builds the self-sufficient strategy for a P2 product: its P1
// ingredient closure is traced to P0 raw resources, which are all
// extracted on the planet with nothing imported.
func (r *ConfigurationResolver) p0ToP2(output string) (planning.FactoryConfiguration, error) {
	product, ok := r.products.FindByName(output)
	if !ok {
		return planning.FactoryConfiguration{}, &planning.ErrProductNotFound{Product: output}
	}
	if product.Tier != catalog.TierP2 {
		return planning.FactoryConfiguration{}, &planning.ErrInvalidProductTier{
			Product:  output,
			Expected: catalog.TierP2,
			Actual:   product.Tier,
		}
	}

	p1Products := make([]catalog.Product, 0, len(product.Ingredients))
	for _, ingredient := range product.Ingredients {
		p1Product, ok := r.products.FindByName(ingredient)
		if !ok {
			return planning.FactoryConfiguration{}, &planning.ErrProductNotFound{Product: ingredient}
		}
		if p1Product.Tier != catalog.TierP1 {
			return planning.FactoryConfiguration{}, &planning.ErrInvalidProductTier{
				Product:  ingredient,
				Expected: catalog.TierP1,
				Actual:   p1Product.Tier,
			}
		}
		p1Products = append(p1Products, p1Product)
	}

	var mined []string
	for _, p1Product := range p1Products {
		for _, ingredient := range p1Product.Ingredients {
			p0Product, ok := r.products.FindByName(ingredient)
			if !ok {
				return planning.FactoryConfiguration{}, &planning.ErrProductNotFound{Product: ingredient}
			}
			if p0Product.Tier != catalog.TierP0 {
				return planning.FactoryConfiguration{}, &planning.ErrInvalidProductTier{
					Product:  ingredient,
					Expected: catalog.TierP0,
					Actual:   p0Product.Tier,
				}
			}
			mined = append(mined, ingredient)
		}
	}

	return planning.FactoryConfiguration{
		StartTier:   catalog.TierP0,
		EndTier:     catalog.TierP2,
		MinedInputs: mined,
		Outputs:     []string{output},
	}, nil
}

// p1ToP2 builds the import strategy for P2 products: the supplied
// import set must cover every declared ingredient of every output.
func (r *ConfigurationResolver) p1ToP2(imports []string, outputs []string) (planning.FactoryConfiguration, error) {
	importSet := make(map[string]bool, len(imports))
	for _, name := range imports {
		importProduct, ok := r.products.FindByName(name)
		if !ok {
			return planning.FactoryConfiguration{}, &planning.ErrProductNotFound{Product: name}
		}
		if importProduct.Tier != catalog.TierP1 {
			return planning.FactoryConfiguration{}, &planning.ErrInvalidProductTier{
				Product:  name,
				Expected: catalog.TierP1,
				Actual:   importProduct.Tier,
			}
		}
		importSet[name] = true
	}

	for _, output := range outputs {
		product, ok := r.products.FindByName(output)
		if !ok {
			return planning.FactoryConfiguration{}, &planning.ErrProductNotFound{Product: output}
		}
		if product.Tier != catalog.TierP2 {
			return planning.FactoryConfiguration{}, &planning.ErrInvalidProductTier{
				Product:  output,
				Expected: catalog.TierP2,
				Actual:   product.Tier,
			}
		}

		var missing []string
		for _, ingredient := range product.Ingredients {
			if !importSet[ingredient] {
				missing = append(missing, ingredient)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			return planning.FactoryConfiguration{}, &planning.ErrMissingIngredients{
				Product: output,
				Missing: missing,
			}
		}
	}

	return planning.FactoryConfiguration{
		StartTier:      catalog.TierP1,
		EndTier:        catalog.TierP2,
		ImportedInputs: append([]string(nil), imports...),
		Outputs:        append([]string(nil), outputs...),
	}, nil
}

// p0ToP1 builds the direct extraction strategy: each mined P0 resource
// pairs positionally with a P1 output whose sole ingredient it is.
func (r *ConfigurationResolver) p0ToP1(minedInputs []string, outputs []string) (planning.FactoryConfiguration, error) {
	if len(minedInputs) != len(outputs) {
		return planning.FactoryConfiguration{}, &planning.ErrInputOutputMismatch{
			Inputs:  len(minedInputs),
			Outputs: len(outputs),
		}
	}

	for i, minedInput := range minedInputs {
		p0Product, ok := r.products.FindByName(minedInput)
		if !ok {
			return planning.FactoryConfiguration{}, &planning.ErrProductNotFound{Product: minedInput}
		}
		if p0Product.Tier != catalog.TierP0 {
			return planning.FactoryConfiguration{}, &planning.ErrInvalidProductTier{
				Product:  minedInput,
				Expected: catalog.TierP0,
				Actual:   p0Product.Tier,
			}
		}

		p1Product, ok := r.products.FindByName(outputs[i])
		if !ok {
			return planning.FactoryConfiguration{}, &planning.ErrProductNotFound{Product: outputs[i]}
		}
		if p1Product.Tier != catalog.TierP1 {
			return planning.FactoryConfiguration{}, &planning.ErrInvalidProductTier{
				Product:  outputs[i],
				Expected: catalog.TierP1,
				Actual:   p1Product.Tier,
			}
		}

		if len(p1Product.Ingredients) != 1 || p1Product.Ingredients[0] != minedInput {
			return planning.FactoryConfiguration{}, &planning.ErrMissingIngredients{
				Product: outputs[i],
				Missing: []string{minedInput},
			}
		}
	}

	return planning.FactoryConfiguration{
		StartTier:   catalog.TierP0,
		EndTier:     catalog.TierP1,
		MinedInputs: append([]string(nil), minedInputs...),
		Outputs:     append([]string(nil), outputs...),
	}, nil
}
