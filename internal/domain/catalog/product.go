package catalog

// Product is an entry in the planetary production chain. Ingredients
// reference other products by name and always sit at lower tiers than
// the product itself. Products are immutable once loaded into a Catalog.
type Product struct {
	Name        string
	Tier        Tier
	Ingredients []string
}

// NewProduct creates a product with the given tier and ingredient names
func NewProduct(name string, tier Tier, ingredients []string) Product {
	return Product{
		Name:        name,
		Tier:        tier,
		Ingredients: ingredients,
	}
}

// NewRawMaterial creates a P0 product, which never has ingredients
func NewRawMaterial(name string) Product {
	return Product{
		Name: name,
		Tier: TierP0,
	}
}

// IsRaw reports whether the product is a P0 raw material
func (p Product) IsRaw() bool {
	return p.Tier == TierP0
}
