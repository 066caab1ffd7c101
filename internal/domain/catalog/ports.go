package catalog

// ProductRepository defines read access to the product table. The
// resolver and solver depend on this interface rather than the static
// data directly so tests can substitute a fixture catalog.
type ProductRepository interface {
	// FindByName retrieves a product by name; ok is false when unknown
	FindByName(name string) (Product, bool)

	// FindByTier retrieves every product at the given tier, sorted by name
	FindByTier(tier Tier) []Product

	// All retrieves every product, sorted by name
	All() []Product

	// PlanetTypesFor returns the planet types able to supply a raw
	// resource; ok is false when the resource is not in the table
	PlanetTypesFor(resource string) ([]PlanetType, bool)
}
