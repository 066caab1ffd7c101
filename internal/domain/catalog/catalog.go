package catalog

import "sort"

// Catalog is the in-memory ProductRepository over the static product
// database and resource table. Build it once at startup and share it
// freely; it is never mutated after construction.
type Catalog struct {
	products  map[string]Product
	resources map[string][]PlanetType
}

// New creates a Catalog holding the full production chain
func New() *Catalog {
	return &Catalog{
		products:  buildProductDatabase(),
		resources: ResourcePlanetMap,
	}
}

// NewFixture creates a Catalog over an arbitrary product set and
// resource table. Intended for tests that need a minimal chain.
func NewFixture(products []Product, resources map[string][]PlanetType) *Catalog {
	table := make(map[string]Product, len(products))
	for _, p := range products {
		table[p.Name] = p
	}
	return &Catalog{products: table, resources: resources}
}

// FindByName retrieves a product by name
func (c *Catalog) FindByName(name string) (Product, bool) {
	p, ok := c.products[name]
	return p, ok
}

// FindByTier retrieves every product at the given tier, sorted by name
func (c *Catalog) FindByTier(tier Tier) []Product {
	var out []Product
	for _, p := range c.products {
		if p.Tier == tier {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// All retrieves every product, sorted by name
func (c *Catalog) All() []Product {
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// PlanetTypesFor returns the planet types able to supply a raw resource
func (c *Catalog) PlanetTypesFor(resource string) ([]PlanetType, bool) {
	types, ok := c.resources[resource]
	return types, ok
}
