package planning

import "github.com/andrescamacho/pi-planner/internal/domain/catalog"

// FactoryConfiguration is one viable production strategy for a product
// on some planet type: which inputs arrive by import, which raw
// resources are extracted locally, and the tier span the chain covers.
// Configurations are produced by the resolver and consumed immediately
// by the solver; they are never persisted.
type FactoryConfiguration struct {
	StartTier      catalog.Tier
	EndTier        catalog.Tier
	ImportedInputs []string
	MinedInputs    []string
	Outputs        []string
}

// Output returns the single output product of the configuration.
// Configurations built by the resolver always have exactly one output;
// multi-output configurations only occur through the batch P0 -> P1 path.
func (c FactoryConfiguration) Output() string {
	if len(c.Outputs) == 0 {
		return ""
	}
	return c.Outputs[0]
}

// Imports reports whether the configuration needs any imported inputs
func (c FactoryConfiguration) Imports() bool {
	return len(c.ImportedInputs) > 0
}

// Mines reports whether the configuration extracts any resource locally
func (c FactoryConfiguration) Mines() bool {
	return len(c.MinedInputs) > 0
}
