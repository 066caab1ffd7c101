package planning

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/pi-planner/internal/domain/catalog"
)

// Resolution-level errors: raised by individual factory strategies and
// swallowed by the enumeration operation, which turns each one into
// "this strategy does not apply". None of them reach the solver's caller.
//
// Solve-level errors (ErrProductNotFound for an unknown target,
// ErrNoSolutionFound) are the only ones a caller of Solve sees.

// ErrProductNotFound indicates an identifier absent from the catalog
type ErrProductNotFound struct {
	Product string
}

func (e *ErrProductNotFound) Error() string {
	return fmt.Sprintf("product not found: %s", e.Product)
}

// ErrInvalidProductTier indicates a product at the wrong tier for the
// position it occupies in a strategy's chain
type ErrInvalidProductTier struct {
	Product  string
	Expected catalog.Tier
	Actual   catalog.Tier
}

func (e *ErrInvalidProductTier) Error() string {
	return fmt.Sprintf("product %s has incorrect tier: expected %s, got %s",
		e.Product, e.Expected, e.Actual)
}

// ErrMissingIngredients indicates an import set that does not cover a
// product's declared ingredient set
type ErrMissingIngredients struct {
	Product string
	Missing []string
}

func (e *ErrMissingIngredients) Error() string {
	return fmt.Sprintf("product %s is missing ingredients: %s",
		e.Product, strings.Join(e.Missing, ", "))
}

// ErrRequiresExtraction indicates a strategy without local extraction
// was attempted on an extraction-bound P4 product
type ErrRequiresExtraction struct {
	Product string
}

func (e *ErrRequiresExtraction) Error() string {
	return fmt.Sprintf("product %s requires local extraction", e.Product)
}

// ErrNoExtractionRequired indicates the extraction strategy was
// attempted on a P4 product that is not extraction-bound
type ErrNoExtractionRequired struct {
	Product string
}

func (e *ErrNoExtractionRequired) Error() string {
	return fmt.Sprintf("product %s does not require local extraction", e.Product)
}

// ErrNoMinableResource indicates no member of an ingredient closure
// qualifies as the locally extracted resource
type ErrNoMinableResource struct {
	Product string
}

func (e *ErrNoMinableResource) Error() string {
	return fmt.Sprintf("no minable resource found in the production chain of %s", e.Product)
}

// ErrInputOutputMismatch indicates mismatched input and output list
// lengths supplied to a batch strategy
type ErrInputOutputMismatch struct {
	Inputs  int
	Outputs int
}

func (e *ErrInputOutputMismatch) Error() string {
	return fmt.Sprintf("number of inputs (%d) does not match number of outputs (%d)",
		e.Inputs, e.Outputs)
}

// ErrPlanetCannotMine indicates a planet type unable to supply a raw
// resource a strategy wants to extract
type ErrPlanetCannotMine struct {
	PlanetType catalog.PlanetType
	Resource   string
}

func (e *ErrPlanetCannotMine) Error() string {
	return fmt.Sprintf("planet type %s cannot mine resource %s", e.PlanetType, e.Resource)
}

// ErrNoSolutionFound indicates the solve failed: either some required
// product has no valid configuration on any planet type, or the
// assignment search exhausted every combination
type ErrNoSolutionFound struct {
	Product string
	Reason  string
}

func (e *ErrNoSolutionFound) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("no solution found for %s: %s", e.Product, e.Reason)
	}
	return fmt.Sprintf("no solution found for %s", e.Product)
}
