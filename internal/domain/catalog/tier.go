package catalog

import "fmt"

// Tier is the ordinal rank of a product in the production chain.
// P0 is raw material, P4 is the most refined commodity. Tiers are
// ordered, so direct comparisons like t < TierP4 are meaningful.
type Tier int

const (
	TierP0 Tier = iota
	TierP1
	TierP2
	TierP3
	TierP4
)

// String returns the canonical tier label (P0..P4)
func (t Tier) String() string {
	switch t {
	case TierP0:
		return "P0"
	case TierP1:
		return "P1"
	case TierP2:
		return "P2"
	case TierP3:
		return "P3"
	case TierP4:
		return "P4"
	default:
		return fmt.Sprintf("P?(%d)", int(t))
	}
}

// ParseTier converts a tier label into a Tier
func ParseTier(s string) (Tier, error) {
	switch s {
	case "P0":
		return TierP0, nil
	case "P1":
		return TierP1, nil
	case "P2":
		return TierP2, nil
	case "P3":
		return TierP3, nil
	case "P4":
		return TierP4, nil
	default:
		return 0, fmt.Errorf("unknown product tier: %q", s)
	}
}
