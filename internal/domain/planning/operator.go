package planning

// OperatorSkills are the planetary-industry skill levels an operator
// has trained. Only interplanetary consolidation affects planning (it
// raises the planet capacity); the rest are carried through from the
// external record for presentation.
type OperatorSkills struct {
	CommandCenterUpgrades       int  `json:"command_center_upgrades" validate:"min=0,max=5"`
	InterplanetaryConsolidation int  `json:"interplanetary_consolidation" validate:"min=0,max=5"`
	RemoteSensing               *int `json:"remote_sensing,omitempty"`
	PlanetaryProduction         *int `json:"planetary_production,omitempty"`
	Planetology                 *int `json:"planetology,omitempty"`
	AdvancedPlanetology         *int `json:"advanced_planetology,omitempty"`
}

// DefaultCapacity derives the planet capacity granted by the skill
// block alone: one planet plus one per consolidation level.
func (s OperatorSkills) DefaultCapacity() int {
	return 1 + s.InterplanetaryConsolidation
}

// Operator supervises planets. Capacity is the maximum number of
// planets it may run at once; the solver tracks consumption externally,
// the entity itself stays immutable during a solve.
type Operator struct {
	Name     string         `json:"name" validate:"required"`
	Capacity int            `json:"planets" validate:"min=0"`
	Skills   OperatorSkills `json:"skills"`
}

// NewOperator creates an operator with an explicit capacity
func NewOperator(name string, capacity int) Operator {
	return Operator{Name: name, Capacity: capacity}
}
