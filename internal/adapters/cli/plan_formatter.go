package cli

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/pi-planner/internal/domain/planning"
)

// FormatPlan renders a production plan as human-readable text
func FormatPlan(plan planning.ProductionPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "✓ Production plan for %s\n", plan.Target)
	fmt.Fprintf(&b, "  Plan ID:   %s\n", plan.ID)
	fmt.Fprintf(&b, "  Factories: %d\n\n", len(plan.Assignments))

	for _, assignment := range plan.Assignments {
		fmt.Fprintf(&b, "  %s  (%s, operated by %s)\n",
			assignment.Planet, assignment.PlanetType, assignment.Operator)
		fmt.Fprintf(&b, "    produces: %s\n", assignment.Output)
		if len(assignment.MinedInputs) > 0 {
			fmt.Fprintf(&b, "    mines:    %s\n", strings.Join(assignment.MinedInputs, ", "))
		}
		if len(assignment.ImportedInputs) > 0 {
			fmt.Fprintf(&b, "    imports:  %s\n", strings.Join(assignment.ImportedInputs, ", "))
		}
	}

	return b.String()
}
