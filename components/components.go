// Package components defines ECS components for the particle pool.
package components

import "fmt"

// Phase is the categorical matter state of a particle.
// It drives visual styling and the kinematic constants (size multiplier,
// buoyancy, color alpha).
type Phase uint8

const (
	PhaseGas Phase = iota
	PhaseLiquid
	PhaseVapor
)

// String returns the phase label used in config files and telemetry.
func (p Phase) String() string {
	switch p {
	case PhaseGas:
		return "gas"
	case PhaseLiquid:
		return "liquid"
	case PhaseVapor:
		return "vapor"
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// ParsePhase converts a config label into a Phase.
func ParsePhase(s string) (Phase, error) {
	switch s {
	case "gas":
		return PhaseGas, nil
	case "liquid":
		return PhaseLiquid, nil
	case "vapor":
		return PhaseVapor, nil
	}
	return 0, fmt.Errorf("components: unknown phase %q", s)
}

// Phases lists all phases in declaration order.
var Phases = []Phase{PhaseGas, PhaseLiquid, PhaseVapor}
