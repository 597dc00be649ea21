package engine

import "skirmish-server/internal/domain"

var phaseOrder = []domain.Phase{domain.PhaseAttack, domain.PhaseMove, domain.PhaseSpawn}

// PhasesFor returns the phases of one tick in execution order.
// The order does not depend on the actors today; the argument keeps the door open for rosters that skip phases.
func PhasesFor(actors []domain.Actor) []domain.Phase {
	out := make([]domain.Phase, len(phaseOrder))
	copy(out, phaseOrder)
	return out
}
