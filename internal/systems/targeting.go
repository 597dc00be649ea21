package systems

import (
	"slices"

	"skirmish-server/internal/domain"
)

// ActorsInRange returns the other actors inside the Chebyshev box of radius around self
// whose kind is one of kinds. With no kinds given every kind is eligible.
func ActorsInRange(actors []domain.Actor, self domain.Actor, radius int, kinds ...domain.ActorKind) []domain.Actor {
	var out []domain.Actor
	for _, other := range actors {
		if other.SameActor(self) {
			continue
		}
		if len(kinds) > 0 && !slices.Contains(kinds, other.Kind) {
			continue
		}
		if self.Pos.InBox(other.Pos, radius) {
			out = append(out, other)
		}
	}
	return out
}

// IsVacant is true when no corporeal actor occupies pos. Spawners never block a cell.
func IsVacant(actors []domain.Actor, pos domain.Position) bool {
	for _, a := range actors {
		if a.Pos == pos && a.Corporeal() {
			return false
		}
	}
	return true
}
