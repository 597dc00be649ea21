package systems

import (
	"math/rand"

	"skirmish-server/internal/domain"
	"skirmish-server/pkg/utils"
)

// MoveCandidates lists the cells radius steps ahead of self along every path through it,
// minus the ones a corporeal actor already holds.
func MoveCandidates(self domain.Actor, actors []domain.Actor, w *domain.World, radius int) []domain.Position {
	var out []domain.Position
	for _, pos := range w.NextPlaces(self.Pos, radius) {
		if IsVacant(actors, pos) {
			out = append(out, pos)
		}
	}
	return out
}

// Move proposes relocating self to a random free candidate cell.
// Does not change the world: the resolver commits the move.
func Move(self domain.Actor, actors []domain.Actor, w *domain.World, rng *rand.Rand, radius int) domain.Proposal {
	next, ok := utils.Pick(rng, MoveCandidates(self, actors, w, radius))
	if !ok {
		return domain.Stay(self)
	}
	return domain.MoveTo(self, next)
}
