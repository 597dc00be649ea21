package systems

import (
	"math/rand"

	"skirmish-server/internal/domain"
	"skirmish-server/pkg/utils"
)

// InitialActors seeds a fresh battlefield:
//   - a spawner on every start tile,
//   - a spawner on every land tile that touches a road, start or finish,
//   - one walker on a random start.
func InitialActors(w *domain.World, ids *domain.IDGenerator, rules domain.Rules, rng *rand.Rand) []domain.Actor {
	var actors []domain.Actor

	starts := w.Starts()
	for _, t := range starts {
		actors = append(actors, NewSpawner(ids, t.Pos))
	}

	for _, t := range w.TilesOfKind(domain.TileLand) {
		if bordersPath(w, t.Pos) {
			actors = append(actors, NewSpawner(ids, t.Pos))
		}
	}

	if start, ok := utils.Pick(rng, starts); ok {
		actors = append(actors, NewWalker(ids, rules, start.Pos))
	}

	return actors
}

func bordersPath(w *domain.World, pos domain.Position) bool {
	for _, kind := range []domain.TileKind{domain.TileRoad, domain.TileStart, domain.TileFinish} {
		if len(w.TilesOfKindAround(kind, pos, 1)) > 0 {
			return true
		}
	}
	return false
}
