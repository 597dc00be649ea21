package systems

import (
	"math/rand"

	"skirmish-server/internal/domain"
	"skirmish-server/pkg/logger"
	"skirmish-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// EligibleKinds returns the actor kinds a spawner may create on the tile at pos.
// Tiles that allow nothing yield an empty list, which is a normal "spawn nothing".
func EligibleKinds(w *domain.World, pos domain.Position) []domain.ActorKind {
	tile, ok := w.TileAt(pos)
	if !ok {
		return nil
	}
	switch tile.Kind {
	case domain.TileStart:
		return []domain.ActorKind{domain.KindWalker}
	case domain.TileLand:
		return []domain.ActorKind{domain.KindDefender}
	default:
		return nil
	}
}

// SpawnRequest gathers what one spawn roll needs.
type SpawnRequest struct {
	Self   domain.Actor
	Actors []domain.Actor
	World  *domain.World
	IDs    *domain.IDGenerator
	Rules  domain.Rules
	Rng    *rand.Rand
	At     domain.Position
}

// Spawn may create a new unit at req.At. The spawner itself never changes;
// a blocked cell, an ineligible tile or a failed roll all propose Stay.
func Spawn(req SpawnRequest) domain.Proposal {
	if !IsVacant(req.Actors, req.At) {
		return domain.Stay(req.Self)
	}

	kinds := EligibleKinds(req.World, req.At)
	if len(kinds) == 0 {
		return domain.Stay(req.Self)
	}

	spawned, ok := rollSpawn(req, kinds[0])
	if !ok {
		return domain.Stay(req.Self)
	}

	logger.Log.WithFields(logrus.Fields{
		"component":  "spawn_system",
		"spawner_id": req.Self.ID,
		"spawned_id": spawned.ID,
		"kind":       spawned.Kind,
		"pos":        spawned.Pos,
	}).Debug("Spawn proposed.")

	return domain.SpawnActor(req.Self, spawned)
}

// rollSpawn applies the kind-specific odds. An id is only drawn when a unit is actually created.
func rollSpawn(req SpawnRequest, kind domain.ActorKind) (domain.Actor, bool) {
	switch kind {
	case domain.KindWalker:
		if !utils.Chance(req.Rng, req.Rules.WalkerSpawnChance) {
			return domain.Actor{}, false
		}
		return NewWalker(req.IDs, req.Rules, req.At), true
	case domain.KindDefender:
		if domain.CountKind(req.Actors, domain.KindDefender) >= domain.DefenderCap(req.World) {
			return domain.Actor{}, false
		}
		if !utils.Chance(req.Rng, req.Rules.DefenderSpawnChance) {
			return domain.Actor{}, false
		}
		return NewDefender(req.IDs, req.Rules, req.At), true
	default:
		return domain.Actor{}, false
	}
}
