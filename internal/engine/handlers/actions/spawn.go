package actions

import (
	"skirmish-server/internal/domain"
	"skirmish-server/internal/engine/handlers"
	"skirmish-server/internal/systems"
)

// HandleSpawn rolls a spawn on the spawner's own tile.
func HandleSpawn(ctx handlers.Context) domain.Proposal {
	return systems.Spawn(systems.SpawnRequest{
		Self:   ctx.Actor,
		Actors: ctx.Actors,
		World:  ctx.World,
		IDs:    ctx.IDs,
		Rules:  ctx.Rules,
		Rng:    ctx.Rng,
		At:     ctx.Actor.Pos,
	})
}
