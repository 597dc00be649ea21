package actions

import (
	"skirmish-server/internal/domain"
	"skirmish-server/internal/engine/handlers"
	"skirmish-server/internal/systems"
)

func HandleMove(ctx handlers.Context) domain.Proposal {
	return systems.Move(ctx.Actor, ctx.Actors, ctx.World, ctx.Rng, ctx.Rules.MoveRadius)
}
