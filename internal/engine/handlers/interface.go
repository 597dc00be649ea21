package handlers

import (
	"math/rand"

	"skirmish-server/internal/domain"
)

// Context is the frozen view an action is evaluated against.
// Actors is the snapshot taken at phase start; handlers must not modify it.
type Context struct {
	Actor  domain.Actor
	Actors []domain.Actor
	World  *domain.World
	Rules  domain.Rules
	IDs    *domain.IDGenerator
	Rng    *rand.Rand
}

// HandlerFunc computes one actor's proposal for one phase.
type HandlerFunc func(ctx Context) domain.Proposal

// StayHandler is used for every (kind, phase) with nothing registered.
func StayHandler(ctx Context) domain.Proposal {
	return domain.Stay(ctx.Actor)
}
