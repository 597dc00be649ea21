package actions

import (
	"skirmish-server/internal/domain"
	"skirmish-server/internal/engine/handlers"
	"skirmish-server/internal/systems"
)

// HandleAttack: walkers hit defenders, defenders hit walkers.
func HandleAttack(ctx handlers.Context) domain.Proposal {
	atk, ok := attackSpecFor(ctx.Actor.Kind, ctx.Rules)
	if !ok {
		return domain.Stay(ctx.Actor)
	}
	return systems.Attack(ctx.Actor, ctx.Actors, ctx.Rng, atk)
}

func attackSpecFor(kind domain.ActorKind, rules domain.Rules) (systems.AttackSpec, bool) {
	switch kind {
	case domain.KindWalker:
		return systems.AttackSpec{
			Damage:  rules.WalkerDamage,
			Range:   rules.WalkerRange,
			Targets: []domain.ActorKind{domain.KindDefender},
		}, true
	case domain.KindDefender:
		return systems.AttackSpec{
			Damage:  rules.DefenderDamage,
			Range:   rules.DefenderRange,
			Targets: []domain.ActorKind{domain.KindWalker},
		}, true
	default:
		return systems.AttackSpec{}, false
	}
}
