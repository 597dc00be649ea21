package engine

import (
	"skirmish-server/internal/domain"
	"skirmish-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// delta is the accumulated effect on one existing actor within a phase.
type delta struct {
	damage int
	moved  bool
	to     domain.Position
}

type resolveOptions struct {
	defenderCap int
	capped      bool
}

// ResolveOption tunes Resolve.
type ResolveOption func(*resolveOptions)

// WithDefenderCap limits the defenders alive after the phase. Spawned defenders beyond
// the cap are dropped in proposal order; defenders already present are never removed.
func WithDefenderCap(n int) ResolveOption {
	return func(o *resolveOptions) {
		o.defenderCap = n
		o.capped = true
	}
}

// Resolve folds one phase's proposals into the next actor generation.
//
// Damage against one target stacks. Moves overwrite (last proposal for an id wins),
// but a cell claimed by one mover is closed to the others in the same phase.
// Dead mortal actors are removed; spawns are appended after the survivors in proposal order.
// current is never modified.
func Resolve(current []domain.Actor, proposals []domain.Proposal, opts ...ResolveOption) []domain.Actor {
	log := logger.For("resolver")

	var o resolveOptions
	for _, opt := range opts {
		opt(&o)
	}
	defenders := domain.CountKind(current, domain.KindDefender)

	index := make(map[domain.ActorID]int, len(current))
	for i, a := range current {
		index[a.ID] = i
	}

	deltas := make(map[domain.ActorID]*delta)
	deltaFor := func(id domain.ActorID) *delta {
		d, ok := deltas[id]
		if !ok {
			d = &delta{}
			deltas[id] = d
		}
		return d
	}

	claimed := make(map[domain.Position]domain.ActorID)
	var spawned []domain.Actor
	spawnedIDs := make(map[domain.ActorID]bool)

	for _, p := range proposals {
		switch p.Kind {
		case domain.ProposalStay:
			continue

		case domain.ProposalSelfMove:
			if _, ok := index[p.Actor]; !ok {
				log.WithField("actor_id", p.Actor).Debug("Move for unknown actor dropped")
				continue
			}
			if owner, taken := claimed[p.To]; taken && owner != p.Actor {
				log.WithFields(logrus.Fields{
					"actor_id": p.Actor,
					"owner_id": owner,
					"cell":     p.To,
				}).Debug("Cell already claimed, actor stays")
				continue
			}
			d := deltaFor(p.Actor)
			if d.moved {
				delete(claimed, d.to)
			}
			d.moved = true
			d.to = p.To
			claimed[p.To] = p.Actor

		case domain.ProposalTargetDamage:
			if _, ok := index[p.Actor]; !ok {
				log.WithFields(logrus.Fields{
					"target_id": p.Actor,
					"source_id": p.Source,
				}).Debug("Damage against unknown actor dropped")
				continue
			}
			deltaFor(p.Actor).damage += p.Damage

		case domain.ProposalSpawn:
			id := p.Spawned.ID
			if _, exists := index[id]; exists || spawnedIDs[id] || id.IsNil() {
				log.WithField("actor_id", id).Debug("Spawn with a used id ignored")
				continue
			}
			if o.capped && p.Spawned.Kind == domain.KindDefender {
				if defenders >= o.defenderCap {
					log.WithFields(logrus.Fields{
						"actor_id": id,
						"cap":      o.defenderCap,
					}).Debug("Defender cap reached, spawn dropped")
					continue
				}
				defenders++
			}
			spawnedIDs[id] = true
			spawned = append(spawned, p.Spawned)
		}
	}

	next := make([]domain.Actor, 0, len(current)+len(spawned))
	for _, a := range current {
		if d, ok := deltas[a.ID]; ok {
			if d.moved {
				a.Pos = d.to
			}
			a = a.TakeDamage(d.damage)
		}
		if !a.Alive() {
			log.WithField("actor", a.String()).Debug("Actor removed")
			continue
		}
		next = append(next, a)
	}

	return append(next, spawned...)
}
