package handlers

import (
	"testing"

	"skirmish-server/internal/domain"
)

func TestTable_ProposeFallsBackToStay(t *testing.T) {
	table := NewTable()
	actor := domain.Actor{ID: domain.PackActorID(domain.KindDefender, 1), Kind: domain.KindDefender, Life: 10}

	p := table.Propose(domain.PhaseMove, Context{Actor: actor})
	if !p.IsNoop() || p.Actor != actor.ID {
		t.Errorf("unregistered phase must propose Stay, got %+v", p)
	}
}

func TestTable_RegisterAndLookup(t *testing.T) {
	called := 0
	h := func(ctx Context) domain.Proposal {
		called++
		return domain.MoveTo(ctx.Actor, domain.Position{X: 1, Y: 0})
	}

	table := NewTable().
		Register(domain.KindWalker, domain.PhaseMove, h).
		Register(domain.KindWalker, domain.PhaseAttack, StayHandler)

	walker := domain.Actor{ID: domain.PackActorID(domain.KindWalker, 1), Kind: domain.KindWalker, Life: 12}
	p := table.Propose(domain.PhaseMove, Context{Actor: walker})
	if called != 1 || p.Kind != domain.ProposalSelfMove {
		t.Errorf("registered handler not used: called=%d proposal=%+v", called, p)
	}

	if _, ok := table.Lookup(domain.KindSpawner, domain.PhaseMove); ok {
		t.Error("spawner has nothing registered")
	}

	phases := table.Phases(domain.KindWalker)
	if len(phases) != 2 || phases[0] != domain.PhaseAttack || phases[1] != domain.PhaseMove {
		t.Errorf("unexpected phases %v", phases)
	}
}
