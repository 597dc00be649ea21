package handlers

import "skirmish-server/internal/domain"

// Table routes (actor kind, phase) to a handler.
type Table struct {
	handlers map[domain.ActorKind]map[domain.Phase]HandlerFunc
}

func NewTable() *Table {
	return &Table{handlers: make(map[domain.ActorKind]map[domain.Phase]HandlerFunc)}
}

// Register binds a handler. Registering twice replaces the earlier one.
func (t *Table) Register(kind domain.ActorKind, phase domain.Phase, h HandlerFunc) *Table {
	byPhase, ok := t.handlers[kind]
	if !ok {
		byPhase = make(map[domain.Phase]HandlerFunc)
		t.handlers[kind] = byPhase
	}
	byPhase[phase] = h
	return t
}

// Lookup returns the handler for (kind, phase). ok is false when nothing is registered.
func (t *Table) Lookup(kind domain.ActorKind, phase domain.Phase) (HandlerFunc, bool) {
	h, ok := t.handlers[kind][phase]
	return h, ok
}

// Propose runs the registered handler, or proposes Stay when the actor has no action for the phase.
func (t *Table) Propose(phase domain.Phase, ctx Context) domain.Proposal {
	h, ok := t.Lookup(ctx.Actor.Kind, phase)
	if !ok {
		return StayHandler(ctx)
	}
	return h(ctx)
}

// Phases lists the phases a kind acts in.
func (t *Table) Phases(kind domain.ActorKind) []domain.Phase {
	var out []domain.Phase
	for _, p := range []domain.Phase{domain.PhaseAttack, domain.PhaseMove, domain.PhaseSpawn} {
		if _, ok := t.handlers[kind][p]; ok {
			out = append(out, p)
		}
	}
	return out
}
