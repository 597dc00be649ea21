package systems

import (
	"testing"

	"skirmish-server/internal/domain"
)

func TestFactory_Defaults(t *testing.T) {
	ids := domain.NewIDGenerator()
	rules := domain.DefaultRules()
	pos := domain.Position{X: 1, Y: 1}

	if w := NewWalker(ids, rules, pos); w.Life != 12 || w.Kind != domain.KindWalker {
		t.Errorf("walker defaults wrong: %v", w)
	}
	if d := NewDefender(ids, rules, pos); d.Life != 10 {
		t.Errorf("defender default life = %d, want 10", d.Life)
	}
	if d := NewDefender(ids, rules, pos, 3); d.Life != 3 {
		t.Errorf("explicit defender life ignored: %d", d.Life)
	}
	if s := NewSpawner(ids, pos); s.Mortal() {
		t.Error("spawner life must be unbounded")
	}
}

func TestInitialActors(t *testing.T) {
	world := createLaneWorld()
	ids := domain.NewIDGenerator()

	actors := InitialActors(world, ids, domain.DefaultRules(), newTestRng())

	// 1 start spawner + 7 land tiles on the top row, all touching the lane.
	if got := domain.CountKind(actors, domain.KindSpawner); got != 8 {
		t.Errorf("expected 8 spawners, got %d", got)
	}
	if got := domain.CountKind(actors, domain.KindWalker); got != 1 {
		t.Fatalf("expected one initial walker, got %d", got)
	}
	if got := domain.CountKind(actors, domain.KindDefender); got != 0 {
		t.Errorf("no defenders at start, got %d", got)
	}

	for _, a := range actors {
		if a.Kind == domain.KindWalker && a.Pos != (domain.Position{X: 0, Y: 1}) {
			t.Errorf("walker must start on the start tile, got %s", a.Pos)
		}
	}

	seen := map[domain.ActorID]bool{}
	for _, a := range actors {
		if seen[a.ID] {
			t.Fatalf("duplicate id %v", a.ID)
		}
		seen[a.ID] = true
	}
}
