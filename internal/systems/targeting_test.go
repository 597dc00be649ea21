package systems

import (
	"testing"

	"skirmish-server/internal/domain"
)

func TestActorsInRange(t *testing.T) {
	ids := domain.NewIDGenerator()
	self := actorAt(ids, domain.KindDefender, 3, 3, 10)
	near := actorAt(ids, domain.KindWalker, 4, 4, 12)
	far := actorAt(ids, domain.KindWalker, 6, 3, 12)
	ally := actorAt(ids, domain.KindDefender, 2, 3, 10)
	actors := []domain.Actor{self, near, far, ally}

	got := ActorsInRange(actors, self, 1, domain.KindWalker)
	if len(got) != 1 || got[0].ID != near.ID {
		t.Errorf("expected only the near walker, got %v", got)
	}

	got = ActorsInRange(actors, self, 1)
	if len(got) != 2 {
		t.Errorf("without kind filter expected 2 actors, got %d", len(got))
	}

	for _, a := range ActorsInRange(actors, self, 10) {
		if a.ID == self.ID {
			t.Error("self must never be in range of itself")
		}
	}
}

func TestIsVacant(t *testing.T) {
	ids := domain.NewIDGenerator()
	spawner := actorAt(ids, domain.KindSpawner, 1, 1, domain.LifeUnbounded)
	walker := actorAt(ids, domain.KindWalker, 2, 1, 12)
	actors := []domain.Actor{spawner, walker}

	if !IsVacant(actors, domain.Position{X: 1, Y: 1}) {
		t.Error("a cell holding only a spawner is vacant")
	}
	if IsVacant(actors, domain.Position{X: 2, Y: 1}) {
		t.Error("a cell holding a walker is not vacant")
	}
}
