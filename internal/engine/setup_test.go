package engine

import (
	"os"
	"testing"

	"skirmish-server/internal/domain"
	"skirmish-server/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func walkerAt(index uint64, x, y, life int) domain.Actor {
	return domain.Actor{
		ID:   domain.PackActorID(domain.KindWalker, index),
		Kind: domain.KindWalker,
		Pos:  domain.Position{X: x, Y: y},
		Life: life,
	}
}

func defenderAt(index uint64, x, y, life int) domain.Actor {
	return domain.Actor{
		ID:   domain.PackActorID(domain.KindDefender, index),
		Kind: domain.KindDefender,
		Pos:  domain.Position{X: x, Y: y},
		Life: life,
	}
}

// createLaneWorld: a 5x3 world with one straight path on row 1.
//
//	. . . . .
//	S r r r F
//	. . . . .
func createLaneWorld() *domain.World {
	w := domain.NewWorld(5, 3, domain.TileLand)
	w.ReplaceTile(domain.Tile{Pos: domain.Position{X: 0, Y: 1}, Kind: domain.TileStart})
	w.ReplaceTile(domain.Tile{Pos: domain.Position{X: 4, Y: 1}, Kind: domain.TileFinish})
	steps := []domain.Position{}
	for x := 1; x <= 3; x++ {
		w.ReplaceTile(domain.Tile{Pos: domain.Position{X: x, Y: 1}, Kind: domain.TileRoad})
		steps = append(steps, domain.Position{X: x, Y: 1})
	}
	steps = append(steps, domain.Position{X: 4, Y: 1})
	w.Paths = []domain.Path{{Start: domain.Position{X: 0, Y: 1}, Finish: domain.Position{X: 4, Y: 1}, Steps: steps}}
	return w
}

func testConfig(seed int64) Config {
	cfg := NewConfig()
	cfg.Seed = seed
	cfg.TickDelay = 0
	return cfg
}
