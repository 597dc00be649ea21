package render

import (
	"strings"
	"testing"

	"skirmish-server/internal/domain"
)

func TestGlyph_Pack(t *testing.T) {
	g := MakeGlyph(0xFFA500, 'A')
	if g.Char() != 'A' || g.Color() != 0xFFA500 {
		t.Errorf("got char %q color %06X", g.Char(), g.Color())
	}
	if g.String() != "Glyph{char='A', color=#FFA500}" {
		t.Errorf("unexpected String(): %s", g)
	}

	// Extra color bits are dropped.
	if MakeGlyph(0xFF123456, 'x').Color() != 0x123456 {
		t.Error("color must be masked to 24 bits")
	}
	if !strings.Contains(MakeGlyph(0x010203, 'z').ANSI(), "38;2;1;2;3m") {
		t.Error("ANSI escape must carry the RGB parts")
	}
}

func TestLines(t *testing.T) {
	w := domain.NewWorld(4, 2, domain.TileLand)
	w.ReplaceTile(domain.Tile{Pos: domain.Position{X: 0, Y: 0}, Kind: domain.TileStart})
	w.ReplaceTile(domain.Tile{Pos: domain.Position{X: 1, Y: 0}, Kind: domain.TileRoad})
	w.ReplaceTile(domain.Tile{Pos: domain.Position{X: 2, Y: 0}, Kind: domain.TileRoad})
	w.ReplaceTile(domain.Tile{Pos: domain.Position{X: 3, Y: 0}, Kind: domain.TileFinish})

	actors := []domain.Actor{
		{ID: domain.PackActorID(domain.KindWalker, 1), Kind: domain.KindWalker, Pos: domain.Position{X: 0, Y: 0}, Life: 12},
		{ID: domain.PackActorID(domain.KindSpawner, 2), Kind: domain.KindSpawner, Pos: domain.Position{X: 0, Y: 0}, Life: domain.LifeUnbounded},
		{ID: domain.PackActorID(domain.KindSpawner, 3), Kind: domain.KindSpawner, Pos: domain.Position{X: 1, Y: 1}, Life: domain.LifeUnbounded},
		{ID: domain.PackActorID(domain.KindDefender, 4), Kind: domain.KindDefender, Pos: domain.Position{X: 2, Y: 1}, Life: 10},
	}

	got := Lines(w, actors, false)
	want := []string{"w==F", ".*D."}
	if len(got) != len(want) {
		t.Fatalf("got %d lines", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
