package render

import (
	"strings"

	"skirmish-server/internal/domain"
)

var tileGlyphs = map[domain.TileKind]Glyph{
	domain.TileRoad:   MakeGlyph(0xC2B280, '='),
	domain.TileLand:   MakeGlyph(0x4E7D3A, '.'),
	domain.TileRocks:  MakeGlyph(0x808080, '^'),
	domain.TileTree:   MakeGlyph(0x228B22, 'T'),
	domain.TileStart:  MakeGlyph(0xFFD700, 'S'),
	domain.TileFinish: MakeGlyph(0xFF4500, 'F'),
	domain.TileEdge:   MakeGlyph(0x333333, '#'),
}

var actorGlyphs = map[domain.ActorKind]Glyph{
	domain.KindWalker:   MakeGlyph(0xE53935, 'w'),
	domain.KindDefender: MakeGlyph(0x1E88E5, 'D'),
	domain.KindSpawner:  MakeGlyph(0xAB47BC, '*'),
}

var unknownGlyph = MakeGlyph(0xFFFFFF, '?')

func TileGlyph(kind domain.TileKind) Glyph {
	if g, ok := tileGlyphs[kind]; ok {
		return g
	}
	return unknownGlyph
}

func ActorGlyph(kind domain.ActorKind) Glyph {
	if g, ok := actorGlyphs[kind]; ok {
		return g
	}
	return unknownGlyph
}

// Lines draws the battlefield row by row. A corporeal actor hides a spawner, a spawner hides its tile.
func Lines(w *domain.World, actors []domain.Actor, color bool) []string {
	cells := make([][]Glyph, w.Height)
	for y := range cells {
		cells[y] = make([]Glyph, w.Width)
		for x := range cells[y] {
			cells[y][x] = TileGlyph(w.Tiles[y][x].Kind)
		}
	}

	for _, pass := range []bool{false, true} {
		for _, a := range actors {
			if a.Corporeal() != pass || !w.InBounds(a.Pos) {
				continue
			}
			cells[a.Pos.Y][a.Pos.X] = ActorGlyph(a.Kind)
		}
	}

	out := make([]string, 0, w.Height)
	var sb strings.Builder
	for _, row := range cells {
		sb.Reset()
		for _, g := range row {
			if color {
				sb.WriteString(g.ANSI())
			} else {
				sb.WriteByte(g.Char())
			}
		}
		out = append(out, sb.String())
	}
	return out
}
