package engine

import (
	"strconv"

	"skirmish-server/internal/domain"
	"skirmish-server/pkg/api"
)

// BuildTickFrame turns a frame into the spectator DTO.
func BuildTickFrame(f Frame) api.TickFrame {
	frame := api.TickFrame{
		Type:   api.TypeTick,
		Tick:   f.Tick,
		Seed:   f.Seed,
		Actors: make([]api.ActorView, 0, len(f.Actors)),
	}

	if f.Outcome != OutcomeNone {
		frame.Type = api.TypeGameOver
		frame.Outcome = f.Outcome.String()
	}

	if f.World != nil {
		frame.Grid = &api.GridMeta{Width: f.World.Width, Height: f.World.Height}
		frame.Map = buildMapView(f.World)
	}

	for _, a := range f.Actors {
		frame.Actors = append(frame.Actors, toActorView(a))
	}
	return frame
}

func buildMapView(w *domain.World) []api.TileView {
	out := make([]api.TileView, 0, w.Width*w.Height)
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			tile := w.Tiles[y][x]
			out = append(out, api.TileView{X: x, Y: y, Kind: tile.Kind.String()})
		}
	}
	return out
}

func toActorView(a domain.Actor) api.ActorView {
	view := api.ActorView{
		ID:   strconv.FormatUint(uint64(a.ID), 10),
		Kind: a.Kind.String(),
	}
	view.Pos.X = a.Pos.X
	view.Pos.Y = a.Pos.Y

	if a.Mortal() {
		life := a.Life
		view.Life = &life
	}
	return view
}
