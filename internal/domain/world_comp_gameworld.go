package domain

// InBounds reports whether pos lies inside the grid.
func (w *World) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < w.Width && pos.Y >= 0 && pos.Y < w.Height
}

// TileAt returns the tile at pos. ok is false outside the grid.
func (w *World) TileAt(pos Position) (Tile, bool) {
	if !w.InBounds(pos) {
		return Tile{}, false
	}
	return w.Tiles[pos.Y][pos.X], true
}

// ReplaceTile substitutes the tile at t.Pos with t.
// Positions outside the grid are ignored: the grid shape is fixed.
func (w *World) ReplaceTile(t Tile) {
	if !w.InBounds(t.Pos) {
		return
	}
	w.Tiles[t.Pos.Y][t.Pos.X] = t
}

// TilesOfKind lists every tile of the kind in row-major order.
func (w *World) TilesOfKind(kind TileKind) []Tile {
	var out []Tile
	for _, row := range w.Tiles {
		for _, t := range row {
			if t.Kind == kind {
				out = append(out, t)
			}
		}
	}
	return out
}

// CountKind returns how many tiles have the kind.
func (w *World) CountKind(kind TileKind) int {
	n := 0
	for _, row := range w.Tiles {
		for _, t := range row {
			if t.Kind == kind {
				n++
			}
		}
	}
	return n
}

// TilesOfKindAround lists tiles of the kind inside the Chebyshev box of radius around pos.
func (w *World) TilesOfKindAround(kind TileKind, pos Position, radius int) []Tile {
	var out []Tile
	for y := pos.Y - radius; y <= pos.Y+radius; y++ {
		for x := pos.X - radius; x <= pos.X+radius; x++ {
			t, ok := w.TileAt(Position{X: x, Y: y})
			if ok && t.Kind == kind {
				out = append(out, t)
			}
		}
	}
	return out
}

func (w *World) Starts() []Tile {
	return w.TilesOfKind(TileStart)
}

func (w *World) Finishes() []Tile {
	return w.TilesOfKind(TileFinish)
}

// IsFinish reports whether pos is a finish tile.
func (w *World) IsFinish(pos Position) bool {
	t, ok := w.TileAt(pos)
	return ok && t.Kind == TileFinish
}

// NextPlaces returns, for every route through pos, the cell radius steps further along it.
// Routes where that cell would lie past the finish contribute nothing.
func (w *World) NextPlaces(pos Position, radius int) []Position {
	var out []Position
	for _, p := range w.Paths {
		route := p.Route()
		for k, cell := range route {
			if cell != pos {
				continue
			}
			if next := k + radius; next >= 0 && next < len(route) {
				out = append(out, route[next])
			}
		}
	}
	return out
}
