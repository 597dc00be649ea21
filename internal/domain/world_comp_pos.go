package domain

// Chebyshev returns the king-move distance to another cell.
// Attack ranges and spawner adjacency are measured with it.
func (p Position) Chebyshev(other Position) int {
	dx := abs(p.X - other.X)
	dy := abs(p.Y - other.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// InBox reports whether other lies inside the square of the given radius centered on p.
func (p Position) InBox(other Position, radius int) bool {
	return p.Chebyshev(other) <= radius
}

// IsOrthogonalNeighbour is true when the cells differ by exactly one unit along exactly one axis.
func (p Position) IsOrthogonalNeighbour(other Position) bool {
	dx := abs(p.X - other.X)
	dy := abs(p.Y - other.Y)
	return dx+dy == 1
}

// Shift returns a new position offset by (dx, dy). p itself is not modified.
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
