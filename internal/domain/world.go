package domain

import "fmt"

// Position identifies a single grid cell.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Tile is one grid cell. Its Pos always mirrors its index in World.Tiles.
type Tile struct {
	Pos  Position `json:"pos"`
	Kind TileKind `json:"kind"`
}

// Path is the carved route between one start and one finish.
// Steps excludes Start and ends with Finish.
type Path struct {
	Start  Position   `json:"start"`
	Finish Position   `json:"finish"`
	Steps  []Position `json:"steps"`
}

// Route returns the full walkable sequence, Start first.
func (p Path) Route() []Position {
	route := make([]Position, 0, len(p.Steps)+1)
	route = append(route, p.Start)
	return append(route, p.Steps...)
}

// World is the battlefield. Width and Height never change after NewWorld;
// only tile kinds are replaced, and only while the world is being generated.
type World struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Tiles  [][]Tile `json:"tiles"` // [y][x]
	Paths  []Path   `json:"paths"`
}

// NewWorld allocates a width x height grid where every tile has the given kind.
func NewWorld(width, height int, fill TileKind) *World {
	tiles := make([][]Tile, height)
	for y := 0; y < height; y++ {
		row := make([]Tile, width)
		for x := 0; x < width; x++ {
			row[x] = Tile{Pos: Position{X: x, Y: y}, Kind: fill}
		}
		tiles[y] = row
	}
	return &World{Width: width, Height: height, Tiles: tiles}
}
