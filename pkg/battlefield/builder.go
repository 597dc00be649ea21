package battlefield

import (
	"fmt"
	"math/rand"

	"skirmish-server/internal/domain"
)

// Builder assembles a battlefield step by step. Steps must run in the order
// Generate uses them; each one only touches tile kinds, never the grid shape.
type Builder struct {
	params Params
	world  *domain.World
	rng    *rand.Rand
}

func NewBuilder(params Params, rng *rand.Rand) *Builder {
	return &Builder{
		params: params,
		world:  domain.NewWorld(params.Width, params.Height, domain.TileLand),
		rng:    rng,
	}
}

// WithLandscape redraws every tile from the landscape weights.
func (b *Builder) WithLandscape() *Builder {
	for y := 0; y < b.world.Height; y++ {
		for x := 0; x < b.world.Width; x++ {
			b.world.ReplaceTile(domain.Tile{Pos: domain.Position{X: x, Y: y}, Kind: randomLandscape(b.rng)})
		}
	}
	return b
}

// WithEdges marks the outer ring.
func (b *Builder) WithEdges() *Builder {
	for y := 0; y < b.world.Height; y++ {
		for x := 0; x < b.world.Width; x++ {
			if x == 0 || x == b.world.Width-1 || y == 0 || y == b.world.Height-1 {
				b.world.ReplaceTile(domain.Tile{Pos: domain.Position{X: x, Y: y}, Kind: domain.TileEdge})
			}
		}
	}
	return b
}

// WithStarts converts random edge tiles to starts.
func (b *Builder) WithStarts(n int) *Builder {
	for i := 0; i < n; i++ {
		b.convertRandom(domain.TileEdge, domain.TileStart)
	}
	return b
}

// WithFinishes converts random edge tiles to finishes.
func (b *Builder) WithFinishes(n int) *Builder {
	for i := 0; i < n; i++ {
		b.convertRandom(domain.TileEdge, domain.TileFinish)
	}
	return b
}

// WithoutEdges turns every remaining edge tile back into terrain.
func (b *Builder) WithoutEdges() *Builder {
	for _, t := range b.world.TilesOfKind(domain.TileEdge) {
		b.world.ReplaceTile(domain.Tile{Pos: t.Pos, Kind: randomLandscape(b.rng)})
	}
	return b
}

// WithPaths carves one path per (start, finish) pair and paves it.
// A stalled walk is retried up to attempts times.
func (b *Builder) WithPaths(attempts int) error {
	starts := b.world.Starts()
	finishes := b.world.Finishes()

	paths := make([]domain.Path, 0, len(starts)*len(finishes))
	for _, s := range starts {
		for _, f := range finishes {
			path, err := b.carveWithRetry(s.Pos, f.Pos, attempts)
			if err != nil {
				return err
			}
			paths = append(paths, path)
		}
	}

	for _, p := range paths {
		for _, pos := range p.Steps {
			t, _ := b.world.TileAt(pos)
			if t.Kind == domain.TileStart || t.Kind == domain.TileFinish {
				continue
			}
			b.world.ReplaceTile(domain.Tile{Pos: pos, Kind: domain.TileRoad})
		}
	}
	b.world.Paths = paths
	return nil
}

func (b *Builder) carveWithRetry(start, finish domain.Position, attempts int) (domain.Path, error) {
	var lastErr error
	for i := 0; i < attempts; i++ {
		path, err := carvePath(b.world, start, finish, b.rng)
		if err == nil {
			return path, nil
		}
		lastErr = err
	}
	return domain.Path{}, fmt.Errorf("carve %s -> %s after %d attempts: %w", start, finish, attempts, lastErr)
}

func (b *Builder) Build() *domain.World {
	return b.world
}

// convertRandom replaces one uniformly random tile of kind from with kind to.
func (b *Builder) convertRandom(from, to domain.TileKind) {
	t := mustPickTileOfKind(b.world, from, b.rng)
	b.world.ReplaceTile(domain.Tile{Pos: t.Pos, Kind: to})
}

// mustPickTileOfKind panics when the world has no tile of the kind.
// Params.Validate rules this out, so reaching the panic is a programming error.
func mustPickTileOfKind(w *domain.World, kind domain.TileKind, rng *rand.Rand) domain.Tile {
	candidates := w.TilesOfKind(kind)
	if len(candidates) == 0 {
		panic(fmt.Sprintf("battlefield: no tiles of kind %s in world", kind))
	}
	return candidates[rng.Intn(len(candidates))]
}
