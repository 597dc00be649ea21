package battlefield

import (
	"fmt"
	"math/rand"

	"skirmish-server/internal/domain"
)

// carvePath walks from start to finish, detouring through the midpoint between them
// so that paths are not a single straight line.
func carvePath(w *domain.World, start, finish domain.Position, rng *rand.Rand) (domain.Path, error) {
	maxSteps := walkStepFactor * (w.Width + w.Height)
	path := domain.Path{Start: start, Finish: finish}

	from := start
	if mid, ok := waypoint(w, start, finish); ok {
		leg, err := walk(w, start, mid, rng, maxSteps)
		if err != nil {
			return domain.Path{}, err
		}
		path.Steps = append(path.Steps, leg...)
		from = mid
	}

	leg, err := walk(w, from, finish, rng, maxSteps)
	if err != nil {
		return domain.Path{}, err
	}
	path.Steps = append(path.Steps, leg...)
	return path, nil
}

// waypoint returns the midpoint cell unless it is an endpoint or a start/finish tile.
func waypoint(w *domain.World, start, finish domain.Position) (domain.Position, bool) {
	mid := domain.Position{X: (start.X + finish.X) / 2, Y: (start.Y + finish.Y) / 2}
	if mid == start || mid == finish {
		return mid, false
	}
	t, ok := w.TileAt(mid)
	if !ok || t.Kind == domain.TileStart || t.Kind == domain.TileFinish {
		return mid, false
	}
	return mid, true
}

// walk greedily steps one cell at a time from `from` towards `to`.
// The returned cells exclude `from` and end with `to`.
// When both axes differ the axis is a coin flip; steps off the grid are retried.
func walk(w *domain.World, from, to domain.Position, rng *rand.Rand, maxSteps int) ([]domain.Position, error) {
	var cells []domain.Position
	cur := from

	for steps := 0; cur != to; steps++ {
		if steps >= maxSteps {
			return nil, fmt.Errorf("%w: %s -> %s stuck at %s", ErrPathStalled, from, to, cur)
		}

		dx := sign(to.X - cur.X)
		dy := sign(to.Y - cur.Y)

		var next domain.Position
		switch {
		case dx != 0 && dy != 0:
			if rng.Intn(2) == 0 {
				next = cur.Shift(dx, 0)
			} else {
				next = cur.Shift(0, dy)
			}
		case dx != 0:
			next = cur.Shift(dx, 0)
		default:
			next = cur.Shift(0, dy)
		}

		if !w.InBounds(next) {
			continue
		}
		cur = next
		cells = append(cells, cur)
	}

	return cells, nil
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
