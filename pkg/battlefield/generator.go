package battlefield

import (
	"errors"
	"fmt"
	"math/rand"

	"skirmish-server/internal/domain"
	"skirmish-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Landscape weights, cumulative: tree, then rocks, the rest is land.
const (
	treeThreshold  = 0.3
	rocksThreshold = 0.5
)

// Path carving limits.
const (
	// maxPathAttempts bounds how many times a stalled path is re-carved before generation fails.
	maxPathAttempts = 8
	walkStepFactor  = 4
)

var (
	ErrInvalidParams = errors.New("invalid battlefield params")
	ErrPathStalled   = errors.New("path walk exceeded its step bound")
)

// Params describes the battlefield to generate.
type Params struct {
	Width    int `yaml:"width" json:"width"`
	Height   int `yaml:"height" json:"height"`
	Starts   int `yaml:"starts" json:"starts"`
	Finishes int `yaml:"finishes" json:"finishes"`
}

// Validate rejects configurations the generator can never satisfy.
func (p Params) Validate() error {
	if p.Width < 3 || p.Height < 3 {
		return fmt.Errorf("%w: size %dx%d, need at least 3x3", ErrInvalidParams, p.Width, p.Height)
	}
	if p.Starts < 1 || p.Finishes < 1 {
		return fmt.Errorf("%w: need at least one start and one finish, got %d/%d", ErrInvalidParams, p.Starts, p.Finishes)
	}
	if ring := ringSize(p.Width, p.Height); p.Starts+p.Finishes > ring {
		return fmt.Errorf("%w: %d starts + %d finishes do not fit on %d edge tiles", ErrInvalidParams, p.Starts, p.Finishes, ring)
	}
	return nil
}

func ringSize(width, height int) int {
	return 2*width + 2*height - 4
}

// Generate builds a battlefield with a carved path for every (start, finish) pair.
// The result only depends on params and the state of rng.
func Generate(params Params, rng *rand.Rand) (*domain.World, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	genLogger := logger.Log.WithFields(logrus.Fields{
		"component": "battlefield",
		"width":     params.Width,
		"height":    params.Height,
		"starts":    params.Starts,
		"finishes":  params.Finishes,
	})

	b := NewBuilder(params, rng).
		WithLandscape().
		WithEdges().
		WithStarts(params.Starts).
		WithFinishes(params.Finishes).
		WithoutEdges()

	if err := b.WithPaths(maxPathAttempts); err != nil {
		genLogger.WithError(err).Error("Battlefield generation failed.")
		return nil, err
	}

	world := b.Build()
	genLogger.WithFields(logrus.Fields{
		"paths": len(world.Paths),
		"roads": world.CountKind(domain.TileRoad),
	}).Debug("Battlefield generated.")

	return world, nil
}

// randomLandscape draws an ordinary terrain kind.
func randomLandscape(rng *rand.Rand) domain.TileKind {
	r := rng.Float64()
	switch {
	case r < treeThreshold:
		return domain.TileTree
	case r < rocksThreshold:
		return domain.TileRocks
	default:
		return domain.TileLand
	}
}
