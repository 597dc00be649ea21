package engine

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"skirmish-server/internal/domain"
	"skirmish-server/internal/engine/handlers"
	"skirmish-server/internal/engine/handlers/actions"
	"skirmish-server/internal/systems"
	"skirmish-server/pkg/battlefield"
	"skirmish-server/pkg/logger"
	"skirmish-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Frame is what a renderer sees after a tick. Actors must be treated as read-only.
type Frame struct {
	Tick    int
	Seed    int64
	World   *domain.World
	Actors  []domain.Actor
	Outcome Outcome
}

// Renderer draws a frame. It is called on the game goroutine.
type Renderer interface {
	Render(f Frame)
}

type RendererFunc func(f Frame)

func (fn RendererFunc) Render(f Frame) { fn(f) }

// Signal is what a Waiter tells the loop after a tick.
type Signal uint8

const (
	SignalContinue Signal = iota
	SignalStop
)

// Waiter paces the loop between ticks.
type Waiter interface {
	Wait(ctx context.Context) Signal
}

type WaiterFunc func(ctx context.Context) Signal

func (fn WaiterFunc) Wait(ctx context.Context) Signal { return fn(ctx) }

// NoWait continues immediately unless ctx is done.
var NoWait Waiter = WaiterFunc(func(ctx context.Context) Signal {
	if ctx.Err() != nil {
		return SignalStop
	}
	return SignalContinue
})

// DelayWaiter sleeps d between ticks and stops as soon as ctx is done.
func DelayWaiter(d time.Duration) Waiter {
	if d <= 0 {
		return NoWait
	}
	return WaiterFunc(func(ctx context.Context) Signal {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return SignalStop
		case <-timer.C:
			return SignalContinue
		}
	})
}

// Result is a finished game.
type Result struct {
	Seed    int64
	World   *domain.World
	History [][]domain.Actor
	Outcome Outcome
	Ticks   int
}

// Game is one session: a world, its actors and the turn counter.
// A Game is driven by one goroutine; it is not safe for concurrent use.
type Game struct {
	Config Config
	World  *domain.World
	Actors []domain.Actor
	Tick   int

	// History holds the actor generation after every tick.
	History [][]domain.Actor

	table *handlers.Table
	ids   *domain.IDGenerator
	rng   *rand.Rand
	log   *logrus.Entry
}

// DefaultTable wires the actions of every kind.
func DefaultTable() *handlers.Table {
	return handlers.NewTable().
		Register(domain.KindWalker, domain.PhaseAttack, actions.HandleAttack).
		Register(domain.KindWalker, domain.PhaseMove, actions.HandleMove).
		Register(domain.KindDefender, domain.PhaseAttack, actions.HandleAttack).
		Register(domain.KindSpawner, domain.PhaseSpawn, actions.HandleSpawn)
}

// NewGame starts a session: fresh ids, a generated world and the initial roster.
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	rng := utils.NewRng(cfg.Seed)
	ids := domain.NewIDGenerator()

	world, err := battlefield.Generate(cfg.Params(), rng)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{
		Config: cfg,
		World:  world,
		Actors: systems.InitialActors(world, ids, cfg.Rules, rng),
		table:  DefaultTable(),
		ids:    ids,
		rng:    rng,
		log: logger.Log.WithFields(logrus.Fields{
			"component": "game",
			"seed":      cfg.Seed,
		}),
	}

	g.log.WithFields(logrus.Fields{
		"width":  world.Width,
		"height": world.Height,
		"paths":  len(world.Paths),
		"actors": len(g.Actors),
	}).Info("Game started")

	return g, nil
}

// RunTick runs every phase once. Each phase sees the result of the previous one.
func (g *Game) RunTick() []domain.Actor {
	for _, phase := range PhasesFor(g.Actors) {
		g.Actors = g.runPhase(phase)
	}
	return g.Actors
}

// runPhase collects every actor's proposal against one frozen snapshot and resolves them together.
func (g *Game) runPhase(phase domain.Phase) []domain.Actor {
	snapshot := g.Actors
	proposals := make([]domain.Proposal, 0, len(snapshot))

	for _, actor := range snapshot {
		ctx := handlers.Context{
			Actor:  actor,
			Actors: snapshot,
			World:  g.World,
			Rules:  g.Config.Rules,
			IDs:    g.ids,
			Rng:    g.rng,
		}
		proposals = append(proposals, g.table.Propose(phase, ctx))
	}

	next := Resolve(snapshot, proposals, WithDefenderCap(domain.DefenderCap(g.World)))
	g.log.WithFields(logrus.Fields{
		"tick":   g.Tick,
		"phase":  phase.String(),
		"before": len(snapshot),
		"after":  len(next),
	}).Trace("Phase resolved")
	return next
}

// Run plays until the game is over or the waiter says stop.
// The final frame, carrying the outcome, is rendered once more before returning.
func (g *Game) Run(ctx context.Context, r Renderer, w Waiter) Result {
	if w == nil {
		w = NoWait
	}

	outcome := OutcomeNone
	for {
		if over, reason := IsOver(g.Actors, g.World, g.Tick, g.Config.MaxTurns); over {
			outcome = reason
			break
		}

		g.RunTick()
		g.History = append(g.History, g.Actors)
		if r != nil {
			r.Render(g.frame(OutcomeNone))
		}

		if w.Wait(ctx) == SignalStop {
			outcome = OutcomeStopped
			g.log.WithField("tick", g.Tick).Info("Game stopped by user")
			break
		}
		g.Tick++
	}

	g.logOutcome(outcome)
	if r != nil {
		r.Render(g.frame(outcome))
	}

	return Result{
		Seed:    g.Config.Seed,
		World:   g.World,
		History: g.History,
		Outcome: outcome,
		Ticks:   len(g.History),
	}
}

func (g *Game) frame(outcome Outcome) Frame {
	return Frame{
		Tick:    g.Tick,
		Seed:    g.Config.Seed,
		World:   g.World,
		Actors:  g.Actors,
		Outcome: outcome,
	}
}
