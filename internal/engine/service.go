package engine

import (
	"context"
	"errors"
	"sync"

	"skirmish-server/internal/network"
	"skirmish-server/pkg/battlefield"
	"skirmish-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

var ErrNoGame = errors.New("no game is running")

// GameService runs at most one game at a time and publishes its frames to the hub.
type GameService struct {
	Hub *network.Broadcaster

	base Config

	// startMu serialises StartGame so two starts never race for the slot.
	startMu sync.Mutex

	mu      sync.Mutex
	started int
	cancel  context.CancelFunc
	done    chan struct{}
	current *Frame
	last    *Result
}

func NewService(base Config, hub *network.Broadcaster) *GameService {
	if hub == nil {
		hub = network.NewBroadcaster()
	}
	return &GameService{Hub: hub, base: base}
}

// StartGame stops the running game, if any, and starts a new one on a fresh world.
// Game N of the service uses seed base + N so every game is reproducible from the master seed.
func (s *GameService) StartGame(params battlefield.Params) error {
	s.startMu.Lock()
	defer s.startMu.Unlock()

	s.StopGame()

	s.mu.Lock()
	cfg := s.base.WithParams(params)
	cfg.Seed = s.base.Seed + int64(s.started)
	s.mu.Unlock()

	g, err := NewGame(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	s.mu.Lock()
	s.started++
	s.cancel = cancel
	s.done = done
	s.current = nil
	s.mu.Unlock()

	go func() {
		defer close(done)
		res := g.Run(ctx, RendererFunc(s.publish), DelayWaiter(cfg.TickDelay))

		s.mu.Lock()
		s.last = &res
		s.mu.Unlock()
	}()

	return nil
}

// StopGame asks the running game to stop and waits until its loop has returned.
func (s *GameService) StopGame() bool {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return false
	}
	cancel()
	<-done
	return true
}

// Wait blocks until the running game ends on its own.
func (s *GameService) Wait() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Current returns the last frame of the running or just finished game.
func (s *GameService) Current() (Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Frame{}, ErrNoGame
	}
	return *s.current, nil
}

// LastResult returns the most recently finished game.
func (s *GameService) LastResult() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return Result{}, false
	}
	return *s.last, true
}

func (s *GameService) publish(f Frame) {
	s.mu.Lock()
	s.current = &f
	s.mu.Unlock()

	s.Hub.Broadcast(BuildTickFrame(f))

	if f.Outcome != OutcomeNone {
		logger.Log.WithFields(logrus.Fields{
			"component":  "game_service",
			"outcome":    f.Outcome.String(),
			"spectators": s.Hub.SubscriberCount(),
		}).Info("Final frame published")
	}
}
