package agent

import (
	"context"

	"skirmish-server/internal/engine"
	"skirmish-server/pkg/api"
	"skirmish-server/pkg/battlefield"
	"skirmish-server/pkg/logger"
	"skirmish-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Autoplay is an in-process spectator that keeps the server busy:
// whenever a game ends on its own it starts the next one.
//
// It subscribes to the hub like any WebSocket client and only reacts to GAME_OVER frames.
// Games ended by STOP (or replaced by a spectator's START) are not restarted.
type Autoplay struct {
	ID      string
	Service *engine.GameService
	Params  battlefield.Params
	// MaxGames stops the agent after that many finished games; 0 means never.
	MaxGames int

	Inbox chan api.TickFrame
	Tally map[string]int

	log *logrus.Entry
}

func NewAutoplay(service *engine.GameService, params battlefield.Params, maxGames int) *Autoplay {
	id := "autoplay-" + utils.GenerateID()
	return &Autoplay{
		ID:       id,
		Service:  service,
		Params:   params,
		MaxGames: maxGames,
		Inbox:    service.Hub.Register(id),
		Tally:    make(map[string]int),
		log: logger.Log.WithFields(logrus.Fields{
			"component":    "autoplay",
			"spectator_id": id,
		}),
	}
}

// Run starts the first game and blocks until ctx is done, MaxGames is reached or the hub drops the agent.
func (a *Autoplay) Run(ctx context.Context) error {
	defer a.Service.Hub.Unregister(a.ID)

	if err := a.Service.StartGame(a.Params); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case frame, ok := <-a.Inbox:
			if !ok {
				return nil
			}
			if frame.Type != api.TypeGameOver || frame.Outcome == engine.OutcomeStopped.String() {
				continue
			}

			a.Tally[frame.Outcome]++
			a.log.WithFields(logrus.Fields{
				"seed":    frame.Seed,
				"outcome": frame.Outcome,
				"ticks":   frame.Tick,
				"played":  a.Played(),
			}).Info("Game finished")

			if a.MaxGames > 0 && a.Played() >= a.MaxGames {
				return nil
			}
			if err := a.Service.StartGame(a.Params); err != nil {
				return err
			}
		}
	}
}

// Played counts games that ended with a result.
func (a *Autoplay) Played() int {
	n := 0
	for _, c := range a.Tally {
		n += c
	}
	return n
}
