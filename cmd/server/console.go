package main

import (
	"skirmish-server/internal/domain"
	"skirmish-server/internal/engine"
	"skirmish-server/pkg/logger"
	"skirmish-server/pkg/render"

	"github.com/sirupsen/logrus"
)

// consoleRenderer logs a census line per tick. The map is drawn at debug level and on the final frame.
func consoleRenderer(color bool) engine.Renderer {
	log := logger.For("console")

	return engine.RendererFunc(func(f engine.Frame) {
		entry := log.WithFields(logrus.Fields{
			"tick":      f.Tick,
			"walkers":   domain.CountKind(f.Actors, domain.KindWalker),
			"defenders": domain.CountKind(f.Actors, domain.KindDefender),
		})
		if f.Outcome != engine.OutcomeNone {
			entry = entry.WithField("outcome", f.Outcome.String())
		}
		entry.Info("Tick")

		if !logger.Log.IsLevelEnabled(logrus.DebugLevel) && f.Outcome == engine.OutcomeNone {
			return
		}
		for _, line := range render.Lines(f.World, f.Actors, color) {
			log.Info(line)
		}
	})
}
