package engine

import (
	"skirmish-server/internal/domain"

	"github.com/sirupsen/logrus"
)

// logOutcome writes the end-of-game line with the final census.
func (g *Game) logOutcome(outcome Outcome) {
	g.log.WithFields(logrus.Fields{
		"outcome":   outcome.String(),
		"tick":      g.Tick,
		"walkers":   domain.CountKind(g.Actors, domain.KindWalker),
		"defenders": domain.CountKind(g.Actors, domain.KindDefender),
	}).Info(outcomeMessage(outcome))
}

func outcomeMessage(o Outcome) string {
	switch o {
	case OutcomeTimeout:
		return "Turn limit reached"
	case OutcomeAttackersWin:
		return "A walker reached the finish"
	case OutcomeDefendersWin:
		return "All walkers are dead"
	case OutcomeStopped:
		return "Game stopped"
	default:
		return "Game ended"
	}
}
