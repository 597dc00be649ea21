package engine

import "skirmish-server/internal/domain"

// Outcome is why a game ended.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeTimeout
	OutcomeAttackersWin
	OutcomeDefendersWin
	OutcomeStopped
)

var outcomeToString = map[Outcome]string{
	OutcomeNone:         "NONE",
	OutcomeTimeout:      "TIMEOUT",
	OutcomeAttackersWin: "ATTACKERS_WIN",
	OutcomeDefendersWin: "DEFENDERS_WIN",
	OutcomeStopped:      "STOPPED",
}

func (o Outcome) String() string {
	if val, ok := outcomeToString[o]; ok {
		return val
	}
	return "UNKNOWN"
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// IsOver checks the end conditions in priority order:
// the turn limit, then a walker standing on a finish, then no walkers left.
func IsOver(actors []domain.Actor, w *domain.World, tick, maxTick int) (bool, Outcome) {
	if tick >= maxTick {
		return true, OutcomeTimeout
	}

	walkers := 0
	for _, a := range actors {
		if a.Kind != domain.KindWalker {
			continue
		}
		if w.IsFinish(a.Pos) {
			return true, OutcomeAttackersWin
		}
		walkers++
	}

	if walkers == 0 {
		return true, OutcomeDefendersWin
	}
	return false, OutcomeNone
}
