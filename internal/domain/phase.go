package domain

// Phase is one category of simultaneous intents evaluated each tick.
type Phase uint8

const (
	PhaseUnknown Phase = iota
	PhaseAttack
	PhaseMove
	PhaseSpawn
)

var phaseToString = map[Phase]string{
	PhaseAttack: "ATTACK",
	PhaseMove:   "MOVE",
	PhaseSpawn:  "SPAWN",
}

func (p Phase) String() string {
	if val, ok := phaseToString[p]; ok {
		return val
	}
	return "UNKNOWN"
}
