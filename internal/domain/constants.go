package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidRules = errors.New("invalid rules")

// Rules holds the unit balance of a game.
type Rules struct {
	WalkerLife   int `yaml:"walkerLife" json:"walkerLife"`
	DefenderLife int `yaml:"defenderLife" json:"defenderLife"`

	WalkerDamage   int `yaml:"walkerDamage" json:"walkerDamage"`
	WalkerRange    int `yaml:"walkerRange" json:"walkerRange"`
	DefenderDamage int `yaml:"defenderDamage" json:"defenderDamage"`
	DefenderRange  int `yaml:"defenderRange" json:"defenderRange"`

	MoveRadius int `yaml:"moveRadius" json:"moveRadius"`

	// Chance for one spawn roll to produce a unit.
	WalkerSpawnChance   float64 `yaml:"walkerSpawnChance" json:"walkerSpawnChance"`
	DefenderSpawnChance float64 `yaml:"defenderSpawnChance" json:"defenderSpawnChance"`
}

// Default balance
const (
	DefaultWalkerLife   = 12
	DefaultDefenderLife = 10

	DefaultWalkerDamage   = 1
	DefaultWalkerRange    = 1
	DefaultDefenderDamage = 2
	DefaultDefenderRange  = 1

	DefaultMoveRadius = 1

	DefaultWalkerSpawnChance   = 0.5
	DefaultDefenderSpawnChance = 0.05
)

func DefaultRules() Rules {
	return Rules{
		WalkerLife:          DefaultWalkerLife,
		DefenderLife:        DefaultDefenderLife,
		WalkerDamage:        DefaultWalkerDamage,
		WalkerRange:         DefaultWalkerRange,
		DefenderDamage:      DefaultDefenderDamage,
		DefenderRange:       DefaultDefenderRange,
		MoveRadius:          DefaultMoveRadius,
		WalkerSpawnChance:   DefaultWalkerSpawnChance,
		DefenderSpawnChance: DefaultDefenderSpawnChance,
	}
}

// DefenderCap is the most defenders a world of this size may hold.
func DefenderCap(w *World) int {
	return min(w.Width, w.Height)
}

// LifeOf returns the starting life of a kind.
func (r Rules) LifeOf(kind ActorKind) int {
	switch kind {
	case KindWalker:
		return r.WalkerLife
	case KindDefender:
		return r.DefenderLife
	case KindSpawner:
		return LifeUnbounded
	default:
		return 1
	}
}

// Validate rejects balances that would create dead units or impossible odds.
func (r Rules) Validate() error {
	if r.WalkerLife < 1 || r.DefenderLife < 1 {
		return fmt.Errorf("%w: lives must be positive, got walker=%d defender=%d", ErrInvalidRules, r.WalkerLife, r.DefenderLife)
	}
	if r.WalkerDamage < 0 || r.DefenderDamage < 0 {
		return fmt.Errorf("%w: damage cannot be negative", ErrInvalidRules)
	}
	if r.WalkerRange < 0 || r.DefenderRange < 0 || r.MoveRadius < 0 {
		return fmt.Errorf("%w: ranges and move radius cannot be negative", ErrInvalidRules)
	}
	for name, p := range map[string]float64{"walkerSpawnChance": r.WalkerSpawnChance, "defenderSpawnChance": r.DefenderSpawnChance} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: %s must be within [0, 1], got %v", ErrInvalidRules, name, p)
		}
	}
	return nil
}
