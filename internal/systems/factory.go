package systems

import "skirmish-server/internal/domain"

// NewWalker creates a walker with the default life from rules.
func NewWalker(ids *domain.IDGenerator, rules domain.Rules, pos domain.Position) domain.Actor {
	return domain.Actor{
		ID:   ids.Next(domain.KindWalker),
		Kind: domain.KindWalker,
		Pos:  pos,
		Life: rules.LifeOf(domain.KindWalker),
	}
}

// NewDefender creates a defender. An explicit life overrides the default.
func NewDefender(ids *domain.IDGenerator, rules domain.Rules, pos domain.Position, life ...int) domain.Actor {
	l := rules.LifeOf(domain.KindDefender)
	if len(life) > 0 {
		l = life[0]
	}
	return domain.Actor{
		ID:   ids.Next(domain.KindDefender),
		Kind: domain.KindDefender,
		Pos:  pos,
		Life: l,
	}
}

// NewSpawner creates a spawner; its life is unbounded.
func NewSpawner(ids *domain.IDGenerator, pos domain.Position) domain.Actor {
	return domain.Actor{
		ID:   ids.Next(domain.KindSpawner),
		Kind: domain.KindSpawner,
		Pos:  pos,
		Life: domain.LifeUnbounded,
	}
}
