package domain

import (
	"fmt"
	"math"
)

// LifeUnbounded marks an actor that no amount of damage can remove.
const LifeUnbounded = math.MaxInt32

// Actor is one unit on the battlefield. Actors are values: actions never mutate them,
// the resolver produces the next generation.
type Actor struct {
	ID   ActorID   `json:"id"`
	Kind ActorKind `json:"kind"`
	Pos  Position  `json:"pos"`
	Life int       `json:"life"`
}

// Mortal is false for actors with unbounded life.
func (a Actor) Mortal() bool {
	return a.Life != LifeUnbounded
}

func (a Actor) Alive() bool {
	return a.Life > 0
}

// Corporeal actors occupy their cell; spawners do not.
func (a Actor) Corporeal() bool {
	return a.Kind != KindSpawner
}

// SameActor compares identity only.
func (a Actor) SameActor(other Actor) bool {
	return a.ID == other.ID
}

// TakeDamage returns a copy with life reduced by amount. Unbounded actors are returned unchanged.
func (a Actor) TakeDamage(amount int) Actor {
	if !a.Mortal() {
		return a
	}
	a.Life -= amount
	return a
}

func (a Actor) String() string {
	life := fmt.Sprintf("%d", a.Life)
	if !a.Mortal() {
		life = "inf"
	}
	return fmt.Sprintf("%s %s at %s life=%s", a.ID, a.Kind, a.Pos, life)
}

// CountKind returns the number of actors of the kind.
func CountKind(actors []Actor, kind ActorKind) int {
	n := 0
	for _, a := range actors {
		if a.Kind == kind {
			n++
		}
	}
	return n
}
