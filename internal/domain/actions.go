package domain

// ProposalKind tags what an action intends to do.
type ProposalKind uint8

const (
	ProposalStay ProposalKind = iota
	ProposalSelfMove
	ProposalTargetDamage
	ProposalSpawn
)

var proposalKindToString = map[ProposalKind]string{
	ProposalStay:         "STAY",
	ProposalSelfMove:     "SELF_MOVE",
	ProposalTargetDamage: "TARGET_DAMAGE",
	ProposalSpawn:        "SPAWN",
}

func (k ProposalKind) String() string {
	if val, ok := proposalKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// Proposal is the not yet committed effect of one actor's action in one phase.
//
//   - Stay: Actor keeps its state.
//   - SelfMove: Actor relocates to To.
//   - TargetDamage: Actor (the target, not the author) loses Damage life.
//   - Spawn: Spawned joins the battlefield.
//
// Source is the author in every case, which lets logs and tests tell
// "who asked" apart from "who is affected".
type Proposal struct {
	Kind    ProposalKind
	Actor   ActorID
	Source  ActorID
	To      Position
	Damage  int
	Spawned Actor
}

func Stay(self Actor) Proposal {
	return Proposal{Kind: ProposalStay, Actor: self.ID, Source: self.ID}
}

func MoveTo(self Actor, to Position) Proposal {
	return Proposal{Kind: ProposalSelfMove, Actor: self.ID, Source: self.ID, To: to}
}

func Damage(source, target Actor, amount int) Proposal {
	return Proposal{Kind: ProposalTargetDamage, Actor: target.ID, Source: source.ID, Damage: amount}
}

func SpawnActor(source, spawned Actor) Proposal {
	return Proposal{Kind: ProposalSpawn, Actor: spawned.ID, Source: source.ID, Spawned: spawned}
}

// IsNoop is true when resolving the proposal changes nothing.
func (p Proposal) IsNoop() bool {
	return p.Kind == ProposalStay
}
