package domain

import (
	"fmt"
	"strconv"
)

// ActorID is a packed identifier: [Kind (8) | Index (40)].
// Two actors are the same logical unit iff their ids are equal.
type ActorID uint64

// NilActorID never identifies a live actor; generators start at index 1.
const NilActorID ActorID = 0

const (
	bitsIndex = 40
	bitsKind  = 8

	shiftKind = bitsIndex

	maskIndex = (1 << bitsIndex) - 1
	maskKind  = (1 << bitsKind) - 1
)

// PackActorID builds an id from its parts. Values out of range are truncated.
func PackActorID(kind ActorKind, index uint64) ActorID {
	id := index & maskIndex
	id |= (uint64(kind) & maskKind) << shiftKind
	return ActorID(id)
}

func (id ActorID) Kind() ActorKind {
	return ActorKind((id >> shiftKind) & maskKind)
}

func (id ActorID) Index() uint64 {
	return uint64(id & maskIndex)
}

func (id ActorID) IsNil() bool {
	return id == NilActorID
}

// MarshalJSON writes the id as a string: JS clients lose precision above 2^53.
func (id ActorID) MarshalJSON() ([]byte, error) {
	s := strconv.FormatUint(uint64(id), 10)
	return []byte(`"` + s + `"`), nil
}

// UnmarshalJSON accepts both a quoted string and a bare number.
func (id *ActorID) UnmarshalJSON(data []byte) error {
	if len(data) > 1 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	val, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return err
	}
	*id = ActorID(val)
	return nil
}

// String renders [KIND:index] for logs.
func (id ActorID) String() string {
	return fmt.Sprintf("[%s:%d]", id.Kind(), id.Index())
}

// IDGenerator hands out actor ids for one game session.
// It is not safe for concurrent use; a session is driven by a single goroutine.
type IDGenerator struct {
	next uint64
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{next: 1}
}

// Next returns a fresh id. Indexes are shared across kinds, so no index is ever reused in a session.
func (g *IDGenerator) Next(kind ActorKind) ActorID {
	id := PackActorID(kind, g.next)
	g.next++
	return id
}

// Issued is the number of ids handed out since the last reset.
func (g *IDGenerator) Issued() uint64 {
	return g.next - 1
}
