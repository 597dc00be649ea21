package domain

import (
	"fmt"
	"strings"
)

// TileKind is the terrain or role of a grid cell.
type TileKind uint8

const (
	TileUnknown TileKind = iota
	TileRoad
	TileLand
	TileRocks
	TileTree
	TileStart
	TileFinish
	TileEdge
)

var tileKindToString = map[TileKind]string{
	TileRoad:   "road",
	TileLand:   "land",
	TileRocks:  "rocks",
	TileTree:   "tree",
	TileStart:  "start",
	TileFinish: "finish",
	TileEdge:   "edge",
}

var tileStringToKind = map[string]TileKind{
	"road":   TileRoad,
	"land":   TileLand,
	"rocks":  TileRocks,
	"tree":   TileTree,
	"start":  TileStart,
	"finish": TileFinish,
	"edge":   TileEdge,
}

func (k TileKind) String() string {
	if val, ok := tileKindToString[k]; ok {
		return val
	}
	return "unknown"
}

// ParseTileKind is case-insensitive; unknown names map to TileUnknown.
func ParseTileKind(s string) TileKind {
	if val, ok := tileStringToKind[strings.ToLower(s)]; ok {
		return val
	}
	return TileUnknown
}

func (k TileKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *TileKind) UnmarshalText(text []byte) error {
	parsed := ParseTileKind(string(text))
	if parsed == TileUnknown {
		return fmt.Errorf("unknown tile kind %q", text)
	}
	*k = parsed
	return nil
}

// ActorKind tags a unit.
type ActorKind uint8

const (
	KindUnknown ActorKind = iota
	KindWalker
	KindDefender
	KindSpawner
)

var actorKindToString = map[ActorKind]string{
	KindWalker:   "WALKER",
	KindDefender: "DEFENDER",
	KindSpawner:  "SPAWNER",
}

var actorStringToKind = map[string]ActorKind{
	"WALKER":   KindWalker,
	"DEFENDER": KindDefender,
	"SPAWNER":  KindSpawner,
}

func (k ActorKind) String() string {
	if val, ok := actorKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseActorKind is case-insensitive; unknown names map to KindUnknown.
func ParseActorKind(s string) ActorKind {
	if val, ok := actorStringToKind[strings.ToUpper(s)]; ok {
		return val
	}
	return KindUnknown
}

func (k ActorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ActorKind) UnmarshalText(text []byte) error {
	parsed := ParseActorKind(string(text))
	if parsed == KindUnknown {
		return fmt.Errorf("unknown actor kind %q", text)
	}
	*k = parsed
	return nil
}
