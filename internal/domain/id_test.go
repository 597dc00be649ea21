package domain

import (
	"encoding/json"
	"testing"
)

func TestActorID_Pack(t *testing.T) {
	tests := []struct {
		name  string
		kind  ActorKind
		index uint64
	}{
		{name: "walker", kind: KindWalker, index: 1},
		{name: "defender", kind: KindDefender, index: 42},
		{name: "spawner max index", kind: KindSpawner, index: maskIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := PackActorID(tt.kind, tt.index)
			if got := id.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
			if got := id.Index(); got != tt.index {
				t.Errorf("Index() = %v, want %v", got, tt.index)
			}
		})
	}
}

func TestActorID_IndexMasked(t *testing.T) {
	id := PackActorID(KindWalker, maskIndex+5)
	if id.Index() != 4 {
		t.Errorf("expected overflowing index to wrap to 4, got %d", id.Index())
	}
	if id.Kind() != KindWalker {
		t.Errorf("index overflow leaked into kind: %v", id.Kind())
	}
}

func TestActorID_JSON(t *testing.T) {
	id := PackActorID(KindDefender, 7)

	data, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if data[0] != '"' {
		t.Errorf("expected quoted id, got %s", data)
	}

	var back ActorID
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != id {
		t.Errorf("got %v, want %v", back, id)
	}

	// bare numbers are accepted too
	var bare ActorID
	if err := json.Unmarshal([]byte("12"), &bare); err != nil || bare != ActorID(12) {
		t.Errorf("bare number: got %v err %v", bare, err)
	}
}

func TestIDGenerator(t *testing.T) {
	gen := NewIDGenerator()

	a := gen.Next(KindSpawner)
	b := gen.Next(KindWalker)
	c := gen.Next(KindSpawner)

	if a == b || b == c || a == c {
		t.Fatalf("ids must be unique: %v %v %v", a, b, c)
	}
	if a.IsNil() {
		t.Error("first id must not be nil")
	}
	if b.Kind() != KindWalker {
		t.Errorf("kind not packed: %v", b.Kind())
	}
	if gen.Issued() != 3 {
		t.Errorf("Issued() = %d, want 3", gen.Issued())
	}
}

func TestIDGenerator_Independent(t *testing.T) {
	// Two sessions never share a counter.
	g1 := NewIDGenerator()
	g2 := NewIDGenerator()
	g1.Next(KindWalker)
	g1.Next(KindWalker)

	if g2.Next(KindWalker).Index() != 1 {
		t.Error("generators must not share state")
	}
}
