package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrEmptyPayload   = errors.New("payload is required")
	ErrInvalidPayload = errors.New("invalid payload")
)

// Validator is implemented by payloads that can check themselves.
type Validator interface {
	Validate() error
}

// MaxGridSide keeps one START from asking for an absurd world.
const MaxGridSide = 200

func (p StartPayload) Validate() error {
	if p.Width < 3 || p.Height < 3 {
		return fmt.Errorf("%w: grid must be at least 3x3, got %dx%d", ErrInvalidPayload, p.Width, p.Height)
	}
	if p.Width > MaxGridSide || p.Height > MaxGridSide {
		return fmt.Errorf("%w: grid side is limited to %d", ErrInvalidPayload, MaxGridSide)
	}
	if p.Starts < 1 || p.Finishes < 1 {
		return fmt.Errorf("%w: need at least one start and one finish", ErrInvalidPayload)
	}
	ring := 2*p.Width + 2*p.Height - 4
	if p.Starts+p.Finishes > ring {
		return fmt.Errorf("%w: %d starts and finishes do not fit on a border of %d tiles", ErrInvalidPayload, p.Starts+p.Finishes, ring)
	}
	return nil
}

// DecodePayload unmarshals raw into T and validates it.
func DecodePayload[T Validator](raw json.RawMessage) (T, error) {
	var p T
	if len(raw) == 0 {
		return p, ErrEmptyPayload
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}
