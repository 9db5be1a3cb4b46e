package model

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

type IDGenerator interface {
	NewID() (string, error)
}

// UUIDGenerator issues version 7 UUIDs. They embed a millisecond timestamp
// in their leading bits, so sorting keys as strings keeps creation order.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("model: new id: %w", err)
	}
	return id.String(), nil
}

// SequenceGenerator issues zero-padded increasing keys.
type SequenceGenerator struct {
	Prefix string
	next   atomic.Uint64
}

func (g *SequenceGenerator) NewID() (string, error) {
	n := g.next.Add(1)
	return fmt.Sprintf("%s%012d", g.Prefix, n), nil
}
