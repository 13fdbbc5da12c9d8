package core

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces opaque goal identifiers.
type IDGenerator interface {
	NewID() string
	// Strategy names the generator for introspection and config.
	Strategy() string
}

// UUIDGenerator issues random (v4) UUID strings.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string    { return uuid.NewString() }
func (UUIDGenerator) Strategy() string { return "uuid" }

// CounterGenerator issues monotonically increasing decimal ids starting at 1.
// It is safe for concurrent use.
type CounterGenerator struct {
	next atomic.Uint64
}

func (c *CounterGenerator) NewID() string {
	return strconv.FormatUint(c.next.Add(1), 10)
}

func (c *CounterGenerator) Strategy() string { return "counter" }
