package model

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Identity is an opaque, globally unique token minted once per element.
// The zero value means "no identity".
type Identity string

// IsZero reports whether the identity is unset.
func (id Identity) IsZero() bool { return id == "" }

// IdentityAllocator mints element identities.
type IdentityAllocator interface {
	Next() Identity
}

// SequentialAllocator mints deterministic identities "e1", "e2", ...
// It is safe for concurrent use.
type SequentialAllocator struct {
	n atomic.Uint64
}

// NewSequentialAllocator returns an allocator starting at "e1".
func NewSequentialAllocator() *SequentialAllocator {
	return &SequentialAllocator{}
}

// Next returns the next identity.
func (a *SequentialAllocator) Next() Identity {
	return Identity("e" + strconv.FormatUint(a.n.Add(1), 10))
}

// Reset restarts the sequence. Identities minted before the reset may be
// handed out again, so only reset between independent models.
func (a *SequentialAllocator) Reset() {
	a.n.Store(0)
}

// UUIDAllocator mints random version 4 UUID identities.
type UUIDAllocator struct{}

// NewUUIDAllocator returns an allocator backed by google/uuid.
func NewUUIDAllocator() UUIDAllocator {
	return UUIDAllocator{}
}

// Next returns a fresh random identity.
func (UUIDAllocator) Next() Identity {
	return Identity(uuid.NewString())
}

var (
	_ IdentityAllocator = (*SequentialAllocator)(nil)
	_ IdentityAllocator = UUIDAllocator{}
)
