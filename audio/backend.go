package audio

import (
	"github.com/mkivela/bandstand/player"
)

// Backend creates HTMLAudio-backed handles for the player engine, resolving
// sound identifiers through the voice bank.
type Backend struct {
	bank *Bank
}

// NewBackend creates a backend over a rendered bank.
func NewBackend(bank *Bank) *Backend {
	return &Backend{bank: bank}
}

// NewHandle creates a fresh handle for a sound identifier. Every call makes
// a new element, so simultaneous plays of the same identifier overlap.
func (b *Backend) NewHandle(soundID string) player.Handle {
	return NewClip(b.bank.Source(soundID))
}
