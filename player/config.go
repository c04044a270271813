package player

import "time"

// Config holds the tunable playback parameters of the dispatcher.
type Config struct {
	// Volumes (0.0 - 1.0)
	PadVolume    float64 // discrete plays on pads and keys
	StringVolume float64 // discrete plucks on guitar/bass strings
	StrumVolume  float64 // transient strums while dragging

	// Visual feedback durations
	PluckVibration time.Duration // string vibration after a discrete pluck
	StrumVibration time.Duration // string vibration after a glancing strum
}

// DefaultConfig is the stock tuning. A discrete pluck is a held, ringing note
// so its vibration outlasts the brief flick of a strum.
var DefaultConfig = Config{
	PadVolume:      1.0,
	StringVolume:   0.3,
	StrumVolume:    0.4,
	PluckVibration: 1000 * time.Millisecond,
	StrumVibration: 300 * time.Millisecond,
}
