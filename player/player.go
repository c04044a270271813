package player

import "time"

// Handle is a playable audio resource bound to one sound identifier. Play is
// fire and forget: a start failure (autoplay policy, resource not ready) is
// reported asynchronously through the callback, matching the promise returned
// by HTMLMediaElement.play. Implementations log the failure themselves; the
// callback lets the dispatcher react to it.
type Handle interface {
	Play(onStartFailure func(error))
	Pause()
	Seek(seconds float64)
	SetVolume(volume float64)
	OnEnded(fn func())
}

// Backend creates handles for sound identifiers. Each call returns a fresh,
// independent handle; caching is the registry's concern.
type Backend interface {
	NewHandle(soundID string) Handle
}

// Scheduler defers a callback onto the event loop after a fixed delay.
// The browser implementation is setTimeout; tests substitute a fake clock.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Player is the interaction and playback controller. It owns the sound
// registry, the exclusivity group and the drag tracker, and dispatches the
// two play modes: discrete toggle plays and transient strums. Everything
// runs to completion on the host event loop; there is no locking.
type Player struct {
	cfg      Config
	backend  Backend
	sched    Scheduler
	registry *Registry
	group    []*Element
	drag     DragTracker
}

// New creates a player with an empty exclusivity group.
func New(backend Backend, sched Scheduler, cfg Config) *Player {
	return &Player{
		cfg:      cfg,
		backend:  backend,
		sched:    sched,
		registry: NewRegistry(backend),
	}
}

// Register adds an element to the exclusivity group.
func (p *Player) Register(el *Element) {
	p.group = append(p.group, el)
}

// Elements returns the exclusivity group.
func (p *Player) Elements() []*Element {
	return p.group
}

// Registry exposes the sound registry, mainly for inspection.
func (p *Player) Registry() *Registry {
	return p.registry
}

// Drag exposes the drag tracker so the wiring layer can feed it pointer
// button transitions.
func (p *Player) Drag() *DragTracker {
	return &p.drag
}

// IsDragging reports whether a primary-button drag is in progress.
func (p *Player) IsDragging() bool {
	return p.drag.Dragging()
}

// ResetAllExcept deactivates every element of the group other than the given
// one: its cached handle (if one was ever created) is paused and rewound and
// all flags are cleared. Passing nil resets the whole group. Calling it with
// nothing active is a no-op, and it is the enforcement point of the
// single-selection rule: TogglePlay calls it before activating.
func (p *Player) ResetAllExcept(except *Element) {
	for _, el := range p.group {
		if el == except || el.state == StateIdle {
			continue
		}
		el.token++
		el.vibe++
		if h, ok := p.registry.Lookup(el.SoundID); ok {
			h.Pause()
			h.Seek(0)
		}
		p.finish(el)
	}
}

// TogglePlay is the discrete, exclusive play mode. An inactive element is
// activated (deactivating everything else first) and its cached handle plays
// from its current position; an active element is toggled off, its handle
// paused and rewound. An empty sound identifier is a configuration state for
// unused elements and makes the call a no-op.
func (p *Player) TogglePlay(el *Element, soundID string) {
	if el == nil || soundID == "" {
		return
	}

	h := p.registry.Acquire(soundID)

	if el.Active() {
		// Self toggle-off: clear the visible state now instead of waiting
		// for a natural end that will never be observed.
		el.token++
		el.vibe++
		h.Pause()
		h.Seek(0)
		p.finish(el)
		return
	}

	p.ResetAllExcept(el)

	el.state = StateActivating
	el.token++
	el.vibe++
	token := el.token
	vibe := el.vibe

	volume := p.cfg.PadVolume
	if el.str != nil {
		volume = p.cfg.StringVolume
	}
	h.SetVolume(volume)

	// The finish callback deactivates the element when playback reaches its
	// natural end. Re-registering on every activation invalidates whatever
	// the handle's previous user installed; the token guards against a stale
	// end event from before this activation.
	h.OnEnded(func() {
		if el.token == token {
			p.finish(el)
		}
	})

	// A rejected start leaves nothing audible, so a visibly active element
	// would just be confusing: roll the activation back.
	h.Play(func(err error) {
		if el.token != token {
			return
		}
		DebugWarn("bandstand: start failed for", el.ID, err)
		h.Pause()
		h.Seek(0)
		p.finish(el)
	})

	el.state = StateActive
	el.view.SetActive(true)

	if el.str != nil {
		el.str.Active = true
		el.str.Vibrating = true
		el.view.SetStringActive(true)
		el.view.SetStringVibrating(true)
		p.sched.After(p.cfg.PluckVibration, func() {
			if el.vibe == vibe && el.str.Vibrating {
				el.str.Vibrating = false
				el.view.SetStringVibrating(false)
			}
		})
	}
}

// StrumPlay is the transient, non-exclusive play mode used while dragging
// across strings. Every call spawns a brand-new handle so overlapping strums
// of the same string ring together, and neither the active flags nor the
// rest of the group are touched. Elements without a string sub-element
// cannot strum.
func (p *Player) StrumPlay(el *Element, soundID string) {
	if el == nil || soundID == "" || el.str == nil {
		return
	}

	h := p.backend.NewHandle(soundID)
	h.SetVolume(p.cfg.StrumVolume)
	h.Seek(0)
	h.Play(func(err error) {
		DebugWarn("bandstand: strum start failed for", el.ID, err)
	})

	el.vibe++
	vibe := el.vibe
	el.str.Vibrating = true
	el.view.SetStringVibrating(true)
	p.sched.After(p.cfg.StrumVibration, func() {
		if el.vibe == vibe {
			el.str.Vibrating = false
			el.view.SetStringVibrating(false)
		}
	})
}

// finish clears the element's active flag and, if present, the string
// sub-element's flags. It backs both the natural-end callback and the
// synchronous paths (toggle-off, reset, start-failure rollback) and is
// idempotent.
func (p *Player) finish(el *Element) {
	el.state = StateDeactivating
	el.view.SetActive(false)
	if el.str != nil {
		el.str.Vibrating = false
		el.str.Active = false
		el.view.SetStringVibrating(false)
		el.view.SetStringActive(false)
	}
	el.state = StateIdle
}
