package player

// State is the explicit activation state of an element. The page markers
// ("active"/"vibrating" classes) are a pure projection of this state through
// the element's View; they never carry state of their own.
type State int

const (
	StateIdle State = iota
	StateActivating
	StateActive
	StateDeactivating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActivating:
		return "activating"
	case StateActive:
		return "active"
	case StateDeactivating:
		return "deactivating"
	default:
		return "unknown"
	}
}

// View mirrors element flags into the page. Implementations must only render:
// the engine owns the flags. For elements without a string sub-element the
// string methods are never called with true.
type View interface {
	SetActive(active bool)
	SetStringActive(active bool)
	SetStringVibrating(vibrating bool)
}

// NopView discards all updates. Useful for tests and unbound elements.
type NopView struct{}

func (NopView) SetActive(bool)          {}
func (NopView) SetStringActive(bool)    {}
func (NopView) SetStringVibrating(bool) {}

// StringState holds the extra flags of a guitar/bass string sub-element.
type StringState struct {
	Vibrating bool
	Active    bool
}

// Element is one interactive pad, string or key belonging to the exclusivity
// group. At most one element of the group is active at a time; strums are
// exempt because they never touch the active flag.
type Element struct {
	ID      string
	Label   string
	SoundID string

	state State
	str   *StringState
	view  View

	// token invalidates finish callbacks and playback-start failures from a
	// superseded activation; vibe invalidates vibration timers. Both only
	// ever increase.
	token uint64
	vibe  uint64
}

// NewElement creates an element. A nil view is replaced with NopView.
func NewElement(id, label, soundID string, view View) *Element {
	if view == nil {
		view = NopView{}
	}
	return &Element{
		ID:      id,
		Label:   label,
		SoundID: soundID,
		view:    view,
	}
}

// AttachString gives the element a string sub-element. Guitar and bass
// elements own exactly one; everything else owns none.
func (e *Element) AttachString() *Element {
	if e.str == nil {
		e.str = &StringState{}
	}
	return e
}

// HasString reports whether the element owns a string sub-element.
func (e *Element) HasString() bool {
	return e.str != nil
}

// State returns the element's activation state.
func (e *Element) State() State {
	return e.state
}

// Active reports whether the element currently holds the group's single
// active slot.
func (e *Element) Active() bool {
	return e.state == StateActive || e.state == StateActivating
}

// StringVibrating reports the vibrating flag of the string sub-element.
func (e *Element) StringVibrating() bool {
	return e.str != nil && e.str.Vibrating
}

// StringActive reports the active flag of the string sub-element.
func (e *Element) StringActive() bool {
	return e.str != nil && e.str.Active
}
