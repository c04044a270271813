package player

// PrimaryButton is the button index reported for the main (usually left)
// pointer button.
const PrimaryButton = 0

// DragTracker follows whether the primary pointer button is physically held
// down. Two states: idle and dragging. Press anywhere moves to dragging;
// release or the pointer leaving the document moves back to idle.
//
// While dragging, entering a string element strums it; while idle, entering
// is ignored. A click on a string only counts as a discrete pluck when not
// dragging, so the click that ends a drag gesture is not double-counted.
type DragTracker struct {
	dragging bool
}

// Press records a button press. Only the primary button starts a drag.
func (d *DragTracker) Press(button int) {
	if button == PrimaryButton {
		d.dragging = true
	}
}

// Release records the button being let go.
func (d *DragTracker) Release() {
	d.dragging = false
}

// Leave records the pointer leaving the document bounds, which ends any drag
// since the release can no longer be observed.
func (d *DragTracker) Leave() {
	d.dragging = false
}

// Dragging reports whether a drag gesture is in progress.
func (d *DragTracker) Dragging() bool {
	return d.dragging
}
