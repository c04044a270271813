package player

import (
	"github.com/gopherjs/gopherjs/js"
)

// BuildKeyboard appends one li per piano key to the container, classed
// "white" or "black" for CSS and carrying the label in a data attribute.
// The page ships an empty container; the keyboard is always constructed
// here so the octave span stays a single source of truth.
func BuildKeyboard(container *js.Object, keys []PianoKey) int {
	if isNull(container) {
		Debug("bandstand: no keyboard container")
		return 0
	}

	doc := js.Global.Get("document")
	built := 0

	for _, key := range keys {
		li := doc.Call("createElement", "li")
		li.Set("id", key.ElementID)
		if key.Sharp {
			li.Set("className", "key black")
		} else {
			li.Set("className", "key white")
		}
		li.Call("setAttribute", "data-note", key.Label)
		container.Call("appendChild", li)
		built++
	}

	return built
}
