package player

import (
	"time"

	"github.com/gopherjs/gopherjs/js"
)

// TimeoutScheduler defers callbacks through window.setTimeout.
type TimeoutScheduler struct{}

func (TimeoutScheduler) After(d time.Duration, fn func()) {
	js.Global.Call("setTimeout", fn, int(d/time.Millisecond))
}

// domView projects element flags onto page nodes as CSS classes: "active" on
// the element itself, "active" and "vibrating" on the string sub-element.
type domView struct {
	node *js.Object
	str  *js.Object
}

func (v *domView) SetActive(on bool) {
	setClass(v.node, "active", on)
}

func (v *domView) SetStringActive(on bool) {
	if v.str != nil {
		setClass(v.str, "active", on)
	}
}

func (v *domView) SetStringVibrating(on bool) {
	if v.str != nil {
		setClass(v.str, "vibrating", on)
	}
}

func setClass(node *js.Object, class string, on bool) {
	list := node.Get("classList")
	if on {
		list.Call("add", class)
	} else {
		list.Call("remove", class)
	}
}

func isNull(o *js.Object) bool {
	return o == nil || o == js.Undefined
}
