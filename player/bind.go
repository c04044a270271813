package player

import (
	"github.com/gopherjs/gopherjs/js"
)

// BindDocument feeds document-level pointer button transitions into the drag
// tracker. Pressing the primary button anywhere starts a drag; releasing it
// or dragging the pointer out of the document ends it.
func BindDocument(p *Player) {
	doc := js.Global.Get("document")

	doc.Call("addEventListener", "mousedown", func(event *js.Object) {
		p.Drag().Press(event.Get("button").Int())
	})
	doc.Call("addEventListener", "mouseup", func(event *js.Object) {
		p.Drag().Release()
	})
	doc.Call("addEventListener", "mouseleave", func(event *js.Object) {
		p.Drag().Leave()
	})
}

// BindCatalog resolves catalog entries against the page, registers each
// resolved element in the exclusivity group and attaches its listeners.
// Entries whose DOM node is missing are skipped silently: an unbound element
// is an expected configuration state, not an error. Returns the number of
// elements bound.
func BindCatalog(p *Player, entries []CatalogEntry) int {
	doc := js.Global.Get("document")
	bound := 0

	for _, entry := range entries {
		node := doc.Call("getElementById", entry.ElementID)
		if isNull(node) {
			Debug("bandstand: no node for", entry.ElementID)
			continue
		}

		view := &domView{node: node}
		el := NewElement(entry.ElementID, entry.Label, entry.SoundID, view)

		if entry.HasString {
			str := node.Call("querySelector", ".string")
			if !isNull(str) {
				view.str = str
			}
			el.AttachString()
		}

		p.Register(el)
		bindElement(p, el, node)
		bound++
	}

	return bound
}

// bindElement attaches the listeners for one element. Strings listen for
// mouseenter so that dragging across them strums; their click is gated on
// the drag state so the click ending a drag is not also a pluck.
func bindElement(p *Player, el *Element, node *js.Object) {
	if el.HasString() {
		node.Call("addEventListener", "click", func(event *js.Object) {
			if !p.IsDragging() {
				p.TogglePlay(el, el.SoundID)
			}
		})
		node.Call("addEventListener", "mouseenter", func(event *js.Object) {
			if p.IsDragging() {
				p.StrumPlay(el, el.SoundID)
			}
		})
		return
	}

	node.Call("addEventListener", "click", func(event *js.Object) {
		p.TogglePlay(el, el.SoundID)
	})
}
