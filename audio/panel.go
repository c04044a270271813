package audio

import (
	"bytes"
	_ "embed"
	"text/template"

	"github.com/gopherjs/gopherjs/js"

	"github.com/mkivela/bandstand/player"
)

//go:embed panel.gohtml
var panelHTML string

var panelTemplate = template.Must(template.New("panel").Parse(panelHTML))

// panelData feeds the bank panel template.
type panelData struct {
	Categories []panelCategory
}

type panelCategory struct {
	Name   string
	Voices []panelVoice
}

type panelVoice struct {
	ID     string
	Name   string
	Params string
}

// InitBankPanel builds the hidden sound-bank panel and attaches the
// right-click handler that toggles it. Each listed voice gets a preview
// button playing a throwaway clip, bypassing the player entirely.
func InitBankPanel(bank *Bank) {
	doc := js.Global.Get("document")

	panel := doc.Call("createElement", "div")
	panel.Set("id", "bank-panel")
	panel.Set("innerHTML", renderPanel(bank))
	doc.Get("body").Call("appendChild", panel)

	doc.Call("addEventListener", "contextmenu", func(event *js.Object) {
		event.Call("preventDefault")
		open := panel.Get("classList").Call("contains", "open").Bool()
		setClass(panel, "open", !open)
	})

	closeBtn := doc.Call("getElementById", "bank-panel-close")
	if !isNull(closeBtn) {
		closeBtn.Call("addEventListener", "click", func() {
			setClass(panel, "open", false)
		})
	}

	buttons := panel.Call("querySelectorAll", "button[data-voice]")
	for i := 0; i < buttons.Get("length").Int(); i++ {
		btn := buttons.Call("item", i)
		voiceID := btn.Call("getAttribute", "data-voice").String()
		btn.Call("addEventListener", "click", func(event *js.Object) {
			event.Call("stopPropagation")
			clip := NewClip(bank.Source(voiceID))
			clip.SetVolume(0.8)
			clip.Play(nil)
		})
	}
}

// renderPanel executes the panel template over the bank, grouping voices by
// category in order of first appearance.
func renderPanel(bank *Bank) string {
	var data panelData
	index := make(map[string]int)

	for _, v := range bank.Voices() {
		idx, ok := index[v.Category]
		if !ok {
			idx = len(data.Categories)
			index[v.Category] = idx
			data.Categories = append(data.Categories, panelCategory{Name: v.Category})
		}
		data.Categories[idx].Voices = append(data.Categories[idx].Voices, panelVoice{
			ID:     v.ID,
			Name:   v.Name,
			Params: v.Params.String(),
		})
	}

	var buf bytes.Buffer
	if err := panelTemplate.Execute(&buf, data); err != nil {
		player.DebugError("bandstand: bank panel render failed:", err.Error())
		return ""
	}
	return buf.String()
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
