//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/mkivela/bandstand/audio"
	"github.com/mkivela/bandstand/common"
	"github.com/mkivela/bandstand/player"
)

func main() {
	doc := js.Global.Get("document")
	if doc == nil || doc == js.Undefined {
		panic("document not found")
	}

	// Synthesize the whole sound bank up front so every pad, string and key
	// has its clip source ready before the first click.
	rng := common.NewSeededRNG(0x5EED)
	bank := audio.NewBank(rng)
	bank.Render()

	p := player.New(audio.NewBackend(bank), player.TimeoutScheduler{}, player.DefaultConfig)

	pianoKeys := player.PianoCatalog(4, 2)
	player.BuildKeyboard(doc.Call("getElementById", "piano"), pianoKeys)

	entries := player.DrumCatalog()
	entries = append(entries, player.GuitarCatalog()...)
	entries = append(entries, player.BassCatalog()...)
	for _, key := range pianoKeys {
		entries = append(entries, key.CatalogEntry)
	}

	bound := player.BindCatalog(p, entries)
	player.BindDocument(p)
	audio.InitBankPanel(bank)

	// Expose a small console API to JavaScript
	js.Global.Set("Bandstand", map[string]interface{}{
		"reset": func() {
			p.ResetAllExcept(nil)
		},
		"isDragging": func() bool {
			return p.IsDragging()
		},
		"elements": func() int {
			return len(p.Elements())
		},
		"voices": func() int {
			return len(bank.Voices())
		},
		"debug": func(on bool) {
			player.EnableDebug = on
		},
	})

	player.Debug("bandstand: bound", bound, "elements")

	select {}
}
