package player

import (
	"strings"
	"testing"
)

func TestCatalogs_UniqueElementIDs(t *testing.T) {
	seen := make(map[string]bool)
	var all []CatalogEntry
	all = append(all, DrumCatalog()...)
	all = append(all, GuitarCatalog()...)
	all = append(all, BassCatalog()...)
	for _, k := range PianoCatalog(4, 2) {
		all = append(all, k.CatalogEntry)
	}

	for _, e := range all {
		if e.ElementID == "" {
			t.Error("Catalog entry with empty element id")
		}
		if e.SoundID == "" {
			t.Errorf("Entry %s has no sound identifier", e.ElementID)
		}
		if seen[e.ElementID] {
			t.Errorf("Duplicate element id %s", e.ElementID)
		}
		seen[e.ElementID] = true
	}
}

func TestCatalogs_Sizes(t *testing.T) {
	if n := len(DrumCatalog()); n != 8 {
		t.Errorf("Drum catalog: expected 8 pads, got %d", n)
	}
	if n := len(GuitarCatalog()); n != 6 {
		t.Errorf("Guitar catalog: expected 6 strings, got %d", n)
	}
	if n := len(BassCatalog()); n != 4 {
		t.Errorf("Bass catalog: expected 4 strings, got %d", n)
	}
	if n := len(PianoCatalog(4, 2)); n != 24 {
		t.Errorf("Piano catalog: expected 24 keys over two octaves, got %d", n)
	}
}

func TestCatalogs_StringFlags(t *testing.T) {
	for _, e := range DrumCatalog() {
		if e.HasString {
			t.Errorf("Drum pad %s must not carry a string", e.ElementID)
		}
	}
	for _, e := range append(GuitarCatalog(), BassCatalog()...) {
		if !e.HasString {
			t.Errorf("String instrument entry %s must carry a string", e.ElementID)
		}
	}
	for _, k := range PianoCatalog(4, 1) {
		if k.HasString {
			t.Errorf("Piano key %s must not carry a string", k.ElementID)
		}
	}
}

func TestPianoCatalog_SlugsAndSharps(t *testing.T) {
	keys := PianoCatalog(4, 1)

	if keys[0].ElementID != "key-c4" || keys[0].SoundID != "piano/c4" {
		t.Errorf("First key: expected key-c4 / piano/c4, got %s / %s",
			keys[0].ElementID, keys[0].SoundID)
	}
	if keys[1].ElementID != "key-cs4" {
		t.Errorf("Sharp slug: expected key-cs4, got %s", keys[1].ElementID)
	}
	if !keys[1].Sharp {
		t.Error("C# should be marked sharp")
	}
	if keys[0].Sharp {
		t.Error("C should not be marked sharp")
	}

	sharps := 0
	for _, k := range keys {
		if k.Sharp {
			sharps++
		}
		if strings.Contains(k.ElementID, "#") {
			t.Errorf("Element id %s must not contain '#'", k.ElementID)
		}
	}
	if sharps != 5 {
		t.Errorf("Expected 5 sharps per octave, got %d", sharps)
	}
}

func TestPianoCatalog_LabelsCarryOctave(t *testing.T) {
	keys := PianoCatalog(4, 2)
	if keys[0].Label != "C4" {
		t.Errorf("Expected label C4, got %s", keys[0].Label)
	}
	if last := keys[len(keys)-1].Label; last != "B5" {
		t.Errorf("Expected last label B5, got %s", last)
	}
}
