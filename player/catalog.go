package player

import (
	"strconv"
	"strings"
)

// CatalogEntry describes one interactive element of the page: the DOM id it
// resolves to, the label shown on it, and the sound identifier it triggers.
// Entries with HasString expect a nested ".string" child that carries the
// vibration marker.
type CatalogEntry struct {
	ElementID string
	Label     string
	SoundID   string
	HasString bool
}

// DrumCatalog lists the eight drum pads.
func DrumCatalog() []CatalogEntry {
	return []CatalogEntry{
		{ElementID: "drum-kick", Label: "KICK", SoundID: "drum/kick"},
		{ElementID: "drum-snare", Label: "SNARE", SoundID: "drum/snare"},
		{ElementID: "drum-hihat", Label: "HI-HAT", SoundID: "drum/hihat"},
		{ElementID: "drum-openhat", Label: "OPEN HAT", SoundID: "drum/openhat"},
		{ElementID: "drum-tom-hi", Label: "HI TOM", SoundID: "drum/tomhi"},
		{ElementID: "drum-tom-lo", Label: "LO TOM", SoundID: "drum/tomlo"},
		{ElementID: "drum-clap", Label: "CLAP", SoundID: "drum/clap"},
		{ElementID: "drum-ride", Label: "RIDE", SoundID: "drum/ride"},
	}
}

// GuitarCatalog lists the six guitar strings, low E to high e.
func GuitarCatalog() []CatalogEntry {
	return []CatalogEntry{
		{ElementID: "guitar-e-low", Label: "E", SoundID: "guitar/e2", HasString: true},
		{ElementID: "guitar-a", Label: "A", SoundID: "guitar/a2", HasString: true},
		{ElementID: "guitar-d", Label: "D", SoundID: "guitar/d3", HasString: true},
		{ElementID: "guitar-g", Label: "G", SoundID: "guitar/g3", HasString: true},
		{ElementID: "guitar-b", Label: "B", SoundID: "guitar/b3", HasString: true},
		{ElementID: "guitar-e-high", Label: "e", SoundID: "guitar/e4", HasString: true},
	}
}

// BassCatalog lists the four bass strings.
func BassCatalog() []CatalogEntry {
	return []CatalogEntry{
		{ElementID: "bass-e", Label: "E", SoundID: "bass/e1", HasString: true},
		{ElementID: "bass-a", Label: "A", SoundID: "bass/a1", HasString: true},
		{ElementID: "bass-d", Label: "D", SoundID: "bass/d2", HasString: true},
		{ElementID: "bass-g", Label: "G", SoundID: "bass/g2", HasString: true},
	}
}

// noteNames is one chromatic octave starting at C. Sharps are the "black"
// keys of the keyboard.
var noteNames = []struct {
	name  string
	sharp bool
}{
	{name: "C"},
	{name: "C#", sharp: true},
	{name: "D"},
	{name: "D#", sharp: true},
	{name: "E"},
	{name: "F"},
	{name: "F#", sharp: true},
	{name: "G"},
	{name: "G#", sharp: true},
	{name: "A"},
	{name: "A#", sharp: true},
	{name: "B"},
}

// PianoKey is one key of the generated keyboard.
type PianoKey struct {
	CatalogEntry
	Sharp bool
}

// PianoCatalog lists the keyboard keys for the requested octave span,
// e.g. PianoCatalog(4, 2) covers C4 through B5. Key ids follow the pattern
// "key-c4" / "key-cs4" and sound identifiers "piano/c4" / "piano/cs4".
func PianoCatalog(startOctave, octaves int) []PianoKey {
	keys := make([]PianoKey, 0, octaves*len(noteNames))
	for o := 0; o < octaves; o++ {
		octave := startOctave + o
		for _, n := range noteNames {
			slug := noteSlug(n.name, octave)
			keys = append(keys, PianoKey{
				CatalogEntry: CatalogEntry{
					ElementID: "key-" + slug,
					Label:     n.name + strconv.Itoa(octave),
					SoundID:   "piano/" + slug,
				},
				Sharp: n.sharp,
			})
		}
	}
	return keys
}

// noteSlug lowercases a note name for use in ids: "C#", 4 -> "cs4".
func noteSlug(name string, octave int) string {
	s := strings.ToLower(strings.ReplaceAll(name, "#", "s"))
	return s + strconv.Itoa(octave)
}
