package audio

import (
	"math"
	"strconv"
	"strings"

	"github.com/mkivela/bandstand/common"
)

// Voice is one named entry of the sound bank.
type Voice struct {
	ID       string // sound identifier, e.g. "drum/snare"
	Name     string // display name for the bank panel
	Category string // Drums, Guitar, Bass, Piano
	Params   Params
}

// Bank holds every synthesized voice and, once rendered, a WAV data URL per
// sound identifier. Identifiers without a voice pass through Source
// untouched, so plain file URLs keep working.
type Bank struct {
	voices  []Voice
	sources map[string]string
	synth   *Synth
}

// drumVoices are the kit pieces in the comma voice format (see
// Params.ParseString for the field order).
var drumVoices = []struct {
	id, name, params string
}{
	{"drum/kick", "Kick", "2,,.12,.42,.36,.178,.02,-.28,,,,,,1,,,,,.85"},
	{"drum/snare", "Snare", "3,,.08,.32,.25,.36,,-.21,,,,,,1,,,.12,,.7"},
	{"drum/hihat", "Hi-Hat", "3,,.03,,.11,.82,,,,,,,,1,,,.42,,.5"},
	{"drum/openhat", "Open Hat", "3,,.1,,.45,.76,,,,,,,,1,,,.35,,.5"},
	{"drum/tomhi", "Hi Tom", "2,,.1,.3,.3,.24,.02,-.16,,,,,,1,,,,,.75"},
	{"drum/tomlo", "Lo Tom", "2,,.11,.3,.36,.19,.02,-.16,,,,,,1,,,,,.78"},
	{"drum/clap", "Clap", "3,,.05,.5,.2,.46,,,,,,,,.72,,.25,.08,,.65"},
	{"drum/ride", "Ride", "3,,.15,,.6,.9,,,,.18,.4,,,1,,,.3,,.45"},
}

// stringTunings are the open-string pitches of the guitar and bass, low to
// high.
var (
	guitarTuning = []struct {
		slug string
		hz   float64
	}{
		{"e2", 82.41}, {"a2", 110.00}, {"d3", 146.83},
		{"g3", 196.00}, {"b3", 246.94}, {"e4", 329.63},
	}
	bassTuning = []struct {
		slug string
		hz   float64
	}{
		{"e1", 41.20}, {"a1", 55.00}, {"d2", 73.42}, {"g2", 98.00},
	}
)

// NewBank creates a bank populated with the full default voice set: the drum
// kit, the guitar and bass open strings, and two piano octaves (C4-B5).
func NewBank(rng *common.SeededRNG) *Bank {
	b := &Bank{
		sources: make(map[string]string),
		synth:   NewSynth(rng),
	}

	for _, d := range drumVoices {
		var p Params
		p.ParseString(d.params)
		b.Add(Voice{ID: d.id, Name: d.name, Category: "Drums", Params: p})
	}

	for _, t := range guitarTuning {
		b.Add(Voice{
			ID:       "guitar/" + t.slug,
			Name:     strings.ToUpper(t.slug),
			Category: "Guitar",
			Params:   pluckParams(t.hz, WaveSawtooth, 0.15, 0.5, 0.6, 0.55),
		})
	}

	for _, t := range bassTuning {
		b.Add(Voice{
			ID:       "bass/" + t.slug,
			Name:     strings.ToUpper(t.slug),
			Category: "Bass",
			Params:   pluckParams(t.hz, WaveSine, 0.2, 0.6, 0.4, 0.7),
		})
	}

	b.addPianoOctaves(4, 2)

	return b
}

// Add registers a voice. A later voice with the same identifier shadows an
// earlier one once rendered.
func (b *Bank) Add(v Voice) {
	b.voices = append(b.voices, v)
}

// Render synthesizes every voice into a WAV data URL. Called once at page
// load, before any element can play.
func (b *Bank) Render() {
	for _, v := range b.voices {
		b.sources[v.ID] = b.synth.DataURL(v.Params)
	}
}

// Source resolves a sound identifier to a playable URL: the rendered data
// URL for bank voices, the identifier itself for anything else.
func (b *Bank) Source(soundID string) string {
	if src, ok := b.sources[soundID]; ok {
		return src
	}
	return soundID
}

// Voices returns the registered voices in registration order.
func (b *Bank) Voices() []Voice {
	return b.voices
}

// Voice looks a voice up by identifier.
func (b *Bank) Voice(soundID string) (Voice, bool) {
	for _, v := range b.voices {
		if v.ID == soundID {
			return v, true
		}
	}
	return Voice{}, false
}

// pluckParams builds the envelope of a plucked or struck pitched voice:
// instant attack, a short body with punch, and a ringing decay rolled off by
// the low-pass filter.
func pluckParams(hz float64, wave int, sustain, decay, lpCutoff, volume float64) Params {
	return Params{
		WaveType:          wave,
		SustainTime:       sustain,
		SustainPunch:      0.3,
		DecayTime:         decay,
		StartFrequency:    FrequencyParam(hz),
		LPFilterCutoff:    lpCutoff,
		LPFilterResonance: 0.3,
		MasterVolume:      volume,
	}
}

// pianoNames is the chromatic octave used to generate keyboard voices.
var pianoNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// addPianoOctaves registers one struck-string voice per key, starting at
// C of startOctave. Identifiers match the keyboard catalog: "piano/cs4".
func (b *Bank) addPianoOctaves(startOctave, octaves int) {
	for o := 0; o < octaves; o++ {
		octave := startOctave + o
		for i, name := range pianoNames {
			midi := 12*(octave+1) + i
			hz := 440 * math.Pow(2, float64(midi-69)/12)
			slug := strings.ToLower(strings.ReplaceAll(name, "#", "s")) + strconv.Itoa(octave)
			b.Add(Voice{
				ID:       "piano/" + slug,
				Name:     name + strconv.Itoa(octave),
				Category: "Piano",
				Params:   pluckParams(hz, WaveSine, 0.12, 0.45, 0.7, 0.6),
			})
		}
	}
}
