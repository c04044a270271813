package audio

import (
	"math"
	"strings"
	"testing"

	"github.com/mkivela/bandstand/common"
)

func floatNear(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestParams_ParseString_Basic(t *testing.T) {
	var p Params
	p.ParseString("2,,.12,.42,.36,.178,.02,-.28,,,,,,1,,,,,.85")

	if p.WaveType != WaveSine {
		t.Errorf("WaveType: expected %d, got %d", WaveSine, p.WaveType)
	}
	if !floatNear(p.SustainTime, 0.12, 0.001) {
		t.Errorf("SustainTime: expected 0.12, got %f", p.SustainTime)
	}
	if !floatNear(p.SustainPunch, 0.42, 0.001) {
		t.Errorf("SustainPunch: expected 0.42, got %f", p.SustainPunch)
	}
	if !floatNear(p.Slide, -0.28, 0.001) {
		t.Errorf("Slide: expected -0.28, got %f", p.Slide)
	}
	if !floatNear(p.LPFilterCutoff, 1, 0.001) {
		t.Errorf("LPFilterCutoff: expected 1, got %f", p.LPFilterCutoff)
	}
	if !floatNear(p.MasterVolume, 0.85, 0.001) {
		t.Errorf("MasterVolume: expected 0.85, got %f", p.MasterVolume)
	}
}

func TestParams_ParseString_EmptyLPCutoffDefaultsOpen(t *testing.T) {
	var p Params
	p.ParseString("0,,.3,,.4,.5")

	if !floatNear(p.LPFilterCutoff, 1, 0.001) {
		t.Errorf("Empty low-pass cutoff should default to 1, got %f", p.LPFilterCutoff)
	}
}

func TestParams_ParseString_MinimumEnvelope(t *testing.T) {
	var p Params
	p.ParseString("0,.001,.001,,.001,.5,,,,,,,,1,,,,,.5")

	if p.SustainTime < 0.01 {
		t.Errorf("SustainTime should be at least 0.01, got %f", p.SustainTime)
	}
	total := p.AttackTime + p.SustainTime + p.DecayTime
	if total < 0.18 {
		t.Errorf("Total envelope should be at least 0.18, got %f", total)
	}
}

func TestParams_StringRoundTrip(t *testing.T) {
	var p Params
	p.ParseString("3,,.08,.32,.25,.36,,-.21,,,,,,1,,,.12,,.7")

	var q Params
	q.ParseString(p.String())

	if q != p {
		t.Errorf("Round trip changed parameters:\n  in:  %+v\n  out: %+v", p, q)
	}
}

func TestFrequencyParam_InvertsPeriodFormula(t *testing.T) {
	tests := []struct {
		name string
		hz   float64
	}{
		{"BassE", 41.20},
		{"GuitarA", 110.00},
		{"MiddleC", 261.63},
		{"A440", 440.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FrequencyParam(tt.hz)
			back := 3528 * (f*f + 0.001)
			if !floatNear(back, tt.hz, 0.01) {
				t.Errorf("FrequencyParam(%f) maps back to %f Hz", tt.hz, back)
			}
		})
	}
}

func TestFrequencyParam_ClampsBelowFloor(t *testing.T) {
	if f := FrequencyParam(1); f != 0 {
		t.Errorf("Sub-floor frequency should clamp to 0, got %f", f)
	}
}

func TestSynth_Render_ProducesSamples(t *testing.T) {
	synth := NewSynth(common.NewSeededRNG(12345))

	var p Params
	p.ParseString("0,,.3,,.4,.5,,,,,,.5,,1,,,,,.5")
	samples := synth.Render(p)

	if len(samples) == 0 {
		t.Fatal("Render should produce samples")
	}
	hasNonZero := false
	for _, v := range samples {
		if v != 0 {
			hasNonZero = true
			break
		}
	}
	if !hasNonZero {
		t.Error("Render should produce non-zero samples")
	}
}

func TestSynth_Render_AllWaveTypes(t *testing.T) {
	tests := []struct {
		name   string
		params string
	}{
		{"Square", "0,,.3,,.4,.5,,,,,,.5,,1,,,,,.5"},
		{"Sawtooth", "1,,.3,,.4,.5,,,,,,,,1,,,,,.5"},
		{"Sine", "2,,.3,,.4,.5,,,,,,,,1,,,,,.5"},
		{"Noise", "3,,.3,,.4,.5,,,,,,,,1,,,,,.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synth := NewSynth(common.NewSeededRNG(12345))
			var p Params
			p.ParseString(tt.params)
			samples := synth.Render(p)
			if len(samples) == 0 {
				t.Error("Expected samples for wave type")
			}
		})
	}
}

func TestSynth_Render_DeterministicForSeed(t *testing.T) {
	var p Params
	p.ParseString("3,,.1,,.2,.6,,,,,,,,1,,,.3,,.5")

	a := NewSynth(common.NewSeededRNG(99)).Render(p)
	b := NewSynth(common.NewSeededRNG(99)).Render(p)

	if len(a) != len(b) {
		t.Fatalf("Renders differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Renders diverge at sample %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestSynth_WAVBytes_Header(t *testing.T) {
	synth := NewSynth(common.NewSeededRNG(1))
	var p Params
	p.ParseString("2,,.1,,.1,.4,,,,,,,,1,,,,,.5")

	wav := synth.WAVBytes(p)

	if len(wav) <= 44 {
		t.Fatalf("WAV shorter than header plus data: %d bytes", len(wav))
	}
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		t.Error("Missing RIFF/WAVE markers")
	}
	if string(wav[12:16]) != "fmt " || string(wav[36:40]) != "data" {
		t.Error("Missing fmt/data chunks")
	}
	if channels := int(wav[22]) | int(wav[23])<<8; channels != 1 {
		t.Errorf("Expected mono, got %d channels", channels)
	}
	rate := int(wav[24]) | int(wav[25])<<8 | int(wav[26])<<16 | int(wav[27])<<24
	if rate != sampleRate {
		t.Errorf("Expected sample rate %d, got %d", sampleRate, rate)
	}
	dataSize := int(wav[40]) | int(wav[41])<<8 | int(wav[42])<<16 | int(wav[43])<<24
	if dataSize != len(wav)-44 {
		t.Errorf("Data chunk size %d does not match payload %d", dataSize, len(wav)-44)
	}
}

func TestSynth_DataURL_Prefix(t *testing.T) {
	synth := NewSynth(common.NewSeededRNG(1))
	var p Params
	p.ParseString("0,,.1,,.1,.4,,,,,,.5,,1,,,,,.5")

	url := synth.DataURL(p)
	if !strings.HasPrefix(url, "data:audio/wav;base64,") {
		t.Errorf("Unexpected data URL prefix: %.40s", url)
	}
}
