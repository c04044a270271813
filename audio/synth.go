package audio

import (
	"encoding/base64"
	"math"
	"strconv"
	"strings"

	"github.com/mkivela/bandstand/common"
)

// Wave types for Params.WaveType.
const (
	WaveSquare = iota
	WaveSawtooth
	WaveSine
	WaveNoise
)

const sampleRate = 44100

// Params holds the synthesis parameters of one voice. Values are normalized
// to 0..1 (slides and sweeps to -1..1) in the sfxr tradition; StartFrequency
// maps to Hz through FrequencyParam.
type Params struct {
	WaveType int

	// Envelope
	AttackTime   float64
	SustainTime  float64
	SustainPunch float64
	DecayTime    float64

	// Frequency
	StartFrequency float64
	MinFrequency   float64
	Slide          float64
	DeltaSlide     float64

	// Vibrato
	VibratoDepth float64
	VibratoSpeed float64

	// Square wave duty
	SquareDuty float64
	DutySweep  float64

	// Filters
	LPFilterCutoff      float64
	LPFilterCutoffSweep float64
	LPFilterResonance   float64
	HPFilterCutoff      float64
	HPFilterCutoffSweep float64

	MasterVolume float64
}

// ParseString fills the parameters from the comma-separated voice format:
//
//	wave,attack,sustain,punch,decay,freq,minFreq,slide,deltaSlide,
//	vibDepth,vibSpeed,duty,dutySweep,lpCutoff,lpSweep,lpResonance,
//	hpCutoff,hpSweep,volume
//
// Empty fields read as zero except the low-pass cutoff, which defaults to 1
// (filter open).
func (p *Params) ParseString(s string) {
	values := strings.Split(s, ",")

	field := func(idx int) float64 {
		if idx >= len(values) || values[idx] == "" {
			return 0
		}
		f, _ := strconv.ParseFloat(strings.TrimSpace(values[idx]), 64)
		return f
	}

	p.WaveType = int(field(0))
	p.AttackTime = field(1)
	p.SustainTime = field(2)
	p.SustainPunch = field(3)
	p.DecayTime = field(4)
	p.StartFrequency = field(5)
	p.MinFrequency = field(6)
	p.Slide = field(7)
	p.DeltaSlide = field(8)
	p.VibratoDepth = field(9)
	p.VibratoSpeed = field(10)
	p.SquareDuty = field(11)
	p.DutySweep = field(12)
	p.LPFilterCutoff = field(13)
	if 13 >= len(values) || values[13] == "" {
		p.LPFilterCutoff = 1
	}
	p.LPFilterCutoffSweep = field(14)
	p.LPFilterResonance = field(15)
	p.HPFilterCutoff = field(16)
	p.HPFilterCutoffSweep = field(17)
	p.MasterVolume = field(18)

	p.normalize()
}

// String renders the parameters back into the comma format.
func (p *Params) String() string {
	num := func(f float64) string {
		if f == 0 {
			return ""
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	parts := []string{
		strconv.Itoa(p.WaveType),
		num(p.AttackTime),
		num(p.SustainTime),
		num(p.SustainPunch),
		num(p.DecayTime),
		num(p.StartFrequency),
		num(p.MinFrequency),
		num(p.Slide),
		num(p.DeltaSlide),
		num(p.VibratoDepth),
		num(p.VibratoSpeed),
		num(p.SquareDuty),
		num(p.DutySweep),
		num(p.LPFilterCutoff),
		num(p.LPFilterCutoffSweep),
		num(p.LPFilterResonance),
		num(p.HPFilterCutoff),
		num(p.HPFilterCutoffSweep),
		num(p.MasterVolume),
	}
	return strings.Join(parts, ",")
}

// normalize enforces a minimum sustain and a minimum total envelope so very
// short voices do not degenerate into clicks.
func (p *Params) normalize() {
	if p.SustainTime < 0.01 {
		p.SustainTime = 0.01
	}
	total := p.AttackTime + p.SustainTime + p.DecayTime
	if total < 0.18 {
		m := 0.18 / total
		p.AttackTime *= m
		p.SustainTime *= m
		p.DecayTime *= m
	}
}

// FrequencyParam converts a frequency in Hz into the normalized
// StartFrequency value the oscillator period formula expects.
func FrequencyParam(hz float64) float64 {
	v := hz/3528.0 - 0.001
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}

// Synth renders voices into 16-bit PCM. Noise comes from the seeded RNG so
// renders are deterministic for a given seed.
type Synth struct {
	rng *common.SeededRNG

	period     float64
	maxPeriod  float64
	slide      float64
	deltaSlide float64
	squareDuty float64
	dutySweep  float64

	envelopeLength [3]float64

	noiseBuffer [32]float64
}

// NewSynth creates a synthesizer drawing noise from rng.
func NewSynth(rng *common.SeededRNG) *Synth {
	return &Synth{rng: rng}
}

// reset derives oscillator state from the parameters.
func (s *Synth) reset(p *Params) {
	s.period = 100 / (p.StartFrequency*p.StartFrequency + 0.001)
	s.maxPeriod = 100 / (p.MinFrequency*p.MinFrequency + 0.001)

	s.slide = 1 - p.Slide*p.Slide*p.Slide*0.01
	s.deltaSlide = -p.DeltaSlide * p.DeltaSlide * p.DeltaSlide * 0.000001

	if p.WaveType == WaveSquare {
		s.squareDuty = 0.5 - p.SquareDuty/2
		s.dutySweep = -p.DutySweep * 0.00005
	}
}

// envelopeReset computes the three envelope stage lengths and returns the
// total sample count of the voice.
func (s *Synth) envelopeReset(p *Params) int {
	s.envelopeLength[0] = p.AttackTime * p.AttackTime * 100000
	s.envelopeLength[1] = p.SustainTime * p.SustainTime * 100000
	s.envelopeLength[2] = p.DecayTime*p.DecayTime*100000 + 10
	return int(s.envelopeLength[0] + s.envelopeLength[1] + s.envelopeLength[2])
}

// Render synthesizes the voice into a freshly allocated mono sample buffer.
func (s *Synth) Render(p Params) []int16 {
	p.normalize()
	s.reset(&p)
	length := s.envelopeReset(&p)
	buffer := make([]int16, length)
	written := s.synthWave(&p, buffer)
	return buffer[:written]
}

// synthWave is the core synthesis loop: 8x oversampled oscillator with
// envelope, frequency slide, vibrato and resonant low/high-pass filters.
func (s *Synth) synthWave(p *Params, buffer []int16) int {
	filtersEnabled := p.LPFilterCutoff != 1 || p.HPFilterCutoff != 0
	hpFilterCutoff := p.HPFilterCutoff * p.HPFilterCutoff * 0.1
	hpFilterDeltaCutoff := 1 + p.HPFilterCutoffSweep*0.0003
	lpFilterCutoff := p.LPFilterCutoff * p.LPFilterCutoff * p.LPFilterCutoff * 0.1
	lpFilterDeltaCutoff := 1 + p.LPFilterCutoffSweep*0.0001
	lpFilterOn := p.LPFilterCutoff != 1
	masterVolume := p.MasterVolume * p.MasterVolume
	minFrequency := p.MinFrequency
	sustainPunch := p.SustainPunch
	vibratoAmplitude := p.VibratoDepth / 2
	vibratoSpeed := p.VibratoSpeed * p.VibratoSpeed * 0.01
	waveType := p.WaveType

	envelopeLength := s.envelopeLength[0]
	envelopeOverLength0 := 1 / s.envelopeLength[0]
	envelopeOverLength1 := 1 / s.envelopeLength[1]
	envelopeOverLength2 := 1 / s.envelopeLength[2]

	lpFilterDamping := 5 / (1 + p.LPFilterResonance*p.LPFilterResonance*20) * (0.01 + lpFilterCutoff)
	if lpFilterDamping > 0.8 {
		lpFilterDamping = 0.8
	}
	lpFilterDamping = 1 - lpFilterDamping

	finished := false
	envelopeStage := 0
	envelopeTime := 0.0
	envelopeVolume := 0.0
	hpFilterPos := 0.0
	lpFilterDeltaPos := 0.0
	lpFilterOldPos := 0.0
	lpFilterPos := 0.0
	phase := 0.0
	sample := 0.0
	superSample := 0.0
	vibratoPhase := 0.0

	for i := range s.noiseBuffer {
		s.noiseBuffer[i] = s.rng.Random()*2 - 1
	}

	period := s.period
	maxPeriod := s.maxPeriod
	slide := s.slide
	deltaSlide := s.deltaSlide
	squareDuty := s.squareDuty
	dutySweep := s.dutySweep

	for i := 0; i < len(buffer); i++ {
		if finished {
			return i
		}

		slide += deltaSlide
		period *= slide

		if period > maxPeriod {
			period = maxPeriod
			if minFrequency > 0 {
				finished = true
			}
		}

		periodTemp := period
		if vibratoAmplitude > 0 {
			vibratoPhase += vibratoSpeed
			periodTemp *= 1 + math.Sin(vibratoPhase)*vibratoAmplitude
		}
		if periodTemp < 8 {
			periodTemp = 8
		}
		periodTemp = float64(int(periodTemp))

		if waveType == WaveSquare {
			squareDuty += dutySweep
			if squareDuty < 0 {
				squareDuty = 0
			}
			if squareDuty > 0.5 {
				squareDuty = 0.5
			}
		}

		envelopeTime++
		if envelopeTime > envelopeLength {
			envelopeTime = 0
			envelopeStage++
			if envelopeStage < 3 {
				envelopeLength = s.envelopeLength[envelopeStage]
			}
		}

		switch envelopeStage {
		case 0:
			envelopeVolume = envelopeTime * envelopeOverLength0
		case 1:
			envelopeVolume = 1 + (1-envelopeTime*envelopeOverLength1)*2*sustainPunch
		case 2:
			envelopeVolume = 1 - envelopeTime*envelopeOverLength2
		default:
			envelopeVolume = 0
			finished = true
		}

		if filtersEnabled && hpFilterDeltaCutoff != 1 {
			hpFilterCutoff *= hpFilterDeltaCutoff
			if hpFilterCutoff < 0.00001 {
				hpFilterCutoff = 0.00001
			}
			if hpFilterCutoff > 0.1 {
				hpFilterCutoff = 0.1
			}
		}

		superSample = 0

		for j := 0; j < 8; j++ {
			phase++
			if phase >= periodTemp {
				phase = math.Mod(phase, periodTemp)
				if waveType == WaveNoise {
					for n := range s.noiseBuffer {
						s.noiseBuffer[n] = s.rng.Random()*2 - 1
					}
				}
			}

			switch waveType {
			case WaveSquare:
				if phase/periodTemp < squareDuty {
					sample = 0.5
				} else {
					sample = -0.5
				}
			case WaveSawtooth:
				sample = 1 - (phase/periodTemp)*2
			case WaveSine:
				pos := phase / periodTemp
				if pos > 0.5 {
					pos = (pos - 1) * 6.28318531
				} else {
					pos = pos * 6.28318531
				}
				if pos < 0 {
					sample = 1.27323954*pos + 0.405284735*pos*pos
				} else {
					sample = 1.27323954*pos - 0.405284735*pos*pos
				}
				if sample < 0 {
					sample = 0.225*(sample*-sample-sample) + sample
				} else {
					sample = 0.225*(sample*sample-sample) + sample
				}
			case WaveNoise:
				sample = s.noiseBuffer[int(math.Abs(phase*32/periodTemp))%32]
			}

			if filtersEnabled {
				lpFilterOldPos = lpFilterPos
				lpFilterCutoff *= lpFilterDeltaCutoff
				if lpFilterCutoff < 0 {
					lpFilterCutoff = 0
				}
				if lpFilterCutoff > 0.1 {
					lpFilterCutoff = 0.1
				}

				if lpFilterOn {
					lpFilterDeltaPos += (sample - lpFilterPos) * lpFilterCutoff
					lpFilterDeltaPos *= lpFilterDamping
				} else {
					lpFilterPos = sample
					lpFilterDeltaPos = 0
				}
				lpFilterPos += lpFilterDeltaPos

				hpFilterPos += lpFilterPos - lpFilterOldPos
				hpFilterPos *= 1 - hpFilterCutoff
				sample = hpFilterPos
			}

			superSample += sample
		}

		superSample *= 0.125 * envelopeVolume * masterVolume

		if superSample >= 1 {
			buffer[i] = 32767
		} else if superSample <= -1 {
			buffer[i] = -32768
		} else {
			buffer[i] = int16(superSample * 32767)
		}
	}

	return len(buffer)
}

// WAVBytes renders the voice as a mono 16-bit 44.1 kHz WAV file.
func (s *Synth) WAVBytes(p Params) []byte {
	samples := s.Render(p)
	dataSize := len(samples) * 2
	data := make([]byte, 44+dataSize)
	writeWavHeader(data, dataSize)
	for i, v := range samples {
		data[44+i*2] = byte(v)
		data[44+i*2+1] = byte(v >> 8)
	}
	return data
}

// DataURL renders the voice as a base64 data URL playable by an Audio
// element.
func (s *Synth) DataURL(p Params) string {
	return "data:audio/wav;base64," + base64.StdEncoding.EncodeToString(s.WAVBytes(p))
}

// writeWavHeader writes a canonical 44-byte mono PCM WAV header.
func writeWavHeader(data []byte, dataSize int) {
	copy(data[0:4], "RIFF")
	writeUint32LE(data, 4, uint32(dataSize+36))
	copy(data[8:12], "WAVE")

	copy(data[12:16], "fmt ")
	writeUint32LE(data, 16, 16)              // sub-chunk size
	writeUint16LE(data, 20, 1)               // PCM
	writeUint16LE(data, 22, 1)               // mono
	writeUint32LE(data, 24, sampleRate)      // sample rate
	writeUint32LE(data, 28, sampleRate*2)    // byte rate
	writeUint16LE(data, 32, 2)               // block align
	writeUint16LE(data, 34, 16)              // bits per sample

	copy(data[36:40], "data")
	writeUint32LE(data, 40, uint32(dataSize))
}

func writeUint16LE(data []byte, offset int, value uint16) {
	data[offset] = byte(value)
	data[offset+1] = byte(value >> 8)
}

func writeUint32LE(data []byte, offset int, value uint32) {
	data[offset] = byte(value)
	data[offset+1] = byte(value >> 8)
	data[offset+2] = byte(value >> 16)
	data[offset+3] = byte(value >> 24)
}
