// Package audio synthesises the game's sound cues with beep. Nothing is
// loaded from disk: each cue is a short shaped oscillator voice.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"chosenoffset.com/duskblade/internal/world"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave whose frequency slides linearly from
// freq to endFreq over its duration.
type oscillator struct {
	freq, endFreq float64
	phase         float64
	duration      int
	position      int
	wave          WaveType
	rate          beep.SampleRate
	seed          uint32
}

// NewOscillator creates an oscillator with a frequency sweep. Pass the same
// value for freq and endFreq for a steady tone.
func NewOscillator(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		seed:     0x2545f491,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			// xorshift keeps noise reproducible
			o.seed ^= o.seed << 13
			o.seed ^= o.seed >> 17
			o.seed ^= o.seed << 5
			val = float64(o.seed)/float64(math.MaxUint32)*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack ramp and a release ramp
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain. Zero or less is silent since the
// effect works in log space.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Voice describes how one cue sounds
type Voice struct {
	Wave            WaveType
	Freq, EndFreq   float64
	Duration        time.Duration
	Attack, Release time.Duration
	Volume          float64
	Harmonic        float64 // Mixed in at an octave up when non-zero
}

// Voices maps every cue to its sound
var Voices = [world.CueCount]Voice{
	world.CueSlash:      {Wave: WaveNoise, Duration: 90 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 60 * time.Millisecond, Volume: 0.35},
	world.CueMagic:      {Wave: WaveSine, Freq: 440, EndFreq: 1320, Duration: 260 * time.Millisecond, Attack: 20 * time.Millisecond, Release: 120 * time.Millisecond, Volume: 0.4, Harmonic: 0.3},
	world.CueDash:       {Wave: WaveNoise, Duration: 140 * time.Millisecond, Attack: 30 * time.Millisecond, Release: 90 * time.Millisecond, Volume: 0.25},
	world.CueShield:     {Wave: WaveSine, Freq: 330, EndFreq: 660, Duration: 300 * time.Millisecond, Attack: 40 * time.Millisecond, Release: 150 * time.Millisecond, Volume: 0.35, Harmonic: 0.4},
	world.CueHit:        {Wave: WaveSquare, Freq: 180, EndFreq: 90, Duration: 80 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 50 * time.Millisecond, Volume: 0.3},
	world.CuePlayerHurt: {Wave: WaveSaw, Freq: 120, EndFreq: 70, Duration: 180 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 100 * time.Millisecond, Volume: 0.4},
	world.CuePickup:     {Wave: WaveSine, Freq: 880, EndFreq: 1760, Duration: 150 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 80 * time.Millisecond, Volume: 0.35, Harmonic: 0.3},
	world.CueEnemyDeath: {Wave: WaveSaw, Freq: 220, EndFreq: 40, Duration: 400 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 250 * time.Millisecond, Volume: 0.35},
}

// Render builds the streamer for one cue at the given master volume.
func Render(v Voice, rate beep.SampleRate, master float64) beep.Streamer {
	osc := NewOscillator(v.Freq, v.EndFreq, v.Duration, v.Wave, rate)
	var s beep.Streamer = NewEnvelope(osc, v.Duration, v.Attack, v.Release, rate)

	if v.Harmonic > 0 {
		over := NewOscillator(v.Freq*2, v.EndFreq*2, v.Duration, v.Wave, rate)
		overShaped := NewEnvelope(over, v.Duration, v.Attack, v.Release/2, rate)
		s = beep.Mix(
			newVolume(s, 1-v.Harmonic),
			newVolume(overShaped, v.Harmonic),
		)
	}
	return newVolume(s, v.Volume*master)
}
