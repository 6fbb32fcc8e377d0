package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/cubesnake/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally gliding between two frequencies
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator whose pitch moves linearly from start to end
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     start,
		endFreq:  end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
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
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.endFreq != o.freq && o.duration > 0 {
			freq += (o.endFreq - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so 0 volume becomes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateEatSound generates a rising two-note chime for a fruit
func CreateEatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// E5 then A5
	n1 := NewOscillator(659.25, constants.EatSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.EatSoundNote1Duration, constants.EatSoundAttack, constants.EatSoundNote1Duration/2, rate)

	n2 := NewOscillator(880.0, constants.EatSoundNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, constants.EatSoundNote2Duration, constants.EatSoundAttack, constants.EatSoundRelease, rate)

	vol := cfg.EffectVolumes[SoundEat] * cfg.MasterVolume
	return newVolume(beep.Seq(n1Shaped, n2Shaped), vol)
}

// CreateBiteSound generates a short harsh buzz
func CreateBiteSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := NewOscillator(constants.BiteSoundFreq, constants.BiteSoundDuration, WaveSaw, rate)
	over := NewOscillator(constants.BiteSoundFreq*2, constants.BiteSoundDuration, WaveSquare, rate)
	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	shaped := NewEnvelope(mixed, constants.BiteSoundDuration, 10*time.Millisecond, 60*time.Millisecond, rate)

	vol := cfg.EffectVolumes[SoundBite] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateWallSound generates a dull noise thud
func CreateWallSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, constants.WallSoundDuration, WaveNoise, rate)
	rumble := NewOscillator(70.0, constants.WallSoundDuration, WaveSine, rate)
	mixed := beep.Mix(newVolume(noise, 0.4), newVolume(rumble, 0.6))
	shaped := NewEnvelope(mixed, constants.WallSoundDuration, 2*time.Millisecond, constants.WallSoundDuration*3/4, rate)

	vol := cfg.EffectVolumes[SoundWall] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateGameOverSound generates a falling sweep
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	sweep := NewSweep(constants.GameOverStartFreq, constants.GameOverEndFreq, constants.GameOverSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(sweep, constants.GameOverSoundDuration, 20*time.Millisecond, constants.GameOverSoundDuration/3, rate)

	vol := cfg.EffectVolumes[SoundGameOver] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// GetSoundEffect returns the streamer for the given sound type, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundEat:
		return CreateEatSound(cfg)
	case SoundBite:
		return CreateBiteSound(cfg)
	case SoundWall:
		return CreateWallSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
