package constants

import "time"

// Eat Sound Timing
const (
	EatSoundNote1Duration = 80 * time.Millisecond
	EatSoundNote2Duration = 220 * time.Millisecond
	EatSoundAttack        = 5 * time.Millisecond
	EatSoundRelease       = 120 * time.Millisecond
)

// Bite Sound Timing
const (
	BiteSoundDuration = 150 * time.Millisecond
	BiteSoundFreq     = 120.0
)

// Wall Sound Timing
const (
	WallSoundDuration = 300 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverSoundDuration = 900 * time.Millisecond
	GameOverStartFreq     = 440.0
	GameOverEndFreq       = 110.0
)

// Audio device
const (
	// AudioSampleRate is the output sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)
