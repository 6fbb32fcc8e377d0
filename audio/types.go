package audio

import "github.com/lixenwraith/cubesnake/constants"

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat      SoundType = iota // Fruit eaten
	SoundBite                      // Snake ran into itself
	SoundWall                      // Snake left the cube
	SoundGameOver                  // Round ended
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundBite:
		return "bite"
	case SoundWall:
		return "wall"
	case SoundGameOver:
		return "gameover"
	}
	return "unknown"
}

// AudioConfig holds output settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the default settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundEat:      1.0,
			SoundBite:     0.8,
			SoundWall:     0.8,
			SoundGameOver: 0.6,
		},
	}
}
