package constants

import (
	"testing"
)

// TestCubeSizeRange verifies the default cube fits the accepted range
func TestCubeSizeRange(t *testing.T) {
	if DefaultCubeSize < MinCubeSize || DefaultCubeSize > MaxCubeSize {
		t.Errorf("DefaultCubeSize %d outside [%d, %d]", DefaultCubeSize, MinCubeSize, MaxCubeSize)
	}
}

// TestTickFasterThanFrame verifies a tick never fires more often than a frame renders
func TestTickFasterThanFrame(t *testing.T) {
	if MinTickInterval < FrameUpdateInterval {
		t.Errorf("MinTickInterval %v shorter than FrameUpdateInterval %v", MinTickInterval, FrameUpdateInterval)
	}
	if DefaultTickInterval < MinTickInterval {
		t.Errorf("DefaultTickInterval %v below MinTickInterval %v", DefaultTickInterval, MinTickInterval)
	}
}

// TestPlayerLimits verifies the default player count is playable
func TestPlayerLimits(t *testing.T) {
	if DefaultPlayers < 1 || DefaultPlayers > MaxPlayers {
		t.Errorf("DefaultPlayers %d outside [1, %d]", DefaultPlayers, MaxPlayers)
	}
}
