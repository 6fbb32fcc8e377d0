package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~20 FPS, a terminal needs no more)
	FrameUpdateInterval = 50 * time.Millisecond

	// DefaultTickInterval is how long the snake waits between moves
	DefaultTickInterval = 1500 * time.Millisecond

	// MinTickInterval is the fastest accepted tick
	MinTickInterval = 50 * time.Millisecond
)

// Cube Constants
const (
	// DefaultCubeSize is the edge length of the LED cube
	DefaultCubeSize = 8

	// MinCubeSize leaves room for a 3-segment snake two cells from every face
	MinCubeSize = 5

	// MaxCubeSize keeps every layer panel on a normal terminal
	MaxCubeSize = 16
)

// Player Constants
const (
	// DefaultPlayers is the number of snakes in a new game
	DefaultPlayers = 1

	// MaxPlayers is the number of key sets the input handler knows
	MaxPlayers = 2
)
