package engine

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/cubesnake/constants"
)

// ControlScheme selects how player 1's heading keys are interpreted
type ControlScheme int

const (
	// ControlsRelative turns the snake in its own frame
	ControlsRelative ControlScheme = iota
	// ControlsAbsolute names cube axes directly
	ControlsAbsolute
)

func (c ControlScheme) String() string {
	if c == ControlsAbsolute {
		return "absolute"
	}
	return "relative"
}

// ParseControlScheme resolves "relative" or "absolute" (also "2d"/"3d")
func ParseControlScheme(s string) (ControlScheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "relative", "2d", "":
		return ControlsRelative, nil
	case "absolute", "3d":
		return ControlsAbsolute, nil
	}
	return ControlsRelative, fmt.Errorf("unknown control scheme %q", s)
}

// GameConfig holds the tunables of a game session
type GameConfig struct {
	CubeSize     int
	TickInterval time.Duration
	Players      int
	Seed         uint64 // 0 is replaced by ResolveSeed
	Controls     ControlScheme
}

// DefaultGameConfig returns the settings of the classic 8×8×8 cube
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		CubeSize:     constants.DefaultCubeSize,
		TickInterval: constants.DefaultTickInterval,
		Players:      constants.DefaultPlayers,
		Controls:     ControlsRelative,
	}
}

// LoadGameConfig loads game configuration from environment variables
// Unparseable values are ignored and the default kept
func LoadGameConfig() *GameConfig {
	cfg := DefaultGameConfig()

	if size := os.Getenv("CUBESNAKE_SIZE"); size != "" {
		if val, err := strconv.Atoi(size); err == nil {
			cfg.CubeSize = val
		}
	}

	if tick := os.Getenv("CUBESNAKE_TICK_MS"); tick != "" {
		if val, err := strconv.Atoi(tick); err == nil {
			cfg.TickInterval = time.Duration(val) * time.Millisecond
		}
	}

	if players := os.Getenv("CUBESNAKE_PLAYERS"); players != "" {
		if val, err := strconv.Atoi(players); err == nil {
			cfg.Players = val
		}
	}

	if seed := os.Getenv("CUBESNAKE_SEED"); seed != "" {
		if val, err := strconv.ParseUint(seed, 10, 64); err == nil {
			cfg.Seed = val
		}
	}

	if controls := os.Getenv("CUBESNAKE_CONTROLS"); controls != "" {
		if val, err := ParseControlScheme(controls); err == nil {
			cfg.Controls = val
		}
	}

	return cfg
}

// Validate rejects settings the game cannot run with
func (c *GameConfig) Validate() error {
	if c.CubeSize < constants.MinCubeSize || c.CubeSize > constants.MaxCubeSize {
		return fmt.Errorf("cube size %d outside [%d, %d]", c.CubeSize, constants.MinCubeSize, constants.MaxCubeSize)
	}
	if c.TickInterval < constants.MinTickInterval {
		return fmt.Errorf("tick interval %v below %v", c.TickInterval, constants.MinTickInterval)
	}
	if c.Players < 1 || c.Players > constants.MaxPlayers {
		return fmt.Errorf("player count %d outside [1, %d]", c.Players, constants.MaxPlayers)
	}
	return nil
}

// ResolveSeed fills a zero seed from the given clock
func (c *GameConfig) ResolveSeed(now time.Time) uint64 {
	if c.Seed == 0 {
		c.Seed = uint64(now.UnixNano())
	}
	return c.Seed
}
