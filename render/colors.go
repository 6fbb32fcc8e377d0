package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cubesnake/cube"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbCellOff    = tcell.NewRGBColor(60, 62, 80)    // Dark LED
	RgbFruit      = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbLayerLabel = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status

	// Status block backgrounds
	RgbRunningBg  = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbPausedBg   = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbGameOverBg = tcell.NewRGBColor(200, 50, 50)   // Red
)

// Snake colors per player, body then head
var playerColors = [][2]tcell.Color{
	{tcell.NewRGBColor(0, 200, 0), tcell.NewRGBColor(50, 255, 50)},      // Green
	{tcell.NewRGBColor(100, 150, 255), tcell.NewRGBColor(140, 190, 255)}, // Blue
}

// PlayerColor returns the body color of a player's snake, cycling past the palette
func PlayerColor(player int) tcell.Color {
	return playerColors[player%len(playerColors)][0]
}

// PlayerHeadColor returns the head color of a player's snake
func PlayerHeadColor(player int) tcell.Color {
	return playerColors[player%len(playerColors)][1]
}

// RoleColor returns the foreground used for a lit role when no snake owns the cell
func RoleColor(r cube.Role) tcell.Color {
	switch r {
	case cube.RoleFruit:
		return RgbFruit
	case cube.RoleSnake:
		return PlayerColor(0)
	}
	return RgbCellOff
}
