package constants

// UI Layout Constants
const (
	// CellWidth is the terminal columns used by one cube cell (glyph + gap)
	CellWidth = 2

	// PanelGap is the blank columns between two layer panels
	PanelGap = 3

	// PanelHeaderRows is the rows above each panel holding its layer label
	PanelHeaderRows = 1

	// StatusBarRows is the rows reserved at the bottom of the screen
	StatusBarRows = 1
)

// Cell glyphs
const (
	GlyphOff   = '·'
	GlyphSnake = '■'
	GlyphHead  = '◆'
	GlyphFruit = '●'
)

// Status text
const (
	StatusPaused   = " PAUSED "
	StatusRunning  = " RUNNING "
	StatusGameOver = " GAME OVER "
)
