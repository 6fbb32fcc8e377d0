package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cubesnake/constants"
	"github.com/lixenwraith/cubesnake/cube"
	"github.com/lixenwraith/cubesnake/engine"
	"github.com/lixenwraith/cubesnake/grid"
)

// CubeRenderer draws the cube as a row of horizontal slices, top layer first
// Each slice shows X across and Z down, so Ahead points up the screen
type CubeRenderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewCubeRenderer creates a renderer sized to the screen
func NewCubeRenderer(screen tcell.Screen) *CubeRenderer {
	w, h := screen.Size()
	return &CubeRenderer{screen: screen, width: w, height: h}
}

// UpdateDimensions records a new screen size after a resize event
func (r *CubeRenderer) UpdateDimensions(width, height int) {
	r.width = width
	r.height = height
}

// PanelOrigin returns the top-left screen cell of the grid for layer y,
// below its label, and false when the panel does not fit the screen
func (r *CubeRenderer) PanelOrigin(size, y int) (int, int, bool) {
	panelW := size * constants.CellWidth
	panelH := size + constants.PanelHeaderRows
	stride := panelW + constants.PanelGap

	perRow := (r.width + constants.PanelGap) / stride
	if perRow < 1 {
		perRow = 1
	}

	// Top layer is drawn first
	idx := size - 1 - y
	col := idx % perRow
	row := idx / perRow

	x0 := col * stride
	y0 := row*(panelH+1) + constants.PanelHeaderRows
	fits := x0+panelW <= r.width && y0+size <= r.height-constants.StatusBarRows
	return x0, y0, fits
}

// RenderFrame draws the surface, the snake heads and the status line
func (r *CubeRenderer) RenderFrame(g *engine.Game, s *cube.Surface) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.fill(defaultStyle)

	size := s.Bounds().Size
	owner := r.owners(g)

	for y := size - 1; y >= 0; y-- {
		x0, y0, fits := r.PanelOrigin(size, y)
		if !fits {
			continue
		}
		r.drawText(x0, y0-constants.PanelHeaderRows, fmt.Sprintf("y=%d", y), defaultStyle.Foreground(RgbLayerLabel))

		offStyle := defaultStyle.Foreground(RgbCellOff)
		for z := 0; z < size; z++ {
			for x := 0; x < size; x++ {
				r.screen.SetContent(x0+x*constants.CellWidth, y0+z, constants.GlyphOff, nil, offStyle)
			}
		}
	}

	// Lit cells over the dark grid
	s.Each(func(p grid.Point, role cube.Role) {
		x0, y0, fits := r.PanelOrigin(size, p.Y)
		if !fits {
			return
		}
		ch, fg := r.cellGlyph(p, role, owner)
		r.screen.SetContent(x0+p.X*constants.CellWidth, y0+p.Z, ch, nil, defaultStyle.Foreground(fg))
	})

	r.drawStatusBar(g, defaultStyle)
	r.screen.Show()
}

type cellOwner struct {
	player int
	head   bool
}

// owners maps every body cell to the player holding it; heads win over bodies
func (r *CubeRenderer) owners(g *engine.Game) map[grid.Point]cellOwner {
	out := make(map[grid.Point]cellOwner)
	snakes := g.Snakes()
	for i, sn := range snakes {
		for _, p := range sn.Body() {
			if _, ok := out[p]; !ok {
				out[p] = cellOwner{player: i}
			}
		}
	}
	for i, sn := range snakes {
		out[sn.Head()] = cellOwner{player: i, head: true}
	}
	return out
}

func (r *CubeRenderer) cellGlyph(p grid.Point, role cube.Role, owner map[grid.Point]cellOwner) (rune, tcell.Color) {
	switch role {
	case cube.RoleFruit:
		return constants.GlyphFruit, RgbFruit
	case cube.RoleSnake:
		o, ok := owner[p]
		switch {
		case !ok:
			return constants.GlyphSnake, RoleColor(role)
		case o.head:
			return constants.GlyphHead, PlayerHeadColor(o.player)
		default:
			return constants.GlyphSnake, PlayerColor(o.player)
		}
	}
	return constants.GlyphOff, RgbCellOff
}

func (r *CubeRenderer) fill(style tcell.Style) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *CubeRenderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// StatusText builds the status line shown right of the state block
func StatusText(g *engine.Game) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s round · tick %s", humanize.Ordinal(g.Round()), humanize.Comma(int64(g.Ticks())))
	for i, sn := range g.Snakes() {
		fmt.Fprintf(&b, " · P%d len %d %v", i+1, sn.Len(), sn.Heading())
	}
	switch {
	case g.Over():
		fmt.Fprintf(&b, " · P%d %v · n: new game", g.Loser()+1, g.Outcome())
	case !g.Paused():
		fmt.Fprintf(&b, " · next %.1fs", g.NextTickIn().Seconds())
	}
	return b.String()
}

func (r *CubeRenderer) drawStatusBar(g *engine.Game, defaultStyle tcell.Style) {
	statusY := r.height - constants.StatusBarRows
	if statusY < 0 {
		return
	}

	var stateText string
	var stateBg tcell.Color
	switch {
	case g.Over():
		stateText, stateBg = constants.StatusGameOver, RgbGameOverBg
	case g.Paused():
		stateText, stateBg = constants.StatusPaused, RgbPausedBg
	default:
		stateText, stateBg = constants.StatusRunning, RgbRunningBg
	}

	x := r.drawText(0, statusY, stateText, defaultStyle.Foreground(RgbStatusText).Background(stateBg))
	r.drawText(x+1, statusY, StatusText(g), defaultStyle.Foreground(RgbStatusBar))
}
