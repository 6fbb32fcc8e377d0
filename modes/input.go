package modes

import (
	"errors"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cubesnake/engine"
	"github.com/lixenwraith/cubesnake/heading"
)

// Relative turn keys per player; arrows drive player 1, i/j/k/l player 2
var relativeKeys = map[tcell.Key]heading.Heading{
	tcell.KeyUp:    heading.Up,
	tcell.KeyDown:  heading.Down,
	tcell.KeyLeft:  heading.Left,
	tcell.KeyRight: heading.Right,
}

var secondPlayerKeys = map[rune]heading.Heading{
	'i': heading.Up,
	'k': heading.Down,
	'j': heading.Left,
	'l': heading.Right,
}

// InputHandler maps terminal events onto game actions
type InputHandler struct {
	game         *engine.Game
	onResize     func(width, height int)
	absoluteKeys map[rune]heading.Heading
}

// NewInputHandler creates a new input handler; onResize may be nil
func NewInputHandler(game *engine.Game, onResize func(width, height int)) *InputHandler {
	return &InputHandler{
		game:         game,
		onResize:     onResize,
		absoluteKeys: DefaultAbsoluteKeys(),
	}
}

// SetAbsoluteKeys replaces player 1's absolute-scheme bindings
func (h *InputHandler) SetAbsoluteKeys(keys map[rune]heading.Heading) {
	h.absoluteKeys = keys
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventResize:
		if h.onResize != nil {
			w, ht := ev.Size()
			h.onResize(w, ht)
		}
	}
	return true
}

func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlQ, tcell.KeyCtrlC, tcell.KeyEscape:
		return false
	case tcell.KeyRune:
		h.handleRune(ev.Rune())
		return true
	}

	if cmd, ok := relativeKeys[ev.Key()]; ok {
		h.report(h.game.Turn(0, cmd))
	}
	return true
}

func (h *InputHandler) handleRune(r rune) {
	switch r {
	case 'p', 'P':
		h.game.TogglePause()
		return
	case 'n', 'N':
		if err := h.game.Start(); err != nil {
			log.Printf("[input] new game failed: %v", err)
		}
		return
	}

	if cmd, ok := secondPlayerKeys[r]; ok {
		h.report(h.game.Turn(1, cmd))
		return
	}

	if h.game.Config().Controls == engine.ControlsAbsolute {
		if dir, ok := h.absoluteKeys[r]; ok {
			h.report(h.game.TurnAbsolute(0, dir))
		}
	}
}

// report drops the expected rejections of late or unowned input and logs the rest
func (h *InputHandler) report(err error) {
	if err == nil || errors.Is(err, engine.ErrRoundOver) || errors.Is(err, engine.ErrNoSuchPlayer) {
		return
	}
	log.Printf("[input] %v", err)
}
