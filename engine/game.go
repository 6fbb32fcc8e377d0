// Package engine drives cube snake rounds: it owns the snakes and the fruit,
// decides when a tick fires, applies the round rules around each snake tick
// and mirrors occupied and vacated cells onto a lighting surface.
//
// Game is single-threaded. The caller runs Update, Step, Turn and the pause
// controls from one goroutine so input always lands between two ticks.
package engine

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/cubesnake/cube"
	"github.com/lixenwraith/cubesnake/grid"
	"github.com/lixenwraith/cubesnake/heading"
	"github.com/lixenwraith/cubesnake/snake"
)

var (
	// ErrNoSuchPlayer is returned for player indexes outside the current round
	ErrNoSuchPlayer = errors.New("engine: no such player")

	// ErrRoundOver is returned for input arriving after the round ended
	ErrRoundOver = errors.New("engine: round is over")

	// ErrInvalidHeading rejects Nowhere and out-of-range absolute headings
	ErrInvalidHeading = errors.New("engine: invalid absolute heading")
)

// Surface is the lighting target the game mirrors its cells onto
type Surface interface {
	Fill()
	SwitchOn(p grid.Point, r cube.Role)
	SwitchOff(p grid.Point)
}

// Game is one cube with its snakes and fruit, replayed round after round
type Game struct {
	cfg     GameConfig
	bounds  grid.Bounds
	rng     *rand.Rand
	surface Surface
	clock   *PausableClock

	id       uuid.UUID
	round    int
	snakes   []*snake.Snake
	fruit    grid.Point
	outcome  Outcome
	loser    int
	ticks    uint64
	lastTick time.Time

	listeners []func(Event)
}

// NewGame validates cfg and prepares a game; call Start to play the first round
func NewGame(cfg *GameConfig, surface Surface, clock *PausableClock) (*Game, error) {
	if cfg == nil {
		cfg = DefaultGameConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	if surface == nil {
		return nil, errors.New("engine: nil surface")
	}
	if clock == nil {
		clock = NewPausableClock(nil)
	}

	return &Game{
		cfg:     *cfg,
		bounds:  grid.NewBounds(cfg.CubeSize),
		rng:     grid.NewRand(cfg.Seed),
		surface: surface,
		clock:   clock,
		loser:   -1,
	}, nil
}

// OnEvent registers a listener; listeners run synchronously in registration order
func (g *Game) OnEvent(fn func(Event)) {
	g.listeners = append(g.listeners, fn)
}

func (g *Game) emit(e Event) {
	e.Round = g.round
	e.Tick = g.ticks
	for _, fn := range g.listeners {
		fn(e)
	}
}

// Start begins a new round, discarding the previous one
func (g *Game) Start() error {
	g.surface.Fill()

	snakes := make([]*snake.Snake, 0, g.cfg.Players)
	for i := 0; i < g.cfg.Players; i++ {
		s, err := snake.New(g.rng, g.bounds)
		if err != nil {
			return fmt.Errorf("engine: spawn player %d: %w", i, err)
		}
		snakes = append(snakes, s)
	}

	g.id = uuid.New()
	g.round++
	g.snakes = snakes
	g.outcome = OutcomeRunning
	g.loser = -1
	g.ticks = 0

	for _, s := range g.snakes {
		for _, p := range s.Body() {
			g.surface.SwitchOn(p, cube.RoleSnake)
		}
	}

	g.clock.Resume()
	g.lastTick = g.clock.Now()

	log.Printf("[game %s] %s round, %d snake(s) in a %d³ cube", g.id, humanize.Ordinal(g.round), len(g.snakes), g.bounds.Size)
	for i, s := range g.snakes {
		log.Printf("[game %s] player %d snake %s at %v heading %v", g.id, i, s.ID(), s.Head(), s.Heading())
	}
	g.emit(Event{Type: EventGameStart, Player: -1})

	g.placeFruit()
	return nil
}

// placeFruit drops the fruit anywhere in the cube, the snake's body included
func (g *Game) placeFruit() {
	g.fruit = grid.RandomPoint(g.rng, g.bounds, 0)
	g.surface.SwitchOn(g.fruit, cube.RoleFruit)
	g.emit(Event{Type: EventFruit, Player: -1, Cell: g.fruit})
}

// Update fires a tick when a full interval of game time has passed since the last one
// Returns true when a tick ran
func (g *Game) Update() bool {
	if g.round == 0 || g.Over() || g.clock.IsPaused() {
		return false
	}
	now := g.clock.Now()
	if now.Sub(g.lastTick) < g.cfg.TickInterval {
		return false
	}
	g.Step()
	g.lastTick = now
	return true
}

// Step advances every snake by one cell regardless of the clock
func (g *Game) Step() {
	if g.round == 0 || g.Over() {
		return
	}
	g.ticks++

	for i, s := range g.snakes {
		eat := s.NextCell() == g.fruit
		if eat {
			g.emit(Event{Type: EventEat, Player: i, Snake: s.ID(), Cell: g.fruit})
			log.Printf("[game %s] player %d ate at %v, length %d", g.id, i, g.fruit, s.Len()+1)
			g.placeFruit()
		}

		m := s.Tick(eat)

		switch {
		case s.OutOfBounds(g.bounds):
			g.end(i, s, OutcomeWall, EventWall, m.Occupied)
		case s.Bitten():
			g.end(i, s, OutcomeBitten, EventBite, m.Occupied)
		default:
			g.surface.SwitchOn(m.Occupied, cube.RoleSnake)
			if m.HasVacated && !g.occupied(m.Vacated) {
				if m.Vacated == g.fruit {
					// Fruit dropped under the body shows again once the tail leaves
					g.surface.SwitchOn(g.fruit, cube.RoleFruit)
				} else {
					g.surface.SwitchOff(m.Vacated)
				}
			}
		}
	}

	if g.Over() {
		log.Printf("[game %s] over after %s ticks: player %d %v", g.id, humanize.Comma(int64(g.ticks)), g.loser, g.outcome)
		g.emit(Event{Type: EventGameOver, Player: g.loser})
	}
}

// end records the first death of the round; later deaths in the same tick only emit
func (g *Game) end(player int, s *snake.Snake, o Outcome, t EventType, cell grid.Point) {
	if g.outcome == OutcomeRunning {
		g.outcome = o
		g.loser = player
	}
	log.Printf("[game %s] player %d snake %s %v at %v", g.id, player, s.ID(), o, cell)
	g.emit(Event{Type: t, Player: player, Snake: s.ID(), Cell: cell})
}

func (g *Game) occupied(p grid.Point) bool {
	for _, s := range g.snakes {
		if s.Contains(p) {
			return true
		}
	}
	return false
}

func (g *Game) player(i int) (*snake.Snake, error) {
	if i < 0 || i >= len(g.snakes) {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchPlayer, i)
	}
	if g.Over() {
		return nil, ErrRoundOver
	}
	return g.snakes[i], nil
}

// Turn forwards a relative command to a player's snake
func (g *Game) Turn(player int, cmd heading.Heading) error {
	s, err := g.player(player)
	if err != nil {
		return err
	}
	if _, err := s.Turn(cmd); err != nil {
		return err
	}
	return nil
}

// TurnAbsolute points a player's snake along a cube axis
func (g *Game) TurnAbsolute(player int, h heading.Heading) error {
	s, err := g.player(player)
	if err != nil {
		return err
	}
	if h == heading.Nowhere || h >= heading.HeadingCount {
		return fmt.Errorf("%w: %v", ErrInvalidHeading, h)
	}
	s.TurnAbsolute(h)
	return nil
}

// Pause freezes the game clock
func (g *Game) Pause() {
	if g.clock.IsPaused() {
		return
	}
	g.clock.Pause()
	g.emit(Event{Type: EventPause, Player: -1})
}

// Resume restarts the game clock
func (g *Game) Resume() {
	if !g.clock.IsPaused() {
		return
	}
	g.clock.Resume()
	g.emit(Event{Type: EventResume, Player: -1})
}

// TogglePause flips between paused and running
func (g *Game) TogglePause() {
	if g.clock.IsPaused() {
		g.Resume()
	} else {
		g.Pause()
	}
}

// Paused reports whether the game clock is stopped
func (g *Game) Paused() bool {
	return g.clock.IsPaused()
}

// Over reports whether the current round has ended
func (g *Game) Over() bool {
	return g.outcome != OutcomeRunning
}

// Outcome returns how the round stands
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Loser returns the player whose snake ended the round, -1 while running
func (g *Game) Loser() int {
	return g.loser
}

// Snakes returns the snakes of the current round, indexed by player
func (g *Game) Snakes() []*snake.Snake {
	out := make([]*snake.Snake, len(g.snakes))
	copy(out, g.snakes)
	return out
}

// Fruit returns the active target cell
func (g *Game) Fruit() grid.Point {
	return g.fruit
}

// Bounds returns the cube the game is played in
func (g *Game) Bounds() grid.Bounds {
	return g.bounds
}

// Config returns a copy of the game settings
func (g *Game) Config() GameConfig {
	return g.cfg
}

// ID identifies the current round in logs
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Round returns the 1-based number of the current round, 0 before Start
func (g *Game) Round() int {
	return g.round
}

// Ticks returns the ticks run in the current round
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// NextTickIn returns the game time left until the next tick is due
func (g *Game) NextTickIn() time.Duration {
	left := g.cfg.TickInterval - g.clock.Now().Sub(g.lastTick)
	if left < 0 {
		return 0
	}
	return left
}
