package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/cubesnake/grid"
)

// EventType identifies something that happened during a game
type EventType int

const (
	EventGameStart EventType = iota // new round began
	EventFruit                      // fruit placed
	EventEat                        // a snake ate the fruit
	EventBite                       // a snake ran into itself
	EventWall                       // a snake left the cube
	EventGameOver                   // the round ended
	EventPause                      // game clock stopped
	EventResume                     // game clock restarted
)

func (e EventType) String() string {
	switch e {
	case EventGameStart:
		return "start"
	case EventFruit:
		return "fruit"
	case EventEat:
		return "eat"
	case EventBite:
		return "bite"
	case EventWall:
		return "wall"
	case EventGameOver:
		return "game-over"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	}
	return "unknown"
}

// Event is delivered synchronously to listeners registered with Game.OnEvent
// Player is -1 and Snake is uuid.Nil for game-wide events
type Event struct {
	Type   EventType
	Round  int
	Tick   uint64
	Player int
	Snake  uuid.UUID
	Cell   grid.Point
}

// Outcome describes how a round stands
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeBitten
	OutcomeWall
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBitten:
		return "bitten"
	case OutcomeWall:
		return "hit the wall"
	}
	return "running"
}
