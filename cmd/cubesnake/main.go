package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cubesnake/audio"
	"github.com/lixenwraith/cubesnake/constants"
	"github.com/lixenwraith/cubesnake/core"
	"github.com/lixenwraith/cubesnake/cube"
	"github.com/lixenwraith/cubesnake/engine"
	"github.com/lixenwraith/cubesnake/grid"
	"github.com/lixenwraith/cubesnake/modes"
	"github.com/lixenwraith/cubesnake/render"
)

var (
	sizeFlag     = flag.Int("size", 0, "Cube edge length (default from CUBESNAKE_SIZE or 8)")
	tickFlag     = flag.Duration("tick", 0, "Time between snake moves, e.g. 800ms")
	playersFlag  = flag.Int("players", 0, "Number of snakes, 1 or 2")
	seedFlag     = flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
	controlsFlag = flag.String("controls", "", "Player 1 key scheme: relative, absolute")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/cubesnake.log")
	muteFlag     = flag.Bool("mute", false, "Disable sound")
)

// applyFlags overlays explicitly set flags onto the environment config
// Zero values leave the config untouched
func applyFlags(cfg *engine.GameConfig, size int, tick time.Duration, players int, seed uint64, controls string) error {
	if size != 0 {
		cfg.CubeSize = size
	}
	if tick != 0 {
		cfg.TickInterval = tick
	}
	if players != 0 {
		cfg.Players = players
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if controls != "" {
		scheme, err := engine.ParseControlScheme(controls)
		if err != nil {
			return err
		}
		cfg.Controls = scheme
	}
	return cfg.Validate()
}

// loadConfig reads the environment and overlays the command-line flags
func loadConfig() (*engine.GameConfig, error) {
	cfg := engine.LoadGameConfig()
	if err := applyFlags(cfg, *sizeFlag, *tickFlag, *playersFlag, *seedFlag, *controlsFlag); err != nil {
		return nil, err
	}
	return cfg, nil
}

// soundFor picks the effect announcing a game event
func soundFor(t engine.EventType) (audio.SoundType, bool) {
	switch t {
	case engine.EventEat:
		return audio.SoundEat, true
	case engine.EventBite:
		return audio.SoundBite, true
	case engine.EventWall:
		return audio.SoundWall, true
	case engine.EventGameOver:
		return audio.SoundGameOver, true
	}
	return 0, false
}

func main() {
	flag.Parse()
	os.Exit(run())
}

// run plays until the player quits and returns the process exit code
// Every exit path goes through run's deferred cleanup
func run() int {
	// Configuration errors exit before any log file is opened
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 2
	}

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	seed := cfg.ResolveSeed(time.Now())
	log.Printf("[main] size %d, tick %v, %d player(s), %v controls, seed %d",
		cfg.CubeSize, cfg.TickInterval, cfg.Players, cfg.Controls, seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	core.RegisterScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))
	screen.HideCursor()

	surface := cube.NewSurface(grid.NewBounds(cfg.CubeSize))
	game, err := engine.NewGame(cfg, surface, engine.NewPausableClock(nil))
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
		return 1
	}

	audioCfg := audio.LoadAudioConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	sounds := audio.NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		log.Printf("[main] audio unavailable: %v (continuing without audio)", err)
	}
	defer sounds.Cleanup()

	game.OnEvent(func(e engine.Event) {
		if st, ok := soundFor(e.Type); ok {
			sounds.Play(st)
		}
	})

	renderer := render.NewCubeRenderer(screen)
	inputHandler := modes.NewInputHandler(game, func(w, h int) {
		renderer.UpdateDimensions(w, h)
		screen.Sync()
	})

	keys, err := modes.LoadKeyBindings()
	if err != nil {
		log.Printf("[main] CUBESNAKE_KEYS ignored: %v", err)
	}
	inputHandler.SetAbsoluteKeys(keys)

	if err := game.Start(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		return 1
	}

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	renderer.RenderFrame(game, surface)
	for {
		select {
		case ev := <-eventChan:
			if !inputHandler.HandleEvent(ev) {
				log.Printf("[main] quit after %d round(s)", game.Round())
				return 0
			}
			renderer.RenderFrame(game, surface)

		case <-frameTicker.C:
			game.Update()
			renderer.RenderFrame(game, surface)
		}
	}
}
