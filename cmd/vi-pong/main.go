package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-pong/app"
	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/highscore"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/render"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags, err := config.ParseFlags("vi-pong", args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if logFile := setupLogging(flags.Debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := flags.Resolve()
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	// Persisted difficulty wins unless -difficulty was given
	store := highscore.NewStore(cfg.ScoresPath)
	table, err := store.Load()
	if err != nil {
		if !errors.Is(err, highscore.ErrNotFound) {
			log.Printf("high scores: %v (using defaults)", err)
		}
		table.Difficulty = cfg.DifficultyLevel()
	}
	if flags.IsSet("difficulty") {
		table.Difficulty = cfg.DifficultyLevel()
	}

	sound := audio.NewSoundManager(!cfg.Sound)
	if cfg.Sound {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio init failed: %v (continuing without audio)", err)
		}
		defer sound.Cleanup()
	}

	engineCfg := cfg.Engine()
	engineCfg.Difficulty = table.Difficulty
	match, err := engine.NewMatch(engineCfg, engine.Listeners{sound, app.PhaseLog{}})
	if err != nil {
		return err
	}
	game := app.NewGame(match, store, table)
	if cfg.Sound {
		game.SetSound(sound)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the trace
	core.SetCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	log.Printf("vi-pong start: difficulty=%s fps=%d sound=%v", table.Difficulty, cfg.FrameRate, cfg.Sound)
	err = runLoop(screen, game, engineCfg.Geometry.Height, cfg.FrameRate)
	log.Printf("vi-pong exit: %v", err)
	return err
}

// runLoop polls terminal events and drives fixed-rate frames until the game asks to quit
func runLoop(screen tcell.Screen, game *app.Game, fieldHeight, fps int) error {
	g, ctx := errgroup.WithContext(context.Background())
	events := make(chan tcell.Event, 100)

	// Poller: PollEvent returns nil once the screen is finalized
	g.Go(core.Guard(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	}))

	// Frame loop owns the translator, the game and the renderer
	g.Go(core.Guard(func() error {
		defer screen.Fini()

		renderer := render.NewRenderer(screen)
		translator := input.NewTranslator(fieldHeight)
		translator.SetViewport(renderer.Viewport())

		ticker := time.NewTicker(time.Second / time.Duration(fps))
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				translator.Handle(ev)
			case <-ticker.C:
				in := translator.State()
				translator.Clear()

				if in.Has(input.Resize) {
					renderer.UpdateDimensions(screen.Size())
					translator.SetViewport(renderer.Viewport())
					screen.Sync()
				}
				if !game.Tick(in) {
					return nil
				}
				renderer.RenderFrame(game.View())
			}
		}
	}))

	return g.Wait()
}
