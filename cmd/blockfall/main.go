package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/logging"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/render/ebitensurface"
	"github.com/plus3/blockfall/stats"
	"github.com/rs/zerolog/log"
)

const (
	SidebarWidth = 180
	ScreenWidth  = ebitensurface.Width + SidebarWidth
	ScreenHeight = ebitensurface.Height

	DebugWidth  = 1000
	DebugHeight = 640
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine, "blockfall.yaml")
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("configuring logger")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	settings := config.NewSettings(cfg)
	go func() {
		if err := config.Watch(ctx, flags.Path, settings, logger); err != nil {
			logger.Warn().Err(err).Msg("configuration reload disabled")
		}
	}()

	var gameOpts []engine.Option
	if cfg.Seed != 0 {
		gameOpts = append(gameOpts, engine.WithSeed(cfg.Seed))
	}

	tracker := stats.NewTracker()
	game := &Game{
		ctx:      ctx,
		settings: settings,
		logger:   logger,
		surface:  ebitensurface.New(nil, 0, 0),
	}

	game.manager = loop.NewManager(settings,
		loop.WithGameOptions(gameOpts...),
		loop.WithSchedulerOptions(
			loop.OnView(game.setView),
			loop.OnGameOver(game.gameOver),
		),
		loop.WithSystems(func() []loop.System {
			return []loop.System{tracker}
		}),
		loop.WithManagerLogger(logger),
	)

	if cfg.Debug {
		game.imgui = debugui_ebiten.NewImguiBackend("Blockfall (debug)", DebugWidth, DebugHeight)
		game.overlay = debugui.NewOverlay(
			debugui.SessionWindow(game.latestView, settings, game.restart),
			debugui.NewPerformanceStats(game.latestView, 120).Item(),
			debugui.TrackerWindow(tracker),
		)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle("Blockfall")
	}

	game.restart()
	defer game.manager.Stop()

	if err := ebiten.RunGame(game); err != nil {
		logger.Error().Err(err).Msg("game loop failed")
	}
}
