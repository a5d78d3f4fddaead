package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/logging"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/stats"
	"github.com/rs/zerolog/log"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine, "blockfall.yaml")
	logPath := flag.String("log", "blockfall.log", "File the log is written to while the screen is in use.")
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	logger, logFile, err := logging.ToFile(cfg.Log, *logPath)
	if err != nil {
		log.Fatal().Err(err).Msg("configuring logger")
	}
	defer logFile.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("opening terminal")
	}
	if err := screen.Init(); err != nil {
		log.Fatal().Err(err).Msg("initializing terminal")
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
	ui := newUI(screen, settings, logger)
	ui.manager = loop.NewManager(settings,
		loop.WithGameOptions(gameOpts...),
		loop.WithSchedulerOptions(
			loop.OnView(ui.postView),
			loop.OnGameOver(ui.postGameOver),
		),
		loop.WithSystems(func() []loop.System {
			return []loop.System{tracker}
		}),
		loop.WithManagerLogger(logger),
	)

	go func() {
		<-ctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	ui.run(ctx)
	ui.manager.Stop()
	screen.Fini()

	printSummary(ui.summaries(), tracker.Snapshot())
}

func printSummary(summaries []loop.Summary, totals stats.Snapshot) {
	heading := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgWhite, color.Faint)

	heading.Println("Blockfall")
	if len(summaries) == 0 {
		label.Println("no finished sessions")
	}

	best := 0
	for _, s := range summaries {
		best = max(best, s.Score)
		fmt.Printf("  %-24s %s %6d  %s %4d\n", s.Session,
			label.Sprint("score"), s.Score, label.Sprint("lines"), s.Lines)
	}

	if len(summaries) > 0 {
		color.Green("  best score %d", best)
	}
	label.Printf("  %d ticks, %d pieces locked, %d lines\n", totals.Ticks, totals.Locks, totals.Lines)
}
