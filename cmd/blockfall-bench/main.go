package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/fatih/color"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/logging"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/stats"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine, "")
	sessions := flag.Int("sessions", 10, "Number of sessions to play back to back.")
	maxTicks := flag.Int64("max-ticks", 20000, "Tick cap per session; 0 plays every session to game over.")
	maxInputs := flag.Int("max-inputs", 2, "Most random inputs the player queues per tick.")
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

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	report := &stats.Report{
		Sessions: *sessions,
		MaxTicks: *maxTicks,
		Seed:     seed,
		StepTime: stats.Durations{
			Samples: make([]time.Duration, 0),
		},
	}

	tracker := stats.NewTracker()
	settings := config.NewSettings(cfg)
	source := rand.New(rand.NewPCG(seed, seed>>1|1))

	runtime.ReadMemStats(&report.MemStatsStart)
	logger.Info().Int("sessions", *sessions).Uint64("seed", seed).Msg("starting bench")

	startTime := time.Now()
	for i := 0; i < *sessions && ctx.Err() == nil; i++ {
		summary := play(ctx, playConfig{
			name:      petname.Generate(2, "-"),
			game:      engine.New(engine.WithRand(source)),
			settings:  settings,
			tracker:   tracker,
			player:    &loop.RandomPlayer{Rand: source, MaxInputs: *maxInputs},
			maxTicks:  *maxTicks,
			logger:    logger,
			stepTimes: &report.StepTime.Samples,
		})
		report.Summaries = append(report.Summaries, summary)
	}

	report.TotalTime = time.Since(startTime)
	report.Totals = tracker.Snapshot()
	report.StepTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info().Dur("elapsed", report.TotalTime).Msg("bench finished")

	color.New(color.FgCyan, color.Bold).Println("\n--- Blockfall Bench Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("generating report")
	}
	fmt.Println(color.New(color.Faint).Sprint("--- End of Report ---"))
}

type playConfig struct {
	name      string
	game      *engine.Game
	settings  *config.Settings
	tracker   *stats.Tracker
	player    *loop.RandomPlayer
	maxTicks  int64
	logger    zerolog.Logger
	stepTimes *[]time.Duration
}

// play steps one session as fast as possible until it ends, the tick cap is hit or ctx is
// cancelled. A capped session is summarized as it stands.
func play(ctx context.Context, pc playConfig) loop.Summary {
	var summary *loop.Summary

	scheduler := loop.NewScheduler(pc.game, pc.settings,
		loop.WithName(pc.name),
		loop.WithLogger(pc.logger),
		loop.OnGameOver(func(s loop.Summary) { summary = &s }),
	)
	scheduler.Register(pc.player)
	scheduler.Register(pc.tracker)

	var ticks int64
	lastFrameTime := time.Now()
	for summary == nil && ctx.Err() == nil && (pc.maxTicks == 0 || ticks < pc.maxTicks) {
		deltaTime := time.Since(lastFrameTime)
		lastFrameTime = time.Now()

		stepStart := time.Now()
		scheduler.Once(deltaTime.Seconds())
		*pc.stepTimes = append(*pc.stepTimes, time.Since(stepStart))
		ticks++
	}

	if summary != nil {
		return *summary
	}

	pc.logger.Info().Str("session", pc.name).Int64("ticks", ticks).Msg("session capped")
	return loop.Summary{
		Session: pc.name,
		Score:   pc.game.Score(),
		Lines:   pc.game.Lines(),
		Ticks:   ticks,
	}
}
