package loop_test

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
)

// ExampleScheduler steps a session by hand. The engine tick always runs first, then every
// registered system in order, then the commands those systems queued.
func ExampleScheduler() {
	game := engine.New(engine.WithPieces(
		engine.NewPiece(engine.ShapeT, engine.Purple),
		engine.NewPiece(engine.ShapeO, engine.Yellow),
	))

	scheduler := loop.NewScheduler(game, config.NewSettings(config.Default()))
	scheduler.Register(&PushSystem{Commands: []loop.Command{loop.Right}})

	for range 3 {
		result := scheduler.Once(0.4)
		current := game.Current()
		fmt.Printf("%s x=%d y=%d\n", result.Outcome, current.X, current.Y)
	}

	// Output:
	// fell x=4 y=1
	// fell x=5 y=2
	// fell x=6 y=3
}

// ExampleScheduler_Run drives a session in real time until the context is cancelled.
func ExampleScheduler_Run() {
	settings := config.NewSettings(config.Default())
	settings.SetSpeed(config.SpeedFast)

	scheduler := loop.NewScheduler(engine.New(engine.WithSeed(1)), settings)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := scheduler.Run(ctx, nil)

	fmt.Println("Scheduler stopped:", err)
	// Output:
	// Scheduler stopped: context deadline exceeded
}
