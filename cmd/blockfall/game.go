package main

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/render/ebitensurface"
	"github.com/rs/zerolog"
)

// Game implements ebiten.Game. The session loop runs on its own goroutine; Game only reads
// the views it publishes and forwards key presses.
type Game struct {
	ctx      context.Context
	manager  *loop.Manager
	settings *config.Settings
	logger   zerolog.Logger
	surface  *ebitensurface.Surface

	imgui   *debugui_ebiten.ImguiBackend
	overlay *debugui.Overlay

	view    atomic.Pointer[loop.View]
	summary atomic.Pointer[loop.Summary]
}

// setView and gameOver run on the session goroutine.
func (g *Game) setView(v loop.View) {
	g.view.Store(&v)
}

func (g *Game) gameOver(s loop.Summary) {
	g.summary.Store(&s)
}

func (g *Game) latestView() (loop.View, bool) {
	v := g.view.Load()
	if v == nil {
		return loop.View{}, false
	}
	return *v, true
}

// restart stops the old session before clearing its state, so none of its hooks can
// overwrite the new session's.
func (g *Game) restart() {
	g.manager.Stop()
	g.summary.Store(nil)
	g.view.Store(nil)
	g.manager.Start(g.ctx)
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	if g.imgui != nil {
		g.imgui.Update(g.overlay)
		if g.overlay.InputState().WantCaptureKeyboard {
			return nil
		}
	}

	for _, action := range pressedActions() {
		switch action {
		case actionQuit:
			return ebiten.Termination
		case actionPause:
			paused := g.settings.TogglePause()
			g.logger.Debug().Bool("paused", paused).Msg("pause toggled")
		case actionSlow:
			g.settings.SetSpeed(config.SpeedSlow)
		case actionNormal:
			g.settings.SetSpeed(config.SpeedNormal)
		case actionFast:
			g.settings.SetSpeed(config.SpeedFast)
		case actionRestart:
			g.restart()
		}
	}

	for _, cmd := range pressedCommands() {
		g.manager.Send(cmd)
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	view, ok := g.latestView()
	if !ok {
		return
	}

	g.surface.Image = screen
	view.Frame.Replay(g.surface)

	ebitenutil.DebugPrintAt(screen, g.sidebar(view), ebitensurface.Width+12, 12)

	if g.imgui != nil {
		g.imgui.DrawOver(screen)
	}
}

func (g *Game) sidebar(view loop.View) string {
	status := "RUNNING"
	switch {
	case view.Over:
		status = "GAME OVER"
	case view.Paused:
		status = "PAUSED"
	}

	text := fmt.Sprintf("%s\n\nScore: %d\nLines: %d\nNext:  %s\nSpeed: %s\n\n",
		view.Session, view.Score, view.Lines, view.Next.Kind, view.Speed.Delay())
	text += status

	if s := g.summary.Load(); s != nil {
		text += fmt.Sprintf("\nFinal score %d\nR to play again", s.Score)
	}

	text += "\n\nArrows move\nUp rotates\nP pause  R new\n1/2/3 speed\nEsc quit"
	return text
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return ScreenWidth, ScreenHeight
}
