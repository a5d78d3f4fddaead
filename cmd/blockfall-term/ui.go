package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/render/tcellsurface"
	"github.com/rs/zerolog"
)

const (
	fieldX  = 2
	fieldY  = 1
	sidebar = fieldX + tcellsurface.Width + 4
)

// viewEvent carries a published view into the screen's event queue.
type viewEvent struct {
	tcell.EventTime
	view loop.View
}

type gameOverEvent struct {
	tcell.EventTime
	summary loop.Summary
}

// ui owns the screen. Everything except postView and postGameOver runs on the goroutine
// calling run.
type ui struct {
	screen   tcell.Screen
	surface  *tcellsurface.Surface
	settings *config.Settings
	manager  *loop.Manager
	logger   zerolog.Logger

	session string
	last    *loop.View
	over    *loop.Summary

	mu       sync.Mutex
	finished []loop.Summary
}

func newUI(screen tcell.Screen, settings *config.Settings, logger zerolog.Logger) *ui {
	return &ui{
		screen:   screen,
		surface:  tcellsurface.New(screen, fieldX, fieldY),
		settings: settings,
		logger:   logger,
	}
}

func (u *ui) postView(v loop.View) {
	ev := &viewEvent{view: v}
	ev.SetEventNow()
	if err := u.screen.PostEvent(ev); err != nil {
		u.logger.Debug().Err(err).Msg("frame dropped")
	}
}

func (u *ui) postGameOver(s loop.Summary) {
	u.mu.Lock()
	u.finished = append(u.finished, s)
	u.mu.Unlock()

	ev := &gameOverEvent{summary: s}
	ev.SetEventNow()
	_ = u.screen.PostEvent(ev)
}

func (u *ui) summaries() []loop.Summary {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]loop.Summary(nil), u.finished...)
}

func (u *ui) restart(ctx context.Context) {
	u.last, u.over = nil, nil
	u.session = u.manager.Start(ctx).Name()
}

// run processes screen events until the user quits or ctx is cancelled.
func (u *ui) run(ctx context.Context) {
	u.restart(ctx)

	for {
		switch ev := u.screen.PollEvent().(type) {
		case nil, *tcell.EventInterrupt:
			return
		case *tcell.EventResize:
			u.screen.Sync()
			u.draw()
		case *viewEvent:
			// views from a replaced session can still be queued
			if ev.view.Session != u.session {
				continue
			}
			u.last = &ev.view
			u.draw()
		case *gameOverEvent:
			if ev.summary.Session != u.session {
				continue
			}
			u.over = &ev.summary
			u.draw()
		case *tcell.EventKey:
			if !u.handleKey(ctx, ev) {
				return
			}
		}
	}
}

// handleKey reports false when the user asked to quit.
func (u *ui) handleKey(ctx context.Context, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		u.manager.Send(loop.Left)
	case tcell.KeyRight:
		u.manager.Send(loop.Right)
	case tcell.KeyDown:
		u.manager.Send(loop.Drop)
	case tcell.KeyUp:
		u.manager.Send(loop.Rotate)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'p':
			u.settings.TogglePause()
			u.draw()
		case '1':
			u.settings.SetSpeed(config.SpeedSlow)
		case '2':
			u.settings.SetSpeed(config.SpeedNormal)
		case '3':
			u.settings.SetSpeed(config.SpeedFast)
		case 'r':
			u.restart(ctx)
		}
	}
	return true
}

func (u *ui) draw() {
	u.screen.Clear()

	border := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y := fieldY - 1; y <= fieldY+tcellsurface.Height; y++ {
		u.screen.SetContent(fieldX-1, y, '│', nil, border)
		u.screen.SetContent(fieldX+tcellsurface.Width, y, '│', nil, border)
	}
	for x := fieldX; x < fieldX+tcellsurface.Width; x++ {
		u.screen.SetContent(x, fieldY+tcellsurface.Height, '─', nil, border)
	}

	if u.last != nil {
		u.last.Frame.Replay(u.surface)
		u.drawSidebar(*u.last)
	}

	u.screen.Show()
}

func (u *ui) drawSidebar(view loop.View) {
	text := tcell.StyleDefault
	dim := text.Dim(true)
	bold := text.Bold(true)

	status, statusStyle := "RUNNING", text.Foreground(tcell.ColorGreen)
	switch {
	case view.Over:
		status, statusStyle = "GAME OVER", bold.Foreground(tcell.ColorRed)
	case u.settings.Paused():
		status, statusStyle = "PAUSED", bold.Foreground(tcell.ColorYellow)
	}

	lines := []line{
		{bold, view.Session},
		{text, ""},
		{text, fmt.Sprintf("Score  %d", view.Score)},
		{text, fmt.Sprintf("Lines  %d", view.Lines)},
		{text, fmt.Sprintf("Next   %s", view.Next.Kind)},
		{text, fmt.Sprintf("Speed  %s", u.settings.Speed().Delay())},
		{text, ""},
		{statusStyle, status},
	}
	if u.over != nil {
		lines = append(lines, line{dim, fmt.Sprintf("final score %d, r to play again", u.over.Score)})
	}

	for i, l := range lines {
		puts(u.screen, l.style, sidebar, fieldY+i, l.text)
	}

	help := []string{"←/→ move  ↓ drop  ↑ rotate", "p pause  r new  1/2/3 speed", "q quit"}
	for i, h := range help {
		puts(u.screen, dim, sidebar, fieldY+tcellsurface.Height-len(help)+i, h)
	}
}

type line struct {
	style tcell.Style
	text  string
}

func puts(s tcell.Screen, style tcell.Style, x, y int, str string) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
