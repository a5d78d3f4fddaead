package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/loop"
)

// Held movement keys repeat after repeatDelay ticks, every repeatInterval ticks.
const (
	repeatDelay    = 15
	repeatInterval = 4
)

type action int

const (
	actionQuit action = iota
	actionPause
	actionSlow
	actionNormal
	actionFast
	actionRestart
)

var actionKeys = []struct {
	key    ebiten.Key
	action action
}{
	{ebiten.KeyEscape, actionQuit},
	{ebiten.KeyP, actionPause},
	{ebiten.Key1, actionSlow},
	{ebiten.Key2, actionNormal},
	{ebiten.Key3, actionFast},
	{ebiten.KeyR, actionRestart},
}

var commandKeys = []struct {
	key ebiten.Key
	cmd loop.Command
}{
	{ebiten.KeyArrowLeft, loop.Left},
	{ebiten.KeyArrowRight, loop.Right},
	{ebiten.KeyArrowDown, loop.Drop},
	{ebiten.KeyArrowUp, loop.Rotate},
}

func pressedActions() []action {
	var actions []action
	for _, k := range actionKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			actions = append(actions, k.action)
		}
	}
	return actions
}

func pressedCommands() []loop.Command {
	var cmds []loop.Command
	for _, k := range commandKeys {
		if repeating(k.key) {
			cmds = append(cmds, k.cmd)
		}
	}
	return cmds
}

func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}
