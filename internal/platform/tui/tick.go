// Package tui runs games in a terminal with Bubble Tea, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultTickRate = 60
	maxTickRate     = 240
)

// TickMsg advances the simulation by one frame.
type TickMsg time.Time

// tickInterval converts a frame rate into a tick period. Rates outside
// 1..maxTickRate fall back to the default or are capped, since ball speeds
// are expressed per frame.
func tickInterval(tickRate int) time.Duration {
	switch {
	case tickRate <= 0:
		tickRate = defaultTickRate
	case tickRate > maxTickRate:
		tickRate = maxTickRate
	}
	return time.Second / time.Duration(tickRate)
}

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
