package tui

import "github.com/garrettladley/fitlife/internal/workout"

var _ workout.Display = (*ChanDisplay)(nil)

// ChanDisplay bridges timer ticks into bubbletea's message loop. It keeps
// only the latest text and never blocks the caller.
type ChanDisplay struct {
	ch chan string
}

func NewChanDisplay() *ChanDisplay {
	return &ChanDisplay{ch: make(chan string, 1)}
}

func (d *ChanDisplay) SetText(text string) {
	for {
		select {
		case d.ch <- text:
			return
		default:
		}
		// drop the stale value so the newest one fits
		select {
		case <-d.ch:
		default:
		}
	}
}

func (d *ChanDisplay) Updates() <-chan string {
	return d.ch
}
