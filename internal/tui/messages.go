package tui

import "github.com/garrettladley/fitlife/internal/tracking"

type TimerTextMsg struct {
	Text string
}

type CompletionSavedMsg struct {
	Record tracking.CompletionRecord
}

type displayClosedMsg struct{}
