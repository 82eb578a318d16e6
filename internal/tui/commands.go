package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/fitlife/internal/tracking"
	"github.com/garrettladley/fitlife/internal/xslog"
)

// listenDisplayCmd waits for the next timer text. Re-issue it after each
// TimerTextMsg to keep listening.
func listenDisplayCmd(ctx context.Context, d *ChanDisplay) tea.Cmd {
	return func() tea.Msg {
		select {
		case text := <-d.Updates():
			return TimerTextMsg{Text: text}
		case <-ctx.Done():
			return displayClosedMsg{}
		}
	}
}

func trackCompletionCmd(ctx context.Context, tracker *tracking.Tracker, exerciseID string, elapsed time.Duration) tea.Cmd {
	return func() tea.Msg {
		record := tracker.TrackExerciseCompletion(ctx, exerciseID, elapsed.Milliseconds())
		xslog.FromContext(ctx).InfoContext(ctx, "exercise completed",
			xslog.ExerciseID(exerciseID),
			xslog.Elapsed(elapsed))
		return CompletionSavedMsg{Record: record}
	}
}
