package xslog

import (
	"log/slog"
	"time"
)

func Error(err error) slog.Attr {
	const errorKey = "error"
	return slog.String(errorKey, err.Error())
}

func Key(key string) slog.Attr {
	const keyKey = "key"
	return slog.String(keyKey, key)
}

func ExerciseID(id string) slog.Attr {
	const exerciseIDKey = "exercise_id"
	return slog.String(exerciseIDKey, id)
}

func GoalType(goalType string) slog.Attr {
	const goalTypeKey = "goal_type"
	return slog.String(goalTypeKey, goalType)
}

func Elapsed(d time.Duration) slog.Attr {
	const elapsedKey = "elapsed"
	return slog.Duration(elapsedKey, d)
}

func Interval(d time.Duration) slog.Attr {
	const intervalKey = "interval"
	return slog.Duration(intervalKey, d)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func SessionID(id string) slog.Attr {
	const sessionIDKey = "session_id"
	return slog.String(sessionIDKey, id)
}

func Backend(name string) slog.Attr {
	const backendKey = "backend"
	return slog.String(backendKey, name)
}
