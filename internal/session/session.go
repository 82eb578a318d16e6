package session

import "github.com/google/uuid"

// NewID returns a time-ordered identifier for one interactive run, used to
// correlate its log lines.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
