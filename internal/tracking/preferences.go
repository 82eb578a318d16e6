package tracking

import (
	"context"
	"sync"

	"github.com/garrettladley/fitlife/internal/persist"
)

type Preferences struct {
	mu    sync.Mutex
	store *persist.Store
}

func NewPreferences(store *persist.Store) *Preferences {
	return &Preferences{store: store}
}

// DarkMode reports the saved preference; an unset or unreadable value is false.
func (p *Preferences) DarkMode(ctx context.Context) bool {
	on, _ := persist.Load[bool](ctx, p.store, DarkModeKey)
	return on
}

func (p *Preferences) SetDarkMode(ctx context.Context, on bool) {
	p.store.Save(ctx, DarkModeKey, on)
}

// ToggleDarkMode flips the preference and returns the new value.
func (p *Preferences) ToggleDarkMode(ctx context.Context) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	on := !p.DarkMode(ctx)
	p.SetDarkMode(ctx, on)
	return on
}
