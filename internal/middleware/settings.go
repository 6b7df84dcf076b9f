package middleware

import (
	"context"
	"net/http"
	"sync/atomic"

	"edupress/internal/data"
	"edupress/internal/logger"
	"edupress/internal/view"
)

// SettingsSource provides the current site settings and notifies about changes.
type SettingsSource interface {
	Current(ctx context.Context) (data.SiteSettings, error)
	Subscribe() (<-chan data.SiteSettings, func())
}

// LiveSettings keeps an in-memory copy of the site settings that follows every save.
type LiveSettings struct {
	current atomic.Pointer[data.SiteSettings]
	cancel  func()
	done    chan struct{}
}

// NewLiveSettings loads the current settings and subscribes to changes until Close.
func NewLiveSettings(ctx context.Context, src SettingsSource, log logger.Logger) *LiveSettings {
	ls := &LiveSettings{done: make(chan struct{})}

	initial, err := src.Current(ctx)
	if err != nil {
		log.Error(err, "failed to load site settings, using defaults")
		initial = data.DefaultSettings()
	}
	ls.current.Store(&initial)

	updates, cancel := src.Subscribe()
	ls.cancel = cancel
	go func() {
		defer close(ls.done)
		for s := range updates {
			ls.current.Store(&s)
		}
	}()
	return ls
}

// Load returns the latest settings.
func (ls *LiveSettings) Load() data.SiteSettings {
	return *ls.current.Load()
}

// Close ends the subscription.
func (ls *LiveSettings) Close() {
	ls.cancel()
	<-ls.done
}

// Settings puts the latest site settings into the request context for the views.
func Settings(ls *LiveSettings) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(view.WithSettings(r.Context(), ls.Load())))
		})
	}
}
