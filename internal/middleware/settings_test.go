//go:build unit

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"edupress/internal/data"
	"edupress/internal/logger"
	"edupress/internal/view"

	"github.com/stretchr/testify/assert"
)

type fakeSettingsSource struct {
	mu      sync.Mutex
	current data.SiteSettings
	subs    []chan data.SiteSettings
}

func (f *fakeSettingsSource) Current(ctx context.Context) (data.SiteSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current, nil
}

func (f *fakeSettingsSource) Subscribe() (<-chan data.SiteSettings, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan data.SiteSettings, 1)
	f.subs = append(f.subs, ch)
	var once sync.Once
	return ch, func() { once.Do(func() { close(ch) }) }
}

func (f *fakeSettingsSource) publish(s data.SiteSettings) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = s
	for _, ch := range f.subs {
		ch <- s
	}
}

func TestLiveSettingsFollowsUpdates(t *testing.T) {
	src := &fakeSettingsSource{current: data.SiteSettings{SiteName: "Before"}}
	ls := NewLiveSettings(context.Background(), src, logger.Nop())
	defer ls.Close()

	assert.Equal(t, "Before", ls.Load().SiteName)

	src.publish(data.SiteSettings{SiteName: "After"})
	assert.Eventually(t, func() bool { return ls.Load().SiteName == "After" }, time.Second, 5*time.Millisecond)

	var got string
	handler := Settings(ls)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = view.SettingsFrom(r.Context()).SiteName
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, "After", got)
}
