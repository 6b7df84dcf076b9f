package service

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"edupress/internal/apperr"
	"edupress/internal/data"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var themeColors = map[string]bool{"ocean": true, "candy": true, "nature": true, "sunset": true, "royal": true}

// SettingsService is the single access point for site settings. Every successful save
// is broadcast to subscribers.
type SettingsService struct {
	store SettingsStore

	mu     sync.Mutex
	subs   map[int]chan data.SiteSettings
	nextID int
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(store SettingsStore) *SettingsService {
	return &SettingsService{store: store, subs: make(map[int]chan data.SiteSettings)}
}

// Current returns the stored settings or the defaults.
func (s *SettingsService) Current(ctx context.Context) (data.SiteSettings, error) {
	return s.store.Settings(ctx)
}

// Save validates and replaces the settings, then notifies subscribers.
func (s *SettingsService) Save(ctx context.Context, settings data.SiteSettings) (data.SiteSettings, error) {
	settings.SiteName = strings.TrimSpace(settings.SiteName)
	if settings.SiteName == "" {
		return data.SiteSettings{}, apperr.Validation("siteName", "site name is required")
	}
	settings.AdminEmail = strings.TrimSpace(settings.AdminEmail)
	if settings.AdminEmail != "" && !emailPattern.MatchString(settings.AdminEmail) {
		return data.SiteSettings{}, apperr.Validation("adminEmail", "admin email is not a valid address")
	}
	if settings.ThemeColor != "" && !themeColors[settings.ThemeColor] {
		return data.SiteSettings{}, apperr.Validation("themeColor", "unknown theme color")
	}

	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return data.SiteSettings{}, err
	}
	s.broadcast(settings)
	return settings, nil
}

// Subscribe returns a channel that receives settings after every save, and a function
// that ends the subscription and closes the channel. A subscriber that falls behind
// only sees the most recent value.
func (s *SettingsService) Subscribe() (<-chan data.SiteSettings, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan data.SiteSettings, 1)
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (s *SettingsService) broadcast(settings data.SiteSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.subs {
		select {
		case ch <- settings:
		default:
			// Replace the stale value nobody has read yet.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- settings:
			default:
			}
		}
	}
}
