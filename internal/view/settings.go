package view

import (
	"context"

	"edupress/internal/data"
)

type settingsKey struct{}

// WithSettings returns a copy of ctx carrying the site settings.
func WithSettings(ctx context.Context, settings data.SiteSettings) context.Context {
	return context.WithValue(ctx, settingsKey{}, settings)
}

// SettingsFrom returns the site settings stored in ctx, or the defaults.
func SettingsFrom(ctx context.Context) data.SiteSettings {
	if settings, ok := ctx.Value(settingsKey{}).(data.SiteSettings); ok {
		return settings
	}
	return data.DefaultSettings()
}
