package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"io"
	"time"

	"edupress/internal/data"
	"edupress/internal/generator"
	"edupress/internal/publisher"
)

// ContentStore persists posts and pages.
type ContentStore interface {
	Posts(ctx context.Context) ([]data.ContentItem, error)
	// SaveUniquePost upserts item unless another item of its type has the same slug,
	// in which case it returns data.ErrSlugTaken.
	SaveUniquePost(ctx context.Context, item data.ContentItem) (data.ContentItem, error)
	DeletePost(ctx context.Context, id string) (bool, error)
	PostBySlug(ctx context.Context, slug string) (*data.ContentItem, error)
}

// TaxonomyStore persists categories and tags.
type TaxonomyStore interface {
	Categories(ctx context.Context) ([]data.Category, error)
	SaveCategory(ctx context.Context, category data.Category) error
	DeleteCategory(ctx context.Context, id string) (bool, error)
	Tags(ctx context.Context) ([]data.Tag, error)
	SaveTag(ctx context.Context, tag data.Tag) error
	DeleteTag(ctx context.Context, id string) (bool, error)
}

// MediaStore persists the media library.
type MediaStore interface {
	Media(ctx context.Context) ([]data.MediaItem, error)
	SaveMedia(ctx context.Context, item data.MediaItem) error
	DeleteMedia(ctx context.Context, id string) (bool, error)
}

// SettingsStore persists the site settings singleton.
type SettingsStore interface {
	Settings(ctx context.Context) (data.SiteSettings, error)
	SaveSettings(ctx context.Context, settings data.SiteSettings) error
}

// RankingStore persists backlink and keyword data.
type RankingStore interface {
	Backlinks(ctx context.Context) ([]data.Backlink, error)
	Keywords(ctx context.Context) ([]data.KeywordRank, error)
	SaveKeyword(ctx context.Context, kw data.KeywordRank) error
}

// OutputCache stores rendered outputs such as the sitemap.
type OutputCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Publisher emits content change events.
type Publisher interface {
	Publish(ctx context.Context, action publisher.Action, item data.ContentItem) error
	Close() error
}

// Encoder converts an uploaded blob into a data URI.
type Encoder interface {
	Encode(ctx context.Context, r io.Reader, mimeType string) (string, error)
	Limit() int64
}

// Generator drafts content for a topic.
type Generator interface {
	Generate(ctx context.Context, topic string, kind generator.Kind) (*generator.Result, error)
}
