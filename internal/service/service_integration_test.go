//go:build integration

package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"edupress/internal/cache"
	"edupress/internal/config"
	"edupress/internal/content"
	"edupress/internal/data"
	"edupress/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStack struct {
	store    *data.Store
	cache    *cache.Cache
	content  *ContentService
	taxonomy *TaxonomyService
	seo      *SEOService
	settings *SettingsService
}

func setupStack(t *testing.T) *testStack {
	t.Helper()
	db, err := data.NewDB(config.DBConfig{Driver: "sqlite3", DSN: "file::memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, data.ApplyMigrations(db, "sqlite3"))

	outputs, err := cache.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { outputs.Close() })

	store := data.NewStore(data.NewSQLCollectionRepository(db))
	settings := NewSettingsService(store)
	log := logger.Nop()
	return &testStack{
		store:    store,
		cache:    outputs,
		content:  NewContentService(store, outputs, nil, content.NewRenderer(), log),
		taxonomy: NewTaxonomyService(store, store, outputs, log),
		settings: settings,
		seo: NewSEOService(SEOServiceOptions{
			Posts:    store,
			Taxonomy: store,
			Rankings: store,
			Settings: settings,
			Cache:    outputs,
			BaseURL:  "https://dilekogretmen.com",
			CacheTTL: time.Minute,
			Logger:   log,
		}),
	}
}

func TestSitemapCacheInvalidation(t *testing.T) {
	stack := setupStack(t)
	ctx := context.Background()

	first, err := stack.seo.Sitemap(ctx)
	require.NoError(t, err)
	assert.Equal(t, 23, strings.Count(first, "<url>"))

	cached, err := stack.cache.Get(ctx, cache.KeySitemap)
	require.NoError(t, err)
	assert.Equal(t, first, string(cached))

	_, err = stack.content.Save(ctx, data.ContentItem{
		Title:  "Yeni Yazi",
		Status: data.StatusPublished,
	})
	require.NoError(t, err)

	cached, err = stack.cache.Get(ctx, cache.KeySitemap)
	require.NoError(t, err)
	assert.Nil(t, cached, "saving content invalidates the cached sitemap")

	second, err := stack.seo.Sitemap(ctx)
	require.NoError(t, err)
	assert.Equal(t, 24, strings.Count(second, "<url>"))
	assert.Contains(t, second, "/post/yeni-yazi")
}

func TestSitemapWithoutCache(t *testing.T) {
	stack := setupStack(t)
	ctx := context.Background()

	settings, err := stack.settings.Current(ctx)
	require.NoError(t, err)
	settings.EnableCache = false
	_, err = stack.settings.Save(ctx, settings)
	require.NoError(t, err)

	_, err = stack.seo.Sitemap(ctx)
	require.NoError(t, err)

	cached, err := stack.cache.Get(ctx, cache.KeySitemap)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestContentRoundTripThroughStore(t *testing.T) {
	stack := setupStack(t)
	ctx := context.Background()

	saved, err := stack.content.Save(ctx, data.ContentItem{
		Title:    "Deney Föyü",
		Category: "Fen Bilimleri",
		Tags:     "deney, fen",
		Status:   data.StatusReview,
	})
	require.NoError(t, err)

	list, err := stack.content.List(ctx, content.Filter{Type: data.TypePost, Status: data.StatusReview})
	require.NoError(t, err)
	require.NotEmpty(t, list)
	assert.Equal(t, saved.ID, list[0].ID, "new items are listed first")

	_, err = stack.content.Save(ctx, data.ContentItem{Title: "Other", Slug: saved.Slug})
	assert.Error(t, err)

	require.NoError(t, stack.content.Delete(ctx, saved.ID))
	_, err = stack.content.Get(ctx, saved.ID)
	assert.Error(t, err)
}
