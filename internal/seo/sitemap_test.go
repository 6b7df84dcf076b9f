//go:build unit

package seo

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"edupress/internal/data"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goldenSitemap = `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url>
    <loc>https://example.com/</loc>
    <priority>1.0</priority>
    <changefreq>daily</changefreq>
  </url>
  <url>
    <loc>https://example.com/category/rehberlik</loc>
    <priority>0.8</priority>
    <changefreq>weekly</changefreq>
  </url>
  <url>
    <loc>https://example.com/post/pomodoro</loc>
    <lastmod>2024-03-25</lastmod>
    <priority>0.9</priority>
    <changefreq>monthly</changefreq>
  </url>
  <url>
    <loc>https://example.com/post/hakkimizda</loc>
    <lastmod>2024-03-24</lastmod>
    <priority>0.7</priority>
    <changefreq>monthly</changefreq>
  </url>
</urlset>`

func TestGenerateSitemapGolden(t *testing.T) {
	istanbul := time.FixedZone("TRT", 3*60*60)
	items := []data.ContentItem{
		{Slug: "pomodoro", Type: data.TypePost, Status: data.StatusPublished, UpdatedAt: time.Date(2024, 3, 25, 10, 0, 0, 0, time.UTC)},
		{Slug: "draft-post", Type: data.TypePost, Status: data.StatusDraft, UpdatedAt: time.Now()},
		// 01:00 in Istanbul is still the previous day in UTC.
		{Slug: "hakkimizda", Type: data.TypePage, Status: data.StatusPublished, UpdatedAt: time.Date(2024, 3, 25, 1, 0, 0, 0, istanbul)},
		{Slug: "scheduled", Type: data.TypePost, Status: data.StatusScheduled, UpdatedAt: time.Now()},
	}
	categories := []data.Category{{Name: "Rehberlik", Slug: "rehberlik"}}

	got, err := GenerateSitemap(items, categories, "https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, goldenSitemap, got)
}

func TestGenerateSitemapIsWellFormed(t *testing.T) {
	items := []data.ContentItem{{Slug: "a&b", Type: data.TypePost, Status: data.StatusPublished}}

	got, err := GenerateSitemap(items, nil, "https://example.com")
	require.NoError(t, err)

	var parsed urlSet
	require.NoError(t, xml.Unmarshal([]byte(got), &parsed))
	assert.Len(t, parsed.URLs, 2)
	assert.Equal(t, "https://example.com/post/a&b", parsed.URLs[1].Loc)
	assert.True(t, strings.Contains(got, "a&amp;b"))
}
