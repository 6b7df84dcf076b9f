package seo

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"edupress/internal/data"
)

const (
	sitemapNamespace  = "http://www.sitemaps.org/schemas/sitemap/0.9"
	sitemapDateFormat = "2006-01-02"
)

type sitemapURL struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod,omitempty"`
	Priority   string   `xml:"priority"`
	ChangeFreq string   `xml:"changefreq"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// GenerateSitemap renders the sitemap for the home page, every category and every
// published item. baseURL is used without its trailing slash.
func GenerateSitemap(items []data.ContentItem, categories []data.Category, baseURL string) (string, error) {
	base := strings.TrimRight(baseURL, "/")

	sitemap := urlSet{
		Xmlns: sitemapNamespace,
		URLs:  make([]sitemapURL, 0, 1+len(categories)+len(items)),
	}
	sitemap.URLs = append(sitemap.URLs, sitemapURL{
		Loc:        base + "/",
		Priority:   "1.0",
		ChangeFreq: "daily",
	})

	for _, c := range categories {
		sitemap.URLs = append(sitemap.URLs, sitemapURL{
			Loc:        base + "/category/" + c.Slug,
			Priority:   "0.8",
			ChangeFreq: "weekly",
		})
	}

	for _, item := range items {
		if !item.IsPublished() {
			continue
		}
		priority := "0.9"
		if item.Type == data.TypePage {
			priority = "0.7"
		}
		sitemap.URLs = append(sitemap.URLs, sitemapURL{
			Loc:        base + "/post/" + item.Slug,
			LastMod:    item.UpdatedAt.UTC().Format(sitemapDateFormat),
			Priority:   priority,
			ChangeFreq: "monthly",
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	encoder := xml.NewEncoder(&buf)
	encoder.Indent("", "  ")
	if err := encoder.Encode(sitemap); err != nil {
		return "", fmt.Errorf("failed to encode sitemap: %w", err)
	}
	return buf.String(), nil
}
