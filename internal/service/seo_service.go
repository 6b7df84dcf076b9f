package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"edupress/internal/apperr"
	"edupress/internal/cache"
	"edupress/internal/data"
	"edupress/internal/logger"
	"edupress/internal/seo"

	"github.com/google/uuid"
)

// ItemScore is the SEO score of one content item.
type ItemScore struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Slug         string           `json:"slug"`
	Type         data.ContentType `json:"type"`
	FocusKeyword string           `json:"focusKeyword,omitempty"`
	seo.Result
}

// SEOService renders the sitemap and robots file and manages ranking data.
type SEOService struct {
	posts    ContentStore
	taxonomy TaxonomyStore
	rankings RankingStore
	settings *SettingsService
	cache    OutputCache
	baseURL  string
	ttl      time.Duration
	logger   logger.Logger
}

// SEOServiceOptions wires the SEOService collaborators.
type SEOServiceOptions struct {
	Posts    ContentStore
	Taxonomy TaxonomyStore
	Rankings RankingStore
	Settings *SettingsService
	// Cache may be nil, in which case the sitemap is rendered on every request.
	Cache    OutputCache
	BaseURL  string
	CacheTTL time.Duration
	Logger   logger.Logger
}

// NewSEOService creates a new SEOService.
func NewSEOService(opts SEOServiceOptions) *SEOService {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &SEOService{
		posts:    opts.Posts,
		taxonomy: opts.Taxonomy,
		rankings: opts.Rankings,
		settings: opts.Settings,
		cache:    opts.Cache,
		baseURL:  opts.BaseURL,
		ttl:      ttl,
		logger:   opts.Logger,
	}
}

// Sitemap returns the sitemap XML, served from the cache while caching is enabled in
// the site settings.
func (s *SEOService) Sitemap(ctx context.Context) (string, error) {
	settings, err := s.settings.Current(ctx)
	if err != nil {
		return "", err
	}
	useCache := settings.EnableCache && s.cache != nil

	if useCache {
		cached, err := s.cache.Get(ctx, cache.KeySitemap)
		if err != nil {
			s.logger.Error(err, "failed to read sitemap cache")
		} else if cached != nil {
			return string(cached), nil
		}
	}

	items, err := s.posts.Posts(ctx)
	if err != nil {
		return "", err
	}
	categories, err := s.taxonomy.Categories(ctx)
	if err != nil {
		return "", err
	}
	xml, err := seo.GenerateSitemap(items, categories, s.baseURL)
	if err != nil {
		return "", err
	}

	if useCache {
		if err := s.cache.Set(ctx, cache.KeySitemap, []byte(xml), s.ttl); err != nil {
			s.logger.Error(err, "failed to store sitemap in cache")
		}
	}
	return xml, nil
}

// Robots returns the robots.txt body from the settings, or a permissive default that
// points at the sitemap.
func (s *SEOService) Robots(ctx context.Context) (string, error) {
	settings, err := s.settings.Current(ctx)
	if err != nil {
		return "", err
	}
	if body := strings.TrimSpace(settings.RobotsTxt); body != "" {
		return body + "\n", nil
	}
	return fmt.Sprintf("User-agent: *\nAllow: /\nSitemap: %s/sitemap.xml\n", strings.TrimRight(s.baseURL, "/")), nil
}

// Backlinks returns the backlink records.
func (s *SEOService) Backlinks(ctx context.Context) ([]data.Backlink, error) {
	return s.rankings.Backlinks(ctx)
}

// Keywords returns the tracked keyword ranks.
func (s *SEOService) Keywords(ctx context.Context) ([]data.KeywordRank, error) {
	return s.rankings.Keywords(ctx)
}

// AddKeyword starts tracking keyword. New keywords start at rank 100 with no history.
func (s *SEOService) AddKeyword(ctx context.Context, keyword, url string) (*data.KeywordRank, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, apperr.Validation("keyword", "keyword is required")
	}
	url = strings.TrimSpace(url)
	if url == "" {
		url = "/"
	}

	kw := data.KeywordRank{
		ID:      uuid.NewString(),
		Keyword: keyword,
		Rank:    100,
		URL:     url,
	}
	if err := s.rankings.SaveKeyword(ctx, kw); err != nil {
		return nil, err
	}
	return &kw, nil
}

// Scores returns the SEO score of every item in stored order.
func (s *SEOService) Scores(ctx context.Context) ([]ItemScore, error) {
	items, err := s.posts.Posts(ctx)
	if err != nil {
		return nil, err
	}
	scores := make([]ItemScore, 0, len(items))
	for _, item := range items {
		scores = append(scores, scoreOf(item))
	}
	return scores, nil
}

// Score returns the SEO score of the item with id.
func (s *SEOService) Score(ctx context.Context, id string) (*ItemScore, error) {
	items, err := s.posts.Posts(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == id {
			score := scoreOf(item)
			return &score, nil
		}
	}
	return nil, apperr.NotFound("content", id)
}

func scoreOf(item data.ContentItem) ItemScore {
	return ItemScore{
		ID:           item.ID,
		Title:        item.Title,
		Slug:         item.Slug,
		Type:         item.Type,
		FocusKeyword: item.FocusKeyword,
		Result:       seo.Score(item),
	}
}
