package service

import (
	"context"
	"strings"

	"edupress/internal/apperr"
	"edupress/internal/cache"
	"edupress/internal/content"
	"edupress/internal/data"
	"edupress/internal/logger"

	"github.com/google/uuid"
)

// TaxonomyService manages categories and tags. Items refer to categories by name and to
// tags through free text, so renames and deletes do not cascade.
type TaxonomyService struct {
	store  TaxonomyStore
	posts  ContentStore
	cache  OutputCache
	logger logger.Logger
}

// NewTaxonomyService creates a new TaxonomyService. outputs may be nil.
func NewTaxonomyService(store TaxonomyStore, posts ContentStore, outputs OutputCache, log logger.Logger) *TaxonomyService {
	return &TaxonomyService{store: store, posts: posts, cache: outputs, logger: log}
}

// Categories returns all categories with Count set to the number of items in each.
func (s *TaxonomyService) Categories(ctx context.Context) ([]data.Category, error) {
	categories, err := s.store.Categories(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.posts.Posts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		n := 0
		for _, item := range items {
			if item.Category == categories[i].Name {
				n++
			}
		}
		categories[i].Count = n
	}
	return categories, nil
}

// CategoryBySlug returns the category with slug.
func (s *TaxonomyService) CategoryBySlug(ctx context.Context, slug string) (*data.Category, error) {
	categories, err := s.store.Categories(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].Slug == slug {
			return &categories[i], nil
		}
	}
	return nil, apperr.NotFound("category", slug)
}

// SaveCategory validates and upserts a category.
func (s *TaxonomyService) SaveCategory(ctx context.Context, c data.Category) (*data.Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, apperr.Validation("name", "name is required")
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.ParentID != "" && c.ParentID == c.ID {
		return nil, apperr.Validation("parentId", "a category cannot be its own parent")
	}
	c.Slug = strings.TrimSpace(c.Slug)
	if c.Slug == "" {
		c.Slug = content.Slugify(c.Name)
	}
	c.Count = 0

	if err := s.store.SaveCategory(ctx, c); err != nil {
		return nil, err
	}
	s.invalidateSitemap(ctx)
	return &c, nil
}

// DeleteCategory removes a category. Unknown ids are ignored.
func (s *TaxonomyService) DeleteCategory(ctx context.Context, id string) error {
	removed, err := s.store.DeleteCategory(ctx, id)
	if err != nil {
		return err
	}
	if removed {
		s.invalidateSitemap(ctx)
	}
	return nil
}

// Tags returns all tags. Count is the number of items whose tag text contains the tag
// name, falling back to the stored count when nothing matches.
func (s *TaxonomyService) Tags(ctx context.Context) ([]data.Tag, error) {
	tags, err := s.store.Tags(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.posts.Posts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tags {
		name := strings.ToLower(tags[i].Name)
		n := 0
		for _, item := range items {
			if item.Tags != "" && strings.Contains(strings.ToLower(item.Tags), name) {
				n++
			}
		}
		if n > 0 {
			tags[i].Count = n
		}
	}
	return tags, nil
}

// SaveTag validates and upserts a tag.
func (s *TaxonomyService) SaveTag(ctx context.Context, t data.Tag) (*data.Tag, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return nil, apperr.Validation("name", "name is required")
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.Slug = strings.TrimSpace(t.Slug)
	if t.Slug == "" {
		t.Slug = content.Slugify(t.Name)
	}

	if err := s.store.SaveTag(ctx, t); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTag removes a tag. Unknown ids are ignored.
func (s *TaxonomyService) DeleteTag(ctx context.Context, id string) error {
	_, err := s.store.DeleteTag(ctx, id)
	return err
}

func (s *TaxonomyService) invalidateSitemap(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.KeySitemap); err != nil {
		s.logger.Error(err, "failed to invalidate sitemap cache")
	}
}
