package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"edupress/internal/apperr"
	"edupress/internal/cache"
	"edupress/internal/content"
	"edupress/internal/data"
	"edupress/internal/logger"
	"edupress/internal/publisher"

	"github.com/google/uuid"
)

// ContentServicer defines the interface for managing posts and pages.
type ContentServicer interface {
	NewDraft(contentType data.ContentType) data.ContentItem
	Save(ctx context.Context, item data.ContentItem) (*data.ContentItem, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*data.ContentItem, error)
	BySlug(ctx context.Context, slug string) (*data.ContentItem, error)
	List(ctx context.Context, f content.Filter) ([]data.ContentItem, error)
	Stats(ctx context.Context) (*Stats, error)
}

// Stats are the dashboard counters.
type Stats struct {
	Posts      int `json:"posts"`
	Pages      int `json:"pages"`
	Published  int `json:"published"`
	InReview   int `json:"inReview"`
	Drafts     int `json:"drafts"`
	Scheduled  int `json:"scheduled"`
	TotalViews int `json:"totalViews"`
}

// ContentService provides business logic for posts and pages.
type ContentService struct {
	store     ContentStore
	cache     OutputCache
	publisher Publisher
	renderer  *content.Renderer
	logger    logger.Logger
	now       func() time.Time
}

// NewContentService creates a new ContentService. outputs and pub may be nil.
func NewContentService(store ContentStore, outputs OutputCache, pub Publisher, renderer *content.Renderer, log logger.Logger) *ContentService {
	if pub == nil {
		pub = publisher.Nop{}
	}
	if renderer == nil {
		renderer = content.NewRenderer()
	}
	return &ContentService{
		store:     store,
		cache:     outputs,
		publisher: pub,
		renderer:  renderer,
		logger:    log,
		now:       time.Now,
	}
}

// NewDraft returns an unsaved item with a fresh identity.
func (s *ContentService) NewDraft(contentType data.ContentType) data.ContentItem {
	if contentType != data.TypePage {
		contentType = data.TypePost
	}
	now := s.now()
	item := data.ContentItem{
		ID:        uuid.NewString(),
		Type:      contentType,
		Status:    data.StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if contentType == data.TypePage {
		item.RobotsIndex = "index"
		item.RobotsFollow = "follow"
	}
	return item
}

// Save validates, normalises and persists item. The slug is derived from the title
// when empty and must be unique among items of the same type.
func (s *ContentService) Save(ctx context.Context, item data.ContentItem) (*data.ContentItem, error) {
	item.Title = strings.TrimSpace(item.Title)
	if item.Title == "" {
		return nil, apperr.Validation("title", "title is required")
	}
	if item.Type == "" {
		item.Type = data.TypePost
	}
	if item.Type != data.TypePost && item.Type != data.TypePage {
		return nil, apperr.Validation("type", "type must be post or page")
	}
	if item.Status == "" {
		item.Status = data.StatusDraft
	}
	if !validStatus(item.Status) {
		return nil, apperr.Validation("status", "unknown status")
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	item.Slug = strings.TrimSpace(item.Slug)
	if item.Slug == "" {
		item.Slug = content.Slugify(item.Title)
	}
	if item.Slug == "" {
		return nil, apperr.Validation("slug", "slug could not be derived from the title")
	}

	item.Content = s.renderer.Sanitize(item.Content)
	item.UpdatedAt = s.now()

	saved, err := s.store.SaveUniquePost(ctx, item)
	if errors.Is(err, data.ErrSlugTaken) {
		return nil, apperr.Validation("slug", "slug is already in use")
	}
	if err != nil {
		return nil, err
	}
	item = saved

	s.invalidateSitemap(ctx)
	s.publish(ctx, publisher.ActionSaved, item)
	return &item, nil
}

// Delete removes the item with id. Unknown ids are ignored.
func (s *ContentService) Delete(ctx context.Context, id string) error {
	removed, err := s.store.DeletePost(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return nil
	}
	s.invalidateSitemap(ctx)
	s.publish(ctx, publisher.ActionDeleted, data.ContentItem{ID: id})
	return nil
}

// Get returns the item with id.
func (s *ContentService) Get(ctx context.Context, id string) (*data.ContentItem, error) {
	items, err := s.store.Posts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, apperr.NotFound("content", id)
}

// BySlug returns the first item with slug.
func (s *ContentService) BySlug(ctx context.Context, slug string) (*data.ContentItem, error) {
	item, err := s.store.PostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.NotFound("content", slug)
	}
	item.HTMLContent = s.renderer.HTML(item.Content)
	return item, nil
}

// List returns the items matching f in stored order.
func (s *ContentService) List(ctx context.Context, f content.Filter) ([]data.ContentItem, error) {
	items, err := s.store.Posts(ctx)
	if err != nil {
		return nil, err
	}
	return content.Apply(items, f), nil
}

// Stats computes the dashboard counters.
func (s *ContentService) Stats(ctx context.Context) (*Stats, error) {
	items, err := s.store.Posts(ctx)
	if err != nil {
		return nil, err
	}
	var st Stats
	for _, item := range items {
		if item.Type == data.TypePage {
			st.Pages++
		} else {
			st.Posts++
		}
		switch item.Status {
		case data.StatusPublished:
			st.Published++
		case data.StatusReview:
			st.InReview++
		case data.StatusDraft:
			st.Drafts++
		case data.StatusScheduled:
			st.Scheduled++
		}
		st.TotalViews += item.Views
	}
	return &st, nil
}

func (s *ContentService) invalidateSitemap(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.KeySitemap); err != nil {
		s.logger.Error(err, "failed to invalidate sitemap cache")
	}
}

func (s *ContentService) publish(ctx context.Context, action publisher.Action, item data.ContentItem) {
	if err := s.publisher.Publish(ctx, action, item); err != nil {
		s.logger.With(map[string]interface{}{"id": item.ID, "action": string(action)}).Error(err, "failed to publish content event")
	}
}

func validStatus(s data.Status) bool {
	switch s {
	case data.StatusDraft, data.StatusReview, data.StatusScheduled, data.StatusPublished:
		return true
	}
	return false
}
