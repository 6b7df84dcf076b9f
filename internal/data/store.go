package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Collection names, one row each in the collections table.
const (
	CollectionPosts      = "posts"
	CollectionSettings   = "settings"
	CollectionCategories = "categories"
	CollectionTags       = "tags"
	CollectionMedia      = "media"
	CollectionBacklinks  = "backlinks"
	CollectionKeywords   = "keywords"
)

// ErrSlugTaken is returned by SaveUniquePost when another item of the same type uses the slug.
var ErrSlugTaken = errors.New("slug is already in use")

// MaxMediaItems caps the media library; older entries are evicted first.
const MaxMediaItems = 20

// Store exposes get/save/delete over the named collections. Every mutation reads the
// whole collection, changes it in memory and writes it back. The mutex serialises
// writers within this process only.
type Store struct {
	repo CollectionRepository
	mu   sync.Mutex
	now  func() time.Time
}

// NewStore creates a Store on top of repo.
func NewStore(repo CollectionRepository) *Store {
	return &Store{repo: repo, now: time.Now}
}

// Posts returns all posts and pages, seeding the collection on first access.
func (s *Store) Posts(ctx context.Context) ([]ContentItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.posts(ctx)
}

func (s *Store) posts(ctx context.Context) ([]ContentItem, error) {
	return loadCollection(ctx, s.repo, CollectionPosts, func() []ContentItem { return seedPosts(s.now()) })
}

// SavePost replaces the item with the same ID in place, or prepends it.
func (s *Store) SavePost(ctx context.Context, item ContentItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.posts(ctx)
	if err != nil {
		return err
	}
	items = upsert(items, item, func(c ContentItem) string { return c.ID }, true)
	return saveCollection(ctx, s.repo, CollectionPosts, items)
}

// SaveUniquePost saves item like SavePost after checking, under the same lock, that no
// other item of its type uses its slug. Views and CreatedAt are carried over from the
// stored version; a new item without CreatedAt gets its UpdatedAt.
func (s *Store) SaveUniquePost(ctx context.Context, item ContentItem) (ContentItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.posts(ctx)
	if err != nil {
		return ContentItem{}, err
	}
	for _, other := range items {
		if other.ID == item.ID {
			item.Views = other.Views
			if item.CreatedAt.IsZero() {
				item.CreatedAt = other.CreatedAt
			}
			continue
		}
		if other.Type == item.Type && other.Slug == item.Slug {
			return ContentItem{}, ErrSlugTaken
		}
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = item.UpdatedAt
	}

	items = upsert(items, item, func(c ContentItem) string { return c.ID }, true)
	if err := saveCollection(ctx, s.repo, CollectionPosts, items); err != nil {
		return ContentItem{}, err
	}
	return item, nil
}

// DeletePost removes the item with the given ID and reports whether anything was removed.
func (s *Store) DeletePost(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.posts(ctx)
	if err != nil {
		return false, err
	}
	kept, removed := removeByID(items, id, func(c ContentItem) string { return c.ID })
	if !removed {
		return false, nil
	}
	return true, saveCollection(ctx, s.repo, CollectionPosts, kept)
}

// PostBySlug returns the first item whose slug matches, or nil.
func (s *Store) PostBySlug(ctx context.Context, slug string) (*ContentItem, error) {
	items, err := s.Posts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Slug == slug {
			return &items[i], nil
		}
	}
	return nil, nil
}

// Categories returns all categories, seeding the collection on first access.
func (s *Store) Categories(ctx context.Context) ([]Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categories(ctx)
}

func (s *Store) categories(ctx context.Context) ([]Category, error) {
	return loadCollection(ctx, s.repo, CollectionCategories, seedCategories)
}

// SaveCategory replaces the category with the same ID in place, or appends it.
func (s *Store) SaveCategory(ctx context.Context, category Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.categories(ctx)
	if err != nil {
		return err
	}
	items = upsert(items, category, func(c Category) string { return c.ID }, false)
	return saveCollection(ctx, s.repo, CollectionCategories, items)
}

// DeleteCategory removes the category with the given ID.
func (s *Store) DeleteCategory(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.categories(ctx)
	if err != nil {
		return false, err
	}
	kept, removed := removeByID(items, id, func(c Category) string { return c.ID })
	if !removed {
		return false, nil
	}
	return true, saveCollection(ctx, s.repo, CollectionCategories, kept)
}

// Tags returns all tags, seeding the collection on first access.
func (s *Store) Tags(ctx context.Context) ([]Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tags(ctx)
}

func (s *Store) tags(ctx context.Context) ([]Tag, error) {
	return loadCollection(ctx, s.repo, CollectionTags, seedTags)
}

// SaveTag replaces the tag with the same ID in place, or appends it.
func (s *Store) SaveTag(ctx context.Context, tag Tag) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.tags(ctx)
	if err != nil {
		return err
	}
	items = upsert(items, tag, func(t Tag) string { return t.ID }, false)
	return saveCollection(ctx, s.repo, CollectionTags, items)
}

// DeleteTag removes the tag with the given ID.
func (s *Store) DeleteTag(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.tags(ctx)
	if err != nil {
		return false, err
	}
	kept, removed := removeByID(items, id, func(t Tag) string { return t.ID })
	if !removed {
		return false, nil
	}
	return true, saveCollection(ctx, s.repo, CollectionTags, kept)
}

// Media returns the media library, newest first. It is never seeded.
func (s *Store) Media(ctx context.Context) ([]MediaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.media(ctx)
}

func (s *Store) media(ctx context.Context) ([]MediaItem, error) {
	return loadCollection[MediaItem](ctx, s.repo, CollectionMedia, nil)
}

// SaveMedia prepends item and drops the oldest entries beyond MaxMediaItems.
func (s *Store) SaveMedia(ctx context.Context, item MediaItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.media(ctx)
	if err != nil {
		return err
	}
	items = append([]MediaItem{item}, items...)
	if len(items) > MaxMediaItems {
		items = items[:MaxMediaItems]
	}
	return saveCollection(ctx, s.repo, CollectionMedia, items)
}

// DeleteMedia removes the media item with the given ID.
func (s *Store) DeleteMedia(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.media(ctx)
	if err != nil {
		return false, err
	}
	kept, removed := removeByID(items, id, func(m MediaItem) string { return m.ID })
	if !removed {
		return false, nil
	}
	return true, saveCollection(ctx, s.repo, CollectionMedia, kept)
}

// Backlinks returns the backlink records, seeding them on first access.
func (s *Store) Backlinks(ctx context.Context) ([]Backlink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return loadCollection(ctx, s.repo, CollectionBacklinks, seedBacklinks)
}

// Keywords returns the keyword ranks, seeding them on first access.
func (s *Store) Keywords(ctx context.Context) ([]KeywordRank, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keywords(ctx)
}

func (s *Store) keywords(ctx context.Context) ([]KeywordRank, error) {
	return loadCollection(ctx, s.repo, CollectionKeywords, seedKeywords)
}

// SaveKeyword appends kw without checking for duplicates.
func (s *Store) SaveKeyword(ctx context.Context, kw KeywordRank) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.keywords(ctx)
	if err != nil {
		return err
	}
	items = append(items, kw)
	return saveCollection(ctx, s.repo, CollectionKeywords, items)
}

// Settings returns the persisted settings, or the defaults when none were saved.
// Defaults are not written back.
func (s *Store) Settings(ctx context.Context) (SiteSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := s.repo.Get(ctx, CollectionSettings)
	if err != nil {
		return SiteSettings{}, err
	}
	if payload == nil {
		return DefaultSettings(), nil
	}
	var settings SiteSettings
	if err := json.Unmarshal(payload, &settings); err != nil {
		return SiteSettings{}, fmt.Errorf("failed to parse collection %q: %w", CollectionSettings, err)
	}
	return settings, nil
}

// SaveSettings replaces the settings record wholesale.
func (s *Store) SaveSettings(ctx context.Context, settings SiteSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return saveCollection(ctx, s.repo, CollectionSettings, settings)
}

func loadCollection[T any](ctx context.Context, repo CollectionRepository, name string, seed func() []T) ([]T, error) {
	payload, err := repo.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		if seed == nil {
			return []T{}, nil
		}
		items := seed()
		if err := saveCollection(ctx, repo, name, items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("failed to parse collection %q: %w", name, err)
	}
	return items, nil
}

func saveCollection(ctx context.Context, repo CollectionRepository, name string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w", name, err)
	}
	return repo.Put(ctx, name, payload)
}

func upsert[T any](items []T, item T, id func(T) string, prepend bool) []T {
	for i := range items {
		if id(items[i]) == id(item) {
			items[i] = item
			return items
		}
	}
	if prepend {
		return append([]T{item}, items...)
	}
	return append(items, item)
}

func removeByID[T any](items []T, target string, id func(T) string) ([]T, bool) {
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if id(item) != target {
			kept = append(kept, item)
		}
	}
	return kept, len(kept) != len(items)
}
