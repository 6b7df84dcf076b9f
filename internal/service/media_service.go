package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"edupress/internal/apperr"
	"edupress/internal/data"

	"github.com/google/uuid"
)

// MediaService manages the media library.
type MediaService struct {
	store   MediaStore
	encoder Encoder
	now     func() time.Time
}

// NewMediaService creates a new MediaService.
func NewMediaService(store MediaStore, encoder Encoder) *MediaService {
	return &MediaService{store: store, encoder: encoder, now: time.Now}
}

// List returns the media library, newest first.
func (s *MediaService) List(ctx context.Context) ([]data.MediaItem, error) {
	return s.store.Media(ctx)
}

// Upload encodes r and stores it. Blobs larger than the encoder limit are rejected
// before anything is read or stored.
func (s *MediaService) Upload(ctx context.Context, name, mimeType string, size int64, r io.Reader) (*data.MediaItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("name", "file name is required")
	}
	if size > s.encoder.Limit() {
		return nil, apperr.Capacity(fmt.Sprintf("file exceeds the %d KB limit", s.encoder.Limit()/1024))
	}

	url, err := s.encoder.Encode(ctx, r, mimeType)
	if err != nil {
		return nil, err
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	item := data.MediaItem{
		ID:        uuid.NewString(),
		Name:      name,
		URL:       url,
		Type:      mimeType,
		Size:      size,
		CreatedAt: s.now(),
	}
	if err := s.store.SaveMedia(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a media item. Unknown ids are ignored.
func (s *MediaService) Delete(ctx context.Context, id string) error {
	_, err := s.store.DeleteMedia(ctx, id)
	return err
}
