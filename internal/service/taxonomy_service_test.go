//go:build unit

package service

import (
	"context"
	"testing"

	"edupress/internal/apperr"
	"edupress/internal/cache"
	"edupress/internal/data"
	"edupress/internal/logger"
	"edupress/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTaxonomyTest(t *testing.T) (*TaxonomyService, *mocks.MockTaxonomyStore, *mocks.MockContentStore, *mocks.MockOutputCache) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTaxonomyStore(ctrl)
	posts := mocks.NewMockContentStore(ctrl)
	outputs := mocks.NewMockOutputCache(ctrl)
	return NewTaxonomyService(store, posts, outputs, logger.Nop()), store, posts, outputs
}

func TestTaxonomyService_Counts(t *testing.T) {
	svc, store, posts, _ := newTaxonomyTest(t)
	ctx := context.Background()

	items := []data.ContentItem{
		{Category: "LGS Hazırlık", Tags: "LGS, Matematik"},
		{Category: "LGS Hazırlık", Tags: "matematik, kesirler"},
		{Category: "Veli Köşesi", Tags: "Okuma"},
	}
	posts.EXPECT().Posts(ctx).Return(items, nil).Times(2)
	store.EXPECT().Categories(ctx).Return([]data.Category{
		{ID: "1", Name: "LGS Hazırlık"},
		{ID: "2", Name: "lgs hazırlık"},
		{ID: "3", Name: "Etkinlikler"},
	}, nil)
	store.EXPECT().Tags(ctx).Return([]data.Tag{
		{ID: "1", Name: "Matematik", Count: 99},
		{ID: "2", Name: "Fen", Count: 7},
	}, nil)

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, categories[0].Count)
	assert.Equal(t, 0, categories[1].Count, "category match is exact")
	assert.Equal(t, 0, categories[2].Count)

	tags, err := svc.Tags(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, tags[0].Count, "tag match is a case-insensitive substring")
	assert.Equal(t, 7, tags[1].Count, "stored count is kept when nothing matches")
}

func TestTaxonomyService_SaveCategory(t *testing.T) {
	svc, store, _, outputs := newTaxonomyTest(t)
	ctx := context.Background()

	_, err := svc.SaveCategory(ctx, data.Category{Name: ""})
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	_, err = svc.SaveCategory(ctx, data.Category{ID: "5", Name: "Loop", ParentID: "5"})
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	store.EXPECT().SaveCategory(ctx, gomock.Any()).Return(nil)
	outputs.EXPECT().Delete(ctx, cache.KeySitemap).Return(nil)

	saved, err := svc.SaveCategory(ctx, data.Category{Name: "Fen Bilimleri", ParentID: "1"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "fen-bilimleri", saved.Slug)
	assert.Equal(t, "1", saved.ParentID)
}

func TestTaxonomyService_DeleteCategory(t *testing.T) {
	svc, store, _, outputs := newTaxonomyTest(t)
	ctx := context.Background()

	store.EXPECT().DeleteCategory(ctx, "1").Return(true, nil)
	outputs.EXPECT().Delete(ctx, cache.KeySitemap).Return(nil)
	store.EXPECT().DeleteCategory(ctx, "nope").Return(false, nil)

	assert.NoError(t, svc.DeleteCategory(ctx, "1"))
	assert.NoError(t, svc.DeleteCategory(ctx, "nope"))
}

func TestTaxonomyService_CategoryBySlug(t *testing.T) {
	svc, store, _, _ := newTaxonomyTest(t)
	ctx := context.Background()
	store.EXPECT().Categories(ctx).Return([]data.Category{{ID: "1", Slug: "lgs"}}, nil).Times(2)

	c, err := svc.CategoryBySlug(ctx, "lgs")
	require.NoError(t, err)
	assert.Equal(t, "1", c.ID)

	_, err = svc.CategoryBySlug(ctx, "yok")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestTaxonomyService_SaveTag(t *testing.T) {
	svc, store, _, _ := newTaxonomyTest(t)
	ctx := context.Background()

	_, err := svc.SaveTag(ctx, data.Tag{})
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	store.EXPECT().SaveTag(ctx, gomock.Any()).Return(nil)
	saved, err := svc.SaveTag(ctx, data.Tag{Name: "Deney"})
	require.NoError(t, err)
	assert.Equal(t, "deney", saved.Slug)
}
