//go:build unit

package data_test

import (
	"context"
	"sync"
	"testing"

	"edupress/internal/content"
	"edupress/internal/data"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapRepository struct {
	mu   sync.Mutex
	rows map[string][]byte
}

func (m *mapRepository) Get(_ context.Context, name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[name], nil
}

func (m *mapRepository) Put(_ context.Context, name string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[name] = payload
	return nil
}

func (m *mapRepository) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, name)
	return nil
}

func ids(items []data.ContentItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestSeedThroughFilter(t *testing.T) {
	store := data.NewStore(&mapRepository{rows: map[string][]byte{}})
	items, err := store.Posts(context.Background())
	require.NoError(t, err)

	testCases := []struct {
		name   string
		filter content.Filter
		want   []string
	}{
		{
			name:   "published posts in seed order",
			filter: content.Filter{Type: data.TypePost, Status: data.StatusPublished, Category: "all"},
			want:   []string{"1", "2", "3", "4", "6", "9", "10"},
		},
		{
			name:   "published items of every type",
			filter: content.Filter{Status: data.StatusPublished, Category: "all"},
			want:   []string{"1", "2", "3", "4", "6", "9", "10", "100", "101", "102", "103", "104"},
		},
		{
			name:   "drafts",
			filter: content.Filter{Type: data.TypePost, Status: data.StatusDraft},
			want:   []string{"7", "11"},
		},
		{
			name:   "category is ignored for pages",
			filter: content.Filter{Type: data.TypePage, Category: "Fen Deneyleri"},
			want:   []string{"100", "101", "102", "103", "104"},
		},
		{
			name:   "published posts of one category",
			filter: content.Filter{Type: data.TypePost, Status: data.StatusPublished, Category: "Sınav Taktikleri"},
			want:   []string{"1", "4", "9"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(content.Apply(items, tc.filter)))
		})
	}
}
