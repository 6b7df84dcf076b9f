//go:build unit

package content

import (
	"testing"
	"time"

	"edupress/internal/data"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixture() []data.ContentItem {
	return []data.ContentItem{
		{ID: "1", Title: "LGS Maratonu", FocusKeyword: "lgs", Excerpt: "Sınav yaklaşıyor", Category: "Sınav Taktikleri", Type: data.TypePost, Status: data.StatusPublished, CreatedAt: day("2024-03-10 12:00")},
		{ID: "2", Title: "Fen Deneyleri", FocusKeyword: "deney", Excerpt: "Mutfakta bilim", Category: "Fen Deneyleri", Type: data.TypePost, Status: data.StatusDraft, CreatedAt: day("2024-03-11 08:00")},
		{ID: "3", Title: "Pomodoro", FocusKeyword: "odak", Excerpt: "25 dakika çalış", Category: "Rehberlik", Type: data.TypePost, Status: data.StatusPublished, CreatedAt: day("2024-03-12 23:59")},
		{ID: "100", Title: "Hakkımızda", Excerpt: "Biz kimiz", Category: "Kurumsal", Type: data.TypePage, Status: data.StatusPublished, CreatedAt: day("2024-01-01 00:00")},
	}
}

func ids(items []data.ContentItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	start := day("2024-03-11 00:00")
	end := day("2024-03-12 00:00")
	earlyEnd := day("2024-03-11 00:00")

	cases := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"empty filter keeps everything", Filter{}, []string{"1", "2", "3", "100"}},
		{"type", Filter{Type: data.TypePage}, []string{"100"}},
		{"status", Filter{Type: data.TypePost, Status: data.StatusPublished}, []string{"1", "3"}},
		{"status all", Filter{Type: data.TypePost, Status: "all"}, []string{"1", "2", "3"}},
		{"category", Filter{Type: data.TypePost, Category: "Rehberlik"}, []string{"3"}},
		{"category all", Filter{Type: data.TypePost, Category: "all"}, []string{"1", "2", "3"}},
		{"category ignored for pages", Filter{Type: data.TypePage, Category: "Rehberlik"}, []string{"100"}},
		{"search title case-insensitive", Filter{Search: "maratonu"}, []string{"1"}},
		{"search focus keyword", Filter{Search: "ODAK"}, []string{"3"}},
		{"search excerpt only when asked", Filter{Search: "mutfakta"}, []string{}},
		{"search excerpt", Filter{Search: "mutfakta", SearchExcerpt: true}, []string{"2"}},
		{"excerpt mode ignores keyword", Filter{Search: "odak", SearchExcerpt: true}, []string{}},
		{"date start inclusive", Filter{DateStart: &start}, []string{"2", "3"}},
		{"date end covers the whole day", Filter{DateEnd: &end}, []string{"1", "2", "3", "100"}},
		{"date end excludes the next day", Filter{DateEnd: &earlyEnd}, []string{"1", "2", "100"}},
		{"date range", Filter{DateStart: &start, DateEnd: &start}, []string{"2"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Apply(fixture(), c.filter)
			assert.Equal(t, c.want, ids(got))
		})
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	items := fixture()
	_ = Apply(items, Filter{Status: data.StatusDraft})
	assert.Len(t, items, 4)
	assert.Equal(t, "1", items[0].ID)
}
