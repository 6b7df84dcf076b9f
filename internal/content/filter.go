// Package content holds the pure query helpers applied to content collections.
package content

import (
	"strings"
	"time"

	"edupress/internal/data"
)

// Filter describes the predicates applied to a list of content items. Zero values disable
// a predicate; Status and Category are also disabled by the value "all".
type Filter struct {
	Type     data.ContentType
	Search   string
	Status   data.Status
	Category string
	// SearchExcerpt matches Search against the excerpt instead of the focus keyword.
	SearchExcerpt bool
	DateStart     *time.Time
	// DateEnd is inclusive of the whole day it names.
	DateEnd *time.Time
}

const all = "all"

// Apply returns the items that satisfy every active predicate, in their original order.
func Apply(items []data.ContentItem, f Filter) []data.ContentItem {
	search := strings.ToLower(f.Search)
	var end time.Time
	if f.DateEnd != nil {
		end = f.DateEnd.AddDate(0, 0, 1)
	}

	out := make([]data.ContentItem, 0, len(items))
	for _, item := range items {
		if f.Type != "" && item.Type != f.Type {
			continue
		}
		if search != "" && !matchesSearch(item, search, f.SearchExcerpt) {
			continue
		}
		if f.Status != "" && f.Status != all && item.Status != f.Status {
			continue
		}
		if f.Type != data.TypePage && f.Category != "" && f.Category != all && item.Category != f.Category {
			continue
		}
		if f.DateStart != nil && item.CreatedAt.Before(*f.DateStart) {
			continue
		}
		if f.DateEnd != nil && !item.CreatedAt.Before(end) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesSearch(item data.ContentItem, search string, excerpt bool) bool {
	if strings.Contains(strings.ToLower(item.Title), search) {
		return true
	}
	second := item.FocusKeyword
	if excerpt {
		second = item.Excerpt
	}
	return strings.Contains(strings.ToLower(second), search)
}
