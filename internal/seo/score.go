// Package seo computes on-page SEO scores and renders the XML sitemap.
package seo

import (
	"strings"
	"unicode/utf8"

	"edupress/internal/data"
)

// Band is the qualitative bucket of a score.
type Band string

const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandPoor      Band = "poor"
)

const (
	basePoints           = 50
	titlePoints          = 20
	descriptionPoints    = 10
	contentPoints        = 10
	descriptionLenPoints = 5
	slugLenPoints        = 5

	minDescriptionLen = 50
	maxSlugLen        = 60
)

// Result is the outcome of Score.
type Result struct {
	Points int  `json:"points"`
	Band   Band `json:"band"`
}

// Score rates how well item is optimised for its focus keyword. A post without a focus
// keyword scores zero.
func Score(item data.ContentItem) Result {
	keyword := strings.ToLower(item.FocusKeyword)
	if keyword == "" && item.Type == data.TypePost {
		return Result{Points: 0, Band: BandFor(0)}
	}

	points := basePoints
	if keyword != "" {
		if strings.Contains(strings.ToLower(item.Title), keyword) {
			points += titlePoints
		}
		if strings.Contains(strings.ToLower(item.SEODescription), keyword) {
			points += descriptionPoints
		}
		if strings.Contains(strings.ToLower(item.Content), keyword) {
			points += contentPoints
		}
	}
	if utf8.RuneCountInString(item.SEODescription) > minDescriptionLen {
		points += descriptionLenPoints
	}
	if utf8.RuneCountInString(item.Slug) < maxSlugLen {
		points += slugLenPoints
	}

	points = min(max(points, 0), 100)
	return Result{Points: points, Band: BandFor(points)}
}

// BandFor maps points to a Band.
func BandFor(points int) Band {
	switch {
	case points >= 80:
		return BandExcellent
	case points >= 60:
		return BandGood
	default:
		return BandPoor
	}
}
