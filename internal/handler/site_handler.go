package handler

import (
	"net/http"
	"strings"

	"edupress/internal/apperr"
	"edupress/internal/content"
	"edupress/internal/data"
	"edupress/internal/logger"
	"edupress/internal/service"
	"edupress/internal/view"

	"github.com/go-chi/chi/v5"
)

// SiteHandler serves the public blog pages.
type SiteHandler struct {
	content  service.ContentServicer
	taxonomy *service.TaxonomyService
	view     *view.View
	baseURL  string
	log      logger.Logger
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(cs service.ContentServicer, ts *service.TaxonomyService, v *view.View, baseURL string, log logger.Logger) *SiteHandler {
	return &SiteHandler{content: cs, taxonomy: ts, view: v, baseURL: strings.TrimRight(baseURL, "/"), log: log}
}

// homeHandler lists published posts, optionally narrowed by ?category= and ?q=.
func (h *SiteHandler) homeHandler(w http.ResponseWriter, r *http.Request) error {
	category := r.URL.Query().Get("category")
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	posts, err := h.content.List(r.Context(), content.Filter{
		Type:          data.TypePost,
		Status:        data.StatusPublished,
		Category:      category,
		Search:        query,
		SearchExcerpt: true,
	})
	if err != nil {
		return err
	}
	categories, err := h.taxonomy.Categories(r.Context())
	if err != nil {
		return err
	}

	return h.view.Render(w, r, "home.html", map[string]interface{}{
		"Posts":          posts,
		"Categories":     categories,
		"ActiveCategory": category,
		"Query":          query,
		"Canonical":      h.baseURL + "/",
	})
}

// postHandler renders a single post or page. Unknown slugs go back to the home page.
func (h *SiteHandler) postHandler(w http.ResponseWriter, r *http.Request) error {
	slug := chi.URLParam(r, "slug")
	item, err := h.content.BySlug(r.Context(), slug)
	if apperr.Is(err, apperr.KindNotFound) {
		http.Redirect(w, r, "/", http.StatusFound)
		return nil
	}
	if err != nil {
		return err
	}

	title := item.SEOTitle
	if title == "" {
		title = item.Title
	}
	description := item.SEODescription
	if description == "" {
		description = item.Excerpt
	}
	canonical := item.CanonicalURL
	if canonical == "" {
		canonical = h.baseURL + "/post/" + item.Slug
	}

	return h.view.Render(w, r, "post.html", map[string]interface{}{
		"Post":        item,
		"Title":       title,
		"Description": description,
		"Robots":      robotsDirective(item),
		"Canonical":   canonical,
	})
}

// categoryHandler lists the published posts of one category.
func (h *SiteHandler) categoryHandler(w http.ResponseWriter, r *http.Request) error {
	category, err := h.taxonomy.CategoryBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		return err
	}
	posts, err := h.content.List(r.Context(), content.Filter{
		Type:     data.TypePost,
		Status:   data.StatusPublished,
		Category: category.Name,
	})
	if err != nil {
		return err
	}

	description := category.SEODescription
	if description == "" {
		description = category.Description
	}
	return h.view.Render(w, r, "category.html", map[string]interface{}{
		"Category":    category,
		"Posts":       posts,
		"Title":       category.Name,
		"Description": description,
		"Canonical":   h.baseURL + "/category/" + category.Slug,
	})
}

func robotsDirective(item *data.ContentItem) string {
	var parts []string
	if item.RobotsIndex != "" {
		parts = append(parts, item.RobotsIndex)
	}
	if item.RobotsFollow != "" {
		parts = append(parts, item.RobotsFollow)
	}
	return strings.Join(parts, ", ")
}
