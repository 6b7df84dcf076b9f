package handler

import (
	"net/http"

	"edupress/internal/service"
)

// SeoHandler serves the crawler-facing files.
type SeoHandler struct {
	seo *service.SEOService
}

// NewSeoHandler creates a new SeoHandler.
func NewSeoHandler(s *service.SEOService) *SeoHandler {
	return &SeoHandler{seo: s}
}

// robotsHandler serves robots.txt from the site settings.
func (h *SeoHandler) robotsHandler(w http.ResponseWriter, r *http.Request) error {
	body, err := h.seo.Robots(r.Context())
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, err = w.Write([]byte(body))
	return err
}

// sitemapHandler serves the sitemap of the home page, categories and published items.
func (h *SeoHandler) sitemapHandler(w http.ResponseWriter, r *http.Request) error {
	xml, err := h.seo.Sitemap(r.Context())
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, err = w.Write([]byte(xml))
	return err
}
