package handler

import (
	"errors"
	"net/http"
	"time"

	"edupress/internal/apperr"
	"edupress/internal/content"
	"edupress/internal/data"
	"edupress/internal/generator"
	"edupress/internal/service"

	"github.com/go-chi/chi/v5"
)

// AdminServices are the services behind the admin API.
type AdminServices struct {
	Content   service.ContentServicer
	Taxonomy  *service.TaxonomyService
	Media     *service.MediaService
	Settings  *service.SettingsService
	SEO       *service.SEOService
	Assistant *service.AssistantService
	Team      *service.TeamService
	Insights  *service.InsightsService
}

// AdminHandler serves the JSON admin API.
type AdminHandler struct {
	svc AdminServices
	rs  *Responder
	// maxUpload bounds the multipart body of media uploads.
	maxUpload int64
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc AdminServices, rs *Responder, maxUpload int64) *AdminHandler {
	return &AdminHandler{svc: svc, rs: rs, maxUpload: maxUpload}
}

// Routes mounts the admin API on r.
func (h *AdminHandler) Routes(r chi.Router) {
	r.Route("/content", func(r chi.Router) {
		r.Get("/", h.listContent)
		r.Post("/", h.createContent)
		r.Get("/new", h.newDraft)
		r.Get("/{id}", h.getContent)
		r.Put("/{id}", h.updateContent)
		r.Delete("/{id}", h.deleteContent)
		r.Get("/{id}/score", h.scoreContent)
	})
	r.Get("/stats", h.stats)

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.listCategories)
		r.Post("/", h.saveCategory)
		r.Put("/{id}", h.saveCategory)
		r.Delete("/{id}", h.deleteCategory)
	})
	r.Route("/tags", func(r chi.Router) {
		r.Get("/", h.listTags)
		r.Post("/", h.saveTag)
		r.Put("/{id}", h.saveTag)
		r.Delete("/{id}", h.deleteTag)
	})
	r.Route("/media", func(r chi.Router) {
		r.Get("/", h.listMedia)
		r.Post("/", h.uploadMedia)
		r.Delete("/{id}", h.deleteMedia)
	})

	r.Get("/settings", h.getSettings)
	r.Put("/settings", h.saveSettings)

	r.Route("/seo", func(r chi.Router) {
		r.Get("/backlinks", h.backlinks)
		r.Get("/keywords", h.keywords)
		r.Post("/keywords", h.addKeyword)
		r.Get("/scores", h.scores)
	})
	r.Post("/assistant", h.assist)

	r.Route("/insights", func(r chi.Router) {
		r.Get("/goals", h.goals)
		r.Get("/ads", h.ads)
		r.Get("/traffic", h.traffic)
	})

	r.Route("/team", func(r chi.Router) {
		r.Get("/users", h.users)
		r.Post("/invite", h.invite)
		r.Post("/users/{id}/toggle", h.toggleUser)
		r.Get("/logins", h.logins)
		r.Get("/sessions", h.sessions)
		r.Get("/api-keys", h.apiKeys)
		r.Post("/api-keys/{id}/token", h.mintToken)
		r.Get("/permissions", h.permissions)
	})
}

// content

func (h *AdminHandler) listContent(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := content.Filter{
		Type:          data.ContentType(q.Get("type")),
		Search:        q.Get("q"),
		Status:        data.Status(q.Get("status")),
		Category:      q.Get("category"),
		SearchExcerpt: q.Get("excerpt") == "true",
	}
	var err error
	if f.DateStart, err = parseDate(q.Get("from"), "from"); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	if f.DateEnd, err = parseDate(q.Get("to"), "to"); err != nil {
		h.rs.Error(w, r, err)
		return
	}

	items, err := h.svc.Content.List(r.Context(), f)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, items)
}

func (h *AdminHandler) newDraft(w http.ResponseWriter, r *http.Request) {
	h.rs.JSON(w, http.StatusOK, h.svc.Content.NewDraft(data.ContentType(r.URL.Query().Get("type"))))
}

func (h *AdminHandler) createContent(w http.ResponseWriter, r *http.Request) {
	var item data.ContentItem
	if err := decodeJSON(r, &item); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	saved, err := h.svc.Content.Save(r.Context(), item)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusCreated, saved)
}

func (h *AdminHandler) getContent(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Content.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, item)
}

func (h *AdminHandler) updateContent(w http.ResponseWriter, r *http.Request) {
	var item data.ContentItem
	if err := decodeJSON(r, &item); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	item.ID = chi.URLParam(r, "id")
	saved, err := h.svc.Content.Save(r.Context(), item)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, saved)
}

func (h *AdminHandler) deleteContent(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Content.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) scoreContent(w http.ResponseWriter, r *http.Request) {
	score, err := h.svc.SEO.Score(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, score)
}

func (h *AdminHandler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Content.Stats(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, stats)
}

// taxonomy

func (h *AdminHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Taxonomy.Categories(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, categories)
}

func (h *AdminHandler) saveCategory(w http.ResponseWriter, r *http.Request) {
	var c data.Category
	if err := decodeJSON(r, &c); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	status := http.StatusCreated
	if id := chi.URLParam(r, "id"); id != "" {
		c.ID = id
		status = http.StatusOK
	}
	saved, err := h.svc.Taxonomy.SaveCategory(r.Context(), c)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, status, saved)
}

func (h *AdminHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Taxonomy.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) listTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.Taxonomy.Tags(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, tags)
}

func (h *AdminHandler) saveTag(w http.ResponseWriter, r *http.Request) {
	var t data.Tag
	if err := decodeJSON(r, &t); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	status := http.StatusCreated
	if id := chi.URLParam(r, "id"); id != "" {
		t.ID = id
		status = http.StatusOK
	}
	saved, err := h.svc.Taxonomy.SaveTag(r.Context(), t)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, status, saved)
}

func (h *AdminHandler) deleteTag(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Taxonomy.DeleteTag(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// media

func (h *AdminHandler) listMedia(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Media.List(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, items)
}

// multipartOverhead leaves room for the form boundaries and headers around the file.
const multipartOverhead = 64 * 1024

func (h *AdminHandler) uploadMedia(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+multipartOverhead)
	if err := r.ParseMultipartForm(h.maxUpload + multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.rs.Error(w, r, apperr.Capacity("upload exceeds the size limit"))
			return
		}
		h.rs.Error(w, r, apperr.Validation("file", "expected a multipart form with a file field"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		h.rs.Error(w, r, apperr.Validation("file", "file is required"))
		return
	}
	defer file.Close()

	item, err := h.svc.Media.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusCreated, item)
}

func (h *AdminHandler) deleteMedia(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Media.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// settings

func (h *AdminHandler) getSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.Settings.Current(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, settings)
}

func (h *AdminHandler) saveSettings(w http.ResponseWriter, r *http.Request) {
	var settings data.SiteSettings
	if err := decodeJSON(r, &settings); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	saved, err := h.svc.Settings.Save(r.Context(), settings)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, saved)
}

// seo

func (h *AdminHandler) backlinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.svc.SEO.Backlinks(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, links)
}

func (h *AdminHandler) keywords(w http.ResponseWriter, r *http.Request) {
	keywords, err := h.svc.SEO.Keywords(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, keywords)
}

func (h *AdminHandler) addKeyword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Keyword string `json:"keyword"`
		URL     string `json:"url"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	kw, err := h.svc.SEO.AddKeyword(r.Context(), req.Keyword, req.URL)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusCreated, kw)
}

func (h *AdminHandler) scores(w http.ResponseWriter, r *http.Request) {
	scores, err := h.svc.SEO.Scores(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, scores)
}

func (h *AdminHandler) assist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topic string         `json:"topic"`
		Kind  generator.Kind `json:"kind"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	result, err := h.svc.Assistant.Generate(r.Context(), req.Topic, req.Kind)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, result)
}

// insights

func (h *AdminHandler) goals(w http.ResponseWriter, r *http.Request) {
	h.rs.JSON(w, http.StatusOK, h.svc.Insights.Goals(r.Context()))
}

func (h *AdminHandler) ads(w http.ResponseWriter, r *http.Request) {
	h.rs.JSON(w, http.StatusOK, h.svc.Insights.Ads(r.Context()))
}

func (h *AdminHandler) traffic(w http.ResponseWriter, r *http.Request) {
	h.rs.JSON(w, http.StatusOK, h.svc.Insights.Traffic(r.Context()))
}

// team

func (h *AdminHandler) users(w http.ResponseWriter, r *http.Request) {
	h.rs.JSON(w, http.StatusOK, h.svc.Team.Users(r.Context()))
}

func (h *AdminHandler) invite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string    `json:"email"`
		Role  data.Role `json:"role"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	inv, err := h.svc.Team.Invite(r.Context(), req.Email, req.Role)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusAccepted, inv)
}

func (h *AdminHandler) toggleUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Team.ToggleStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, u)
}

func (h *AdminHandler) logins(w http.ResponseWriter, r *http.Request) {
	h.rs.JSON(w, http.StatusOK, h.svc.Team.LoginLogs(r.Context()))
}

func (h *AdminHandler) sessions(w http.ResponseWriter, r *http.Request) {
	h.rs.JSON(w, http.StatusOK, h.svc.Team.Sessions(r.Context()))
}

func (h *AdminHandler) apiKeys(w http.ResponseWriter, r *http.Request) {
	h.rs.JSON(w, http.StatusOK, h.svc.Team.APIKeys(r.Context()))
}

func (h *AdminHandler) mintToken(w http.ResponseWriter, r *http.Request) {
	tok, err := h.svc.Team.MintToken(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusCreated, tok)
}

func (h *AdminHandler) permissions(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.Team.Permissions(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, http.StatusOK, rows)
}

// parseDate parses an optional YYYY-MM-DD query value.
func parseDate(value, field string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, apperr.Validation(field, "date must be formatted as YYYY-MM-DD")
	}
	return &t, nil
}
