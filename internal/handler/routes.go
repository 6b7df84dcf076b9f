package handler

import (
	"io/fs"
	"net/http"

	"edupress/internal/logger"
	mw "edupress/internal/middleware"
	"edupress/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterConfig collects everything the router mounts.
type RouterConfig struct {
	Site     *SiteHandler
	SEO      *SeoHandler
	Auth     *AuthHandler
	Admin    *AdminHandler
	Sessions session.Manager
	// Settings is applied to the public pages.
	Settings    func(http.Handler) http.Handler
	Authz       func(http.Handler) http.Handler
	Errors      func(mw.AppHandler) http.Handler
	StaticFS    fs.FS
	CORSOrigins []string
	Logger      logger.Logger
}

// NewRouter creates and configures a new chi router.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.RequestLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(cfg.Sessions.LoadAndSave)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if cfg.StaticFS != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(cfg.StaticFS))))
	}

	// Public site
	r.Group(func(r chi.Router) {
		r.Use(cfg.Settings)
		r.Method(http.MethodGet, "/", cfg.Errors(cfg.Site.homeHandler))
		r.Method(http.MethodGet, "/post/{slug}", cfg.Errors(cfg.Site.postHandler))
		r.Method(http.MethodGet, "/category/{slug}", cfg.Errors(cfg.Site.categoryHandler))
		r.Method(http.MethodGet, "/sitemap.xml", cfg.Errors(cfg.SEO.sitemapHandler))
		r.Method(http.MethodGet, "/robots.txt", cfg.Errors(cfg.SEO.robotsHandler))
	})

	// Authentication routes
	r.Get("/auth/login", cfg.Auth.handleLogin)
	r.Get("/auth/callback", cfg.Auth.handleCallback)
	r.Get("/auth/logout", cfg.Auth.handleLogout)

	// Admin API
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
		r.Use(cfg.Authz)
		cfg.Admin.Routes(r)
	})

	return r
}
