//go:build integration

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"edupress/internal/auth"
	"edupress/internal/config"
	"edupress/internal/data"
	"edupress/internal/logger"
	"edupress/internal/media"
	mw "edupress/internal/middleware"
	"edupress/internal/service"
	"edupress/internal/session"
	"edupress/internal/view"
	"edupress/web"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminAPIWithPolicies(t *testing.T) {
	dsn := "file:handlers?mode=memory&cache=shared"
	db, err := data.NewDB(config.DBConfig{Driver: "sqlite3", DSN: dsn})
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, data.ApplyMigrations(db, "sqlite3"))

	log := logger.Nop()
	enforcer, err := auth.NewEnforcer("sqlite3", dsn)
	require.NoError(t, err)
	auth.SeedDefaultPolicies(enforcer, log)

	tokens, err := auth.NewTokenIssuer("integration-secret", time.Hour)
	require.NoError(t, err)

	store := data.NewStore(data.NewSQLCollectionRepository(db))
	v, err := view.New(web.TemplateFS)
	require.NoError(t, err)

	contentSvc := service.NewContentService(store, nil, nil, nil, log)
	taxonomySvc := service.NewTaxonomyService(store, store, nil, log)
	settingsSvc := service.NewSettingsService(store)
	seoSvc := service.NewSEOService(service.SEOServiceOptions{
		Posts: store, Taxonomy: store, Rankings: store, Settings: settingsSvc,
		BaseURL: "http://localhost:8080", Logger: log,
	})
	live := mw.NewLiveSettings(context.Background(), settingsSvc, log)
	defer live.Close()

	sessions := session.NewManager(config.SessionConfig{Lifetime: 1}, "sqlite3", db, false)
	router := NewRouter(RouterConfig{
		Site: NewSiteHandler(contentSvc, taxonomySvc, v, "http://localhost:8080", log),
		SEO:  NewSeoHandler(seoSvc),
		Auth: NewAuthHandler(nil, sessions, log),
		Admin: NewAdminHandler(AdminServices{
			Content:   contentSvc,
			Taxonomy:  taxonomySvc,
			Media:     service.NewMediaService(store, media.NewEncoder(0)),
			Settings:  settingsSvc,
			SEO:       seoSvc,
			Assistant: service.NewAssistantService(nil, log),
			Team:      service.NewTeamService(enforcer, tokens, log),
			Insights:  service.NewInsightsService(),
		}, NewResponder(log, nil), media.MaxUploadSize),
		Sessions: sessions,
		Settings: mw.Settings(live),
		Authz: mw.Authorizer(mw.AuthorizerOptions{
			Enforcer: enforcer,
			Sessions: sessions,
			Tokens:   tokens,
			Logger:   log,
		}),
		Errors:   mw.Error(log, v, logger.NopReporter()),
		StaticFS: web.StaticFS,
		Logger:   log,
	})

	request := func(method, path, token, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	t.Run("public pages are open", func(t *testing.T) {
		rr := request("GET", "/", "", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Matematik Korkusunu Yenmenin 7 Altın Kuralı")
	})

	t.Run("anonymous admin access is rejected", func(t *testing.T) {
		rr := request("GET", "/api/admin/content", "", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		rr := request("GET", "/api/admin/content", "not-a-token", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("write token acts as author", func(t *testing.T) {
		token, _, err := tokens.Issue("apikey:2", []string{"write:posts", "read:analytics"})
		require.NoError(t, err)

		rr := request("POST", "/api/admin/content", token, `{"title":"Oranlar Konusu","status":"published"}`)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		rr = request("DELETE", "/api/admin/content/1", token, "")
		assert.Equal(t, http.StatusForbidden, rr.Code)

		rr = request("GET", "/post/oranlar-konusu", "", "")
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = request("GET", "/sitemap.xml", "", "")
		assert.Contains(t, rr.Body.String(), "http://localhost:8080/post/oranlar-konusu")
	})

	t.Run("read token cannot write", func(t *testing.T) {
		token, _, err := tokens.Issue("apikey:1", []string{"read:posts"})
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, request("GET", "/api/admin/content", token, "").Code)
		assert.Equal(t, http.StatusForbidden, request("POST", "/api/admin/content", token, `{"title":"x"}`).Code)
	})

	t.Run("permission matrix follows policies", func(t *testing.T) {
		perms, err := service.NewTeamService(enforcer, tokens, log).Permissions(context.Background())
		require.NoError(t, err)
		require.NotEmpty(t, perms)
		for _, p := range perms {
			if p.Action == "settings" {
				assert.True(t, p.Roles[data.RoleAdmin])
				assert.False(t, p.Roles[data.RoleEditor])
			}
		}
	})
}
