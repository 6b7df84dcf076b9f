package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"edupress/internal/auth"
	"edupress/internal/cache"
	"edupress/internal/config"
	"edupress/internal/content"
	"edupress/internal/data"
	"edupress/internal/generator"
	"edupress/internal/handler"
	"edupress/internal/logger"
	"edupress/internal/media"
	"edupress/internal/middleware"
	"edupress/internal/publisher"
	"edupress/internal/service"
	"edupress/internal/session"
	"edupress/internal/view"
	"edupress/web"
)

func main() {
	// --- Configuration Loading ---
	cfg, err := config.LoadConfig()
	if err != nil {
		// Use fmt.Printf here because the logger is not yet initialized.
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger and Error Reporting ---
	log := logger.New(cfg.Log, nil)
	reporter, flush, err := logger.InitSentry(logger.SentrySettings{
		DSN:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
	})
	if err != nil {
		log.Fatal(err, "Failed to initialize error reporting")
	}
	defer flush()

	// --- Pre-flight Checks ---
	oidcEnabled := cfg.OIDC.IssuerURL != "" && cfg.OIDC.ClientID != ""
	if oidcEnabled && (cfg.Session.SecretKey == "" || cfg.Session.SecretKey == "CHANGE_ME_IN_PRODUCTION_SECRET!!") {
		log.Fatal(errors.New("session secret key not set"), "Please set a secure EDUPRESS_SESSION_SECRET_KEY environment variable.")
	}
	devRole := data.Role(cfg.Auth.DevRole)
	if devRole != "" && !devRole.Valid() {
		log.Fatal(fmt.Errorf("unknown role %q", devRole), "Invalid EDUPRESS_AUTH_DEV_ROLE")
	}
	if devRole != "" {
		log.Warn(fmt.Sprintf("Requests without a session are treated as %q", devRole))
	}

	// --- Database Initialization and Migration ---
	log.Info("Connecting to the database...")
	db, err := data.NewDB(cfg.DB)
	if err != nil {
		log.Fatal(err, "Failed to connect to database")
	}
	defer db.Close()

	log.Info("Applying database migrations...")
	if err := data.ApplyMigrations(db, cfg.DB.Driver); err != nil {
		log.Fatal(err, "Failed to apply migrations")
	}
	log.Info("Migrations applied successfully.")

	store := data.NewStore(data.NewSQLCollectionRepository(db))

	// --- Cache Initialization ---
	log.Info("Initializing SQLite cache...")
	outputs, err := cache.New(cfg.Cache.FilePath)
	if err != nil {
		log.Fatal(err, "Failed to initialize cache")
	}
	defer outputs.Close()
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go outputs.Sweep(sweepCtx, time.Hour, log)

	// --- Content Events ---
	var events service.Publisher = publisher.Nop{}
	if cfg.Publisher.Enabled {
		mq, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.Publisher.URL,
			Exchange:   cfg.Publisher.Exchange,
			RoutingKey: cfg.Publisher.RoutingKey,
			QueueName:  cfg.Publisher.QueueName,
		}, log)
		if err != nil {
			log.Fatal(err, "Failed to connect to the message broker")
		}
		defer mq.Close()
		events = mq
		log.Info("Publishing content events to " + cfg.Publisher.Exchange)
	}

	// --- Writing Assistant ---
	renderer := content.NewRenderer()
	var gen service.Generator
	if cfg.Generator.APIKey != "" {
		client, err := generator.NewClient(generator.ClientOptions{
			APIKey:  cfg.Generator.APIKey,
			BaseURL: cfg.Generator.BaseURL,
			Logger:  log,
		})
		if err != nil {
			log.Fatal(err, "Failed to initialize generator client")
		}
		g, err := generator.NewGenerator(generator.GeneratorOptions{
			Client:   client,
			Model:    cfg.Generator.Model,
			Renderer: renderer,
		})
		if err != nil {
			log.Fatal(err, "Failed to initialize generator")
		}
		gen = g
	} else {
		log.Warn("Generator API key not set; the writing assistant is disabled.")
	}

	// --- Authentication and Authorization Setup ---
	log.Info("Initializing authentication and authorization...")
	enforcer, err := auth.NewEnforcer(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err, "Failed to initialize enforcer")
	}
	auth.SeedDefaultPolicies(enforcer, log)

	var (
		verifier middleware.TokenVerifier
		minter   service.TokenMinter
	)
	if cfg.Auth.TokenSecret != "" {
		issuer, err := auth.NewTokenIssuer(cfg.Auth.TokenSecret, 0)
		if err != nil {
			log.Fatal(err, "Failed to initialize token issuer")
		}
		verifier, minter = issuer, issuer
	}

	var authenticator handler.Authenticator
	if oidcEnabled {
		a, err := auth.NewAuthenticator(context.Background(), cfg.OIDC)
		if err != nil {
			log.Fatal(err, "Failed to initialize authenticator")
		}
		authenticator = a
	} else {
		log.Warn("OIDC is not configured; sign-in is disabled.")
	}

	sessionManager := session.NewManager(cfg.Session, cfg.DB.Driver, db, cfg.Server.TLS.Enabled)
	log.Info("Auth components initialized and policies seeded.")

	// --- Services ---
	contentService := service.NewContentService(store, outputs, events, renderer, log)
	taxonomyService := service.NewTaxonomyService(store, store, outputs, log)
	settingsService := service.NewSettingsService(store)
	seoService := service.NewSEOService(service.SEOServiceOptions{
		Posts:    store,
		Taxonomy: store,
		Rankings: store,
		Settings: settingsService,
		Cache:    outputs,
		BaseURL:  cfg.Server.BaseURL,
		CacheTTL: time.Duration(cfg.Cache.TTLMinutes) * time.Minute,
		Logger:   log,
	})

	liveSettings := middleware.NewLiveSettings(context.Background(), settingsService, log)
	defer liveSettings.Close()

	// --- View Template Initialization ---
	viewService, err := view.New(web.TemplateFS)
	if err != nil {
		log.Fatal(err, "Failed to initialize view templates")
	}

	// --- Router Setup ---
	router := handler.NewRouter(handler.RouterConfig{
		Site: handler.NewSiteHandler(contentService, taxonomyService, viewService, cfg.Server.BaseURL, log),
		SEO:  handler.NewSeoHandler(seoService),
		Auth: handler.NewAuthHandler(authenticator, sessionManager, log),
		Admin: handler.NewAdminHandler(handler.AdminServices{
			Content:   contentService,
			Taxonomy:  taxonomyService,
			Media:     service.NewMediaService(store, media.NewEncoder(media.MaxUploadSize)),
			Settings:  settingsService,
			SEO:       seoService,
			Assistant: service.NewAssistantService(gen, log),
			Team:      service.NewTeamService(enforcer, minter, log),
			Insights:  service.NewInsightsService(),
		}, handler.NewResponder(log, reporter), media.MaxUploadSize),
		Sessions: sessionManager,
		Settings: middleware.Settings(liveSettings),
		Authz: middleware.Authorizer(middleware.AuthorizerOptions{
			Enforcer: enforcer,
			Sessions: sessionManager,
			Tokens:   verifier,
			DevRole:  devRole,
			Logger:   log,
		}),
		Errors:      middleware.Error(log, viewService, reporter),
		StaticFS:    web.StaticFS,
		CORSOrigins: cfg.Server.CORSOrigins,
		Logger:      log,
	})

	// --- Server Initialization and Graceful Shutdown ---
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if cfg.Server.TLS.Enabled {
			log.Info(fmt.Sprintf("Starting HTTPS server on %s", server.Addr))
			if err := server.ListenAndServeTLS(cfg.Server.TLS.CertFile, cfg.Server.TLS.KeyFile); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal(err, "Could not start HTTPS server")
			}
		} else {
			log.Info(fmt.Sprintf("Starting HTTP server on %s", server.Addr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal(err, "Could not start HTTP server")
			}
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Warn("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error(err, "Server forced to shutdown")
	}
	log.Info("Server exiting")
}
