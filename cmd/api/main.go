package main

import (
	"time"

	"github.com/Nagesh2809/cafe-management/internal/backend"
	"github.com/Nagesh2809/cafe-management/internal/env"
	"github.com/Nagesh2809/cafe-management/internal/ratelimiter"
	"github.com/Nagesh2809/cafe-management/internal/service"
	"github.com/Nagesh2809/cafe-management/internal/session"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const version = "0.0.0"

//	@title			Chai Storefront
//	@description	Session-based storefront API for the cafe ordering frontend

// @BasePath					/api/v1
//
// @securityDefinitions.apiKey	SessionAuth
// @in							header
// @name						X-Session-ID
// @description
func main() {
	_ = godotenv.Load()

	cfg := config{
		addr:   env.GetString("ADDR", ":8080"),
		apiURL: env.GetString("EXTERNAL_URL", "localhost:8080"),
		env:    env.GetString("ENV", "development"),
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: env.GetInt("RATELIMITER_REQUESTS_COUNT", 20),
			TimeFrame:            time.Second * 5,
			Enabled:              env.GetBool("RATE_LIMITER_ENABLED", true),
		},
		backend: backendConfig{
			BaseURL: env.GetString("BACKEND_URL", "http://127.0.0.1:8000"),
			Timeout: time.Second * 15,
		},
		session: sessionConfig{
			TTL:           time.Duration(env.GetInt("SESSION_TTL_MINUTES", 30)) * time.Minute,
			SweepInterval: time.Minute,
		},
	}

	// logger
	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	// rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	// external cafe API
	apiClient := backend.New(backend.Config{
		BaseURL: cfg.backend.BaseURL,
		Timeout: cfg.backend.Timeout,
	})

	logger.Infow("using external backend", "url", cfg.backend.BaseURL)

	// sessions
	sessionStore := session.NewStore(session.Config{
		TTL:           cfg.session.TTL,
		SweepInterval: cfg.session.SweepInterval,
	}, logger)

	storefrontService := service.NewStorefront(apiClient, logger)
	adminService := service.NewAdmin(apiClient, logger)

	app := &application{
		config:      cfg,
		logger:      logger,
		rateLimiter: rateLimiter,
		backend:     apiClient,
		sessions:    sessionStore,
		storefront:  storefrontService,
		admin:       adminService,
	}

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
