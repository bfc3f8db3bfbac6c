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

	"github.com/Nagesh2809/cafe-management/docs"
	"github.com/Nagesh2809/cafe-management/internal/backend"
	"github.com/Nagesh2809/cafe-management/internal/ratelimiter"
	"github.com/Nagesh2809/cafe-management/internal/service"
	"github.com/Nagesh2809/cafe-management/internal/session"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config      config
	logger      *zap.SugaredLogger
	rateLimiter ratelimiter.Limiter
	backend     backend.API
	sessions    *session.Store
	storefront  *service.Storefront
	admin       *service.Admin
}

type config struct {
	addr        string
	env         string
	apiURL      string
	rateLimiter ratelimiter.Config
	backend     backendConfig
	session     sessionConfig
}

type backendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type sessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.rateLimiterMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.Group(func(r chi.Router) {
			r.Use(app.sessionMiddleware)

			r.Post("/auth/register", app.registerHandler)
			r.Post("/auth/login", app.loginHandler)
			r.Post("/auth/logout", app.logoutHandler)

			r.Get("/menu", app.getMenuHandler)
			r.Get("/menu/popular", app.getPopularMenuHandler)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", app.getCartHandler)
				r.Delete("/", app.clearCartHandler)
				r.Post("/items", app.addCartItemHandler)
				r.Put("/items/{line_id}", app.updateCartItemHandler)
				r.Delete("/items/{line_id}", app.removeCartItemHandler)
			})

			r.Group(func(r chi.Router) {
				r.Use(app.requireAuth)

				r.Post("/checkout", app.checkoutHandler)
				r.Get("/orders", app.getOrdersHandler)
				r.Get("/profile", app.getProfileHandler)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(app.requireAuth, app.requireAdmin)

				r.Post("/menu", app.createMenuItemHandler)
				r.Put("/menu/{item_id}", app.updateMenuItemHandler)
				r.Delete("/menu/{item_id}", app.deleteMenuItemHandler)

				r.Get("/orders", app.getAllOrdersHandler)
				r.Put("/orders/{order_id}/status", app.updateOrderStatusHandler)

				r.Get("/stats", app.getStatsHandler)
			})
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Chai Storefront"
	docs.SwaggerInfo.Description = "Session-based storefront API for the cafe ordering frontend"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	// session eviction janitor
	app.sessions.Start()

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		app.sessions.Stop()

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
