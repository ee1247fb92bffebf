// Package rest provides functionality for initializing a server for the link shortening service.
package rest

import (
	"expvar"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	"github.com/danilovkiri/dk_go_shortlinks/internal/api/rest/handlers"
	"github.com/danilovkiri/dk_go_shortlinks/internal/api/rest/middleware"
	"github.com/danilovkiri/dk_go_shortlinks/internal/config"
	"github.com/danilovkiri/dk_go_shortlinks/internal/metrics"
	generatorV1 "github.com/danilovkiri/dk_go_shortlinks/internal/service/generator/v1"
	shortenerV1 "github.com/danilovkiri/dk_go_shortlinks/internal/service/shortener/v1"
	"github.com/danilovkiri/dk_go_shortlinks/internal/storage"
)

var (
	serverStart = time.Now()
	publishOnce sync.Once
)

// uptime returns time in seconds since the server start-up.
func uptime() interface{} {
	return int64(time.Since(serverStart).Seconds())
}

// InitRouter wires the service, the handlers and the middleware stack into a chi router.
func InitRouter(cfg *config.Config, linkStorage storage.LinkStorage, collector *metrics.Collector) (http.Handler, error) {
	shortenerService, err := shortenerV1.InitShortener(linkStorage, generatorV1.NewGeneratorService())
	if err != nil {
		return nil, err
	}
	urlHandler, err := handlers.InitURLHandler(shortenerService, collector)
	if err != nil {
		return nil, err
	}
	trustedNetHandler, err := middleware.NewTrustedNetHandler(cfg)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(chiMiddleware.Compress(5, "application/json", "text/html"))
	r.Use(middleware.DecompressHandle)
	r.Use(middleware.OwnerHandle)

	r.Post("/api/shorten", urlHandler.HandleShorten())
	r.Get("/api/urls", urlHandler.HandleList())
	r.Delete("/api/urls/{code}", urlHandler.HandleDelete())
	r.Get("/s/{code}", urlHandler.HandleInfo())
	r.With(trustedNetHandler.TrustedNetworkHandler).Get("/metrics", collector.Handler().ServeHTTP)
	r.Get("/health", urlHandler.HandleHealth())
	r.Get("/ping", urlHandler.HandlePingDB())
	r.Mount("/debug", chiMiddleware.Profiler()) // see https://github.com/go-chi/chi/blob/master/middleware/profiler.go
	r.Get("/{code}", urlHandler.HandleRedirect())
	publishOnce.Do(func() {
		expvar.Publish("system.uptime", expvar.Func(uptime))
	})
	return r, nil
}

// InitServer returns a http.Server object ready to be listening and serving.
func InitServer(cfg *config.Config, linkStorage storage.LinkStorage, collector *metrics.Collector) (*http.Server, error) {
	r, err := InitRouter(cfg, linkStorage, collector)
	if err != nil {
		return nil, err
	}
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return srv, nil
}
