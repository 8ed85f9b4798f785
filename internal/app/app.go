package app

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	catalogdb "github.com/lesrhabilleurs/atelier-backend/internal/catalog/db"
	cataloghandler "github.com/lesrhabilleurs/atelier-backend/internal/catalog/handler"
	catalogservice "github.com/lesrhabilleurs/atelier-backend/internal/catalog/service"
	"github.com/lesrhabilleurs/atelier-backend/internal/config"
	gallerydb "github.com/lesrhabilleurs/atelier-backend/internal/gallery/db"
	galleryhandler "github.com/lesrhabilleurs/atelier-backend/internal/gallery/handler"
	galleryservice "github.com/lesrhabilleurs/atelier-backend/internal/gallery/service"
	quotehandler "github.com/lesrhabilleurs/atelier-backend/internal/quote/handler"
	quoteservice "github.com/lesrhabilleurs/atelier-backend/internal/quote/service"
	showcasehandler "github.com/lesrhabilleurs/atelier-backend/internal/showcase/handler"
	showcaseservice "github.com/lesrhabilleurs/atelier-backend/internal/showcase/service"
	"github.com/lesrhabilleurs/atelier-backend/pkg/client/staticforms"
	"go.uber.org/zap"
)

type App struct {
	HTTPServer *http.Server
}

func NewApp(log *zap.Logger, cfg config.Config) *App {
	router := chi.NewRouter()

	router.Use(
		LoggingMiddleware(log),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.HTTPServer.AllowedOrigins,
			AllowedMethods:   cfg.HTTPServer.AllowedMethods,
			AllowedHeaders:   cfg.HTTPServer.AllowedHeaders,
			AllowCredentials: cfg.HTTPServer.AllowCredentials,
		}),
		middleware.Recoverer,
	)

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", PingHandler)

		catalogRepository := catalogdb.New(catalogdb.Listings(), log)
		galleryRepository := gallerydb.New(gallerydb.Cases(), log)

		catalogService := catalogservice.New(catalogRepository, log)
		galleryService := galleryservice.New(galleryRepository, log)
		showcaseService := showcaseservice.New(catalogRepository, galleryRepository, log)

		formsClient := staticforms.New(
			staticforms.Config{
				Endpoint:  cfg.StaticForms.Endpoint,
				AccessKey: cfg.StaticForms.AccessKey,
				Timeout:   cfg.StaticForms.Timeout,
			},
			log,
		)

		quoteService := quoteservice.New(formsClient, cfg.StaticForms.Subject, log)

		catalogHandler := cataloghandler.New(catalogService, log)

		log.Info("register catalog handlers")

		catalogHandler.Register(r)

		galleryHandler := galleryhandler.New(galleryService, log)

		log.Info("register gallery handlers")

		galleryHandler.Register(r)

		quoteHandler := quotehandler.New(quoteService, log)

		log.Info("register quote handlers")

		quoteHandler.Register(r)

		showcaseHandler := showcasehandler.New(showcaseService, log)

		log.Info("register showcase handlers")

		showcaseHandler.Register(r)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		HTTPServer: srv,
	}
}

func (a *App) MustRun() {
	if err := a.HTTPServer.ListenAndServe(); err != nil {
		panic("failed to start server")
	}
}

func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote", r.RemoteAddr),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

//	@Tags		other
//	@Success	200		{string}	string
//	@Failure	400,500	{object}	apperror.AppError
//	@Router		/ping [get]
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
