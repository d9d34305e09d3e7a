package wire

import (
	"cinema-catalog/internal/adaptor"
	"cinema-catalog/internal/data/repository"
	"cinema-catalog/internal/media"
	"cinema-catalog/internal/usecase"
	"cinema-catalog/pkg/middleware"
	"cinema-catalog/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router on top of repo.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	files := media.NewPrefixStore(config.Media.BaseURL)

	service := usecase.NewService(repo, files, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimit(config.RateLimit.RPS, config.RateLimit.Burst, logger))

	wireGenre(r, handler.Genre)
	wireMovie(r, handler.Movie)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
