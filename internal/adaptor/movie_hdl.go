package adaptor

import (
	"errors"
	"net/http"

	"cinema-catalog/internal/dto/request"
	"cinema-catalog/internal/usecase"
	"cinema-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /movies/?genre=&src=&page=
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	req := request.NewMovieListRequest(r.URL.Query())

	movies, err := h.service.GetMovies(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// GetMovieByID handles GET /movies/{id}/
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// handleServiceError maps pipeline errors to their response bodies. List
// filter errors are wrapped in a list; the detail miss is a bare string.
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrGenreInvalid):
		utils.ResponseNotFoundList(w, usecase.CodeGenreInvalid)

	case errors.Is(err, usecase.ErrPageOutOfBounds):
		utils.ResponseNotFoundList(w, usecase.CodePageOutOfBounds)

	case errors.Is(err, usecase.ErrMovieNotFound):
		utils.ResponseNotFound(w, usecase.CodeMovieNotFound)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w)
	}
}
