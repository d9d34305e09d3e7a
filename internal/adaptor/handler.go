package adaptor

import (
	"cinema-catalog/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Movie *MovieHandler
	Genre *GenreHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie: NewMovieHandler(service.Movie, log),
		Genre: NewGenreHandler(service.Genre, log),
	}
}
