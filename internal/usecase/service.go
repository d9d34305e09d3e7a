package usecase

import (
	"cinema-catalog/internal/data/repository"
	"cinema-catalog/internal/media"

	"go.uber.org/zap"
)

type Service struct {
	Movie MovieService
	Genre GenreService
}

func NewService(repo *repository.Repository, files media.Store, log *zap.Logger) *Service {
	return &Service{
		Movie: NewMovieService(repo, files, log),
		Genre: NewGenreService(repo.Genre, log),
	}
}
