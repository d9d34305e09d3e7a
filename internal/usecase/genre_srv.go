package usecase

import (
	"context"
	"fmt"

	"cinema-catalog/internal/data/repository"
	"cinema-catalog/internal/dto/response"

	"go.uber.org/zap"
)

type GenreService interface {
	GetGenres(ctx context.Context) ([]response.GenreResponse, error)
}

type genreService struct {
	repo repository.GenreRepository
	log  *zap.Logger
}

func NewGenreService(repo repository.GenreRepository, log *zap.Logger) GenreService {
	return &genreService{
		repo: repo,
		log:  log.With(zap.String("service", "genre")),
	}
}

// GetGenres returns every genre ordered by title.
func (s *genreService) GetGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get genres", zap.Error(err))
		return nil, fmt.Errorf("get genres: %w", err)
	}

	s.log.Debug("Genres retrieved", zap.Int("count", len(genres)))

	return response.GenresToResponse(genres), nil
}
