package repository

import (
	"cinema-catalog/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie  MovieRepository
	Genre  GenreRepository
	Person PersonRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:  NewMovieRepository(db, log),
		Genre:  NewGenreRepository(db, log),
		Person: NewPersonRepository(db, log),
	}
}
