package repository

import (
	"cinema-catalog/internal/data/entity"
	"cinema-catalog/pkg/database"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type GenreRepository interface {
	FindAll(ctx context.Context) ([]*entity.Genre, error)
	FindByID(ctx context.Context, id int64) (*entity.Genre, error)
	FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Genre, error)
}

type genreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGenreRepository(db database.PgxIface, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

func (r *genreRepository) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	query := `SELECT id, title, created_at, updated_at FROM genres ORDER BY title`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all genres", zap.Error(err))
		return nil, fmt.Errorf("find all genres: %w", err)
	}
	defer rows.Close()

	return r.scanGenres(rows)
}

func (r *genreRepository) FindByID(ctx context.Context, id int64) (*entity.Genre, error) {
	query := `SELECT id, title, created_at, updated_at FROM genres WHERE id = $1`

	var genre entity.Genre
	err := r.db.QueryRow(ctx, query, id).Scan(
		&genre.ID,
		&genre.Title,
		&genre.CreatedAt,
		&genre.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find genre by ID",
			zap.Error(err),
			zap.Int64("genre_id", id),
		)
		return nil, fmt.Errorf("find genre by id: %w", err)
	}

	return &genre, nil
}

func (r *genreRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Genre, error) {
	query := `
		SELECT g.id, g.title, g.created_at, g.updated_at
		FROM genres g
		INNER JOIN movie_genres mg ON g.id = mg.genre_id
		WHERE mg.movie_id = $1
		ORDER BY g.title
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find genres by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find genres by movie id: %w", err)
	}
	defer rows.Close()

	return r.scanGenres(rows)
}

func (r *genreRepository) scanGenres(rows pgx.Rows) ([]*entity.Genre, error) {
	var genres []*entity.Genre
	for rows.Next() {
		var genre entity.Genre
		err := rows.Scan(
			&genre.ID,
			&genre.Title,
			&genre.CreatedAt,
			&genre.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan genre row", zap.Error(err))
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		genres = append(genres, &genre)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate genre rows: %w", err)
	}

	return genres, nil
}
