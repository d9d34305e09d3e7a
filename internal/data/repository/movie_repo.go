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

type MovieRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	Find(ctx context.Context, q MovieQuery) ([]*entity.Movie, error)
	Count(ctx context.Context, q MovieQuery) (int64, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		SELECT id, title, description, poster, bg_picture, release_year,
		       mpa_rating, imdb_rating, duration, created_at, updated_at
		FROM movies
		WHERE id = $1
	`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	return movie, nil
}

func (r *movieRepository) Find(ctx context.Context, q MovieQuery) ([]*entity.Movie, error) {
	query, args, err := q.SelectSQL()
	if err != nil {
		return nil, fmt.Errorf("build movie query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find movies",
			zap.Error(err),
			zap.Int("limit", q.Limit()),
			zap.Int("offset", q.Offset()),
		)
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Movies found",
		zap.Int("count", len(movies)),
		zap.Int("limit", q.Limit()),
		zap.Int("offset", q.Offset()),
	)

	return movies, nil
}

func (r *movieRepository) Count(ctx context.Context, q MovieQuery) (int64, error) {
	query, args := q.CountSQL()

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}

	r.log.Debug("Movies counted", zap.Int64("total", total))

	return total, nil
}

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Poster,
		&movie.BgPicture,
		&movie.ReleaseYear,
		&movie.MpaRating,
		&movie.ImdbRating,
		&movie.Duration,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}
