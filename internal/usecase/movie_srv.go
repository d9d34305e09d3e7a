package usecase

import (
	"context"
	"fmt"

	"cinema-catalog/internal/data/entity"
	"cinema-catalog/internal/data/repository"
	"cinema-catalog/internal/dto/request"
	"cinema-catalog/internal/dto/response"
	"cinema-catalog/internal/media"
	"cinema-catalog/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MoviesPerPage is the fixed page size of the movie list.
const MoviesPerPage = 5

// projectionConcurrency bounds how many movies load their associations at once.
const projectionConcurrency = 4

var movieListRejections = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "catalog",
	Name:      "movie_list_rejections_total",
	Help:      "Movie list requests rejected by the filter pipeline, by error code.",
}, []string{"code"})

type MovieService interface {
	GetMovies(ctx context.Context, req *request.MovieListRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
}

type movieService struct {
	repo  *repository.Repository
	files media.Store
	log   *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	files media.Store,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo:  repo,
		files: files,
		log:   log.With(zap.String("service", "movie")),
	}
}

// GetMovies runs the list pipeline: genre filter, title filter, pagination,
// projection. Without a page the whole filtered set is returned while pages
// still reports the page count.
func (s *movieService) GetMovies(ctx context.Context, req *request.MovieListRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	q := repository.NewMovieQuery()

	var (
		total   int64
		counted bool
	)

	if req.HasGenre() {
		genreID, err := req.GenreID()
		if err != nil {
			return nil, s.reject(ErrGenreInvalid, zap.String("genre", req.Genre))
		}

		q = q.WithGenre(genreID)
		total, err = s.repo.Movie.Count(ctx, q)
		if err != nil {
			s.log.Error("Failed to count movies by genre",
				zap.Error(err),
				zap.Int64("genre_id", genreID),
			)
			return nil, fmt.Errorf("count movies by genre: %w", err)
		}
		if total == 0 {
			return nil, s.reject(ErrGenreInvalid, zap.Int64("genre_id", genreID))
		}
		counted = true
	}

	if prefix, ok := req.TitlePrefix(); ok {
		q = q.WithTitlePrefix(prefix)
		counted = false
	}

	if !counted {
		var err error
		total, err = s.repo.Movie.Count(ctx, q)
		if err != nil {
			s.log.Error("Failed to count movies", zap.Error(err))
			return nil, fmt.Errorf("count movies: %w", err)
		}
	}

	pages := utils.CalculateTotalPages(total, MoviesPerPage)

	page, paged, valid := req.PageNumber()
	if paged {
		if !valid || page > pages {
			return nil, s.reject(ErrPageOutOfBounds,
				zap.String("page", req.Page),
				zap.Int("pages", pages),
			)
		}
		q = q.Slice(MoviesPerPage, utils.CalculateOffset(page, MoviesPerPage))
	}

	movies, err := s.repo.Movie.Find(ctx, q)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	results, err := s.projectAll(ctx, movies)
	if err != nil {
		return nil, err
	}

	s.log.Info("Movies retrieved",
		zap.Int("count", len(results)),
		zap.Int64("matched", total),
		zap.Int("pages", pages),
		zap.Int("page", page),
	)

	return response.NewPaginatedResponse(results, pages), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := utils.ParseID(movieID)
	if err != nil {
		s.log.Warn("Invalid movie ID format",
			zap.String("movie_id", movieID),
			zap.Error(err),
		)
		return nil, ErrMovieNotFound
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("get movie by id: %w", err)
	}

	if movie == nil {
		s.log.Warn("Movie not found", zap.Int64("movie_id", id))
		return nil, ErrMovieNotFound
	}

	resp, err := s.project(ctx, movie)
	if err != nil {
		return nil, err
	}

	s.log.Info("Movie retrieved",
		zap.Int64("movie_id", id),
		zap.String("title", movie.Title),
	)

	return &resp, nil
}

func (s *movieService) reject(err error, fields ...zap.Field) error {
	movieListRejections.WithLabelValues(err.Error()).Inc()
	s.log.Warn("Movie list rejected", append(fields, zap.String("code", err.Error()))...)
	return err
}

// projectAll projects movies concurrently, keeping the input order.
func (s *movieService) projectAll(ctx context.Context, movies []*entity.Movie) ([]response.MovieResponse, error) {
	results := make([]response.MovieResponse, len(movies))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(projectionConcurrency)

	for i, movie := range movies {
		g.Go(func() error {
			resp, err := s.project(gCtx, movie)
			if err != nil {
				return err
			}
			results[i] = resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *movieService) project(ctx context.Context, movie *entity.Movie) (response.MovieResponse, error) {
	assoc, err := s.loadAssociations(ctx, movie.ID)
	if err != nil {
		s.log.Error("Failed to load movie associations",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return response.MovieResponse{}, fmt.Errorf("load associations of movie %d: %w", movie.ID, err)
	}
	return response.MovieToResponse(movie, assoc, s.files), nil
}

func (s *movieService) loadAssociations(ctx context.Context, movieID int64) (response.MovieAssociations, error) {
	var assoc response.MovieAssociations

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		genres, err := s.repo.Genre.FindByMovieID(gCtx, movieID)
		assoc.Genres = genres
		return err
	})

	people := map[entity.PersonRelation]*[]*entity.Person{
		entity.RelationDirectors: &assoc.Directors,
		entity.RelationWriters:   &assoc.Writers,
		entity.RelationStars:     &assoc.Stars,
	}
	for relation, dst := range people {
		g.Go(func() error {
			found, err := s.repo.Person.FindByMovieID(gCtx, movieID, relation)
			*dst = found
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return response.MovieAssociations{}, err
	}
	return assoc, nil
}
