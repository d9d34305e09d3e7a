// Package repotest provides an in-memory Entity Store that satisfies the
// repository interfaces and interprets repository.MovieQuery the same way
// the postgres implementation does.
package repotest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"cinema-catalog/internal/data/entity"
	"cinema-catalog/internal/data/repository"
)

type Store struct {
	mu sync.RWMutex

	nextID      int64
	genres      map[int64]*entity.Genre
	people      map[int64]*entity.Person
	movies      map[int64]*entity.Movie
	movieGenre  []entity.MovieGenre
	moviePeople map[entity.PersonRelation][]entity.MoviePerson

	// Err, when set, is returned by every read.
	Err error
}

func NewStore() *Store {
	return &Store{
		genres:      make(map[int64]*entity.Genre),
		people:      make(map[int64]*entity.Person),
		movies:      make(map[int64]*entity.Movie),
		moviePeople: make(map[entity.PersonRelation][]entity.MoviePerson),
	}
}

// Repository exposes the store through the repository aggregate.
func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		Movie:  movieRepo{s},
		Genre:  genreRepo{s},
		Person: personRepo{s},
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) base() entity.Base {
	now := time.Now()
	return entity.Base{ID: s.id(), CreatedAt: now, UpdatedAt: now}
}

func (s *Store) AddGenre(title string) *entity.Genre {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := &entity.Genre{Base: s.base(), Title: title}
	s.genres[g.ID] = g
	return g
}

func (s *Store) AddPerson(first, last string, role entity.PersonRole) *entity.Person {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &entity.Person{Base: s.base(), FirstName: first, LastName: last, Role: role}
	s.people[p.ID] = p
	return p
}

// AddMovie stores a copy of m with a fresh id and returns the stored copy.
func (s *Store) AddMovie(m entity.Movie) *entity.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.Base = s.base()
	s.movies[m.ID] = &m
	return &m
}

func (s *Store) RemoveMovie(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.movies, id)
}

func (s *Store) AttachGenre(movieID, genreID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, mg := range s.movieGenre {
		if mg.MovieID == movieID && mg.GenreID == genreID {
			return
		}
	}
	s.movieGenre = append(s.movieGenre, entity.MovieGenre{
		BaseSimple: entity.BaseSimple{ID: s.id(), CreatedAt: time.Now()},
		MovieID:    movieID,
		GenreID:    genreID,
	})
}

func (s *Store) AttachPerson(relation entity.PersonRelation, movieID, personID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, mp := range s.moviePeople[relation] {
		if mp.MovieID == movieID && mp.PersonID == personID {
			return
		}
	}
	s.moviePeople[relation] = append(s.moviePeople[relation], entity.MoviePerson{
		BaseSimple: entity.BaseSimple{ID: s.id(), CreatedAt: time.Now()},
		MovieID:    movieID,
		PersonID:   personID,
	})
}

func (s *Store) match(q repository.MovieQuery) []*entity.Movie {
	var out []*entity.Movie
	for _, m := range s.movies {
		if genreID, ok := q.GenreID(); ok && !s.hasGenre(m.ID, genreID) {
			continue
		}
		if prefix, ok := q.TitlePrefix(); ok &&
			!strings.HasPrefix(strings.ToLower(m.Title), strings.ToLower(prefix)) {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out
}

func (s *Store) hasGenre(movieID, genreID int64) bool {
	for _, mg := range s.movieGenre {
		if mg.MovieID == movieID && mg.GenreID == genreID {
			return true
		}
	}
	return false
}

type movieRepo struct{ s *Store }

func (r movieRepo) FindByID(_ context.Context, id int64) (*entity.Movie, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if r.s.Err != nil {
		return nil, r.s.Err
	}
	m, ok := r.s.movies[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r movieRepo) Find(_ context.Context, q repository.MovieQuery) ([]*entity.Movie, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if r.s.Err != nil {
		return nil, r.s.Err
	}

	movies := r.s.match(q)
	less, err := movieLess(q.Orders())
	if err != nil {
		return nil, err
	}
	sort.SliceStable(movies, func(i, j int) bool { return less(movies[i], movies[j]) })

	if off := q.Offset(); off > 0 {
		if off >= len(movies) {
			return nil, nil
		}
		movies = movies[off:]
	}
	if lim := q.Limit(); lim > 0 && lim < len(movies) {
		movies = movies[:lim]
	}
	return movies, nil
}

func (r movieRepo) Count(_ context.Context, q repository.MovieQuery) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if r.s.Err != nil {
		return 0, r.s.Err
	}
	return int64(len(r.s.match(q))), nil
}

func movieLess(orders []repository.Order) (func(a, b *entity.Movie) bool, error) {
	cmps := make([]func(a, b *entity.Movie) int, 0, len(orders)+1)
	for _, o := range orders {
		var cmp func(a, b *entity.Movie) int
		switch o.Field {
		case "id":
			cmp = func(a, b *entity.Movie) int { return compare(a.ID, b.ID) }
		case "title":
			cmp = func(a, b *entity.Movie) int { return strings.Compare(a.Title, b.Title) }
		case "release_year":
			cmp = func(a, b *entity.Movie) int { return compare(a.ReleaseYear, b.ReleaseYear) }
		case "imdb_rating":
			cmp = func(a, b *entity.Movie) int { return compare(a.ImdbRating, b.ImdbRating) }
		case "created_at":
			cmp = func(a, b *entity.Movie) int { return a.CreatedAt.Compare(b.CreatedAt) }
		default:
			return nil, fmt.Errorf("unsupported sort field %q", o.Field)
		}
		if o.Direction == repository.SortDesc {
			asc := cmp
			cmp = func(a, b *entity.Movie) int { return -asc(a, b) }
		}
		cmps = append(cmps, cmp)
	}
	// map iteration order is random; fall back to id so results are stable
	cmps = append(cmps, func(a, b *entity.Movie) int { return compare(a.ID, b.ID) })

	return func(a, b *entity.Movie) bool {
		for _, cmp := range cmps {
			if c := cmp(a, b); c != 0 {
				return c < 0
			}
		}
		return false
	}, nil
}

func compare[T int | int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

type genreRepo struct{ s *Store }

func (r genreRepo) FindAll(_ context.Context) ([]*entity.Genre, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := make([]*entity.Genre, 0, len(r.s.genres))
	for _, g := range r.s.genres {
		cp := *g
		out = append(out, &cp)
	}
	sortGenres(out)
	return out, nil
}

func (r genreRepo) FindByID(_ context.Context, id int64) (*entity.Genre, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if r.s.Err != nil {
		return nil, r.s.Err
	}
	g, ok := r.s.genres[id]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (r genreRepo) FindByMovieID(_ context.Context, movieID int64) ([]*entity.Genre, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var out []*entity.Genre
	for _, mg := range r.s.movieGenre {
		if mg.MovieID != movieID {
			continue
		}
		if g, ok := r.s.genres[mg.GenreID]; ok {
			cp := *g
			out = append(out, &cp)
		}
	}
	sortGenres(out)
	return out, nil
}

func sortGenres(genres []*entity.Genre) {
	sort.SliceStable(genres, func(i, j int) bool { return genres[i].Title < genres[j].Title })
}

type personRepo struct{ s *Store }

func (r personRepo) FindByMovieID(_ context.Context, movieID int64, relation entity.PersonRelation) ([]*entity.Person, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if r.s.Err != nil {
		return nil, r.s.Err
	}
	if relation.Table() == "" {
		return nil, fmt.Errorf("unknown person relation %q", relation)
	}
	var out []*entity.Person
	for _, mp := range r.s.moviePeople[relation] {
		if mp.MovieID != movieID {
			continue
		}
		if p, ok := r.s.people[mp.PersonID]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}
