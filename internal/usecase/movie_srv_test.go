package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cinema-catalog/internal/data/entity"
	"cinema-catalog/internal/data/repository/repotest"
	"cinema-catalog/internal/dto/request"
	"cinema-catalog/internal/dto/response"
	"cinema-catalog/internal/media"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type catalogFixture struct {
	store    *repotest.Store
	service  MovieService
	genre    *entity.Genre
	director *entity.Person
	writer   *entity.Person
	actor    *entity.Person
}

func sampleMovie(title string) entity.Movie {
	return entity.Movie{
		Title:       title,
		Description: "test_description",
		Poster:      "test_poster",
		BgPicture:   "test_bg_picture",
		ReleaseYear: 1990,
		MpaRating:   entity.MpaRatingR,
		ImdbRating:  4.1,
		Duration:    121,
	}
}

// newCatalogFixture stores movie_1..movie_n in that order, all sharing one
// genre and one director, writer and star.
func newCatalogFixture(t *testing.T, n int) *catalogFixture {
	t.Helper()

	store := repotest.NewStore()
	f := &catalogFixture{
		store:    store,
		service:  NewMovieService(store.Repository(), media.NewPrefixStore("/media/"), zap.NewNop()),
		genre:    store.AddGenre("test_genre"),
		director: store.AddPerson("director's_name", "director's_last_name", entity.PersonRoleDirector),
		writer:   store.AddPerson("writer's_name", "writer's_last_name", entity.PersonRoleWriter),
		actor:    store.AddPerson("actor's_name", "actor's_last_name", entity.PersonRoleActor),
	}

	for i := 1; i <= n; i++ {
		m := store.AddMovie(sampleMovie(fmt.Sprintf("movie_%d", i)))
		store.AttachGenre(m.ID, f.genre.ID)
		store.AttachPerson(entity.RelationDirectors, m.ID, f.director.ID)
		store.AttachPerson(entity.RelationWriters, m.ID, f.writer.ID)
		store.AttachPerson(entity.RelationStars, m.ID, f.actor.ID)
	}

	return f
}

func (f *catalogFixture) list(t *testing.T, req request.MovieListRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	t.Helper()
	return f.service.GetMovies(context.Background(), &req)
}

func titles(resp *response.PaginatedResponse[response.MovieResponse]) []string {
	out := make([]string, len(resp.Results))
	for i, m := range resp.Results {
		out[i] = m.Title
	}
	return out
}

func TestGetMovies_DefaultOrderIsNewestFirst(t *testing.T) {
	f := newCatalogFixture(t, 3)

	resp, err := f.list(t, request.MovieListRequest{})
	require.NoError(t, err)

	assert.Equal(t, []string{"movie_3", "movie_2", "movie_1"}, titles(resp))
	assert.Equal(t, 1, resp.Pages)
	assert.Equal(t, 3, resp.Total)
}

func TestGetMovies_GenreWithoutPage(t *testing.T) {
	f := newCatalogFixture(t, 8)

	resp, err := f.list(t, request.MovieListRequest{Genre: fmt.Sprint(f.genre.ID)})
	require.NoError(t, err)

	// unpaged: total counts the whole filtered set, pages still reports 2
	assert.Equal(t, 2, resp.Pages)
	assert.Equal(t, 8, resp.Total)
	assert.Len(t, resp.Results, 8)
}

func TestGetMovies_GenreSecondPage(t *testing.T) {
	f := newCatalogFixture(t, 8)

	resp, err := f.list(t, request.MovieListRequest{Genre: fmt.Sprint(f.genre.ID), Page: "2"})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Pages)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, []string{"movie_3", "movie_2", "movie_1"}, titles(resp))
}

func TestGetMovies_PageSizes(t *testing.T) {
	tests := []struct {
		movies    int
		wantPages int
		lastSize  int
	}{
		{movies: 1, wantPages: 1, lastSize: 1},
		{movies: 5, wantPages: 1, lastSize: 5},
		{movies: 6, wantPages: 2, lastSize: 1},
		{movies: 10, wantPages: 2, lastSize: 5},
		{movies: 11, wantPages: 3, lastSize: 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d movies", tt.movies), func(t *testing.T) {
			f := newCatalogFixture(t, tt.movies)

			for p := 1; p <= tt.wantPages; p++ {
				resp, err := f.list(t, request.MovieListRequest{Page: fmt.Sprint(p)})
				require.NoError(t, err)
				assert.Equal(t, tt.wantPages, resp.Pages)

				want := MoviesPerPage
				if p == tt.wantPages {
					want = tt.lastSize
				}
				assert.Len(t, resp.Results, want, "page %d", p)
				assert.Equal(t, want, resp.Total)
			}
		})
	}
}

func TestGetMovies_PagesDoNotOverlap(t *testing.T) {
	f := newCatalogFixture(t, 12)

	seen := map[int64]bool{}
	for p := 1; p <= 3; p++ {
		resp, err := f.list(t, request.MovieListRequest{Page: fmt.Sprint(p)})
		require.NoError(t, err)
		for _, m := range resp.Results {
			assert.False(t, seen[m.ID], "movie %d on two pages", m.ID)
			seen[m.ID] = true
		}
	}
	assert.Len(t, seen, 12)
}

func TestGetMovies_PageOutOfBounds(t *testing.T) {
	f := newCatalogFixture(t, 8)
	other := f.store.AddGenre("other")
	m := f.store.AddMovie(sampleMovie("alone"))
	f.store.AttachGenre(m.ID, other.ID)

	tests := []struct {
		name string
		req  request.MovieListRequest
	}{
		{"beyond last page", request.MovieListRequest{Page: "3"}},
		{"beyond last page with genre", request.MovieListRequest{Genre: fmt.Sprint(other.ID), Page: "2"}},
		{"beyond last page with title", request.MovieListRequest{Src: "movie_1", Page: "2"}},
		{"zero", request.MovieListRequest{Page: "0"}},
		{"negative", request.MovieListRequest{Page: "-2"}},
		{"not a number", request.MovieListRequest{Page: "last"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.list(t, tt.req)
			assert.ErrorIs(t, err, ErrPageOutOfBounds)
		})
	}
}

func TestGetMovies_GenreInvalid(t *testing.T) {
	f := newCatalogFixture(t, 3)
	empty := f.store.AddGenre("no movies")

	tests := []struct {
		name  string
		genre string
	}{
		{"genre without movies", fmt.Sprint(empty.ID)},
		{"unknown genre", "7777"},
		{"not a number", "drama"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.list(t, request.MovieListRequest{Genre: tt.genre, Page: "1"})
			assert.ErrorIs(t, err, ErrGenreInvalid)
		})
	}
}

func TestGetMovies_GenreCheckedBeforePage(t *testing.T) {
	f := newCatalogFixture(t, 3)

	_, err := f.list(t, request.MovieListRequest{Genre: "7777", Page: "99"})
	assert.ErrorIs(t, err, ErrGenreInvalid)
}

func TestGetMovies_TitlePrefix(t *testing.T) {
	f := newCatalogFixture(t, 0)
	for _, title := range []string{"movie_1", "MOVIE_1x", "xmovie_1", "movie_2", "Movie_10"} {
		f.store.AddMovie(sampleMovie(title))
	}

	resp, err := f.list(t, request.MovieListRequest{Src: "movie_1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Movie_10", "MOVIE_1x", "movie_1"}, titles(resp))
}

func TestGetMovies_TitlePrefixLikeWildcards(t *testing.T) {
	f := newCatalogFixture(t, 0)
	f.store.AddMovie(sampleMovie("movieX1"))
	f.store.AddMovie(sampleMovie("100% Wolf"))
	f.store.AddMovie(sampleMovie("1000 Ways"))

	resp, err := f.list(t, request.MovieListRequest{Src: "movie_1"})
	require.NoError(t, err)
	assert.Empty(t, resp.Results)

	resp, err = f.list(t, request.MovieListRequest{Src: "100%"})
	require.NoError(t, err)
	assert.Equal(t, []string{"100% Wolf"}, titles(resp))
}

func TestGetMovies_TitlePrefixOutOfRangeIsIgnored(t *testing.T) {
	f := newCatalogFixture(t, 4)

	for _, src := range []string{"m", "movie_movie_movie_movie"} {
		t.Run(src, func(t *testing.T) {
			resp, err := f.list(t, request.MovieListRequest{Src: src})
			require.NoError(t, err)
			assert.Len(t, resp.Results, 4)
		})
	}
}

func TestGetMovies_GenreAndTitleIntersect(t *testing.T) {
	f := newCatalogFixture(t, 0)
	drama := f.store.AddGenre("drama")
	comedy := f.store.AddGenre("comedy")

	add := func(title string, genre *entity.Genre) {
		m := f.store.AddMovie(sampleMovie(title))
		f.store.AttachGenre(m.ID, genre.ID)
	}
	add("alien", drama)
	add("aliens", comedy)
	add("avatar", drama)
	add("alien resurrection", drama)

	resp, err := f.list(t, request.MovieListRequest{Genre: fmt.Sprint(drama.ID), Src: "ALI"})
	require.NoError(t, err)

	assert.Equal(t, []string{"alien resurrection", "alien"}, titles(resp))
	assert.Equal(t, 1, resp.Pages)
}

func TestGetMovies_EmptyTitleMatchHasOneEmptyPage(t *testing.T) {
	f := newCatalogFixture(t, 3)

	resp, err := f.list(t, request.MovieListRequest{Src: "zz", Page: "1"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Pages)
	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Results)

	_, err = f.list(t, request.MovieListRequest{Src: "zz", Page: "2"})
	assert.ErrorIs(t, err, ErrPageOutOfBounds)
}

func TestGetMovies_ProjectsAssociations(t *testing.T) {
	f := newCatalogFixture(t, 1)

	resp, err := f.list(t, request.MovieListRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)

	m := resp.Results[0]
	assert.Equal(t, "/media/test_poster", m.Poster)
	assert.Equal(t, "/media/test_bg_picture", m.BgPicture)
	assert.Equal(t, []response.GenreResponse{{ID: f.genre.ID, Title: "test_genre"}}, m.Genres)
	assert.Equal(t, []response.PersonResponse{{ID: f.director.ID, FirstName: "director's_name", LastName: "director's_last_name"}}, m.Directors)
	assert.Equal(t, f.writer.ID, m.Writers[0].ID)
	assert.Equal(t, f.actor.ID, m.Stars[0].ID)
}

func TestGetMovies_StoreFailure(t *testing.T) {
	f := newCatalogFixture(t, 2)
	boom := errors.New("connection refused")
	f.store.Err = boom

	_, err := f.list(t, request.MovieListRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrGenreInvalid)
	assert.NotErrorIs(t, err, ErrPageOutOfBounds)
}

func TestGetMovieByID(t *testing.T) {
	f := newCatalogFixture(t, 2)
	m := f.store.AddMovie(sampleMovie("detail"))
	other := f.store.AddPerson("Not", "ADirector", entity.PersonRoleActor)
	// associations are trusted, the person's role tag is not re-checked
	f.store.AttachPerson(entity.RelationDirectors, m.ID, other.ID)

	resp, err := f.service.GetMovieByID(context.Background(), fmt.Sprint(m.ID))
	require.NoError(t, err)

	assert.Equal(t, "detail", resp.Title)
	assert.Equal(t, []response.PersonResponse{{ID: other.ID, FirstName: "Not", LastName: "ADirector"}}, resp.Directors)
	assert.Empty(t, resp.Genres)
}

func TestGetMovieByID_NotFound(t *testing.T) {
	f := newCatalogFixture(t, 1)

	for _, id := range []string{"7777", "abc", "99999999999999999999"} {
		_, err := f.service.GetMovieByID(context.Background(), id)
		assert.ErrorIs(t, err, ErrMovieNotFound, id)
	}
}

func TestGetMovieByID_Removed(t *testing.T) {
	f := newCatalogFixture(t, 1)
	m := f.store.AddMovie(sampleMovie("gone"))

	_, err := f.service.GetMovieByID(context.Background(), fmt.Sprint(m.ID))
	require.NoError(t, err)

	f.store.RemoveMovie(m.ID)

	_, err = f.service.GetMovieByID(context.Background(), fmt.Sprint(m.ID))
	assert.ErrorIs(t, err, ErrMovieNotFound)
}
