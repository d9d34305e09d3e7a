package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieQuery_BaseSet(t *testing.T) {
	sql, args, err := NewMovieQuery().SelectSQL()
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM movies m ORDER BY m.id DESC")
	assert.NotContains(t, sql, "WHERE")
	assert.NotContains(t, sql, "LIMIT")
	assert.Empty(t, args)
}

func TestMovieQuery_GenreAndTitle(t *testing.T) {
	q := NewMovieQuery().WithGenre(7).WithTitlePrefix("movie_1")

	sql, args, err := q.SelectSQL()
	require.NoError(t, err)

	assert.Contains(t, sql, "mg.genre_id = $1")
	assert.Contains(t, sql, "UPPER(m.title) LIKE UPPER($2)")
	assert.Contains(t, sql, " AND ")
	assert.Equal(t, []any{int64(7), `movie\_1%`}, args)
}

func TestMovieQuery_Slice(t *testing.T) {
	q := NewMovieQuery().WithGenre(3).Slice(5, 10)

	sql, args, err := q.SelectSQL()
	require.NoError(t, err)

	assert.Contains(t, sql, "ORDER BY m.id DESC LIMIT $2 OFFSET $3")
	assert.Equal(t, []any{int64(3), 5, 10}, args)
}

func TestMovieQuery_FirstPageHasNoOffset(t *testing.T) {
	sql, args, err := NewMovieQuery().Slice(5, 0).SelectSQL()
	require.NoError(t, err)

	assert.Contains(t, sql, "LIMIT $1")
	assert.NotContains(t, sql, "OFFSET")
	assert.Equal(t, []any{5}, args)
}

func TestMovieQuery_CountIgnoresOrderAndSlice(t *testing.T) {
	sql, args := NewMovieQuery().WithTitlePrefix("ab").Slice(5, 5).CountSQL()

	assert.Equal(t, `SELECT COUNT(*) FROM movies m WHERE UPPER(m.title) LIKE UPPER($1) ESCAPE '\'`, sql)
	assert.Equal(t, []any{"ab%"}, args)
}

func TestMovieQuery_IsImmutable(t *testing.T) {
	base := NewMovieQuery()
	_ = base.WithGenre(1).WithTitlePrefix("x").Slice(5, 5)

	_, ok := base.GenreID()
	assert.False(t, ok)
	_, ok = base.TitlePrefix()
	assert.False(t, ok)
	assert.Zero(t, base.Limit())
}

func TestMovieQuery_OrderBy(t *testing.T) {
	q := NewMovieQuery().OrderBy(
		Order{Field: "release_year", Direction: SortDesc},
		Order{Field: "title"},
	)

	sql, _, err := q.SelectSQL()
	require.NoError(t, err)
	assert.Contains(t, sql, "ORDER BY m.release_year DESC, m.title ASC")

	_, _, err = NewMovieQuery().OrderBy(Order{Field: "title; DROP TABLE movies"}).SelectSQL()
	assert.Error(t, err)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\d`, escapeLike(`c:\d`))
}
