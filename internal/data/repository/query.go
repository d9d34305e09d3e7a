package repository

import (
	"fmt"
	"strings"
)

// SortDirection for MovieQuery ordering.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// Order is one ORDER BY term. Field must be one of the movie columns
// accepted by movieSortColumns.
type Order struct {
	Field     string
	Direction SortDirection
}

var movieSortColumns = map[string]string{
	"id":           "m.id",
	"title":        "m.title",
	"release_year": "m.release_year",
	"imdb_rating":  "m.imdb_rating",
	"created_at":   "m.created_at",
}

// MovieQuery is an immutable filter plan over the movies table. Each With*
// method returns a narrowed copy, so a base query can be shared between a
// count and a paged fetch.
type MovieQuery struct {
	genreID     *int64
	titlePrefix *string
	orders      []Order
	limit       int
	offset      int
}

// NewMovieQuery returns the base set: every movie, newest id first.
func NewMovieQuery() MovieQuery {
	return MovieQuery{
		orders: []Order{{Field: "id", Direction: SortDesc}},
	}
}

// WithGenre keeps movies associated with the given genre.
func (q MovieQuery) WithGenre(genreID int64) MovieQuery {
	q.genreID = &genreID
	return q
}

// WithTitlePrefix keeps movies whose title starts with prefix, ignoring case.
func (q MovieQuery) WithTitlePrefix(prefix string) MovieQuery {
	q.titlePrefix = &prefix
	return q
}

// OrderBy replaces the ordering.
func (q MovieQuery) OrderBy(orders ...Order) MovieQuery {
	q.orders = append([]Order(nil), orders...)
	return q
}

// Slice restricts the result to limit rows after skipping offset rows.
// A limit of zero means unbounded.
func (q MovieQuery) Slice(limit, offset int) MovieQuery {
	q.limit = limit
	q.offset = offset
	return q
}

func (q MovieQuery) GenreID() (int64, bool) {
	if q.genreID == nil {
		return 0, false
	}
	return *q.genreID, true
}

func (q MovieQuery) TitlePrefix() (string, bool) {
	if q.titlePrefix == nil {
		return "", false
	}
	return *q.titlePrefix, true
}

func (q MovieQuery) Orders() []Order { return q.orders }

func (q MovieQuery) Limit() int { return q.limit }

func (q MovieQuery) Offset() int { return q.offset }

// where renders the filter predicates starting at placeholder $argStart.
func (q MovieQuery) where(argStart int) (string, []any) {
	var (
		conds []string
		args  []any
	)
	n := argStart

	if q.genreID != nil {
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM movie_genres mg WHERE mg.movie_id = m.id AND mg.genre_id = $%d)", n))
		args = append(args, *q.genreID)
		n++
	}

	if q.titlePrefix != nil {
		conds = append(conds, fmt.Sprintf(`UPPER(m.title) LIKE UPPER($%d) ESCAPE '\'`, n))
		args = append(args, escapeLike(*q.titlePrefix)+"%")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (q MovieQuery) orderBy() (string, error) {
	if len(q.orders) == 0 {
		return "", nil
	}

	terms := make([]string, 0, len(q.orders))
	for _, o := range q.orders {
		col, ok := movieSortColumns[o.Field]
		if !ok {
			return "", fmt.Errorf("unsupported sort field %q", o.Field)
		}
		dir := o.Direction
		if dir != SortAsc && dir != SortDesc {
			dir = SortAsc
		}
		terms = append(terms, col+" "+string(dir))
	}
	return " ORDER BY " + strings.Join(terms, ", "), nil
}

// SelectSQL renders the full SELECT for the plan.
func (q MovieQuery) SelectSQL() (string, []any, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT m.id, m.title, m.description, m.poster, m.bg_picture, m.release_year,
       m.mpa_rating, m.imdb_rating, m.duration, m.created_at, m.updated_at
FROM movies m`)

	where, args := q.where(1)
	sb.WriteString(where)

	order, err := q.orderBy()
	if err != nil {
		return "", nil, err
	}
	sb.WriteString(order)

	n := len(args) + 1
	if q.limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", n))
		args = append(args, q.limit)
		n++
	}
	if q.offset > 0 {
		sb.WriteString(fmt.Sprintf(" OFFSET $%d", n))
		args = append(args, q.offset)
	}

	return sb.String(), args, nil
}

// CountSQL renders a COUNT over the filters, ignoring ordering and slicing.
func (q MovieQuery) CountSQL() (string, []any) {
	where, args := q.where(1)
	return "SELECT COUNT(*) FROM movies m" + where, args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
