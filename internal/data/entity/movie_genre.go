package entity

type MovieGenre struct {
	BaseSimple
	MovieID int64 `db:"movie_id"`
	GenreID int64 `db:"genre_id"`
}

// PersonRelation names one of the movie-to-person association tables.
type PersonRelation string

const (
	RelationDirectors PersonRelation = "directors"
	RelationWriters   PersonRelation = "writers"
	RelationStars     PersonRelation = "stars"
)

func (r PersonRelation) Table() string {
	switch r {
	case RelationDirectors:
		return "movie_directors"
	case RelationWriters:
		return "movie_writers"
	case RelationStars:
		return "movie_stars"
	}
	return ""
}

type MoviePerson struct {
	BaseSimple
	MovieID  int64 `db:"movie_id"`
	PersonID int64 `db:"person_id"`
}
