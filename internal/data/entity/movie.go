package entity

type MpaRating string

const (
	MpaRatingG    MpaRating = "G"
	MpaRatingPG   MpaRating = "PG"
	MpaRatingPG13 MpaRating = "PG-13"
	MpaRatingR    MpaRating = "R"
	MpaRatingNC17 MpaRating = "NC-17"
)

type Movie struct {
	Base
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Poster      string    `db:"poster"`     // media reference, e.g. "poster/alien.jpg"
	BgPicture   string    `db:"bg_picture"` // media reference
	ReleaseYear int       `db:"release_year"`
	MpaRating   MpaRating `db:"mpa_rating"`
	ImdbRating  float64   `db:"imdb_rating"` // 1..10, enforced by the schema
	Duration    int       `db:"duration"`    // minutes
}
