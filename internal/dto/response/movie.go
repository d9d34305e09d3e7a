package response

import (
	"cinema-catalog/internal/data/entity"
	"cinema-catalog/internal/media"
)

type MovieResponse struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	ReleaseYear int              `json:"release_year"`
	MpaRating   string           `json:"mpa_rating"`
	Duration    int              `json:"duration"`
	Poster      string           `json:"poster"`
	BgPicture   string           `json:"bg_picture"`
	Genres      []GenreResponse  `json:"genres"`
	Directors   []PersonResponse `json:"directors"`
	Writers     []PersonResponse `json:"writers"`
	Stars       []PersonResponse `json:"stars"`
}

// MovieAssociations are the related sets of one movie, each already in
// store order.
type MovieAssociations struct {
	Genres    []*entity.Genre
	Directors []*entity.Person
	Writers   []*entity.Person
	Stars     []*entity.Person
}

// MovieToResponse flattens a movie and its related sets. Associations are
// trusted as stored; a person's role tag is not consulted.
func MovieToResponse(movie *entity.Movie, assoc MovieAssociations, files media.Store) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		ReleaseYear: movie.ReleaseYear,
		MpaRating:   string(movie.MpaRating),
		Duration:    movie.Duration,
		Poster:      files.URL(movie.Poster),
		BgPicture:   files.URL(movie.BgPicture),
		Genres:      GenresToResponse(assoc.Genres),
		Directors:   PeopleToResponse(assoc.Directors),
		Writers:     PeopleToResponse(assoc.Writers),
		Stars:       PeopleToResponse(assoc.Stars),
	}
}
