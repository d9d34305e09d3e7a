package wire

import (
	"cinema-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET /movies/?genre=&src=&page= - filtered, optionally paged list
	r.Get("/movies/", movieHandler.GetMovies)

	// GET /movies/{id}/ - movie details; non-numeric ids fall through to 404
	r.Get("/movies/{id:[0-9]+}/", movieHandler.GetMovieByID)
}
