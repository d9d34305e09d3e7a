package wire

import (
	"cinema-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireGenre(r chi.Router, genreHandler *adaptor.GenreHandler) {
	// GET /genres/ - all genres ordered by title
	r.Get("/genres/", genreHandler.GetGenres)
}
