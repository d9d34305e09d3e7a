package response

import "cinema-catalog/internal/data/entity"

type GenreResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		ID:    genre.ID,
		Title: genre.Title,
	}
}

func GenresToResponse(genres []*entity.Genre) []GenreResponse {
	out := make([]GenreResponse, len(genres))
	for i, g := range genres {
		out[i] = GenreToResponse(g)
	}
	return out
}
