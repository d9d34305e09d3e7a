package adaptor

import (
	"net/http"

	"cinema-catalog/internal/usecase"
	"cinema-catalog/pkg/utils"

	"go.uber.org/zap"
)

type GenreHandler struct {
	service usecase.GenreService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

// GetGenres handles GET /genres/
func (h *GenreHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.GetGenres(r.Context())
	if err != nil {
		h.log.Error("Failed to get genres", zap.Error(err))
		utils.ResponseInternalError(w)
		return
	}

	utils.ResponseSuccess(w, genres)
}
