package request

import (
	"net/url"
	"strconv"

	"cinema-catalog/pkg/utils"
)

// Title prefixes outside this length range are ignored rather than rejected.
const titlePrefixRule = "min=2,max=20"

// MovieListRequest holds the raw GET /movies/ query parameters. An empty
// value is treated the same as an absent one.
type MovieListRequest struct {
	Genre string `json:"genre"`
	Src   string `json:"src"`
	Page  string `json:"page"`
}

type pageParam struct {
	Page *int `validate:"omitnil,min=1"`
}

func NewMovieListRequest(query url.Values) *MovieListRequest {
	return &MovieListRequest{
		Genre: query.Get("genre"),
		Src:   query.Get("src"),
		Page:  query.Get("page"),
	}
}

func (r *MovieListRequest) HasGenre() bool {
	return r.Genre != ""
}

func (r *MovieListRequest) GenreID() (int64, error) {
	return utils.ParseID(r.Genre)
}

// TitlePrefix reports the title filter to apply, if any.
func (r *MovieListRequest) TitlePrefix() (string, bool) {
	if r.Src == "" || !utils.ValidateVar(r.Src, titlePrefixRule) {
		return "", false
	}
	return r.Src, true
}

// PageNumber returns the requested 1-based page. ok is false when no page
// was requested; valid is false when the value is not a positive integer.
func (r *MovieListRequest) PageNumber() (page int, ok, valid bool) {
	if r.Page == "" {
		return 0, false, true
	}

	p, err := strconv.Atoi(r.Page)
	if err != nil {
		return 0, true, false
	}

	if errs := utils.ValidateStruct(pageParam{Page: &p}); len(errs) > 0 {
		return 0, true, false
	}
	return p, true, true
}
