package usecase

import "errors"

// Error codes are part of the HTTP contract and double as error messages.
const (
	CodeGenreInvalid    = "genre__invalid"
	CodePageOutOfBounds = "page__out_of_bounds"
	CodeMovieNotFound   = "movie__not_found"
)

var (
	// ErrGenreInvalid covers both an unknown genre and a genre with no
	// movies; the two are deliberately not distinguished.
	ErrGenreInvalid    = errors.New(CodeGenreInvalid)
	ErrPageOutOfBounds = errors.New(CodePageOutOfBounds)
	ErrMovieNotFound   = errors.New(CodeMovieNotFound)
)
