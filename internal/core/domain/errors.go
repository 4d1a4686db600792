package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrTitleRequired = errors.New("title is required")
	ErrNameRequired  = errors.New("name is required")

	ErrMovieNotFound = &NotFoundError{Entity: "movie"}
	ErrGenreNotFound = &NotFoundError{Entity: "genre"}
)

// NotFoundError reports a missing document of one collection. It matches
// ErrNotFound under errors.Is.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
