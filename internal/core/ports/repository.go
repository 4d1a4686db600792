package ports

import (
	"context"

	"github.com/atvirokodosprendimai/movieslib/internal/core/domain"
)

// MovieRepository is the movies collection of a document store. List methods
// return documents in the store's natural order.
type MovieRepository interface {
	List(ctx context.Context) ([]domain.Movie, error)
	ListByGenre(ctx context.Context, genre string) ([]domain.Movie, error)
	Insert(ctx context.Context, movie domain.Movie) (domain.Movie, error)
	// FindByTitle returns the first movie with title or domain.ErrNotFound.
	FindByTitle(ctx context.Context, title string) (domain.Movie, error)
	// UpdateByTitle overwrites the fields of the first movie with title. Having
	// no match is not an error.
	UpdateByTitle(ctx context.Context, title string, movie domain.Movie) error
	DeleteByID(ctx context.Context, id string) (bool, error)
}

type GenreRepository interface {
	List(ctx context.Context) ([]domain.Genre, error)
	Insert(ctx context.Context, genre domain.Genre) (domain.Genre, error)
	FindByName(ctx context.Context, name string) (domain.Genre, error)
	UpdateByName(ctx context.Context, name string, genre domain.Genre) error
	DeleteByID(ctx context.Context, id string) (bool, error)
}
