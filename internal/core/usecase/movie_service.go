package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/atvirokodosprendimai/movieslib/internal/core/domain"
	"github.com/atvirokodosprendimai/movieslib/internal/core/ports"
)

type MovieService struct {
	repo ports.MovieRepository
}

func NewMovieService(repo ports.MovieRepository) *MovieService {
	return &MovieService{repo: repo}
}

func (s *MovieService) List(ctx context.Context) ([]domain.Movie, error) {
	movies, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

// ListByGenre returns the movies tagged with genre. An empty result is
// reported as domain.ErrGenreNotFound.
func (s *MovieService) ListByGenre(ctx context.Context, genre string) ([]domain.Movie, error) {
	movies, err := s.repo.ListByGenre(ctx, genre)
	if err != nil {
		return nil, fmt.Errorf("list movies by genre: %w", err)
	}
	if len(movies) == 0 {
		return nil, domain.ErrGenreNotFound
	}
	return movies, nil
}

// Create inserts a placeholder movie named title and returns the whole
// collection.
func (s *MovieService) Create(ctx context.Context, title string) ([]domain.Movie, error) {
	if title == "" {
		return nil, domain.ErrTitleRequired
	}
	if _, err := s.repo.Insert(ctx, domain.NewMovie(title)); err != nil {
		return nil, fmt.Errorf("insert movie: %w", err)
	}
	return s.List(ctx)
}

// UpdateByTitle appends the edit marker to the title of the first movie named
// title and returns the whole collection.
func (s *MovieService) UpdateByTitle(ctx context.Context, title string) ([]domain.Movie, error) {
	movie, err := s.repo.FindByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}

	if err := s.repo.UpdateByTitle(ctx, title, movie.Edited(title)); err != nil {
		return nil, fmt.Errorf("update movie: %w", err)
	}
	return s.List(ctx)
}

// DeleteByID removes the movie with id and returns the remaining collection.
// An id that is not a store identifier cannot match and is reported as not
// found.
func (s *MovieService) DeleteByID(ctx context.Context, id string) ([]domain.Movie, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrMovieNotFound
	}
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete movie: %w", err)
	}
	if !deleted {
		return nil, domain.ErrMovieNotFound
	}
	return s.List(ctx)
}
