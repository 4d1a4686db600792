package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/atvirokodosprendimai/movieslib/internal/core/domain"
	"github.com/atvirokodosprendimai/movieslib/internal/core/ports"
)

type GenreService struct {
	repo   ports.GenreRepository
	suffix func() int
}

type GenreServiceOption func(*GenreService)

// WithSuffixSource replaces the random rename suffix generator. next must
// return values in [0, domain.MaxGenreSuffix).
func WithSuffixSource(next func() int) GenreServiceOption {
	return func(s *GenreService) {
		s.suffix = next
	}
}

func NewGenreService(repo ports.GenreRepository, opts ...GenreServiceOption) *GenreService {
	s := &GenreService{
		repo:   repo,
		suffix: func() int { return rand.IntN(domain.MaxGenreSuffix) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *GenreService) List(ctx context.Context) ([]domain.Genre, error) {
	genres, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return genres, nil
}

func (s *GenreService) Create(ctx context.Context, name string) ([]domain.Genre, error) {
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if _, err := s.repo.Insert(ctx, domain.Genre{Name: name}); err != nil {
		return nil, fmt.Errorf("insert genre: %w", err)
	}
	return s.List(ctx)
}

// UpdateByName renames the first genre called name to name plus a random
// numeric suffix and returns the whole collection.
func (s *GenreService) UpdateByName(ctx context.Context, name string) ([]domain.Genre, error) {
	genre, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrGenreNotFound
		}
		return nil, fmt.Errorf("find genre: %w", err)
	}

	genre.Name = domain.RenamedGenre(name, s.suffix())
	if err := s.repo.UpdateByName(ctx, name, genre); err != nil {
		return nil, fmt.Errorf("update genre: %w", err)
	}
	return s.List(ctx)
}

func (s *GenreService) DeleteByID(ctx context.Context, id string) ([]domain.Genre, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrGenreNotFound
	}
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete genre: %w", err)
	}
	if !deleted {
		return nil, domain.ErrGenreNotFound
	}
	return s.List(ctx)
}
