// Package memstore keeps both collections in process memory. It backs the
// "memory" store kind and the HTTP tests.
package memstore

import (
	"context"
	"slices"
	"sync"

	"github.com/atvirokodosprendimai/movieslib/internal/core/domain"
)

type Store struct {
	mu     sync.RWMutex
	movies []domain.Movie
	genres []domain.Genre
}

func New() *Store {
	return &Store{}
}

func (s *Store) Movies() *MovieRepository {
	return &MovieRepository{s: s}
}

func (s *Store) Genres() *GenreRepository {
	return &GenreRepository{s: s}
}

func (s *Store) Close() error {
	return nil
}

type MovieRepository struct {
	s *Store
}

func (r *MovieRepository) List(_ context.Context) ([]domain.Movie, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Movie, 0, len(r.s.movies))
	for _, m := range r.s.movies {
		out = append(out, cloneMovie(m))
	}
	return out, nil
}

func (r *MovieRepository) ListByGenre(_ context.Context, genre string) ([]domain.Movie, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Movie, 0)
	for _, m := range r.s.movies {
		if m.HasGenre(genre) {
			out = append(out, cloneMovie(m))
		}
	}
	return out, nil
}

func (r *MovieRepository) Insert(_ context.Context, movie domain.Movie) (domain.Movie, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	movie = cloneMovie(movie)
	movie.ID = domain.NewID()
	r.s.movies = append(r.s.movies, movie)
	return cloneMovie(movie), nil
}

func (r *MovieRepository) FindByTitle(_ context.Context, title string) (domain.Movie, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i := slices.IndexFunc(r.s.movies, func(m domain.Movie) bool { return m.Title == title })
	if i < 0 {
		return domain.Movie{}, domain.ErrNotFound
	}
	return cloneMovie(r.s.movies[i]), nil
}

func (r *MovieRepository) UpdateByTitle(_ context.Context, title string, movie domain.Movie) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := slices.IndexFunc(r.s.movies, func(m domain.Movie) bool { return m.Title == title })
	if i < 0 {
		return nil
	}
	movie = cloneMovie(movie)
	movie.ID = r.s.movies[i].ID
	r.s.movies[i] = movie
	return nil
}

func (r *MovieRepository) DeleteByID(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := slices.IndexFunc(r.s.movies, func(m domain.Movie) bool { return m.ID == id })
	if i < 0 {
		return false, nil
	}
	r.s.movies = slices.Delete(r.s.movies, i, i+1)
	return true, nil
}

type GenreRepository struct {
	s *Store
}

func (r *GenreRepository) List(_ context.Context) ([]domain.Genre, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Genre, len(r.s.genres))
	copy(out, r.s.genres)
	return out, nil
}

func (r *GenreRepository) Insert(_ context.Context, genre domain.Genre) (domain.Genre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	genre.ID = domain.NewID()
	r.s.genres = append(r.s.genres, genre)
	return genre, nil
}

func (r *GenreRepository) FindByName(_ context.Context, name string) (domain.Genre, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i := slices.IndexFunc(r.s.genres, func(g domain.Genre) bool { return g.Name == name })
	if i < 0 {
		return domain.Genre{}, domain.ErrNotFound
	}
	return r.s.genres[i], nil
}

func (r *GenreRepository) UpdateByName(_ context.Context, name string, genre domain.Genre) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := slices.IndexFunc(r.s.genres, func(g domain.Genre) bool { return g.Name == name })
	if i < 0 {
		return nil
	}
	r.s.genres[i].Name = genre.Name
	return nil
}

func (r *GenreRepository) DeleteByID(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := slices.IndexFunc(r.s.genres, func(g domain.Genre) bool { return g.ID == id })
	if i < 0 {
		return false, nil
	}
	r.s.genres = slices.Delete(r.s.genres, i, i+1)
	return true, nil
}

func cloneMovie(m domain.Movie) domain.Movie {
	m.Genre = slices.Clone(m.Genre)
	return m
}
