package dynamostore

import (
	"context"
	"errors"

	"github.com/atvirokodosprendimai/movieslib/internal/core/domain"
)

type genreItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
}

func (g genreItem) key() string { return g.ID }

type GenreRepository struct {
	t table
}

func NewGenreRepository(client Client, tableName string) *GenreRepository {
	return &GenreRepository{t: table{client: client, name: tableName}}
}

func (r *GenreRepository) List(ctx context.Context) ([]domain.Genre, error) {
	return r.find(ctx, nil)
}

func (r *GenreRepository) Insert(ctx context.Context, genre domain.Genre) (domain.Genre, error) {
	genre.ID = domain.NewID()
	if err := r.t.put(ctx, genreItem(genre)); err != nil {
		return domain.Genre{}, err
	}
	return genre, nil
}

func (r *GenreRepository) FindByName(ctx context.Context, name string) (domain.Genre, error) {
	genres, err := r.find(ctx, &filter{expr: "#a = :v", attr: "name", value: name})
	if err != nil {
		return domain.Genre{}, err
	}
	if len(genres) == 0 {
		return domain.Genre{}, domain.ErrNotFound
	}
	return genres[0], nil
}

func (r *GenreRepository) UpdateByName(ctx context.Context, name string, genre domain.Genre) error {
	current, err := r.FindByName(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return r.t.set(ctx, current.ID, map[string]any{"name": genre.Name})
}

func (r *GenreRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	return r.t.delete(ctx, id)
}

func (r *GenreRepository) find(ctx context.Context, f *filter) ([]domain.Genre, error) {
	items, err := scan[genreItem](ctx, r.t, f)
	if err != nil {
		return nil, err
	}
	genres := make([]domain.Genre, 0, len(items))
	for _, it := range items {
		genres = append(genres, domain.Genre(it))
	}
	return genres, nil
}
