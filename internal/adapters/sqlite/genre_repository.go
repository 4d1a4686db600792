package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/atvirokodosprendimai/movieslib/internal/adapters/sqlite/gormsqlite"
	"github.com/atvirokodosprendimai/movieslib/internal/core/domain"
)

type genreData struct {
	Name string `json:"name"`
}

type GenreRepository struct {
	docs collection
}

func NewGenreRepository(db *gormsqlite.DB) *GenreRepository {
	return &GenreRepository{docs: collection{db: db, name: domain.GenresCollection}}
}

func (r *GenreRepository) List(ctx context.Context) ([]domain.Genre, error) {
	models, err := r.docs.list(ctx, "")
	if err != nil {
		return nil, err
	}
	genres := make([]domain.Genre, 0, len(models))
	for _, model := range models {
		g, err := toGenre(model)
		if err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, nil
}

func (r *GenreRepository) Insert(ctx context.Context, genre domain.Genre) (domain.Genre, error) {
	id, err := r.docs.insert(ctx, genreData{Name: genre.Name})
	if err != nil {
		return domain.Genre{}, err
	}
	genre.ID = id
	return genre, nil
}

func (r *GenreRepository) FindByName(ctx context.Context, name string) (domain.Genre, error) {
	model, err := r.docs.findByField(ctx, "name", name)
	if err != nil {
		return domain.Genre{}, err
	}
	return toGenre(model)
}

func (r *GenreRepository) UpdateByName(ctx context.Context, name string, genre domain.Genre) error {
	return r.docs.updateFirstByField(ctx, "name", name, genreData{Name: genre.Name})
}

func (r *GenreRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	return r.docs.deleteByID(ctx, id)
}

func toGenre(model documentModel) (domain.Genre, error) {
	var data genreData
	if err := json.Unmarshal([]byte(model.Data), &data); err != nil {
		return domain.Genre{}, fmt.Errorf("decode genre %s: %w", model.DocID, err)
	}
	return domain.Genre{ID: model.DocID, Name: data.Name}, nil
}
