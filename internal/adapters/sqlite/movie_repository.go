package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/atvirokodosprendimai/movieslib/internal/adapters/sqlite/gormsqlite"
	"github.com/atvirokodosprendimai/movieslib/internal/core/domain"
)

type movieData struct {
	Title       string   `json:"title"`
	Genre       []string `json:"genre"`
	ReleaseDate string   `json:"releaseDate"`
	Description string   `json:"description"`
}

type MovieRepository struct {
	docs collection
}

func NewMovieRepository(db *gormsqlite.DB) *MovieRepository {
	return &MovieRepository{docs: collection{db: db, name: domain.MoviesCollection}}
}

func (r *MovieRepository) List(ctx context.Context) ([]domain.Movie, error) {
	models, err := r.docs.list(ctx, "")
	if err != nil {
		return nil, err
	}
	return toMovies(models)
}

func (r *MovieRepository) ListByGenre(ctx context.Context, genre string) ([]domain.Movie, error) {
	models, err := r.docs.list(ctx,
		"EXISTS (SELECT 1 FROM json_each(documents.data, '$.genre') AS g WHERE g.value = ?)", genre)
	if err != nil {
		return nil, err
	}
	return toMovies(models)
}

func (r *MovieRepository) Insert(ctx context.Context, movie domain.Movie) (domain.Movie, error) {
	id, err := r.docs.insert(ctx, toMovieData(movie))
	if err != nil {
		return domain.Movie{}, err
	}
	movie.ID = id
	return movie, nil
}

func (r *MovieRepository) FindByTitle(ctx context.Context, title string) (domain.Movie, error) {
	model, err := r.docs.findByField(ctx, "title", title)
	if err != nil {
		return domain.Movie{}, err
	}
	return toMovie(model)
}

func (r *MovieRepository) UpdateByTitle(ctx context.Context, title string, movie domain.Movie) error {
	return r.docs.updateFirstByField(ctx, "title", title, toMovieData(movie))
}

func (r *MovieRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	return r.docs.deleteByID(ctx, id)
}

func toMovieData(m domain.Movie) movieData {
	return movieData{
		Title:       m.Title,
		Genre:       m.Genre,
		ReleaseDate: m.ReleaseDate,
		Description: m.Description,
	}
}

func toMovie(model documentModel) (domain.Movie, error) {
	var data movieData
	if err := json.Unmarshal([]byte(model.Data), &data); err != nil {
		return domain.Movie{}, fmt.Errorf("decode movie %s: %w", model.DocID, err)
	}
	return domain.Movie{
		ID:          model.DocID,
		Title:       data.Title,
		Genre:       data.Genre,
		ReleaseDate: data.ReleaseDate,
		Description: data.Description,
	}, nil
}

func toMovies(models []documentModel) ([]domain.Movie, error) {
	movies := make([]domain.Movie, 0, len(models))
	for _, model := range models {
		m, err := toMovie(model)
		if err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, nil
}
