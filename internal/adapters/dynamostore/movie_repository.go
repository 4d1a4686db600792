package dynamostore

import (
	"context"
	"errors"

	"github.com/atvirokodosprendimai/movieslib/internal/core/domain"
)

type movieItem struct {
	ID          string   `dynamodbav:"id"`
	Title       string   `dynamodbav:"title"`
	Genre       []string `dynamodbav:"genre"`
	ReleaseDate string   `dynamodbav:"releaseDate"`
	Description string   `dynamodbav:"description"`
}

func (m movieItem) key() string { return m.ID }

type MovieRepository struct {
	t table
}

func NewMovieRepository(client Client, tableName string) *MovieRepository {
	return &MovieRepository{t: table{client: client, name: tableName}}
}

func (r *MovieRepository) List(ctx context.Context) ([]domain.Movie, error) {
	return r.find(ctx, nil)
}

func (r *MovieRepository) ListByGenre(ctx context.Context, genre string) ([]domain.Movie, error) {
	return r.find(ctx, &filter{expr: "contains(#a, :v)", attr: "genre", value: genre})
}

func (r *MovieRepository) Insert(ctx context.Context, movie domain.Movie) (domain.Movie, error) {
	movie.ID = domain.NewID()
	if err := r.t.put(ctx, movieItem(movie)); err != nil {
		return domain.Movie{}, err
	}
	return movie, nil
}

func (r *MovieRepository) FindByTitle(ctx context.Context, title string) (domain.Movie, error) {
	movies, err := r.find(ctx, &filter{expr: "#a = :v", attr: "title", value: title})
	if err != nil {
		return domain.Movie{}, err
	}
	if len(movies) == 0 {
		return domain.Movie{}, domain.ErrNotFound
	}
	return movies[0], nil
}

func (r *MovieRepository) UpdateByTitle(ctx context.Context, title string, movie domain.Movie) error {
	current, err := r.FindByTitle(ctx, title)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return r.t.set(ctx, current.ID, map[string]any{
		"title":       movie.Title,
		"genre":       movie.Genre,
		"releaseDate": movie.ReleaseDate,
		"description": movie.Description,
	})
}

func (r *MovieRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	return r.t.delete(ctx, id)
}

func (r *MovieRepository) find(ctx context.Context, f *filter) ([]domain.Movie, error) {
	items, err := scan[movieItem](ctx, r.t, f)
	if err != nil {
		return nil, err
	}
	movies := make([]domain.Movie, 0, len(items))
	for _, it := range items {
		movies = append(movies, domain.Movie(it))
	}
	return movies, nil
}
