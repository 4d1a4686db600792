package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atvirokodosprendimai/movieslib/internal/adapters/sqlite/gormsqlite"
	"github.com/atvirokodosprendimai/movieslib/internal/core/domain"
	"github.com/atvirokodosprendimai/movieslib/migrations"
)

func openTestDB(t *testing.T) *gormsqlite.DB {
	t.Helper()

	db, err := gormsqlite.Open(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	writer, err := db.WriteSQLDB()
	require.NoError(t, err)
	require.NoError(t, migrations.Up(context.Background(), writer))
	return db
}

func TestMovieRepositoryListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMovieRepository(openTestDB(t))

	for _, title := range []string{"Heat", "Alien", "Ronin"} {
		_, err := repo.Insert(ctx, domain.NewMovie(title))
		require.NoError(t, err)
	}

	movies, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 3)
	assert.Equal(t, "Heat", movies[0].Title)
	assert.Equal(t, "Alien", movies[1].Title)
	assert.Equal(t, "Ronin", movies[2].Title)
	assert.Equal(t, domain.PlaceholderGenre, movies[0].Genre)
	assert.True(t, domain.ValidID(movies[0].ID))
}

func TestMovieRepositoryEmptyListIsNotNil(t *testing.T) {
	repo := NewMovieRepository(openTestDB(t))

	movies, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
}

func TestMovieRepositoryListByGenre(t *testing.T) {
	ctx := context.Background()
	repo := NewMovieRepository(openTestDB(t))

	_, err := repo.Insert(ctx, domain.Movie{Title: "Unforgiven", Genre: []string{"Western", "Drama"}})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, domain.Movie{Title: "Heat", Genre: []string{"Crime"}})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, domain.Movie{Title: "No genre"})
	require.NoError(t, err)

	drama, err := repo.ListByGenre(ctx, "Drama")
	require.NoError(t, err)
	require.Len(t, drama, 1)
	assert.Equal(t, "Unforgiven", drama[0].Title)

	none, err := repo.ListByGenre(ctx, "Western Drama")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMovieRepositoryUpdateFirstMatchOnly(t *testing.T) {
	ctx := context.Background()
	repo := NewMovieRepository(openTestDB(t))

	first, err := repo.Insert(ctx, domain.Movie{Title: "Alien", Genre: []string{"Horror"}, ReleaseDate: "1979-05-25"})
	require.NoError(t, err)
	second, err := repo.Insert(ctx, domain.Movie{Title: "Alien", Genre: []string{"Action"}})
	require.NoError(t, err)

	found, err := repo.FindByTitle(ctx, "Alien")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	require.NoError(t, repo.UpdateByTitle(ctx, "Alien", found.Edited("Alien")))

	movies, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, domain.Movie{ID: first.ID, Title: "Alien1", Genre: []string{"Horror"}, ReleaseDate: "1979-05-25"}, movies[0])
	assert.Equal(t, second.ID, movies[1].ID)
	assert.Equal(t, "Alien", movies[1].Title)

	require.NoError(t, repo.UpdateByTitle(ctx, "Missing", domain.Movie{Title: "x"}))
}

func TestMovieRepositoryFindMissing(t *testing.T) {
	repo := NewMovieRepository(openTestDB(t))

	_, err := repo.FindByTitle(context.Background(), "Nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCollectionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	movies := NewMovieRepository(db)
	genres := NewGenreRepository(db)

	m, err := movies.Insert(ctx, domain.NewMovie("Heat"))
	require.NoError(t, err)
	_, err = genres.Insert(ctx, domain.Genre{Name: "Action"})
	require.NoError(t, err)

	deleted, err := genres.DeleteByID(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "a movie id must not delete from genres")

	all, err := genres.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Action", all[0].Name)
}

func TestGenreRepositoryScenario(t *testing.T) {
	ctx := context.Background()
	repo := NewGenreRepository(openTestDB(t))

	g, err := repo.Insert(ctx, domain.Genre{Name: "Action"})
	require.NoError(t, err)

	deleted, err := repo.DeleteByID(ctx, "000000000000000000000000")
	require.NoError(t, err)
	assert.False(t, deleted)

	require.NoError(t, repo.UpdateByName(ctx, "Action", domain.Genre{Name: "Action 12"}))
	renamed, err := repo.FindByName(ctx, "Action 12")
	require.NoError(t, err)
	assert.Equal(t, g.ID, renamed.ID)

	deleted, err = repo.DeleteByID(ctx, g.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	genres, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, genres)
}
