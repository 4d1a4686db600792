//go:build integration

package mongostore_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/atvirokodosprendimai/movieslib/internal/adapters/mongostore"
	"github.com/atvirokodosprendimai/movieslib/internal/core/domain"
	"github.com/atvirokodosprendimai/movieslib/internal/core/usecase"
)

func startMongo(t *testing.T, ctx context.Context) string {
	t.Helper()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	return fmt.Sprintf("mongodb://%s:%s", host, port.Port())
}

func TestIntegration_MovieAndGenreLifecycle(t *testing.T) {
	ctx := context.Background()

	provider, err := mongostore.Connect(ctx, startMongo(t, ctx), "movies-lib-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Close() })

	movies := usecase.NewMovieService(mongostore.NewMovieRepository(provider.Database()))
	genres := usecase.NewGenreService(mongostore.NewGenreRepository(provider.Database()),
		usecase.WithSuffixSource(func() int { return 5 }))

	list, err := movies.Create(ctx, "The Matrix")
	require.NoError(t, err)
	require.Len(t, list, 1)

	byGenre, err := movies.ListByGenre(ctx, "Science Fiction")
	require.NoError(t, err)
	require.Len(t, byGenre, 1)

	_, err = movies.ListByGenre(ctx, "Western")
	require.ErrorIs(t, err, domain.ErrGenreNotFound)

	list, err = movies.UpdateByTitle(ctx, "The Matrix")
	require.NoError(t, err)
	assert.Equal(t, "The Matrix1", list[0].Title)
	assert.Equal(t, domain.PlaceholderGenre, list[0].Genre)

	_, err = movies.DeleteByID(ctx, "000000000000000000000000")
	require.ErrorIs(t, err, domain.ErrMovieNotFound)

	list, err = movies.DeleteByID(ctx, list[0].ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	glist, err := genres.Create(ctx, "Action")
	require.NoError(t, err)
	require.Len(t, glist, 1)

	glist, err = genres.UpdateByName(ctx, "Action")
	require.NoError(t, err)
	assert.Equal(t, "Action 5", glist[0].Name)

	glist, err = genres.DeleteByID(ctx, glist[0].ID)
	require.NoError(t, err)
	assert.Empty(t, glist)
}
