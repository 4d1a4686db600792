package mongostore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/atvirokodosprendimai/movieslib/internal/core/domain"
)

func movieDoc(id primitive.ObjectID, title string, genre ...string) bson.D {
	g := bson.A{}
	for _, v := range genre {
		g = append(g, v)
	}
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "title", Value: title},
		{Key: "genre", Value: g},
		{Key: "releaseDate", Value: "1999-03-31"},
		{Key: "description", Value: "A classic sci-fi movie."},
	}
}

func TestMovieRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("list decodes documents in order", func(mt *mtest.T) {
		a, b := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.movies", mtest.FirstBatch,
			movieDoc(a, "Heat", "Crime"),
			movieDoc(b, "Alien", "Horror"),
		))

		movies, err := NewMovieRepository(mt.DB).List(ctx)
		require.NoError(mt, err)
		require.Len(mt, movies, 2)
		assert.Equal(mt, a.Hex(), movies[0].ID)
		assert.Equal(mt, "Heat", movies[0].Title)
		assert.Equal(mt, []string{"Crime"}, movies[0].Genre)
		assert.Equal(mt, "Alien", movies[1].Title)
	})

	mt.Run("empty list is not nil", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.movies", mtest.FirstBatch))

		movies, err := NewMovieRepository(mt.DB).ListByGenre(ctx, "Western")
		require.NoError(mt, err)
		assert.NotNil(mt, movies)
		assert.Empty(mt, movies)
	})

	mt.Run("insert assigns object id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		movie, err := NewMovieRepository(mt.DB).Insert(ctx, domain.NewMovie("Heat"))
		require.NoError(mt, err)
		assert.True(mt, domain.ValidID(movie.ID))
		assert.Equal(mt, "Heat", movie.Title)
	})

	mt.Run("insert failure is wrapped", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "boom", Name: "BadValue"}))

		_, err := NewMovieRepository(mt.DB).Insert(ctx, domain.NewMovie("Heat"))
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "insert movie")
	})

	mt.Run("find by title", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.movies", mtest.FirstBatch, movieDoc(id, "Alien", "Horror")))

		movie, err := NewMovieRepository(mt.DB).FindByTitle(ctx, "Alien")
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), movie.ID)
	})

	mt.Run("find by title missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.movies", mtest.FirstBatch))

		_, err := NewMovieRepository(mt.DB).FindByTitle(ctx, "Nope")
		require.ErrorIs(mt, err, domain.ErrNotFound)
	})

	mt.Run("update by title", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		edited := domain.NewMovie("Alien").Edited("Alien")
		err := NewMovieRepository(mt.DB).UpdateByTitle(ctx, "Alien", edited)
		require.NoError(mt, err)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "update", started.CommandName)

		filter := started.Command.Lookup("updates", "0", "q", "title")
		assert.Equal(mt, "Alien", filter.StringValue())

		var set movieDocument
		require.NoError(mt, started.Command.Lookup("updates", "0", "u", "$set").Unmarshal(&set))
		assert.Equal(mt, "Alien1", set.Title)
		assert.Equal(mt, domain.PlaceholderGenre, set.Genre)
		assert.Equal(mt, domain.PlaceholderReleaseDate, set.ReleaseDate)
		assert.Equal(mt, domain.PlaceholderDescription, set.Description)
		assert.True(mt, set.ID.IsZero())
	})

	mt.Run("delete reports matches", func(mt *mtest.T) {
		repo := NewMovieRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		deleted, err := repo.DeleteByID(ctx, primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.True(mt, deleted)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		deleted, err = repo.DeleteByID(ctx, "000000000000000000000000")
		require.NoError(mt, err)
		assert.False(mt, deleted)
	})

	mt.Run("delete with malformed id matches nothing", func(mt *mtest.T) {
		deleted, err := NewMovieRepository(mt.DB).DeleteByID(ctx, "xyz")
		require.NoError(mt, err)
		assert.False(mt, deleted)
	})
}

func TestGenreRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("list", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.genres", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "name", Value: "Action"}},
		))

		genres, err := NewGenreRepository(mt.DB).List(ctx)
		require.NoError(mt, err)
		assert.Equal(mt, []domain.Genre{{ID: id.Hex(), Name: "Action"}}, genres)
	})

	mt.Run("find by name missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.genres", mtest.FirstBatch))

		_, err := NewGenreRepository(mt.DB).FindByName(ctx, "Noir")
		require.ErrorIs(mt, err, domain.ErrNotFound)
	})

	mt.Run("insert and rename", func(mt *mtest.T) {
		repo := NewGenreRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse())
		g, err := repo.Insert(ctx, domain.Genre{Name: "Action"})
		require.NoError(mt, err)
		assert.True(mt, domain.ValidID(g.ID))

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))
		require.NoError(mt, repo.UpdateByName(ctx, "Action", domain.Genre{Name: "Action 3"}))

		mt.ClearEvents()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))
		require.NoError(mt, repo.UpdateByName(ctx, "Action 3", domain.Genre{Name: "Action 7"}))
		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "Action 3", started.Command.Lookup("updates", "0", "q", "name").StringValue())
		assert.Equal(mt, "Action 7", started.Command.Lookup("updates", "0", "u", "$set", "name").StringValue())
	})
}
