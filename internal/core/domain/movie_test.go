package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMovieUsesPlaceholders(t *testing.T) {
	m := NewMovie("Heat")

	assert.Equal(t, "Heat", m.Title)
	assert.Equal(t, []string{"Action", "Adventure", "Science Fiction"}, m.Genre)
	assert.Equal(t, "1999-03-31", m.ReleaseDate)
	assert.Equal(t, "A classic sci-fi movie.", m.Description)
	assert.Empty(t, m.ID)

	m.Genre[0] = "Drama"
	assert.Equal(t, "Action", PlaceholderGenre[0], "placeholder slice must not be shared")
}

func TestMovieEditedKeepsStoredFields(t *testing.T) {
	stored := Movie{ID: "abc", Title: "Alien", Genre: []string{"Horror"}, ReleaseDate: "1979-05-25", Description: "In space."}

	edited := stored.Edited("Alien")

	assert.Equal(t, Movie{ID: "abc", Title: "Alien1", Genre: []string{"Horror"}, ReleaseDate: "1979-05-25", Description: "In space."}, edited)
}

func TestMovieHasGenre(t *testing.T) {
	m := Movie{Genre: []string{"Action", "Drama"}}
	assert.True(t, m.HasGenre("Drama"))
	assert.False(t, m.HasGenre("drama"))
	assert.False(t, Movie{}.HasGenre("Drama"))
}

func TestRenamedGenre(t *testing.T) {
	assert.Equal(t, "Action 42", RenamedGenre("Action", 42))
	assert.Equal(t, "Action 0", RenamedGenre("Action", 0))
}

func TestNotFoundErrorsMatchErrNotFound(t *testing.T) {
	require.True(t, errors.Is(ErrMovieNotFound, ErrNotFound))
	require.True(t, errors.Is(ErrGenreNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrMovieNotFound, ErrGenreNotFound))
	assert.Equal(t, "movie not found", ErrMovieNotFound.Error())
}

func TestIDs(t *testing.T) {
	id := NewID()
	assert.Len(t, id, 24)
	assert.True(t, ValidID(id))
	assert.True(t, ValidID("000000000000000000000000"))
	assert.False(t, ValidID("not-an-id"))
	assert.False(t, ValidID(""))
}
