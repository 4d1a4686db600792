package httpapi

import "net/http"

// listMovies godoc
// @Summary Get a list of all movies
// @Description Retrieve a list of all movies from the database.
// @Tags Movies
// @Produce json
// @Success 200 {array} domain.Movie "List of movies retrieved successfully."
// @Failure 500 {object} ErrorResponse "Internal server error."
// @Router /movies [get]
func (h *Handler) listMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.movies.List(r.Context())
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, movies)
}

// listMoviesByGenre godoc
// @Summary Get a list of movies by genre
// @Description Retrieve a list of movies by a specific genre from the database.
// @Tags Movies
// @Produce json
// @Param name path string true "The name of the genre to filter movies by."
// @Success 200 {array} domain.Movie "List of movies retrieved successfully."
// @Failure 404 {object} ErrorResponse "Genre not found."
// @Failure 500 {object} ErrorResponse "Internal server error."
// @Router /movies/genres/{name} [get]
func (h *Handler) listMoviesByGenre(w http.ResponseWriter, r *http.Request) {
	name, ok := pathParam(w, r, "name")
	if !ok {
		return
	}
	movies, err := h.movies.ListByGenre(r.Context(), name)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, movies)
}

// createMovie godoc
// @Summary Add a new movie
// @Description Add a new movie to the database.
// @Tags Movies
// @Produce json
// @Param title path string true "The title of the movie."
// @Success 201 {array} domain.Movie "Movie added successfully."
// @Failure 400 {object} ErrorResponse "Bad request - Invalid data provided."
// @Failure 500 {object} ErrorResponse "Internal server error."
// @Router /movies/{title} [post]
func (h *Handler) createMovie(w http.ResponseWriter, r *http.Request) {
	title, ok := pathParam(w, r, "title")
	if !ok {
		return
	}
	movies, err := h.movies.Create(r.Context(), title)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, movies)
}

// updateMovie godoc
// @Summary Update a movie by title
// @Description Update a movie in the database by its title.
// @Tags Movies
// @Produce json
// @Param title path string true "The title of the movie to update."
// @Success 200 {array} domain.Movie "Movie updated successfully."
// @Failure 404 {object} ErrorResponse "Movie not found."
// @Failure 500 {object} ErrorResponse "Internal server error."
// @Router /movies/{title} [put]
func (h *Handler) updateMovie(w http.ResponseWriter, r *http.Request) {
	title, ok := pathParam(w, r, "title")
	if !ok {
		return
	}
	movies, err := h.movies.UpdateByTitle(r.Context(), title)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, movies)
}

// deleteMovie godoc
// @Summary Delete a movie by ID
// @Description Delete a movie from the database by its ID.
// @Tags Movies
// @Produce json
// @Param id path string true "The ID of the movie to delete."
// @Success 200 {array} domain.Movie "Movie deleted successfully."
// @Failure 404 {object} ErrorResponse "Movie not found."
// @Failure 500 {object} ErrorResponse "Internal server error."
// @Router /movies/{id} [delete]
func (h *Handler) deleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, "id")
	if !ok {
		return
	}
	movies, err := h.movies.DeleteByID(r.Context(), id)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, movies)
}
