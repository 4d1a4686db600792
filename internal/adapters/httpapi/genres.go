package httpapi

import "net/http"

// listGenres godoc
// @Summary Get a list of all genres
// @Description Retrieve a list of all genres from the database.
// @Tags Genres
// @Produce json
// @Success 200 {array} domain.Genre "List of genres retrieved successfully."
// @Failure 500 {object} ErrorResponse "Internal server error."
// @Router /genres [get]
func (h *Handler) listGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.genres.List(r.Context())
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, genres)
}

// createGenre godoc
// @Summary Add a new genre
// @Description Add a new genre to the database.
// @Tags Genres
// @Produce json
// @Param name path string true "The name of the genre."
// @Success 201 {array} domain.Genre "Genre added successfully."
// @Failure 400 {object} ErrorResponse "Bad request - Invalid data provided."
// @Failure 500 {object} ErrorResponse "Internal server error."
// @Router /genres/{name} [post]
func (h *Handler) createGenre(w http.ResponseWriter, r *http.Request) {
	name, ok := pathParam(w, r, "name")
	if !ok {
		return
	}
	genres, err := h.genres.Create(r.Context(), name)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, genres)
}

// updateGenre godoc
// @Summary Update a genre by name
// @Description Update a genre in the database by its name.
// @Tags Genres
// @Produce json
// @Param name path string true "The name of the genre to update."
// @Success 200 {array} domain.Genre "Genre updated successfully."
// @Failure 404 {object} ErrorResponse "Genre not found."
// @Failure 500 {object} ErrorResponse "Internal server error."
// @Router /genres/{name} [put]
func (h *Handler) updateGenre(w http.ResponseWriter, r *http.Request) {
	name, ok := pathParam(w, r, "name")
	if !ok {
		return
	}
	genres, err := h.genres.UpdateByName(r.Context(), name)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, genres)
}

// deleteGenre godoc
// @Summary Delete a genre by ID
// @Description Delete a genre from the database by its ID.
// @Tags Genres
// @Produce json
// @Param id path string true "The ID of the genre to delete."
// @Success 200 {array} domain.Genre "Genre deleted successfully."
// @Failure 404 {object} ErrorResponse "Genre not found."
// @Failure 500 {object} ErrorResponse "Internal server error."
// @Router /genres/{id} [delete]
func (h *Handler) deleteGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, "id")
	if !ok {
		return
	}
	genres, err := h.genres.DeleteByID(r.Context(), id)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, genres)
}
