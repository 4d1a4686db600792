package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/atvirokodosprendimai/movieslib/docs"
	"github.com/atvirokodosprendimai/movieslib/internal/core/domain"
	"github.com/atvirokodosprendimai/movieslib/internal/core/usecase"
	"github.com/atvirokodosprendimai/movieslib/internal/logging"
)

const (
	msgInternal      = "Internal server error."
	msgMovieNotFound = "Movie not found."
	msgGenreNotFound = "Genre not found."
	msgTitleRequired = "Title is required."
	msgNameRequired  = "Name is required."
)

type Handler struct {
	movies *usecase.MovieService
	genres *usecase.GenreService
}

func NewHandler(movies *usecase.MovieService, genres *usecase.GenreService) *Handler {
	return &Handler{movies: movies, genres: genres}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger)
	r.Use(recoverer)

	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	r.Get("/health-check", h.healthCheck)
	r.Get("/about", h.about)
	r.Get("/abcd", h.abcd)
	r.Get("/acd", h.abcd)

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", h.listMovies)
		r.Get("/genres/{name}", h.listMoviesByGenre)
		r.Post("/", h.createMovie)
		r.Post("/{title}", h.createMovie)
		r.Put("/{title}", h.updateMovie)
		r.Delete("/{id}", h.deleteMovie)
	})

	r.Route("/genres", func(r chi.Router) {
		r.Get("/", h.listGenres)
		r.Post("/", h.createGenre)
		r.Post("/{name}", h.createGenre)
		r.Put("/{name}", h.updateGenre)
		r.Delete("/{id}", h.deleteGenre)
	})

	r.Get("/api-docs/*", httpSwagger.Handler(httpSwagger.URL("/api-docs/doc.json")))

	return r
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"Movie not found."`
}

// MessageResponse is the body of the health check.
type MessageResponse struct {
	Message string `json:"message" example:"Server is up and running"`
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "Not Found")
}

// pathParam returns the decoded value of a route parameter. chi matches on the
// escaped path whenever it differs from the decoded one, and then hands back
// the escaped segment.
func pathParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return value, true
	}
	decoded, err := url.PathUnescape(value)
	if err != nil {
		notFound(w, r)
		return "", false
	}
	return decoded, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Error().Err(err).Msg("encode json response")
		http.Error(w, msgInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(data, '\n')); err != nil {
		logging.Warn().Err(err).Msg("write response")
	}
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		logging.Warn().Err(err).Msg("write response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

func handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrTitleRequired):
		writeError(w, http.StatusBadRequest, msgTitleRequired)
	case errors.Is(err, domain.ErrNameRequired):
		writeError(w, http.StatusBadRequest, msgNameRequired)
	case errors.Is(err, domain.ErrMovieNotFound):
		writeError(w, http.StatusNotFound, msgMovieNotFound)
	case errors.Is(err, domain.ErrGenreNotFound):
		writeError(w, http.StatusNotFound, msgGenreNotFound)
	default:
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}
