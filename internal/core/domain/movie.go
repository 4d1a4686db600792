package domain

// Movie is a document of the movies collection.
type Movie struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Genre       []string `json:"genre"`
	ReleaseDate string   `json:"releaseDate"`
	Description string   `json:"description"`
}

// Placeholder values written for every movie created through the API.
var (
	PlaceholderGenre       = []string{"Action", "Adventure", "Science Fiction"}
	PlaceholderReleaseDate = "1999-03-31"
	PlaceholderDescription = "A classic sci-fi movie."
)

// EditedTitleSuffix is appended to a movie title on update.
const EditedTitleSuffix = "1"

// NewMovie builds the document inserted for title.
func NewMovie(title string) Movie {
	genre := make([]string, len(PlaceholderGenre))
	copy(genre, PlaceholderGenre)
	return Movie{
		Title:       title,
		Genre:       genre,
		ReleaseDate: PlaceholderReleaseDate,
		Description: PlaceholderDescription,
	}
}

// Edited returns the replacement for m when it is updated by title.
func (m Movie) Edited(title string) Movie {
	return Movie{
		ID:          m.ID,
		Title:       title + EditedTitleSuffix,
		Genre:       m.Genre,
		ReleaseDate: m.ReleaseDate,
		Description: m.Description,
	}
}

// HasGenre reports whether name is one of the movie's genres.
func (m Movie) HasGenre(name string) bool {
	for _, g := range m.Genre {
		if g == name {
			return true
		}
	}
	return false
}
