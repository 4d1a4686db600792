package domain

import "strconv"

// Genre is a document of the genres collection.
type Genre struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// MaxGenreSuffix bounds the random suffix appended on rename.
const MaxGenreSuffix = 1000

// RenamedGenre returns the name a genre receives on update: the old
// name, a space and suffix.
func RenamedGenre(name string, suffix int) string {
	return name + " " + strconv.Itoa(suffix)
}
