package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	MoviesCollection = "movies"
	GenresCollection = "genres"
)

// NewID returns a store identifier in ObjectID hex form. Backends that do not
// assign identifiers themselves use it so ids look the same on every store.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// ValidID reports whether id can identify a stored document.
func ValidID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}
