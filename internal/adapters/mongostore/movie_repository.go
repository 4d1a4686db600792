package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/atvirokodosprendimai/movieslib/internal/core/domain"
)

type movieDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Genre       []string           `bson:"genre"`
	ReleaseDate string             `bson:"releaseDate"`
	Description string             `bson:"description"`
}

type MovieRepository struct {
	coll *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{coll: db.Collection(domain.MoviesCollection)}
}

func (r *MovieRepository) List(ctx context.Context) ([]domain.Movie, error) {
	return r.find(ctx, bson.D{})
}

// ListByGenre relies on MongoDB matching a scalar against array elements.
func (r *MovieRepository) ListByGenre(ctx context.Context, genre string) ([]domain.Movie, error) {
	return r.find(ctx, bson.D{{Key: "genre", Value: genre}})
}

func (r *MovieRepository) Insert(ctx context.Context, movie domain.Movie) (domain.Movie, error) {
	doc := toMovieDocument(movie)
	doc.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return domain.Movie{}, fmt.Errorf("insert movie: %w", err)
	}
	movie.ID = doc.ID.Hex()
	return movie, nil
}

func (r *MovieRepository) FindByTitle(ctx context.Context, title string) (domain.Movie, error) {
	var doc movieDocument
	err := r.coll.FindOne(ctx, bson.D{{Key: "title", Value: title}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Movie{}, domain.ErrNotFound
		}
		return domain.Movie{}, fmt.Errorf("find movie: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MovieRepository) UpdateByTitle(ctx context.Context, title string, movie domain.Movie) error {
	set := bson.D{
		{Key: "title", Value: movie.Title},
		{Key: "genre", Value: movie.Genre},
		{Key: "releaseDate", Value: movie.ReleaseDate},
		{Key: "description", Value: movie.Description},
	}
	_, err := r.coll.UpdateOne(ctx, bson.D{{Key: "title", Value: title}}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	return nil
}

func (r *MovieRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.coll, id)
}

func (r *MovieRepository) find(ctx context.Context, filter bson.D) ([]domain.Movie, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find movies: %w", err)
	}
	var docs []movieDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("read movies: %w", err)
	}

	movies := make([]domain.Movie, 0, len(docs))
	for _, doc := range docs {
		movies = append(movies, doc.toDomain())
	}
	return movies, nil
}

func toMovieDocument(m domain.Movie) movieDocument {
	return movieDocument{
		Title:       m.Title,
		Genre:       m.Genre,
		ReleaseDate: m.ReleaseDate,
		Description: m.Description,
	}
}

func (d movieDocument) toDomain() domain.Movie {
	return domain.Movie{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Genre:       d.Genre,
		ReleaseDate: d.ReleaseDate,
		Description: d.Description,
	}
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", coll.Name(), err)
	}
	return res.DeletedCount > 0, nil
}
