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

type genreDocument struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

type GenreRepository struct {
	coll *mongo.Collection
}

func NewGenreRepository(db *mongo.Database) *GenreRepository {
	return &GenreRepository{coll: db.Collection(domain.GenresCollection)}
}

func (r *GenreRepository) List(ctx context.Context) ([]domain.Genre, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find genres: %w", err)
	}
	var docs []genreDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("read genres: %w", err)
	}

	genres := make([]domain.Genre, 0, len(docs))
	for _, doc := range docs {
		genres = append(genres, domain.Genre{ID: doc.ID.Hex(), Name: doc.Name})
	}
	return genres, nil
}

func (r *GenreRepository) Insert(ctx context.Context, genre domain.Genre) (domain.Genre, error) {
	doc := genreDocument{ID: primitive.NewObjectID(), Name: genre.Name}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return domain.Genre{}, fmt.Errorf("insert genre: %w", err)
	}
	genre.ID = doc.ID.Hex()
	return genre, nil
}

func (r *GenreRepository) FindByName(ctx context.Context, name string) (domain.Genre, error) {
	var doc genreDocument
	err := r.coll.FindOne(ctx, bson.D{{Key: "name", Value: name}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Genre{}, domain.ErrNotFound
		}
		return domain.Genre{}, fmt.Errorf("find genre: %w", err)
	}
	return domain.Genre{ID: doc.ID.Hex(), Name: doc.Name}, nil
}

func (r *GenreRepository) UpdateByName(ctx context.Context, name string, genre domain.Genre) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "name", Value: name}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "name", Value: genre.Name}}}},
	)
	if err != nil {
		return fmt.Errorf("update genre: %w", err)
	}
	return nil
}

func (r *GenreRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.coll, id)
}
