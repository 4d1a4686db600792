// Package dynamostore keeps the movies and genres collections in two
// DynamoDB tables keyed by the string attribute "id".
package dynamostore

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
)

type Store struct {
	client      Client
	moviesTable string
	genresTable string
}

func New(client Client, moviesTable, genresTable string) *Store {
	return &Store{client: client, moviesTable: moviesTable, genresTable: genresTable}
}

// NewClient builds a DynamoDB client from the default AWS configuration
// chain with tracing middlewares installed.
func NewClient(ctx context.Context) (*dynamodb.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	otelaws.AppendMiddlewares(&cfg.APIOptions)
	return dynamodb.NewFromConfig(cfg), nil
}

func (s *Store) Movies() *MovieRepository {
	return NewMovieRepository(s.client, s.moviesTable)
}

func (s *Store) Genres() *GenreRepository {
	return NewGenreRepository(s.client, s.genresTable)
}
