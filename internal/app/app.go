package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/atvirokodosprendimai/movieslib/internal/adapters/dynamostore"
	"github.com/atvirokodosprendimai/movieslib/internal/adapters/httpapi"
	"github.com/atvirokodosprendimai/movieslib/internal/adapters/memstore"
	"github.com/atvirokodosprendimai/movieslib/internal/adapters/mongostore"
	sqliteadapter "github.com/atvirokodosprendimai/movieslib/internal/adapters/sqlite"
	"github.com/atvirokodosprendimai/movieslib/internal/adapters/sqlite/gormsqlite"
	"github.com/atvirokodosprendimai/movieslib/internal/core/ports"
	"github.com/atvirokodosprendimai/movieslib/internal/core/usecase"
	"github.com/atvirokodosprendimai/movieslib/internal/logging"
	"github.com/atvirokodosprendimai/movieslib/migrations"
)

const ServiceName = "movieslib"

// Store kinds accepted by Config.Store.
const (
	StoreMongo    = "mongo"
	StoreSQLite   = "sqlite"
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
)

var ErrUnknownStore = errors.New("unknown store")

type Config struct {
	Port        int
	Store       string
	MongoURI    string
	MongoDB     string
	DBPath      string
	MoviesTable string
	GenresTable string
}

func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	switch c.Store {
	case StoreMongo:
		if c.MongoURI == "" || c.MongoDB == "" {
			return errors.New("mongo store needs a uri and a database")
		}
	case StoreSQLite:
		if c.DBPath == "" {
			return errors.New("sqlite store needs a db path")
		}
	case StoreDynamoDB:
		if c.MoviesTable == "" || c.GenresTable == "" {
			return errors.New("dynamodb store needs both table names")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("%w %q", ErrUnknownStore, c.Store)
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

type resourceCloser struct {
	closers []io.Closer
}

func (r resourceCloser) Close() error {
	var firstErr error
	for _, c := range r.closers {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type repositories struct {
	movies ports.MovieRepository
	genres ports.GenreRepository
	closer io.Closer
}

func openStore(ctx context.Context, cfg Config) (repositories, error) {
	switch cfg.Store {
	case StoreMongo:
		provider, err := mongostore.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return repositories{}, err
		}
		db := provider.Database()
		return repositories{
			movies: mongostore.NewMovieRepository(db),
			genres: mongostore.NewGenreRepository(db),
			closer: provider,
		}, nil

	case StoreSQLite:
		db, err := gormsqlite.Open(cfg.DBPath)
		if err != nil {
			return repositories{}, fmt.Errorf("open sqlite: %w", err)
		}
		writeSQLDB, err := db.WriteSQLDB()
		if err != nil {
			_ = db.Close()
			return repositories{}, fmt.Errorf("resolve writer sql db: %w", err)
		}
		migrateCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := migrations.Up(migrateCtx, writeSQLDB); err != nil {
			_ = db.Close()
			return repositories{}, err
		}
		return repositories{
			movies: sqliteadapter.NewMovieRepository(db),
			genres: sqliteadapter.NewGenreRepository(db),
			closer: db,
		}, nil

	case StoreDynamoDB:
		client, err := dynamostore.NewClient(ctx)
		if err != nil {
			return repositories{}, err
		}
		store := dynamostore.New(client, cfg.MoviesTable, cfg.GenresTable)
		return repositories{movies: store.Movies(), genres: store.Genres()}, nil

	case StoreMemory:
		store := memstore.New()
		return repositories{movies: store.Movies(), genres: store.Genres(), closer: store}, nil
	}
	return repositories{}, fmt.Errorf("%w %q", ErrUnknownStore, cfg.Store)
}

func NewServer(ctx context.Context, cfg Config) (*http.Server, io.Closer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	repos, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s store: %w", cfg.Store, err)
	}
	logging.Info().Str("store", cfg.Store).Msg("store ready")

	handler := httpapi.NewHandler(
		usecase.NewMovieService(repos.movies),
		usecase.NewGenreService(repos.genres),
	)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           otelhttp.NewHandler(handler.Router(), ServiceName),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return server, resourceCloser{closers: []io.Closer{repos.closer}}, nil
}
