// @title My API Documentation
// @version 1.0.0
// @description Documentation for my API
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/atvirokodosprendimai/movieslib/internal/app"
	"github.com/atvirokodosprendimai/movieslib/internal/logging"
	"github.com/atvirokodosprendimai/movieslib/internal/telemetry"
)

func main() {
	cmd := &cli.Command{
		Name:  "movieslib",
		Usage: "Movies and genres JSON API",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Value:   3000,
				Sources: cli.EnvVars("PORT"),
				Usage:   "HTTP listen port",
			},
			&cli.StringFlag{
				Name:    "store",
				Value:   app.StoreMongo,
				Sources: cli.EnvVars("MOVIES_STORE"),
				Usage:   "Document store: mongo, sqlite, dynamodb or memory",
			},
			&cli.StringFlag{
				Name:    "mongo-uri",
				Value:   "mongodb://127.0.0.1:27017",
				Sources: cli.EnvVars("MONGO_URI"),
				Usage:   "MongoDB connection string",
			},
			&cli.StringFlag{
				Name:    "mongo-db",
				Value:   "movies-lib",
				Sources: cli.EnvVars("MONGO_DB"),
				Usage:   "MongoDB database name",
			},
			&cli.StringFlag{
				Name:    "db-path",
				Value:   "./movies.sqlite",
				Sources: cli.EnvVars("MOVIES_DB_PATH"),
				Usage:   "SQLite file path",
			},
			&cli.StringFlag{
				Name:    "movies-table",
				Value:   "movies",
				Sources: cli.EnvVars("MOVIES_TABLE"),
				Usage:   "DynamoDB movies table",
			},
			&cli.StringFlag{
				Name:    "genres-table",
				Value:   "genres",
				Sources: cli.EnvVars("GENRES_TABLE"),
				Usage:   "DynamoDB genres table",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "json",
				Sources: cli.EnvVars("LOG_FORMAT"),
				Usage:   "json or console",
			},
			&cli.StringFlag{
				Name:    "otel-endpoint",
				Sources: cli.EnvVars("OTEL_EXPORTER_OTLP_ENDPOINT"),
				Usage:   "OTLP/gRPC collector address; tracing is off when empty",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Init(logging.Config{
				Level:  c.String("log-level"),
				Format: c.String("log-format"),
			})

			if endpoint := c.String("otel-endpoint"); endpoint != "" {
				shutdown, err := telemetry.SetupTracer(ctx, app.ServiceName, endpoint)
				if err != nil {
					return fmt.Errorf("setup tracer: %w", err)
				}
				defer func() {
					flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					if err := shutdown(flushCtx); err != nil {
						logging.Warn().Err(err).Msg("shutdown tracer")
					}
				}()
			}

			cfg := app.Config{
				Port:        int(c.Int("port")),
				Store:       c.String("store"),
				MongoURI:    c.String("mongo-uri"),
				MongoDB:     c.String("mongo-db"),
				DBPath:      c.String("db-path"),
				MoviesTable: c.String("movies-table"),
				GenresTable: c.String("genres-table"),
			}

			server, closer, err := app.NewServer(ctx, cfg)
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}
			defer func() {
				if closeErr := closer.Close(); closeErr != nil {
					logging.Err(closeErr).Msg("close resources")
				}
			}()

			errCh := make(chan error, 1)
			go func() {
				logging.Info().Str("addr", server.Addr).Msg("listening")
				errCh <- server.ListenAndServe()
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			case sig := <-sigCh:
				logging.Info().Str("signal", sig.String()).Msg("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logging.Err(err).Msg("exit")
		os.Exit(1)
	}
}
