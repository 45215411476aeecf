package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	_ "github.com/lib/pq"

	"movieapi/httpserver"
	"movieapi/memory"
	"movieapi/movie"
	"movieapi/pkg/config"
	"movieapi/pkg/sentry"
	"movieapi/postgres"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	repo, err := newMovieRepository(cfg)
	if err != nil {
		slog.Error("Cannot open movie store", "driver", cfg.DB.Driver, "error", err)
		os.Exit(1)
	}

	server := httpserver.Default(cfg)
	server.MovieService = movie.NewUsecase(repo, cfg.PublicURL())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server started!", "addr", server.Addr, "url", cfg.PublicURL(), "driver", cfg.DB.Driver)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped with error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		return
	}
	slog.Info("server stopped")
}

func newMovieRepository(cfg *config.Config) (movie.Repository, error) {
	if cfg.DB.Driver == config.DriverPostgres {
		db, err := postgres.NewConnection(postgres.OptionsFromConfig(cfg))
		if err != nil {
			return nil, err
		}
		return postgres.NewMovieRepository(db), nil
	}

	movies, err := memory.LoadMovies(cfg.MoviesFile)
	if err != nil {
		return nil, err
	}
	slog.Info("movies loaded", "file", cfg.MoviesFile, "count", len(movies))
	return memory.NewMovieStore(movies), nil
}
