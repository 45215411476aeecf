package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"movieapi/memory"
	"movieapi/pkg/config"
	"movieapi/postgres"
)

func main() {
	var file string
	flag.StringVar(&file, "file", "", "Path to the movies JSON file (defaults to MOVIES_FILE)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}
	if file == "" {
		file = cfg.MoviesFile
	}

	movies, err := memory.LoadMovies(file)
	if err != nil {
		slog.Error("cannot read movies file", "file", file, "error", err)
		os.Exit(1)
	}

	db, err := postgres.NewConnection(postgres.OptionsFromConfig(cfg))
	if err != nil {
		slog.Error("cannot open postgres connection", "error", err)
		os.Exit(1)
	}

	count, err := postgres.NewMovieRepository(db).Upsert(context.Background(), movies)
	if err != nil {
		slog.Error("import failed", "error", err)
		os.Exit(1)
	}

	slog.Info("import completed", "file", file, "rows", count)
}
