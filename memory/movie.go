// Package memory holds the in-memory movie collection loaded from a JSON file.
// Mutations are never written back to the file.
package memory

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"movieapi/movie"
)

// LoadMovies reads a JSON array of movies from path.
func LoadMovies(path string) ([]movie.Movie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read movies file: %w", err)
	}

	movies := []movie.Movie{}
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, fmt.Errorf("decode movies file %s: %w", path, err)
	}
	return movies, nil
}

// MovieStore implements movie.Repository over a slice. The lock keeps each
// operation atomic; it does not order concurrent writers. Movies go in and
// come out as copies, genre lists included.
type MovieStore struct {
	mu     sync.RWMutex
	movies []movie.Movie
	newID  func() string
}

// NewMovieStore returns a store owning a copy of movies.
func NewMovieStore(movies []movie.Movie) *MovieStore {
	owned := make([]movie.Movie, len(movies))
	for i, m := range movies {
		owned[i] = cloneMovie(m)
	}
	return &MovieStore{
		movies: owned,
		newID:  uuid.NewString,
	}
}

func (s *MovieStore) All(_ context.Context) ([]movie.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	movies := make([]movie.Movie, len(s.movies))
	for i, m := range s.movies {
		movies[i] = cloneMovie(m)
	}
	return movies, nil
}

func (s *MovieStore) ByID(_ context.Context, id string) (movie.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i == -1 {
		return movie.Movie{}, movie.ErrNotFound
	}
	return cloneMovie(s.movies[i]), nil
}

func (s *MovieStore) Create(_ context.Context, m movie.Movie) (movie.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m = cloneMovie(m)
	m.ID = s.newID()
	s.movies = append(s.movies, m)
	return cloneMovie(m), nil
}

func (s *MovieStore) Update(_ context.Context, id string, p movie.Patch) (movie.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return movie.Movie{}, movie.ErrNotFound
	}
	s.movies[i] = p.Apply(s.movies[i])
	return cloneMovie(s.movies[i]), nil
}

func (s *MovieStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return movie.ErrNotFound
	}
	s.movies = append(s.movies[:i], s.movies[i+1:]...)
	return nil
}

func (s *MovieStore) indexOf(id string) int {
	for i, m := range s.movies {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func cloneMovie(m movie.Movie) movie.Movie {
	m.Genre = slices.Clone(m.Genre)
	return m
}
