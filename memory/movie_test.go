package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movieapi/memory"
	"movieapi/movie"
)

func newStore(t *testing.T) *memory.MovieStore {
	t.Helper()
	movies, err := memory.LoadMovies("testdata/movies.json")
	require.NoError(t, err)
	return memory.NewMovieStore(movies)
}

func TestLoadMovies(t *testing.T) {
	t.Run("decodes every field", func(t *testing.T) {
		movies, err := memory.LoadMovies("testdata/movies.json")

		require.NoError(t, err)
		require.Len(t, movies, 2)
		assert.Equal(t, movie.Movie{
			ID:       "2",
			Title:    "B",
			Genre:    []movie.Genre{movie.GenreDrama},
			Year:     2010,
			Director: "Bob",
			Duration: 120,
			Rate:     7,
			Poster:   "https://img.example.com/b.jpg",
		}, movies[1])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := memory.LoadMovies("testdata/nope.json")

		assert.Error(t, err)
	})

	t.Run("not an array", func(t *testing.T) {
		_, err := memory.LoadMovies("testdata/broken.json")

		assert.ErrorContains(t, err, "decode movies file")
	})
}

func TestMovieStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns unique ids and appends", func(t *testing.T) {
		store := newStore(t)
		seen := map[string]bool{"1": true, "2": true}

		for i := 0; i < 20; i++ {
			created, err := store.Create(ctx, movie.Movie{ID: "1", Title: "Copy"})
			require.NoError(t, err)
			assert.False(t, seen[created.ID], "id %q reused", created.ID)
			seen[created.ID] = true
		}

		all, err := store.All(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 22)
		assert.Equal(t, "Copy", all[21].Title)
	})

	t.Run("round trips through ByID", func(t *testing.T) {
		store := newStore(t)
		in := movie.Movie{
			Title:    "Inception",
			Genre:    []movie.Genre{movie.GenreAction, movie.GenreSciFi},
			Year:     2010,
			Director: "Christopher Nolan",
			Duration: 148,
			Rate:     movie.DefaultRate,
			Poster:   "https://img.example.com/inception.jpg",
		}

		created, err := store.Create(ctx, in)
		require.NoError(t, err)
		got, err := store.ByID(ctx, created.ID)

		require.NoError(t, err)
		in.ID = created.ID
		assert.Equal(t, in, got)
	})
}

func TestMovieStore_ByID(t *testing.T) {
	store := newStore(t)

	_, err := store.ByID(context.Background(), "missing")

	assert.Equal(t, movie.ErrNotFound, err)
}

func TestMovieStore_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("merges in place", func(t *testing.T) {
		store := newStore(t)
		duration := 95
		genres := []movie.Genre{movie.GenreComedy, movie.GenreRomance}

		updated, err := store.Update(ctx, "1", movie.Patch{Duration: &duration, Genre: genres})

		require.NoError(t, err)
		assert.Equal(t, 95, updated.Duration)
		assert.Equal(t, genres, updated.Genre)
		assert.Equal(t, "A", updated.Title)

		got, err := store.ByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("unknown id", func(t *testing.T) {
		store := newStore(t)

		_, err := store.Update(ctx, "missing", movie.Patch{})

		assert.Equal(t, movie.ErrNotFound, err)
	})
}

func TestMovieStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	assert.NoError(t, store.Delete(ctx, "1"))
	assert.Equal(t, movie.ErrNotFound, store.Delete(ctx, "1"))

	all, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "2", all[0].ID)
}

func TestMovieStore_InstancesAreIsolated(t *testing.T) {
	ctx := context.Background()
	movies, err := memory.LoadMovies("testdata/movies.json")
	require.NoError(t, err)

	a := memory.NewMovieStore(movies)
	b := memory.NewMovieStore(movies)
	require.NoError(t, a.Delete(ctx, "1"))

	all, err := b.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMovieStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	movies, err := memory.LoadMovies("testdata/movies.json")
	require.NoError(t, err)
	store := memory.NewMovieStore(movies)

	movies[0].Genre[0] = movie.GenreHorror

	all, err := store.All(ctx)
	require.NoError(t, err)
	all[0].Genre[0] = movie.GenreAction

	got, err := store.ByID(ctx, "1")
	require.NoError(t, err)
	got.Genre[0] = movie.GenreFantasy

	created, err := store.Create(ctx, movie.Movie{Title: "C", Genre: []movie.Genre{movie.GenreDrama}})
	require.NoError(t, err)
	created.Genre[0] = movie.GenreHorror

	fresh, err := store.ByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []movie.Genre{movie.GenreComedy}, fresh.Genre)

	stored, err := store.ByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []movie.Genre{movie.GenreDrama}, stored.Genre)
}
