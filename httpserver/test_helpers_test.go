package httpserver_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"movieapi/httpserver"
	"movieapi/memory"
	"movieapi/movie"
	"movieapi/pkg/config"
)

const (
	testOrigin  = "http://localhost:3000"
	testBaseURL = "http://localhost:8080"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:         8080,
		AllowOrigins: testOrigin,
	}
}

func sampleMovies() []movie.Movie {
	return []movie.Movie{
		{ID: "1", Title: "A", Genre: []movie.Genre{movie.GenreComedy}, Year: 2000, Director: "Ann", Duration: 90, Rate: 7, Poster: "https://img.example.com/a.jpg"},
		{ID: "2", Title: "B", Genre: []movie.Genre{movie.GenreDrama}, Year: 2010, Director: "Bob", Duration: 120, Rate: 8.5, Poster: "https://img.example.com/b.jpg"},
		{ID: "3", Title: "C", Genre: []movie.Genre{movie.GenreDrama, movie.GenreRomance}, Year: 2010, Director: "Cid", Duration: 100, Rate: 6, Poster: "https://img.example.com/c.jpg"},
	}
}

// newMovieServer returns a server backed by an in-memory store holding movies.
func newMovieServer(movies ...movie.Movie) *httpserver.Server {
	server := httpserver.Default(testConfig())
	server.MovieService = movie.NewUsecase(memory.NewMovieStore(movies), testBaseURL)
	return server
}

func doJSON(t *testing.T, server *httpserver.Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func makeRequest(server *httpserver.Server, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)
	return rec
}

func assertStatus(t *testing.T, want int, rec *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, want, rec.Code, rec.Body.String())
}
