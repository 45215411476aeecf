package movie

import (
	"slices"

	"movieapi/errs"
)

// DefaultRate is assigned to movies created without a rate.
const DefaultRate = 5.0

var ErrNotFound = errs.Errorf(errs.ENOTFOUND, "404: Movie not found")

type Genre string

const (
	GenreAction    Genre = "Action"
	GenreAdventure Genre = "Adventure"
	GenreComedy    Genre = "Comedy"
	GenreDrama     Genre = "Drama"
	GenreFantasy   Genre = "Fantasy"
	GenreHorror    Genre = "Horror"
	GenreThriller  Genre = "Thriller"
	GenreSciFi     Genre = "Sci-Fi"
	GenreRomance   Genre = "Romance"
)

var allGenres = []Genre{
	GenreAction,
	GenreAdventure,
	GenreComedy,
	GenreDrama,
	GenreFantasy,
	GenreHorror,
	GenreThriller,
	GenreSciFi,
	GenreRomance,
}

// Genres lists the closed set of genres in display order.
func Genres() []Genre {
	return slices.Clone(allGenres)
}

// Valid reports whether g belongs to the closed set of genres.
func (g Genre) Valid() bool {
	return slices.Contains(allGenres, g)
}

type Movie struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Genre    []Genre `json:"genre"`
	Year     int     `json:"year"`
	Director string  `json:"director"`
	Duration int     `json:"duration"`
	Rate     float64 `json:"rate"`
	Poster   string  `json:"poster"`
}

// Patch holds a partial movie update. Nil fields are left untouched.
type Patch struct {
	Title    *string
	Genre    []Genre
	Year     *int
	Director *string
	Duration *int
	Rate     *float64
	Poster   *string
}

// Apply shallow-merges p over m and returns the result. The id is never changed.
func (p Patch) Apply(m Movie) Movie {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Genre != nil {
		m.Genre = append([]Genre(nil), p.Genre...)
	}
	if p.Year != nil {
		m.Year = *p.Year
	}
	if p.Director != nil {
		m.Director = *p.Director
	}
	if p.Duration != nil {
		m.Duration = *p.Duration
	}
	if p.Rate != nil {
		m.Rate = *p.Rate
	}
	if p.Poster != nil {
		m.Poster = *p.Poster
	}
	return m
}
