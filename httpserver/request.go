package httpserver

import (
	"movieapi/movie"
)

type CreateMovieRequest struct {
	Title    *string       `json:"title" validate:"required"`
	Genre    []movie.Genre `json:"genre" validate:"required,min=1,dive,genre"`
	Year     *int          `json:"year" validate:"required,min=1900,max=2024"`
	Director *string       `json:"director" validate:"required"`
	Duration *int          `json:"duration" validate:"required,gt=0"`
	Rate     *float64      `json:"rate" validate:"omitempty,min=0,max=10"`
	Poster   *string       `json:"poster" validate:"required,url"`
}

// ToMovie assumes the request has been validated.
func (r CreateMovieRequest) ToMovie() movie.Movie {
	m := movie.Movie{
		Title:    *r.Title,
		Genre:    append([]movie.Genre(nil), r.Genre...),
		Year:     *r.Year,
		Director: *r.Director,
		Duration: *r.Duration,
		Rate:     movie.DefaultRate,
		Poster:   *r.Poster,
	}
	if r.Rate != nil {
		m.Rate = *r.Rate
	}
	return m
}

// UpdateMovieRequest validates only the fields present in the body.
type UpdateMovieRequest struct {
	Title    *string       `json:"title" validate:"omitempty"`
	Genre    []movie.Genre `json:"genre" validate:"omitempty,min=1,dive,genre"`
	Year     *int          `json:"year" validate:"omitempty,min=1900,max=2024"`
	Director *string       `json:"director" validate:"omitempty"`
	Duration *int          `json:"duration" validate:"omitempty,gt=0"`
	Rate     *float64      `json:"rate" validate:"omitempty,min=0,max=10"`
	Poster   *string       `json:"poster" validate:"omitempty,url"`
}

func (r UpdateMovieRequest) ToPatch() movie.Patch {
	return movie.Patch{
		Title:    r.Title,
		Genre:    r.Genre,
		Year:     r.Year,
		Director: r.Director,
		Duration: r.Duration,
		Rate:     r.Rate,
		Poster:   r.Poster,
	}
}
