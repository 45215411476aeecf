package movie

import (
	"strconv"
	"strings"

	"movieapi/errs"
)

// Filter narrows a listing to movies whose Field matches Value.
type Filter struct {
	Field string
	Value string
}

// Filters keeps the order in which filters were supplied.
type Filters []Filter

type matcher func(m Movie, value string) bool

// filterFields maps every filterable field to its comparison.
var filterFields = map[string]matcher{
	"id":       stringField(func(m Movie) string { return m.ID }),
	"title":    stringField(func(m Movie) string { return m.Title }),
	"director": stringField(func(m Movie) string { return m.Director }),
	"poster":   stringField(func(m Movie) string { return m.Poster }),
	"genre":    genreField,
	"year":     numberField(func(m Movie) float64 { return float64(m.Year) }),
	"duration": numberField(func(m Movie) float64 { return float64(m.Duration) }),
	"rate":     numberField(func(m Movie) float64 { return m.Rate }),
}

func stringField(get func(Movie) string) matcher {
	return func(m Movie, value string) bool {
		return strings.EqualFold(get(m), value)
	}
}

func numberField(get func(Movie) float64) matcher {
	return func(m Movie, value string) bool {
		n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return false
		}
		return get(m) == n
	}
}

func genreField(m Movie, value string) bool {
	for _, g := range m.Genre {
		if strings.EqualFold(string(g), value) {
			return true
		}
	}
	return false
}

// InvalidFilterError reports a filter on a field movies do not have.
func InvalidFilterError(field string) error {
	return errs.Errorf(errs.EINVALID, "400: Filter %q is not valid", field)
}

// ApplyFilters returns the movies matching every filter. Filters are checked
// before any movie is inspected, so an unknown field fails even on an empty
// collection; the first unknown field in supplied order is reported.
func ApplyFilters(movies []Movie, filters Filters) ([]Movie, error) {
	matchers := make([]matcher, len(filters))
	for i, f := range filters {
		match, ok := filterFields[f.Field]
		if !ok {
			return nil, InvalidFilterError(f.Field)
		}
		matchers[i] = match
	}

	result := movies
	for i, f := range filters {
		narrowed := make([]Movie, 0, len(result))
		for _, m := range result {
			if matchers[i](m, f.Value) {
				narrowed = append(narrowed, m)
			}
		}
		result = narrowed
	}
	return result, nil
}
