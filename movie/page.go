package movie

import (
	"net/url"
	"strconv"
	"strings"
)

// Page is one window of a movie listing. Next and Previous are nil when the
// corresponding page does not exist.
type Page struct {
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Movie `json:"results"`
}

// Paginate returns the offset-th page of at most limit movies. offset is a
// page index, not an item index. hasNext is true whenever the page is full,
// so an exactly filled last page still links to an empty next page.
func Paginate(movies []Movie, offset, limit int) (page []Movie, hasNext bool) {
	if offset < 0 || limit <= 0 {
		return []Movie{}, false
	}

	total := len(movies)
	start := total
	if offset <= total/limit {
		start = min(offset*limit, total)
	}
	end := total
	if limit < total-start {
		end = start + limit
	}

	page = make([]Movie, end-start)
	copy(page, movies[start:end])
	return page, len(page) >= limit
}

// BuildLink renders {base}{path}?offset=..&limit=.. followed by every filter
// in its original order.
func BuildLink(base, path string, offset, limit int, filters Filters) string {
	var b strings.Builder
	b.WriteString(base)
	b.WriteString(path)
	b.WriteString("?offset=")
	b.WriteString(strconv.Itoa(offset))
	b.WriteString("&limit=")
	b.WriteString(strconv.Itoa(limit))
	for _, f := range filters {
		b.WriteByte('&')
		b.WriteString(url.QueryEscape(f.Field))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(f.Value))
	}
	return b.String()
}
