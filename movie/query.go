package movie

import (
	"net/url"
	"strconv"
	"strings"

	"movieapi/errs"
)

const (
	DefaultOffset = 0
	DefaultLimit  = 5
)

var ErrInvalidPagination = errs.Errorf(errs.EINVALID,
	"400: offset must be a non-negative integer and limit a positive integer")

// Param is a single query parameter.
type Param struct {
	Key   string
	Value string
}

// Params is a query string decoded in its original order. url.Values loses
// that order, and filter links must reproduce it.
type Params []Param

// ParseParams decodes a raw query string keeping parameter order.
func ParseParams(rawQuery string) (Params, error) {
	var params Params
	for _, part := range strings.Split(rawQuery, "&") {
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		k, err := url.QueryUnescape(key)
		if err != nil {
			return nil, errs.Errorf(errs.EINVALID, "400: malformed query parameter %q", key)
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			return nil, errs.Errorf(errs.EINVALID, "400: malformed value for query parameter %q", k)
		}
		params = append(params, Param{Key: k, Value: v})
	}
	return params, nil
}

// Get returns the first value for key.
func (p Params) Get(key string) (string, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return "", false
}

// Filters returns every parameter except offset and limit.
func (p Params) Filters() Filters {
	filters := Filters{}
	for _, param := range p {
		if param.Key == "offset" || param.Key == "limit" {
			continue
		}
		filters = append(filters, Filter{Field: param.Key, Value: param.Value})
	}
	return filters
}

// ListRequest is a list request whose offset and limit are present but not yet
// interpreted.
type ListRequest struct {
	Offset  string
	Limit   string
	Filters Filters
}

// ListQuery is a validated list request.
type ListQuery struct {
	Path    string
	Offset  int
	Limit   int
	Filters Filters
}

// Normalize decides whether a list request can proceed. When offset or limit
// is missing it returns the canonical URL to redirect to, with the default
// window and the filters re-attached; any supplied offset or limit is dropped.
func Normalize(path string, params Params) (ListRequest, string) {
	offset, _ := params.Get("offset")
	limit, _ := params.Get("limit")
	filters := params.Filters()

	if offset == "" || limit == "" {
		return ListRequest{}, BuildLink("", path, DefaultOffset, DefaultLimit, filters)
	}

	return ListRequest{Offset: offset, Limit: limit, Filters: filters}, ""
}

// Query validates offset and limit.
func (r ListRequest) Query(path string) (ListQuery, error) {
	offset, err := strconv.Atoi(strings.TrimSpace(r.Offset))
	if err != nil || offset < 0 {
		return ListQuery{}, ErrInvalidPagination
	}
	limit, err := strconv.Atoi(strings.TrimSpace(r.Limit))
	if err != nil || limit < 1 {
		return ListQuery{}, ErrInvalidPagination
	}

	return ListQuery{
		Path:    path,
		Offset:  offset,
		Limit:   limit,
		Filters: r.Filters,
	}, nil
}
