package movie

import (
	"context"
	"fmt"

	"movieapi/errs"
)

type Service interface {
	List(ctx context.Context, q ListQuery) (Page, error)
	Get(ctx context.Context, id string) (Movie, error)
	Create(ctx context.Context, m Movie) (Movie, error)
	Update(ctx context.Context, id string, p Patch) (Movie, error)
	Delete(ctx context.Context, id string) error
}

// Repository is the collection store. Implementations return ErrNotFound for
// unknown ids.
type Repository interface {
	All(ctx context.Context) ([]Movie, error)
	ByID(ctx context.Context, id string) (Movie, error)
	Create(ctx context.Context, m Movie) (Movie, error)
	Update(ctx context.Context, id string, p Patch) (Movie, error)
	Delete(ctx context.Context, id string) error
}

type Usecase struct {
	r       Repository
	baseURL string
}

// NewUsecase builds the movie use case. baseURL prefixes next/previous links.
func NewUsecase(r Repository, baseURL string) *Usecase {
	return &Usecase{r: r, baseURL: baseURL}
}

func (uc *Usecase) List(ctx context.Context, q ListQuery) (Page, error) {
	movies, err := uc.r.All(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("list movies: %w", err)
	}
	if movies == nil {
		return Page{}, errs.Errorf(errs.EINTERNAL, "movie store returned no data")
	}

	filtered, err := ApplyFilters(movies, q.Filters)
	if err != nil {
		return Page{}, err
	}

	results, hasNext := Paginate(filtered, q.Offset, q.Limit)
	page := Page{Results: results}
	if hasNext {
		next := BuildLink(uc.baseURL, q.Path, q.Offset+1, q.Limit, q.Filters)
		page.Next = &next
	}
	if q.Offset >= 1 {
		previous := BuildLink(uc.baseURL, q.Path, q.Offset-1, q.Limit, q.Filters)
		page.Previous = &previous
	}
	return page, nil
}

func (uc *Usecase) Get(ctx context.Context, id string) (Movie, error) {
	return uc.r.ByID(ctx, id)
}

// Create stores m under a fresh id; any id already set on m is discarded.
func (uc *Usecase) Create(ctx context.Context, m Movie) (Movie, error) {
	m.ID = ""
	return uc.r.Create(ctx, m)
}

func (uc *Usecase) Update(ctx context.Context, id string, p Patch) (Movie, error) {
	return uc.r.Update(ctx, id, p)
}

func (uc *Usecase) Delete(ctx context.Context, id string) error {
	return uc.r.Delete(ctx, id)
}
