package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"movieapi/movie"
)

// MovieModel represents the database model for movies.
// Seq is assigned by the database and keeps listing order stable.
type MovieModel struct {
	Seq      int64          `gorm:"column:seq;->"`
	ID       string         `gorm:"primaryKey"`
	Title    string         `gorm:"not null"`
	Genre    pq.StringArray `gorm:"type:text[];not null"`
	Year     int            `gorm:"not null"`
	Director string         `gorm:"not null"`
	Duration int            `gorm:"not null"`
	Rate     float64        `gorm:"not null"`
	Poster   string         `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

// MovieRepository implements movie.Repository on PostgreSQL.
type MovieRepository struct {
	db    *gorm.DB
	newID func() string
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db, newID: uuid.NewString}
}

func (r *MovieRepository) All(ctx context.Context) ([]movie.Movie, error) {
	var models []MovieModel
	if err := r.db.WithContext(ctx).Order("seq").Find(&models).Error; err != nil {
		return nil, err
	}

	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = toDomainMovie(model)
	}
	return movies, nil
}

func (r *MovieRepository) ByID(ctx context.Context, id string) (movie.Movie, error) {
	var model MovieModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return movie.Movie{}, movie.ErrNotFound
		}
		return movie.Movie{}, err
	}
	return toDomainMovie(model), nil
}

// Create inserts m under a fresh id.
func (r *MovieRepository) Create(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	m.ID = r.newID()
	model := toModelMovie(m)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return movie.Movie{}, err
	}
	return m, nil
}

// Update locks the row, merges p over it and saves the result.
func (r *MovieRepository) Update(ctx context.Context, id string, p movie.Patch) (movie.Movie, error) {
	var updated movie.Movie
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model MovieModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&model).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return movie.ErrNotFound
			}
			return err
		}

		updated = p.Apply(toDomainMovie(model))
		next := toModelMovie(updated)
		return tx.Model(&MovieModel{}).Where("id = ?", id).Select("*").Omit("seq", "id").Updates(&next).Error
	})
	if err != nil {
		return movie.Movie{}, err
	}
	return updated, nil
}

func (r *MovieRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&MovieModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return movie.ErrNotFound
	}
	return nil
}

// Upsert inserts movies keeping their ids, overwriting rows that already exist.
func (r *MovieRepository) Upsert(ctx context.Context, movies []movie.Movie) (int, error) {
	if len(movies) == 0 {
		return 0, nil
	}
	models := make([]MovieModel, len(movies))
	for i, m := range movies {
		if m.ID == "" {
			m.ID = r.newID()
		}
		models[i] = toModelMovie(m)
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "genre", "year", "director", "duration", "rate", "poster"}),
	}).Create(&models).Error
	if err != nil {
		return 0, err
	}
	return len(models), nil
}

func toDomainMovie(model MovieModel) movie.Movie {
	genres := make([]movie.Genre, len(model.Genre))
	for i, g := range model.Genre {
		genres[i] = movie.Genre(g)
	}
	return movie.Movie{
		ID:       model.ID,
		Title:    model.Title,
		Genre:    genres,
		Year:     model.Year,
		Director: model.Director,
		Duration: model.Duration,
		Rate:     model.Rate,
		Poster:   model.Poster,
	}
}

func toModelMovie(m movie.Movie) MovieModel {
	genres := make(pq.StringArray, len(m.Genre))
	for i, g := range m.Genre {
		genres[i] = string(g)
	}
	return MovieModel{
		ID:       m.ID,
		Title:    m.Title,
		Genre:    genres,
		Year:     m.Year,
		Director: m.Director,
		Duration: m.Duration,
		Rate:     m.Rate,
		Poster:   m.Poster,
	}
}
