package db

import (
	"context"
	"strings"

	"movie_rental_api/models"

	"gorm.io/gorm"
)

// Movies

func (r *Repo) CreateMovie(ctx context.Context, m *models.Movie) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *Repo) FindMovieByID(ctx context.Context, id int64) (*models.Movie, error) {
	var m models.Movie
	if err := r.DB.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

type ListMoviesResult struct {
	Movies []models.Movie `json:"movies"`
	Total  int64          `json:"total"`
}

// 分页 + 标题关键词
func (r *Repo) ListMovies(ctx context.Context, q string, page, size int) (ListMoviesResult, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 20
	}

	tx := r.DB.WithContext(ctx).Model(&models.Movie{})
	if q = strings.TrimSpace(q); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(title) LIKE ?", like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return ListMoviesResult{}, err
	}

	var movies []models.Movie
	if err := tx.
		Order("id").
		Offset((page - 1) * size).
		Limit(size).
		Find(&movies).Error; err != nil {
		return ListMoviesResult{}, err
	}
	return ListMoviesResult{Movies: movies, Total: total}, nil
}

func (r *Repo) UpdateMovie(ctx context.Context, m *models.Movie) error {
	return r.DB.WithContext(ctx).Save(m).Error
}

func (r *Repo) DeleteMovie(ctx context.Context, id int64) error {
	res := r.DB.WithContext(ctx).Delete(&models.Movie{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Lookup tables

func (r *Repo) ListGenres(ctx context.Context) ([]models.Genre, error) {
	var gs []models.Genre
	err := r.DB.WithContext(ctx).Order("id").Find(&gs).Error
	return gs, err
}

func (r *Repo) ListFormats(ctx context.Context) ([]models.Format, error) {
	var fs []models.Format
	err := r.DB.WithContext(ctx).Order("id").Find(&fs).Error
	return fs, err
}

// Locations

func (r *Repo) CreateLocation(ctx context.Context, l *models.Location) error {
	return r.DB.WithContext(ctx).Create(l).Error
}

func (r *Repo) FindLocationByID(ctx context.Context, id int64) (*models.Location, error) {
	var l models.Location
	if err := r.DB.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *Repo) ListLocations(ctx context.Context) ([]models.Location, error) {
	var ls []models.Location
	err := r.DB.WithContext(ctx).Order("id").Find(&ls).Error
	return ls, err
}
