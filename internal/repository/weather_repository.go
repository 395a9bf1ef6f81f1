package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"skycast/internal/model"
)

// WeatherRepository defines weather cache store operations. City matching is
// case-insensitive on both paths; whitespace and diacritics are not
// normalized.
type WeatherRepository interface {
	// FindFresh returns the most recent snapshot for the city with
	// last_updated strictly after the cutoff, or nil when none qualifies.
	FindFresh(ctx context.Context, cityName string, after time.Time) (*model.WeatherSnapshot, error)
	Save(ctx context.Context, snapshot *model.WeatherSnapshot) error
	FindByCity(ctx context.Context, cityName string) (*model.WeatherSnapshot, error)
	List(ctx context.Context) ([]model.WeatherSnapshot, error)
	Count(ctx context.Context) (int64, error)
}

type weatherRepository struct {
	db *gorm.DB
}

// NewWeatherRepository builds a GORM-backed repository.
func NewWeatherRepository(db *gorm.DB) WeatherRepository {
	return &weatherRepository{db: db}
}

func (r *weatherRepository) FindFresh(ctx context.Context, cityName string, after time.Time) (*model.WeatherSnapshot, error) {
	var snapshot model.WeatherSnapshot
	err := r.db.WithContext(ctx).
		Where("LOWER(city_name) = LOWER(?) AND last_updated > ?", cityName, after).
		Order("last_updated DESC").
		First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *weatherRepository) Save(ctx context.Context, snapshot *model.WeatherSnapshot) error {
	// Insert, never update: the table keeps history and readers pick the
	// freshest row.
	return r.db.WithContext(ctx).Create(snapshot).Error
}

func (r *weatherRepository) FindByCity(ctx context.Context, cityName string) (*model.WeatherSnapshot, error) {
	var snapshot model.WeatherSnapshot
	err := r.db.WithContext(ctx).
		Where("LOWER(city_name) = LOWER(?)", cityName).
		Order("last_updated DESC").
		First(&snapshot).Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *weatherRepository) List(ctx context.Context) ([]model.WeatherSnapshot, error) {
	var snapshots []model.WeatherSnapshot
	if err := r.db.WithContext(ctx).Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}

func (r *weatherRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.WeatherSnapshot{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
