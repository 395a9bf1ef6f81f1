package model

import "time"

// WeatherSnapshot is one cached weather record for a city at a point in time.
// Rows are inserted wholesale on a cache miss and never updated field by
// field; the table may retain history, readers only consult the most recent
// row fresher than the TTL cutoff.
type WeatherSnapshot struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CityName    string    `json:"city_name" gorm:"size:100;not null;index"`
	Temperature float64   `json:"temperature" gorm:"not null"`
	FeelsLike   float64   `json:"feels_like"`
	Description string    `json:"description" gorm:"size:255"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Icon        string    `json:"icon" gorm:"size:16"`
	Pressure    int       `json:"pressure"`
	LastUpdated time.Time `json:"last_updated" gorm:"index"`
}
