package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"skycast/internal/cache"
	apperrors "skycast/internal/errors"
	"skycast/internal/model"
	"skycast/internal/repository"
	"skycast/internal/weather"
)

const hotCacheKeyPrefix = "weather:"

// WeatherView is the client-facing shape of a weather lookup.
type WeatherView struct {
	CityName    string  `json:"cityName"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feelsLike"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Icon        string  `json:"icon"`
	Pressure    int     `json:"pressure"`
	Cached      bool    `json:"cached"`
	LastUpdated string  `json:"lastUpdated"`
}

// WeatherService resolves current weather for a city, consulting the cache
// tiers before the remote provider.
type WeatherService interface {
	Resolve(ctx context.Context, cityName string) (*WeatherView, error)
}

type weatherService struct {
	snapshots repository.WeatherRepository
	provider  weather.Client
	hot       *cache.Client
	ttl       time.Duration
}

// NewWeatherService creates a new weather service. The hot cache client may
// be nil; the service then falls through to the snapshot store directly.
func NewWeatherService(snapshots repository.WeatherRepository, provider weather.Client, hot *cache.Client, ttl time.Duration) WeatherService {
	return &weatherService{
		snapshots: snapshots,
		provider:  provider,
		hot:       hot,
		ttl:       ttl,
	}
}

func hotCacheKey(cityName string) string {
	return hotCacheKeyPrefix + strings.ToLower(cityName)
}

// Resolve returns weather for the city. The read-then-write sequence on a
// miss is not atomic: concurrent misses for the same city may each call the
// provider and each write a snapshot, which is harmless (last write wins).
func (s *weatherService) Resolve(ctx context.Context, cityName string) (*WeatherView, error) {
	key := hotCacheKey(cityName)
	if data, _ := s.hot.Get(ctx, key); data != nil {
		var view WeatherView
		if err := json.Unmarshal(data, &view); err == nil {
			view.Cached = true
			return &view, nil
		}
	}

	cutoff := time.Now().Add(-s.ttl)
	snapshot, err := s.snapshots.FindFresh(ctx, cityName, cutoff)
	if err != nil {
		return nil, fmt.Errorf("%w: find fresh snapshot: %v", apperrors.ErrStorage, err)
	}
	if snapshot != nil {
		view := toView(snapshot, true)
		s.storeHot(ctx, key, view)
		return view, nil
	}

	current, err := s.provider.Fetch(ctx, cityName)
	if err != nil {
		return nil, err
	}

	snapshot = normalize(current)
	if err := s.snapshots.Save(ctx, snapshot); err != nil {
		// Non-fatal: the fetched result is still served.
		log.Printf("weather: cache write-back for %q failed: %v", cityName, err)
	}

	view := toView(snapshot, false)
	s.storeHot(ctx, key, view)
	return view, nil
}

// normalize maps a provider payload onto a snapshot, taking the first
// weather-condition entry and defaulting description/icon when the list is
// empty.
func normalize(current *weather.Current) *model.WeatherSnapshot {
	description, icon := "Unknown", ""
	if len(current.Weather) > 0 {
		description = current.Weather[0].Description
		icon = current.Weather[0].Icon
	}

	return &model.WeatherSnapshot{
		CityName:    current.Name,
		Temperature: current.Main.Temp,
		FeelsLike:   current.Main.FeelsLike,
		Description: description,
		Humidity:    current.Main.Humidity,
		WindSpeed:   current.Wind.Speed,
		Icon:        icon,
		Pressure:    current.Main.Pressure,
		LastUpdated: time.Now(),
	}
}

func toView(snapshot *model.WeatherSnapshot, cached bool) *WeatherView {
	return &WeatherView{
		CityName:    snapshot.CityName,
		Temperature: snapshot.Temperature,
		FeelsLike:   snapshot.FeelsLike,
		Description: capitalize(snapshot.Description),
		Humidity:    snapshot.Humidity,
		WindSpeed:   snapshot.WindSpeed,
		Icon:        snapshot.Icon,
		Pressure:    snapshot.Pressure,
		Cached:      cached,
		LastUpdated: snapshot.LastUpdated.Format(time.RFC3339),
	}
}

func (s *weatherService) storeHot(ctx context.Context, key string, view *WeatherView) {
	if payload, err := json.Marshal(view); err == nil {
		_ = s.hot.Set(ctx, key, payload, s.ttl)
	}
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
