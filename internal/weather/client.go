package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "skycast/internal/errors"
)

// Main carries the temperature block of a current-weather payload.
type Main struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
	Pressure  int     `json:"pressure"`
}

// Condition is one entry of the weather-condition list.
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Wind carries wind speed and direction.
type Wind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg,omitempty"`
}

// Current mirrors the provider's current-weather JSON payload.
type Current struct {
	Name    string      `json:"name"`
	Main    Main        `json:"main"`
	Weather []Condition `json:"weather"`
	Wind    Wind        `json:"wind"`
	Dt      int64       `json:"dt"`
}

// Client abstracts the remote weather provider.
type Client interface {
	Fetch(ctx context.Context, cityName string) (*Current, error)
}

// OpenWeatherClient fetches current weather from the OpenWeatherMap API.
type OpenWeatherClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// Ensure OpenWeatherClient implements Client
var _ Client = (*OpenWeatherClient)(nil)

// NewOpenWeatherClient creates a provider client. All requests are bounded by
// the given timeout in addition to the caller's context.
func NewOpenWeatherClient(baseURL, apiKey string, timeout time.Duration) *OpenWeatherClient {
	return &OpenWeatherClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves current weather for a city in metric units. Transport
// errors, non-2xx statuses, and malformed bodies all surface as ErrUpstream.
func (c *OpenWeatherClient) Fetch(ctx context.Context, cityName string) (*Current, error) {
	query := url.Values{}
	query.Set("q", cityName)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", apperrors.ErrUpstream, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch weather for %q: %v", apperrors.ErrUpstream, cityName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: provider returned status %d for %q", apperrors.ErrUpstream, resp.StatusCode, cityName)
	}

	var current Current
	if err := json.NewDecoder(resp.Body).Decode(&current); err != nil {
		return nil, fmt.Errorf("%w: decode provider response for %q: %v", apperrors.ErrUpstream, cityName, err)
	}

	return &current, nil
}
