package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "skycast/internal/errors"
	"skycast/internal/service"
)

// MockWeatherService is a mock implementation of service.WeatherService.
type MockWeatherService struct {
	mock.Mock
}

func (m *MockWeatherService) Resolve(ctx context.Context, cityName string) (*service.WeatherView, error) {
	args := m.Called(ctx, cityName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.WeatherView), args.Error(1)
}

func newWeatherContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestWeatherHandler_GetWeather(t *testing.T) {
	view := &service.WeatherView{CityName: "London", Temperature: 14.2, Cached: true}

	mockSvc := new(MockWeatherService)
	mockSvc.On("Resolve", mock.Anything, "London").Return(view, nil)

	h := NewWeatherHandler(mockSvc)

	c, rec := newWeatherContext(t, "/api/weather/London")
	c.SetParamNames("city")
	c.SetParamValues("London")

	require.NoError(t, h.GetWeather(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cityName":"London"`)
	assert.Contains(t, rec.Body.String(), `"cached":true`)
}

func TestWeatherHandler_GetWeather_UpstreamFailure(t *testing.T) {
	mockSvc := new(MockWeatherService)
	mockSvc.On("Resolve", mock.Anything, "Nowhere").
		Return(nil, fmt.Errorf("%w: status 404", apperrors.ErrUpstream))

	h := NewWeatherHandler(mockSvc)

	c, _ := newWeatherContext(t, "/api/weather/Nowhere")
	c.SetParamNames("city")
	c.SetParamValues("Nowhere")

	err := h.GetWeather(c)
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, he.Code)
}

func TestWeatherHandler_SearchWeather(t *testing.T) {
	view := &service.WeatherView{CityName: "Paris", Cached: false}

	mockSvc := new(MockWeatherService)
	mockSvc.On("Resolve", mock.Anything, "Paris").Return(view, nil)

	h := NewWeatherHandler(mockSvc)

	c, rec := newWeatherContext(t, "/api/weather?q=Paris")

	require.NoError(t, h.SearchWeather(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cityName":"Paris"`)
}

func TestWeatherHandler_SearchWeather_MissingQuery(t *testing.T) {
	h := NewWeatherHandler(new(MockWeatherService))

	c, _ := newWeatherContext(t, "/api/weather")

	err := h.SearchWeather(c)
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}
