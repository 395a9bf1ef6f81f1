package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "skycast/internal/errors"
	"skycast/internal/service"
)

// WeatherHandler handles weather lookup endpoints.
type WeatherHandler struct {
	weatherService service.WeatherService
}

// NewWeatherHandler creates a new weather handler.
func NewWeatherHandler(weatherService service.WeatherService) *WeatherHandler {
	return &WeatherHandler{weatherService: weatherService}
}

// GetWeather godoc
// @Summary Current weather for a city
// @Tags weather
// @Produce json
// @Param city path string true "City name"
// @Success 200 {object} service.WeatherView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /weather/{city} [get]
func (h *WeatherHandler) GetWeather(c echo.Context) error {
	city := c.Param("city")
	if city == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "city is required")
	}
	return h.resolve(c, city)
}

// SearchWeather godoc
// @Summary Current weather for a city given as query parameter
// @Tags weather
// @Produce json
// @Param q query string true "City name"
// @Success 200 {object} service.WeatherView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /weather [get]
func (h *WeatherHandler) SearchWeather(c echo.Context) error {
	city := c.QueryParam("q")
	if city == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter q is required")
	}
	return h.resolve(c, city)
}

func (h *WeatherHandler) resolve(c echo.Context, city string) error {
	view, err := h.weatherService.Resolve(c.Request().Context(), city)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, view)
}
