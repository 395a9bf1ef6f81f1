package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"skycast/internal/model"
	"skycast/internal/repository"
)

// SnapshotHandler exposes inspection endpoints over the weather cache store,
// backing the /test routes used during local development.
type SnapshotHandler struct {
	snapshots repository.WeatherRepository
}

// NewSnapshotHandler creates a new snapshot handler.
func NewSnapshotHandler(snapshots repository.WeatherRepository) *SnapshotHandler {
	return &SnapshotHandler{snapshots: snapshots}
}

// CreateSnapshotRequest represents a manually seeded cache row.
type CreateSnapshotRequest struct {
	CityName    string  `json:"city_name" validate:"required"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Icon        string  `json:"icon"`
	Pressure    int     `json:"pressure"`
}

// ListSnapshots godoc
// @Summary List cached weather snapshots
// @Tags test
// @Produce json
// @Success 200 {array} model.WeatherSnapshot
// @Router /test/weather [get]
func (h *SnapshotHandler) ListSnapshots(c echo.Context) error {
	snapshots, err := h.snapshots.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, snapshots)
}

// CreateSnapshot godoc
// @Summary Seed a weather snapshot row
// @Tags test
// @Accept json
// @Produce json
// @Param request body CreateSnapshotRequest true "Snapshot data"
// @Success 200 {object} model.WeatherSnapshot
// @Failure 400 {object} map[string]string
// @Router /test/weather [post]
func (h *SnapshotHandler) CreateSnapshot(c echo.Context) error {
	var req CreateSnapshotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	snapshot := &model.WeatherSnapshot{
		CityName:    req.CityName,
		Temperature: req.Temperature,
		FeelsLike:   req.FeelsLike,
		Description: req.Description,
		Humidity:    req.Humidity,
		WindSpeed:   req.WindSpeed,
		Icon:        req.Icon,
		Pressure:    req.Pressure,
		LastUpdated: time.Now(),
	}
	if err := h.snapshots.Save(c.Request().Context(), snapshot); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, snapshot)
}

// GetSnapshotByCity godoc
// @Summary Latest snapshot for a city regardless of freshness
// @Tags test
// @Produce json
// @Param cityName path string true "City name"
// @Success 200 {object} model.WeatherSnapshot
// @Failure 404 {object} map[string]string
// @Router /test/weather/{cityName} [get]
func (h *SnapshotHandler) GetSnapshotByCity(c echo.Context) error {
	snapshot, err := h.snapshots.FindByCity(c.Request().Context(), c.Param("cityName"))
	if err != nil {
		if repository.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "no snapshot for city")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, snapshot)
}

// CountSnapshots godoc
// @Summary Count cached snapshots
// @Tags test
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /test/weather/count [get]
func (h *SnapshotHandler) CountSnapshots(c echo.Context) error {
	count, err := h.snapshots.Count(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]int64{"count": count})
}
