package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"skycast/internal/config"
)

// HealthHandler reports service status and configuration readiness.
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Health godoc
// @Summary Service health and configuration status
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":           "UP",
		"apiKeyConfigured": h.cfg.WeatherAPIConfigured(),
		"apiBaseUrl":       h.cfg.WeatherBaseURL,
		"jwtExpiration":    h.cfg.JWTExpiration.String(),
	})
}
