package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"skycast/internal/repository"
)

// UserHandler exposes inspection endpoints over the credential store. These
// back the /test routes used during local development and are not part of the
// authenticated API surface.
type UserHandler struct {
	users repository.UserRepository
}

// NewUserHandler creates a handler layer.
func NewUserHandler(users repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// ListUsers godoc
// @Summary List users
// @Tags test
// @Produce json
// @Success 200 {array} model.User
// @Router /test/users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

// GetUserByUsername godoc
// @Summary Get user by username
// @Tags test
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} model.User
// @Failure 404 {object} map[string]string
// @Router /test/users/{username} [get]
func (h *UserHandler) GetUserByUsername(c echo.Context) error {
	user, err := h.users.FindByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		if repository.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, user)
}

// GetUserByEmail godoc
// @Summary Get user by email
// @Tags test
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} model.User
// @Failure 404 {object} map[string]string
// @Router /test/users/email/{email} [get]
func (h *UserHandler) GetUserByEmail(c echo.Context) error {
	user, err := h.users.FindByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		if repository.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, user)
}

// CountUsers godoc
// @Summary Count users
// @Tags test
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /test/users/count [get]
func (h *UserHandler) CountUsers(c echo.Context) error {
	count, err := h.users.Count(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]int64{"count": count})
}

// DeleteUser godoc
// @Summary Delete user by username
// @Tags test
// @Param username path string true "Username"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /test/users/{username} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.users.DeleteByUsername(c.Request().Context(), c.Param("username")); err != nil {
		if repository.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
