package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"skycast/internal/auth"
	"skycast/internal/config"
	"skycast/internal/handler"
	"skycast/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	weatherHandler *handler.WeatherHandler,
	healthHandler *handler.HealthHandler,
	userHandler *handler.UserHandler,
	snapshotHandler *handler.SnapshotHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/health", healthHandler.Health)

	// Local development inspection routes
	api.GET("/test/users", userHandler.ListUsers)
	api.GET("/test/users/count", userHandler.CountUsers)
	api.GET("/test/users/email/:email", userHandler.GetUserByEmail)
	api.GET("/test/users/:username", userHandler.GetUserByUsername)
	api.DELETE("/test/users/:username", userHandler.DeleteUser)
	api.GET("/test/weather", snapshotHandler.ListSnapshots)
	api.POST("/test/weather", snapshotHandler.CreateSnapshot)
	api.GET("/test/weather/count", snapshotHandler.CountSnapshots)
	api.GET("/test/weather/:cityName", snapshotHandler.GetSnapshotByCity)

	// Secured routes (require a bearer token with role USER)
	secured := api.Group("/weather", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}), RequireRole(model.RoleUser))

	secured.GET("", weatherHandler.SearchWeather)
	secured.GET("/:city", weatherHandler.GetWeather)
}

// RequireRole rejects requests whose token does not carry the given role.
// Token validation failures resolve to 401/403, never a 500.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok || !claims.HasRole(role) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
