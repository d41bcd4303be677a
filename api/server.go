package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/vitalog-org/vitalog/auth"
	"github.com/vitalog-org/vitalog/errors"
)

func NewServer(handler *Handler, healthCheck *HealthCheck) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// Skip auth and logging for the readiness probe
	skipper := RouteSkipper([]string{"/ready"})
	authMiddleware := auth.NewAuthMiddleware(auth.AuthMiddlewareOpts{
		Skipper: skipper,
	})
	loggerConfig := middleware.DefaultLoggerConfig
	loggerConfig.Skipper = skipper
	loggerMiddleware := middleware.LoggerWithConfig(loggerConfig)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(loggerMiddleware)
	e.Use(authMiddleware)

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/ready", healthCheck.Ready)
	RegisterHandlers(e, handler)

	return e, nil
}

func RegisterHandlers(e *echo.Echo, h *Handler) {
	e.POST("/v1/users/:userId/measurements", h.RecordMeasurement)
	e.POST("/v1/users/:userId/measurements/batch", h.RecordMeasurementBatch)
	e.GET("/v1/users/:userId/measurements", h.ListMeasurements)
	e.GET("/v1/users/:userId/measurements/latest", h.GetLatestMeasurements)
	e.GET("/v1/users/:userId/measurements/stats", h.GetMeasurementStats)
	e.DELETE("/v1/users/:userId/measurements/:id", h.DeleteMeasurement)

	e.GET("/v1/users/:userId/insights", h.ListInsights)
	e.POST("/v1/users/:userId/insights/:id/read", h.MarkInsightRead)

	e.POST("/v1/users/:userId/suggestions", h.ProposeSuggestion)
	e.GET("/v1/users/:userId/suggestions/pending", h.ListPendingSuggestions)
	e.POST("/v1/users/:userId/suggestions/:id/respond", h.RespondToSuggestion)

	e.POST("/v1/users/:userId/schedules", h.CreateSchedule)
	e.GET("/v1/users/:userId/schedules", h.ListSchedules)
	e.DELETE("/v1/users/:userId/schedules/:id", h.DeactivateSchedule)

	e.POST("/v1/users/:userId/medication-logs", h.LogDose)
	e.GET("/v1/users/:userId/medication-logs", h.ListLogs)
}
