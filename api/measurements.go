package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vitalog-org/vitalog/auth"
	"github.com/vitalog-org/vitalog/errors"
	"github.com/vitalog-org/vitalog/measurements"
)

// RecordMeasurement
// (POST /v1/users/:userId/measurements)
func (h *Handler) RecordMeasurement(c echo.Context) error {
	userId := c.Param("userId")
	if err := auth.AuthorizeUser(c, userId); err != nil {
		return err
	}

	raw := measurements.Raw{}
	if err := c.Bind(&raw); err != nil {
		return fmt.Errorf("%w: invalid measurement payload", errors.BadRequest)
	}

	measurement, err := h.measurements.Record(c.Request().Context(), userId, raw)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, measurement)
}

// RecordMeasurementBatch
// (POST /v1/users/:userId/measurements/batch)
func (h *Handler) RecordMeasurementBatch(c echo.Context) error {
	userId := c.Param("userId")
	if err := auth.AuthorizeUser(c, userId); err != nil {
		return err
	}

	var items []measurements.Raw
	if err := c.Bind(&items); err != nil {
		return fmt.Errorf("%w: batch must be an array of measurements", errors.BadRequest)
	}

	result, err := h.measurements.RecordBatch(c.Request().Context(), userId, items)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// ListMeasurements
// (GET /v1/users/:userId/measurements)
func (h *Handler) ListMeasurements(c echo.Context) error {
	userId := c.Param("userId")
	if err := auth.AuthorizeUser(c, userId); err != nil {
		return err
	}

	filter := &measurements.Filter{}
	if measurementType := c.QueryParam("type"); measurementType != "" {
		t := measurements.Type(measurementType)
		filter.Type = &t
	}
	var err error
	if filter.From, err = timeQueryParam(c, "from"); err != nil {
		return err
	}
	if filter.To, err = timeQueryParam(c, "to"); err != nil {
		return err
	}

	list, err := h.measurements.List(c.Request().Context(), userId, filter, pagination(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list)
}

// GetLatestMeasurements
// (GET /v1/users/:userId/measurements/latest)
func (h *Handler) GetLatestMeasurements(c echo.Context) error {
	userId := c.Param("userId")
	if err := auth.AuthorizeUser(c, userId); err != nil {
		return err
	}

	var types []measurements.Type
	if param := c.QueryParam("types"); param != "" {
		for _, t := range strings.Split(param, ",") {
			types = append(types, measurements.Type(strings.TrimSpace(t)))
		}
	}

	latest, err := h.measurements.LatestByType(c.Request().Context(), userId, types)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, latest)
}

// GetMeasurementStats
// (GET /v1/users/:userId/measurements/stats)
func (h *Handler) GetMeasurementStats(c echo.Context) error {
	userId := c.Param("userId")
	if err := auth.AuthorizeUser(c, userId); err != nil {
		return err
	}

	measurementType := c.QueryParam("type")
	if measurementType == "" {
		return fmt.Errorf("%w: type is required", errors.BadRequest)
	}

	windowDays := 0
	if param := c.QueryParam("windowDays"); param != "" {
		parsed, err := strconv.Atoi(param)
		if err != nil || parsed <= 0 {
			return fmt.Errorf("%w: windowDays must be a positive integer", errors.BadRequest)
		}
		windowDays = parsed
	}

	stats, err := h.measurements.GetStats(c.Request().Context(), userId, measurements.Type(measurementType), windowDays)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

// DeleteMeasurement
// (DELETE /v1/users/:userId/measurements/:id)
func (h *Handler) DeleteMeasurement(c echo.Context) error {
	userId := c.Param("userId")
	if err := auth.AuthorizeUser(c, userId); err != nil {
		return err
	}

	if err := h.measurements.Delete(c.Request().Context(), userId, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func timeQueryParam(c echo.Context, name string) (*time.Time, error) {
	param := c.QueryParam(name)
	if param == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, param)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an RFC3339 timestamp", errors.BadRequest, name)
	}
	return &parsed, nil
}
