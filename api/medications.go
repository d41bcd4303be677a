package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vitalog-org/vitalog/auth"
	"github.com/vitalog-org/vitalog/errors"
	"github.com/vitalog-org/vitalog/medications"
)

// ProposeSuggestion
// (POST /v1/users/:userId/suggestions)
func (h *Handler) ProposeSuggestion(c echo.Context) error {
	doctorId, err := auth.AuthorizeClinician(c)
	if err != nil {
		return err
	}

	req := medications.ProposeRequest{}
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: invalid suggestion payload", errors.BadRequest)
	}

	suggestion, err := h.medications.Propose(c.Request().Context(), doctorId, c.Param("userId"), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, suggestion)
}

// ListPendingSuggestions
// (GET /v1/users/:userId/suggestions/pending)
func (h *Handler) ListPendingSuggestions(c echo.Context) error {
	userId := c.Param("userId")
	if err := auth.AuthorizeUser(c, userId); err != nil {
		return err
	}

	suggestions, err := h.medications.ListPending(c.Request().Context(), userId)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, suggestions)
}

// RespondToSuggestion
// (POST /v1/users/:userId/suggestions/:id/respond)
func (h *Handler) RespondToSuggestion(c echo.Context) error {
	userId := c.Param("userId")
	if err := auth.AuthorizeUser(c, userId); err != nil {
		return err
	}

	req := medications.RespondRequest{}
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: invalid response payload", errors.BadRequest)
	}

	response, err := h.medications.Respond(c.Request().Context(), userId, c.Param("id"), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response)
}

// CreateSchedule
// (POST /v1/users/:userId/schedules)
func (h *Handler) CreateSchedule(c echo.Context) error {
	userId := c.Param("userId")
	if err := auth.AuthorizeUser(c, userId); err != nil {
		return err
	}

	req := medications.ScheduleRequest{}
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: invalid schedule payload", errors.BadRequest)
	}

	schedule, err := h.medications.CreateSchedule(c.Request().Context(), userId, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, schedule)
}

// ListSchedules
// (GET /v1/users/:userId/schedules)
func (h *Handler) ListSchedules(c echo.Context) error {
	userId := c.Param("userId")
	if err := auth.AuthorizeUser(c, userId); err != nil {
		return err
	}

	activeOnly := c.QueryParam("active") == "true"
	schedules, err := h.medications.ListSchedules(c.Request().Context(), userId, activeOnly, pagination(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, schedules)
}

// DeactivateSchedule
// (DELETE /v1/users/:userId/schedules/:id)
func (h *Handler) DeactivateSchedule(c echo.Context) error {
	userId := c.Param("userId")
	if err := auth.AuthorizeUser(c, userId); err != nil {
		return err
	}

	schedule, err := h.medications.DeactivateSchedule(c.Request().Context(), userId, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, schedule)
}

// LogDose
// (POST /v1/users/:userId/medication-logs)
func (h *Handler) LogDose(c echo.Context) error {
	userId := c.Param("userId")
	if err := auth.AuthorizeUser(c, userId); err != nil {
		return err
	}

	req := medications.LogRequest{}
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: invalid log payload", errors.BadRequest)
	}

	log, err := h.medications.LogDose(c.Request().Context(), userId, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, log)
}

// ListLogs
// (GET /v1/users/:userId/medication-logs)
func (h *Handler) ListLogs(c echo.Context) error {
	userId := c.Param("userId")
	if err := auth.AuthorizeUser(c, userId); err != nil {
		return err
	}

	filter := &medications.LogFilter{}
	var err error
	if filter.From, err = timeQueryParam(c, "from"); err != nil {
		return err
	}
	if filter.To, err = timeQueryParam(c, "to"); err != nil {
		return err
	}

	logs, err := h.medications.ListLogs(c.Request().Context(), userId, filter, pagination(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, logs)
}
