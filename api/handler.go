package api

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/vitalog-org/vitalog/insights"
	"github.com/vitalog-org/vitalog/measurements"
	"github.com/vitalog-org/vitalog/medications"
	"github.com/vitalog-org/vitalog/store"
)

type Handler struct {
	measurements measurements.Service
	insights     insights.Service
	medications  medications.Manager
}

type Params struct {
	fx.In

	Measurements measurements.Service
	Insights     insights.Service
	Medications  medications.Manager
}

func NewHandler(p Params) *Handler {
	return &Handler{
		measurements: p.Measurements,
		insights:     p.Insights,
		medications:  p.Medications,
	}
}

func pagination(c echo.Context) store.Pagination {
	page := store.DefaultPagination()
	if offset := c.QueryParam("offset"); offset != "" {
		if parsed, err := strconv.Atoi(offset); err == nil && parsed >= 0 {
			page.Offset = parsed
		}
	}
	if limit := c.QueryParam("limit"); limit != "" {
		if parsed, err := strconv.Atoi(limit); err == nil && parsed > 0 {
			page.Limit = parsed
		}
	}
	return page
}
