package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vitalog-org/vitalog/auth"
	"github.com/vitalog-org/vitalog/insights"
)

// ListInsights
// (GET /v1/users/:userId/insights)
func (h *Handler) ListInsights(c echo.Context) error {
	userId := c.Param("userId")
	if err := auth.AuthorizeUser(c, userId); err != nil {
		return err
	}

	filter := &insights.Filter{
		UnreadOnly: c.QueryParam("unread") == "true",
	}
	if kind := c.QueryParam("kind"); kind != "" {
		k := insights.Kind(kind)
		filter.Kind = &k
	}

	list, err := h.insights.List(c.Request().Context(), userId, filter, pagination(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list)
}

// MarkInsightRead
// (POST /v1/users/:userId/insights/:id/read)
func (h *Handler) MarkInsightRead(c echo.Context) error {
	userId := c.Param("userId")
	if err := auth.AuthorizeUser(c, userId); err != nil {
		return err
	}

	insight, err := h.insights.MarkRead(c.Request().Context(), userId, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, insight)
}
