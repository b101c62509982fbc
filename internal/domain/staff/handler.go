package staff

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/medgate/medgate/internal/platform/feedback"
	"github.com/medgate/medgate/pkg/query"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/staff", h.List)
	api.POST("/staff", h.Submit)
	api.DELETE("/staff/:id", h.Delete)
	api.GET("/staff/users", h.Users)
}

func (h *Handler) List(c echo.Context) error {
	f := Filter{
		Query:      c.QueryParam("q"),
		Role:       c.QueryParam("role"),
		Department: c.QueryParam("department"),
		IsActive:   query.Bool(c, "is_active"),
	}
	items, err := h.svc.List(c.Request().Context(), f)
	if err != nil {
		log.Error().Err(err).Msg("list staff failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, items)
}

// Users lists the auth service accounts a new profile can be linked to.
func (h *Handler) Users(c echo.Context) error {
	users, err := h.svc.Users(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("list assignable users failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) Submit(c echo.Context) error {
	var draft Draft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, feedback.Error("invalid request body"))
	}
	items, err := h.svc.Submit(c.Request().Context(), draft)
	if err != nil {
		log.Error().Err(err).Int64("staff_id", draft.ID).Msg("save staff failed")
		return c.JSON(feedback.FromError(err))
	}
	msg := "Staff member added successfully"
	if draft.ID > 0 {
		msg = "Staff member updated successfully"
	}
	return c.JSON(http.StatusOK, feedback.Success(items, msg))
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := query.ID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, feedback.Error("invalid id"))
	}
	items, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		log.Error().Err(err).Int64("staff_id", id).Msg("delete staff failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, feedback.Success(items, "Staff member deleted successfully"))
}
