package beds

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
	api.GET("/beds", h.List)
	api.GET("/beds/available", h.Available)
	api.GET("/beds/stats", h.Stats)
	api.POST("/beds", h.Submit)
	api.DELETE("/beds/:id", h.Delete)
	api.PATCH("/beds/:id/clean", h.Clean)
}

func (h *Handler) List(c echo.Context) error {
	f := Filter{
		Query:       c.QueryParam("q"),
		Status:      c.QueryParam("status"),
		Location:    c.QueryParam("location"),
		IsIsolation: query.Bool(c, "is_isolation"),
	}
	items, err := h.svc.List(c.Request().Context(), f)
	if err != nil {
		log.Error().Err(err).Msg("list beds failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Available(c echo.Context) error {
	items, err := h.svc.Available(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("list available beds failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Stats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("bed stats failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) Submit(c echo.Context) error {
	var draft Bed
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, feedback.Error("invalid request body"))
	}
	items, err := h.svc.Submit(c.Request().Context(), draft)
	if err != nil {
		log.Error().Err(err).Int64("bed_id", draft.ID).Msg("save bed failed")
		return c.JSON(feedback.FromError(err))
	}
	msg := "Bed added successfully"
	if draft.ID > 0 {
		msg = "Bed updated successfully"
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
		log.Error().Err(err).Int64("bed_id", id).Msg("delete bed failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, feedback.Success(items, "Bed deleted successfully"))
}

func (h *Handler) Clean(c echo.Context) error {
	id, err := query.ID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, feedback.Error("invalid id"))
	}
	items, err := h.svc.Clean(c.Request().Context(), id)
	if err != nil {
		log.Error().Err(err).Int64("bed_id", id).Msg("clean bed failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, feedback.Success(items, "Bed marked as cleaned"))
}
