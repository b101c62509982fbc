package inventory

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
	api.GET("/inventory", h.List)
	api.POST("/inventory", h.Submit)
	api.DELETE("/inventory/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	f := Filter{
		Query:       c.QueryParam("q"),
		Category:    c.QueryParam("category"),
		MinQuantity: query.Int(c, "min_quantity"),
		MaxQuantity: query.Int(c, "max_quantity"),
		LowStock:    query.Bool(c, "low_stock"),
	}
	items, err := h.svc.List(c.Request().Context(), f)
	if err != nil {
		log.Error().Err(err).Msg("list inventory failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Submit(c echo.Context) error {
	var draft Item
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, feedback.Error("invalid request body"))
	}
	items, err := h.svc.Submit(c.Request().Context(), draft)
	if err != nil {
		log.Error().Err(err).Int64("item_id", draft.ID).Msg("save inventory item failed")
		return c.JSON(feedback.FromError(err))
	}
	msg := "Item added successfully"
	if draft.ID > 0 {
		msg = "Item updated successfully"
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
		log.Error().Err(err).Int64("item_id", id).Msg("delete inventory item failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, feedback.Success(items, "Item deleted successfully"))
}
