package patients

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
	api.GET("/patients", h.List)
	api.POST("/patients", h.Submit)
	api.GET("/patients/:id", h.Get)
	api.DELETE("/patients/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	f := Filter{
		Query:  c.QueryParam("q"),
		Gender: c.QueryParam("gender"),
		MinAge: query.Int(c, "min_age"),
		MaxAge: query.Int(c, "max_age"),
	}
	items, err := h.svc.List(c.Request().Context(), f)
	if err != nil {
		log.Error().Err(err).Msg("list patients failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := query.ID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, feedback.Error("invalid id"))
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Submit(c echo.Context) error {
	var draft Patient
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, feedback.Error("invalid request body"))
	}
	items, err := h.svc.Submit(c.Request().Context(), draft)
	if err != nil {
		log.Error().Err(err).Int64("patient_id", draft.ID).Msg("save patient failed")
		return c.JSON(feedback.FromError(err))
	}
	msg := "Patient added successfully"
	if draft.ID > 0 {
		msg = "Patient updated successfully"
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
		log.Error().Err(err).Int64("patient_id", id).Msg("delete patient failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, feedback.Success(items, "Patient deleted successfully"))
}
