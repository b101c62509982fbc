package records

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/medgate/medgate/internal/domain/visits"
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
	api.GET("/records/vital-signs", h.ListVitals)
	api.POST("/records/vital-signs", h.SubmitVital)
	api.DELETE("/records/vital-signs/:id", h.DeleteVital)

	api.GET("/records/treatments", h.ListTreatments)
	api.POST("/records/treatments", h.SubmitTreatment)
	api.DELETE("/records/treatments/:id", h.DeleteTreatment)

	api.GET("/records/diagnoses", h.ListDiagnoses)
	api.POST("/records/diagnoses", h.SubmitDiagnosis)
	api.DELETE("/records/diagnoses/:id", h.DeleteDiagnosis)

	api.GET("/records/prescriptions", h.ListPrescriptions)
	api.POST("/records/prescriptions", h.SubmitPrescription)
	api.DELETE("/records/prescriptions/:id", h.DeletePrescription)
	api.PATCH("/records/prescriptions/:id/dispense", h.DispensePrescription)
}

func filterFrom(c echo.Context) Filter {
	return Filter{
		VisitID:       query.Int64(c, "visit"),
		StaffID:       query.Int64(c, "staff"),
		IsPrimary:     query.Bool(c, "is_primary"),
		TreatmentType: c.QueryParam("treatment_type"),
		IsDispensed:   query.Bool(c, "is_dispensed"),
	}
}

func (h *Handler) ListVitals(c echo.Context) error {
	return listPage(c, h.svc.ListVitals)
}

func (h *Handler) SubmitVital(c echo.Context) error {
	return submitPage[visits.VitalSign](c, h.svc.SubmitVital, "Vital signs recorded")
}

func (h *Handler) DeleteVital(c echo.Context) error {
	return deletePage(c, h.svc.DeleteVital, "Vital signs entry deleted")
}

func (h *Handler) ListTreatments(c echo.Context) error {
	return listPage(c, h.svc.ListTreatments)
}

func (h *Handler) SubmitTreatment(c echo.Context) error {
	return submitPage[visits.Treatment](c, h.svc.SubmitTreatment, "Treatment saved")
}

func (h *Handler) DeleteTreatment(c echo.Context) error {
	return deletePage(c, h.svc.DeleteTreatment, "Treatment deleted")
}

func (h *Handler) ListDiagnoses(c echo.Context) error {
	return listPage(c, h.svc.ListDiagnoses)
}

func (h *Handler) SubmitDiagnosis(c echo.Context) error {
	return submitPage[visits.Diagnosis](c, h.svc.SubmitDiagnosis, "Diagnosis saved")
}

func (h *Handler) DeleteDiagnosis(c echo.Context) error {
	return deletePage(c, h.svc.DeleteDiagnosis, "Diagnosis deleted")
}

func (h *Handler) ListPrescriptions(c echo.Context) error {
	return listPage(c, h.svc.ListPrescriptions)
}

func (h *Handler) SubmitPrescription(c echo.Context) error {
	return submitPage[visits.Prescription](c, h.svc.SubmitPrescription, "Prescription saved")
}

func (h *Handler) DeletePrescription(c echo.Context) error {
	return deletePage(c, h.svc.DeletePrescription, "Prescription deleted")
}

func (h *Handler) DispensePrescription(c echo.Context) error {
	return deletePage(c, h.svc.DispensePrescription, "Prescription dispensed")
}

func listPage[R any](c echo.Context, list func(context.Context, Filter) ([]R, error)) error {
	rows, err := list(c.Request().Context(), filterFrom(c))
	if err != nil {
		log.Error().Err(err).Str("path", c.Path()).Msg("list records failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, rows)
}

func submitPage[T, R any](c echo.Context, submit func(context.Context, T) ([]R, error), msg string) error {
	var draft T
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, feedback.Error("invalid request body"))
	}
	rows, err := submit(c.Request().Context(), draft)
	if err != nil {
		log.Error().Err(err).Str("path", c.Path()).Msg("save record failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, feedback.Success(rows, msg))
}

func deletePage[R any](c echo.Context, del func(context.Context, int64) ([]R, error), msg string) error {
	id, err := query.ID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, feedback.Error("invalid id"))
	}
	rows, err := del(c.Request().Context(), id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Str("path", c.Path()).Msg("record action failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, feedback.Success(rows, msg))
}
