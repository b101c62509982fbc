package visits

import (
	"context"
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
	api.GET("/visits", h.List)
	api.GET("/visits/active", h.Active)
	api.GET("/visits/stats", h.Stats)
	api.POST("/visits", h.Save)
	api.DELETE("/visits/:id", h.Delete)
	api.PATCH("/visits/:id/discharge", h.Discharge)
	api.GET("/visits/:id/aggregate", h.Aggregate)
	api.GET("/visits/beds/available", h.AvailableBeds)
	api.PATCH("/admissions/:id/discharge", h.DischargeAdmission)

	api.GET("/visits/:id/vital-signs", h.ListVitals)
	api.POST("/visits/:id/vital-signs", h.SubmitVital)
	api.DELETE("/visits/:id/vital-signs/:subid", h.DeleteVital)

	api.GET("/visits/:id/treatments", h.ListTreatments)
	api.POST("/visits/:id/treatments", h.SubmitTreatment)
	api.DELETE("/visits/:id/treatments/:subid", h.DeleteTreatment)

	api.GET("/visits/:id/diagnoses", h.ListDiagnoses)
	api.POST("/visits/:id/diagnoses", h.SubmitDiagnosis)
	api.DELETE("/visits/:id/diagnoses/:subid", h.DeleteDiagnosis)

	api.GET("/visits/:id/prescriptions", h.ListPrescriptions)
	api.POST("/visits/:id/prescriptions", h.SubmitPrescription)
	api.DELETE("/visits/:id/prescriptions/:subid", h.DeletePrescription)
	api.PATCH("/visits/:id/prescriptions/:subid/dispense", h.DispensePrescription)
}

func (h *Handler) List(c echo.Context) error {
	f := Filter{
		Query:       c.QueryParam("q"),
		PatientID:   query.Int64(c, "patient_id"),
		TriageLevel: query.Int(c, "triage_level"),
		IsAdmitted:  query.Bool(c, "is_admitted"),
		Active:      query.Bool(c, "active"),
	}
	items, err := h.svc.List(c.Request().Context(), f)
	if err != nil {
		log.Error().Err(err).Msg("list visits failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Active(c echo.Context) error {
	items, err := h.svc.Active(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("list active visits failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Stats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("visit stats failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, stats)
}

// Save runs the two-phase visit write. A failed first phase is the request's
// error; a failed second phase still returns the SaveResult, with a warning
// envelope so the caller knows the visit itself is saved.
func (h *Handler) Save(c echo.Context) error {
	var draft Draft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, feedback.Error("invalid request body"))
	}
	res, err := h.svc.Save(c.Request().Context(), draft)
	if err != nil {
		log.Error().Err(err).Int64("visit_id", draft.ID).Msg("save visit failed")
		status, env := feedback.FromError(err)
		env.Data = res
		return c.JSON(status, env)
	}
	if res.Admission != nil && !res.Admission.OK {
		log.Warn().Str("reason", res.Admission.Message).Msg("visit saved but admission write failed")
		return c.JSON(http.StatusOK, feedback.Warning(res, "Visit saved, but the admission could not be saved: "+res.Admission.Message))
	}
	msg := "Visit added successfully"
	if draft.ID > 0 {
		msg = "Visit updated successfully"
	}
	return c.JSON(http.StatusOK, feedback.Success(res, msg))
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := query.ID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, feedback.Error("invalid id"))
	}
	items, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		log.Error().Err(err).Int64("visit_id", id).Msg("delete visit failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, feedback.Success(items, "Visit deleted successfully"))
}

func (h *Handler) Discharge(c echo.Context) error {
	id, err := query.ID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, feedback.Error("invalid id"))
	}
	var body struct {
		DischargeDiagnosis    string `json:"discharge_diagnosis"`
		DischargeInstructions string `json:"discharge_instructions"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, feedback.Error("invalid request body"))
	}
	visit, err := h.svc.Discharge(c.Request().Context(), id, body.DischargeDiagnosis, body.DischargeInstructions)
	if err != nil {
		log.Error().Err(err).Int64("visit_id", id).Msg("discharge visit failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, feedback.Success(visit, "Patient discharged"))
}

func (h *Handler) DischargeAdmission(c echo.Context) error {
	id, err := query.ID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, feedback.Error("invalid id"))
	}
	adm, err := h.svc.DischargeAdmission(c.Request().Context(), id)
	if err != nil {
		log.Error().Err(err).Int64("admission_id", id).Msg("discharge admission failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, feedback.Success(adm, "Admission discharged"))
}

func (h *Handler) Aggregate(c echo.Context) error {
	id, err := query.ID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, feedback.Error("invalid id"))
	}
	agg, err := h.svc.Aggregate(c.Request().Context(), id)
	if err != nil {
		log.Error().Err(err).Int64("visit_id", id).Msg("load visit aggregate failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, agg)
}

func (h *Handler) AvailableBeds(c echo.Context) error {
	items, err := h.svc.AvailableBeds(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("refresh available beds failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, items)
}

// -- sub-resources --

func (h *Handler) ListVitals(c echo.Context) error {
	return listSub(c, h.svc.ListVitals)
}

func (h *Handler) SubmitVital(c echo.Context) error {
	return submitSub(c, h.svc.SubmitVital, "Vital signs recorded")
}

func (h *Handler) DeleteVital(c echo.Context) error {
	return deleteSub(c, h.svc.DeleteVital, "Vital signs entry deleted")
}

func (h *Handler) ListTreatments(c echo.Context) error {
	return listSub(c, h.svc.ListTreatments)
}

func (h *Handler) SubmitTreatment(c echo.Context) error {
	return submitSub(c, h.svc.SubmitTreatment, "Treatment saved")
}

func (h *Handler) DeleteTreatment(c echo.Context) error {
	return deleteSub(c, h.svc.DeleteTreatment, "Treatment deleted")
}

func (h *Handler) ListDiagnoses(c echo.Context) error {
	return listSub(c, h.svc.ListDiagnoses)
}

func (h *Handler) SubmitDiagnosis(c echo.Context) error {
	return submitSub(c, h.svc.SubmitDiagnosis, "Diagnosis saved")
}

func (h *Handler) DeleteDiagnosis(c echo.Context) error {
	return deleteSub(c, h.svc.DeleteDiagnosis, "Diagnosis deleted")
}

func (h *Handler) ListPrescriptions(c echo.Context) error {
	return listSub(c, h.svc.ListPrescriptions)
}

func (h *Handler) SubmitPrescription(c echo.Context) error {
	return submitSub(c, h.svc.SubmitPrescription, "Prescription saved")
}

func (h *Handler) DeletePrescription(c echo.Context) error {
	return deleteSub(c, h.svc.DeletePrescription, "Prescription deleted")
}

func (h *Handler) DispensePrescription(c echo.Context) error {
	return deleteSub(c, h.svc.DispensePrescription, "Prescription dispensed")
}

func listSub[T any](c echo.Context, list func(context.Context, int64) ([]T, error)) error {
	visitID, err := query.ID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, feedback.Error("invalid visit id"))
	}
	items, err := list(c.Request().Context(), visitID)
	if err != nil {
		log.Error().Err(err).Int64("visit_id", visitID).Msg("list visit sub-resource failed")
		return c.JSON(feedback.FromError(err))
	}
	if items == nil {
		items = []T{}
	}
	return c.JSON(http.StatusOK, items)
}

func submitSub[T any](c echo.Context, submit func(context.Context, int64, T) ([]T, error), msg string) error {
	visitID, err := query.ID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, feedback.Error("invalid visit id"))
	}
	var draft T
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, feedback.Error("invalid request body"))
	}
	items, err := submit(c.Request().Context(), visitID, draft)
	if err != nil {
		log.Error().Err(err).Int64("visit_id", visitID).Msg("save visit sub-resource failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, feedback.Success(items, msg))
}

func deleteSub[T any](c echo.Context, del func(context.Context, int64, int64) ([]T, error), msg string) error {
	visitID, err := query.ID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, feedback.Error("invalid visit id"))
	}
	id, err := query.ID(c, "subid")
	if err != nil {
		return c.JSON(http.StatusBadRequest, feedback.Error("invalid id"))
	}
	items, err := del(c.Request().Context(), visitID, id)
	if err != nil {
		log.Error().Err(err).Int64("visit_id", visitID).Int64("id", id).Msg("visit sub-resource action failed")
		return c.JSON(feedback.FromError(err))
	}
	return c.JSON(http.StatusOK, feedback.Success(items, msg))
}
