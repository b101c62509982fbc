package records

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/medgate/medgate/internal/domain/patients"
	"github.com/medgate/medgate/internal/domain/staff"
	"github.com/medgate/medgate/internal/domain/visits"
	"github.com/medgate/medgate/pkg/listview"
	"github.com/medgate/medgate/pkg/lookup"
)

// PatientDirectory is the slice of the patient service the label tables need.
type PatientDirectory interface {
	List(ctx context.Context) ([]patients.Patient, error)
}

// VisitDirectory lists visits for the visit label table.
type VisitDirectory interface {
	List(ctx context.Context) ([]visits.Visit, error)
}

type Service struct {
	visits        VisitDirectory
	patients      PatientDirectory
	users         staff.UserDirectory
	vitals        visits.SubResourceRepository[visits.VitalSign]
	treatments    visits.SubResourceRepository[visits.Treatment]
	diagnoses     visits.SubResourceRepository[visits.Diagnosis]
	prescriptions visits.PrescriptionsRepository
}

func NewService(
	visitDir VisitDirectory,
	patientDir PatientDirectory,
	users staff.UserDirectory,
	vitals visits.SubResourceRepository[visits.VitalSign],
	treatments visits.SubResourceRepository[visits.Treatment],
	diagnoses visits.SubResourceRepository[visits.Diagnosis],
	prescriptions visits.PrescriptionsRepository,
) *Service {
	return &Service{
		visits:        visitDir,
		patients:      patientDir,
		users:         users,
		vitals:        vitals,
		treatments:    treatments,
		diagnoses:     diagnoses,
		prescriptions: prescriptions,
	}
}

// labels bundles the two lookup tables every record page needs.
type labels struct {
	visits lookup.Table
	staff  lookup.Table
}

// buildLabels fetches visits, patients and users in parallel and folds them
// into label tables. A failed lookup degrades to id labels rather than
// failing the page.
func (s *Service) buildLabels(ctx context.Context) labels {
	var (
		visitList   []visits.Visit
		patientList []patients.Patient
		userList    []staff.AuthUser
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		visitList, err = s.visits.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		patientList, err = s.patients.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		userList, err = s.users.ListUsers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Warn().Err(err).Msg("record label lookups unavailable, falling back to ids")
		return labels{visits: lookup.Table{}, staff: lookup.Table{}}
	}

	patientNames := lookup.Build(patientList,
		func(p patients.Patient) int64 { return p.ID },
		func(p patients.Patient) string { return p.FullName() })

	visitLabels := lookup.Table{}
	for _, v := range visitList {
		visitLabels[v.ID] = fmt.Sprintf("%s (Visit #%d)", patientNames.Label(v.PatientID), v.ID)
	}

	staffLabels := lookup.Build(userList,
		func(u staff.AuthUser) int64 { return u.ID },
		func(u staff.AuthUser) string {
			name := strings.TrimSpace(u.FirstName + " " + u.LastName)
			if name == "" {
				name = u.Username
			}
			return name
		})

	return labels{visits: visitLabels, staff: staffLabels}
}

// -- vital signs --

func (s *Service) ListVitals(ctx context.Context, f Filter) ([]VitalRow, error) {
	items, err := s.vitals.List(ctx)
	if err != nil {
		return nil, err
	}
	lb := s.buildLabels(ctx)
	rows := make([]VitalRow, 0, len(items))
	for _, v := range items {
		rows = append(rows, VitalRow{
			VitalSign:       v,
			VisitLabel:      lb.visits.Label(v.Visit),
			RecordedByLabel: lb.staff.LabelPtr(v.RecordedByID),
		})
	}
	return listview.Visible(rows, func(r VitalRow) bool {
		return listview.MatchID(f.VisitID, r.Visit) &&
			matchStaff(f.StaffID, r.RecordedByID)
	}), nil
}

func (s *Service) SubmitVital(ctx context.Context, draft visits.VitalSign) ([]VitalRow, error) {
	var err error
	if draft.ID > 0 {
		_, err = s.vitals.Update(ctx, draft.ID, &draft)
	} else {
		_, err = s.vitals.Create(ctx, &draft)
	}
	if err != nil {
		return nil, err
	}
	return s.ListVitals(ctx, Filter{})
}

func (s *Service) DeleteVital(ctx context.Context, id int64) ([]VitalRow, error) {
	if err := s.vitals.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.ListVitals(ctx, Filter{})
}

// -- treatments --

func (s *Service) ListTreatments(ctx context.Context, f Filter) ([]TreatmentRow, error) {
	items, err := s.treatments.List(ctx)
	if err != nil {
		return nil, err
	}
	lb := s.buildLabels(ctx)
	rows := make([]TreatmentRow, 0, len(items))
	for _, t := range items {
		rows = append(rows, TreatmentRow{
			Treatment:           t,
			VisitLabel:          lb.visits.Label(t.Visit),
			AdministeredByLabel: lb.staff.LabelPtr(t.AdministeredByID),
		})
	}
	return listview.Visible(rows, func(r TreatmentRow) bool {
		return listview.MatchID(f.VisitID, r.Visit) &&
			matchStaff(f.StaffID, r.AdministeredByID) &&
			listview.MatchEnum(f.TreatmentType, r.TreatmentType)
	}), nil
}

func (s *Service) SubmitTreatment(ctx context.Context, draft visits.Treatment) ([]TreatmentRow, error) {
	var err error
	if draft.ID > 0 {
		_, err = s.treatments.Update(ctx, draft.ID, &draft)
	} else {
		_, err = s.treatments.Create(ctx, &draft)
	}
	if err != nil {
		return nil, err
	}
	return s.ListTreatments(ctx, Filter{})
}

func (s *Service) DeleteTreatment(ctx context.Context, id int64) ([]TreatmentRow, error) {
	if err := s.treatments.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.ListTreatments(ctx, Filter{})
}

// -- diagnoses --

func (s *Service) ListDiagnoses(ctx context.Context, f Filter) ([]DiagnosisRow, error) {
	items, err := s.diagnoses.List(ctx)
	if err != nil {
		return nil, err
	}
	lb := s.buildLabels(ctx)
	rows := make([]DiagnosisRow, 0, len(items))
	for _, d := range items {
		rows = append(rows, DiagnosisRow{
			Diagnosis:        d,
			VisitLabel:       lb.visits.Label(d.Visit),
			DiagnosedByLabel: lb.staff.LabelPtr(d.DiagnosedByID),
		})
	}
	return listview.Visible(rows, func(r DiagnosisRow) bool {
		return listview.MatchID(f.VisitID, r.Visit) &&
			matchStaff(f.StaffID, r.DiagnosedByID) &&
			listview.MatchBool(f.IsPrimary, r.IsPrimary)
	}), nil
}

func (s *Service) SubmitDiagnosis(ctx context.Context, draft visits.Diagnosis) ([]DiagnosisRow, error) {
	var err error
	if draft.ID > 0 {
		_, err = s.diagnoses.Update(ctx, draft.ID, &draft)
	} else {
		_, err = s.diagnoses.Create(ctx, &draft)
	}
	if err != nil {
		return nil, err
	}
	return s.ListDiagnoses(ctx, Filter{})
}

func (s *Service) DeleteDiagnosis(ctx context.Context, id int64) ([]DiagnosisRow, error) {
	if err := s.diagnoses.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.ListDiagnoses(ctx, Filter{})
}

// -- prescriptions --

func (s *Service) ListPrescriptions(ctx context.Context, f Filter) ([]PrescriptionRow, error) {
	items, err := s.prescriptions.List(ctx)
	if err != nil {
		return nil, err
	}
	lb := s.buildLabels(ctx)
	rows := make([]PrescriptionRow, 0, len(items))
	for _, p := range items {
		rows = append(rows, PrescriptionRow{
			Prescription:      p,
			VisitLabel:        lb.visits.Label(p.Visit),
			PrescribedByLabel: lb.staff.LabelPtr(p.PrescribedByID),
		})
	}
	return listview.Visible(rows, func(r PrescriptionRow) bool {
		return listview.MatchID(f.VisitID, r.Visit) &&
			matchStaff(f.StaffID, r.PrescribedByID) &&
			listview.MatchBool(f.IsDispensed, r.IsDispensed)
	}), nil
}

func (s *Service) SubmitPrescription(ctx context.Context, draft visits.Prescription) ([]PrescriptionRow, error) {
	var err error
	if draft.ID > 0 {
		_, err = s.prescriptions.Update(ctx, draft.ID, &draft)
	} else {
		_, err = s.prescriptions.Create(ctx, &draft)
	}
	if err != nil {
		return nil, err
	}
	return s.ListPrescriptions(ctx, Filter{})
}

func (s *Service) DeletePrescription(ctx context.Context, id int64) ([]PrescriptionRow, error) {
	if err := s.prescriptions.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.ListPrescriptions(ctx, Filter{})
}

func (s *Service) DispensePrescription(ctx context.Context, id int64) ([]PrescriptionRow, error) {
	if _, err := s.prescriptions.Dispense(ctx, id); err != nil {
		return nil, err
	}
	return s.ListPrescriptions(ctx, Filter{})
}

func matchStaff(want *int64, got *int64) bool {
	if want == nil {
		return true
	}
	return got != nil && *got == *want
}
