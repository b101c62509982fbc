package visits

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/medgate/medgate/internal/domain/beds"
	"github.com/medgate/medgate/internal/platform/gateway"
	"github.com/medgate/medgate/pkg/listview"
)

// BedProvider supplies the assignable beds for the admission block of the
// aggregate view. It is refreshable on its own without reloading the
// aggregate.
type BedProvider interface {
	Available(ctx context.Context) ([]beds.Bed, error)
}

// Filter narrows the visit list. Query matches the chief complaint and
// initial observation.
type Filter struct {
	Query       string
	PatientID   *int64
	TriageLevel *int
	IsAdmitted  *bool
	Active      *bool
}

type Service struct {
	visits        Repository
	vitals        SubResourceRepository[VitalSign]
	treatments    SubResourceRepository[Treatment]
	diagnoses     SubResourceRepository[Diagnosis]
	prescriptions PrescriptionsRepository
	admissions    AdmissionsRepository
	beds          BedProvider
}

func NewService(
	visits Repository,
	vitals SubResourceRepository[VitalSign],
	treatments SubResourceRepository[Treatment],
	diagnoses SubResourceRepository[Diagnosis],
	prescriptions PrescriptionsRepository,
	admissions AdmissionsRepository,
	bedProvider BedProvider,
) *Service {
	return &Service{
		visits:        visits,
		vitals:        vitals,
		treatments:    treatments,
		diagnoses:     diagnoses,
		prescriptions: prescriptions,
		admissions:    admissions,
		beds:          bedProvider,
	}
}

func (s *Service) List(ctx context.Context, f Filter) ([]Visit, error) {
	items, err := s.visits.List(ctx)
	if err != nil {
		return nil, err
	}
	return listview.Visible(items, func(v Visit) bool {
		return listview.MatchText(f.Query, v.ChiefComplaint, v.InitialObservation) &&
			matchOptID(f.PatientID, v.PatientID) &&
			matchOptInt(f.TriageLevel, int(v.TriageLevel)) &&
			listview.MatchBool(f.IsAdmitted, v.IsAdmitted) &&
			listview.MatchBool(f.Active, v.IsActive())
	}), nil
}

func matchOptID(want *int64, got int64) bool {
	return want == nil || *want == got
}

func matchOptInt(want *int, got int) bool {
	return want == nil || *want == got
}

func (s *Service) Active(ctx context.Context) ([]Visit, error) {
	return s.visits.Active(ctx)
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	return s.visits.Stats(ctx)
}

// Aggregate loads the composite view of one visit. The four sub-resource
// fetches run in parallel and are jointly awaited: if any of them fails the
// whole load fails and nothing partial is returned. Admitted visits also
// load their admission record.
func (s *Service) Aggregate(ctx context.Context, id int64) (*Aggregate, error) {
	visit, err := s.visits.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	agg := &Aggregate{Visit: *visit}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.vitals.ListByVisit(gctx, id)
		if err != nil {
			return fmt.Errorf("vital signs: %w", err)
		}
		agg.VitalSigns = items
		return nil
	})
	g.Go(func() error {
		items, err := s.treatments.ListByVisit(gctx, id)
		if err != nil {
			return fmt.Errorf("treatments: %w", err)
		}
		agg.Treatments = items
		return nil
	})
	g.Go(func() error {
		items, err := s.diagnoses.ListByVisit(gctx, id)
		if err != nil {
			return fmt.Errorf("diagnoses: %w", err)
		}
		agg.Diagnoses = items
		return nil
	})
	g.Go(func() error {
		items, err := s.prescriptions.ListByVisit(gctx, id)
		if err != nil {
			return fmt.Errorf("prescriptions: %w", err)
		}
		agg.Prescriptions = items
		return nil
	})
	if visit.IsAdmitted {
		g.Go(func() error {
			adm, err := s.admissions.GetByVisit(gctx, id)
			if err != nil {
				return fmt.Errorf("admission: %w", err)
			}
			agg.Admission = adm
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if agg.VitalSigns == nil {
		agg.VitalSigns = []VitalSign{}
	}
	if agg.Treatments == nil {
		agg.Treatments = []Treatment{}
	}
	if agg.Diagnoses == nil {
		agg.Diagnoses = []Diagnosis{}
	}
	if agg.Prescriptions == nil {
		agg.Prescriptions = []Prescription{}
	}
	return agg, nil
}

// AvailableBeds is the refresh action for the admission block's bed choices.
func (s *Service) AvailableBeds(ctx context.Context) ([]beds.Bed, error) {
	return s.beds.Available(ctx)
}

func (s *Service) validate(draft *Draft) error {
	if draft.PatientID <= 0 {
		return fmt.Errorf("patient is required")
	}
	if draft.ChiefComplaint == "" {
		return fmt.Errorf("chief complaint is required")
	}
	if draft.TriageLevel == 0 {
		draft.TriageLevel = TriageDefault
	}
	if draft.TriageLevel < TriageMin || draft.TriageLevel > TriageMax {
		return fmt.Errorf("triage level must be between %d and %d", TriageMin, TriageMax)
	}
	if draft.IsAdmitted {
		d := draft.AdmissionDetails
		if d == nil || d.BedID == nil {
			return fmt.Errorf("an admitted visit requires a bed assignment")
		}
		if d.AdmittingDiagnosis == "" {
			return fmt.Errorf("an admitted visit requires an admitting diagnosis")
		}
	}
	return nil
}

// Save writes the visit and, for admitted visits, the admission record as a
// second independent request. The two phases are not atomic: a failed
// admission write leaves the visit saved and is reported in the result, not
// rolled back.
func (s *Service) Save(ctx context.Context, draft Draft) (*SaveResult, error) {
	if err := s.validate(&draft); err != nil {
		return nil, err
	}

	res := &SaveResult{}
	var saved *Visit
	var err error
	if draft.ID > 0 {
		saved, err = s.visits.Update(ctx, &draft.Visit)
	} else {
		saved, err = s.visits.Create(ctx, &draft.Visit)
	}
	if err != nil {
		res.Visit = PhaseResult{OK: false, Message: phaseMessage(err)}
		return res, err
	}
	res.Visit = PhaseResult{OK: true}
	res.Saved = saved

	if draft.IsAdmitted && draft.AdmissionDetails != nil {
		d := draft.AdmissionDetails
		adm := Admission{
			ID:                 d.ID,
			Visit:              saved.ID,
			Bed:                d.BedID,
			AdmittedByID:       d.AdmittedByID,
			AdmittingDiagnosis: d.AdmittingDiagnosis,
			Department:         d.Department,
			Notes:              d.Notes,
		}
		if adm.ID > 0 {
			_, err = s.admissions.Update(ctx, &adm)
		} else {
			_, err = s.admissions.Create(ctx, &adm)
		}
		phase := PhaseResult{OK: err == nil}
		if err != nil {
			phase.Message = phaseMessage(err)
		}
		res.Admission = &phase
	}
	return res, nil
}

func phaseMessage(err error) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	return gateway.GenericFailure
}

func (s *Service) Delete(ctx context.Context, id int64) ([]Visit, error) {
	if err := s.visits.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.visits.List(ctx)
}

// Discharge stamps the discharge time on the backend with the final
// diagnosis and instructions.
func (s *Service) Discharge(ctx context.Context, id int64, diagnosis, instructions string) (*Visit, error) {
	return s.visits.Discharge(ctx, id, diagnosis, instructions)
}

// DischargeAdmission ends an inpatient stay, freeing the bed on the backend.
func (s *Service) DischargeAdmission(ctx context.Context, admissionID int64) (*Admission, error) {
	return s.admissions.Discharge(ctx, admissionID)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.visits.Count(ctx)
}

// -- Visit-scoped sub-resources --
//
// Submit forces the visit reference to the path's visit so a draft can never
// attach a record to someone else's visit; each mutation returns the visit's
// refreshed sub-collection.

func (s *Service) ListVitals(ctx context.Context, visitID int64) ([]VitalSign, error) {
	return s.vitals.ListByVisit(ctx, visitID)
}

func (s *Service) SubmitVital(ctx context.Context, visitID int64, draft VitalSign) ([]VitalSign, error) {
	draft.Visit = visitID
	var err error
	if draft.ID > 0 {
		_, err = s.vitals.Update(ctx, draft.ID, &draft)
	} else {
		_, err = s.vitals.Create(ctx, &draft)
	}
	if err != nil {
		return nil, err
	}
	return s.vitals.ListByVisit(ctx, visitID)
}

func (s *Service) DeleteVital(ctx context.Context, visitID, id int64) ([]VitalSign, error) {
	if err := s.vitals.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.vitals.ListByVisit(ctx, visitID)
}

func (s *Service) ListTreatments(ctx context.Context, visitID int64) ([]Treatment, error) {
	return s.treatments.ListByVisit(ctx, visitID)
}

func (s *Service) SubmitTreatment(ctx context.Context, visitID int64, draft Treatment) ([]Treatment, error) {
	draft.Visit = visitID
	var err error
	if draft.ID > 0 {
		_, err = s.treatments.Update(ctx, draft.ID, &draft)
	} else {
		_, err = s.treatments.Create(ctx, &draft)
	}
	if err != nil {
		return nil, err
	}
	return s.treatments.ListByVisit(ctx, visitID)
}

func (s *Service) DeleteTreatment(ctx context.Context, visitID, id int64) ([]Treatment, error) {
	if err := s.treatments.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.treatments.ListByVisit(ctx, visitID)
}

func (s *Service) ListDiagnoses(ctx context.Context, visitID int64) ([]Diagnosis, error) {
	return s.diagnoses.ListByVisit(ctx, visitID)
}

func (s *Service) SubmitDiagnosis(ctx context.Context, visitID int64, draft Diagnosis) ([]Diagnosis, error) {
	draft.Visit = visitID
	var err error
	if draft.ID > 0 {
		_, err = s.diagnoses.Update(ctx, draft.ID, &draft)
	} else {
		_, err = s.diagnoses.Create(ctx, &draft)
	}
	if err != nil {
		return nil, err
	}
	return s.diagnoses.ListByVisit(ctx, visitID)
}

func (s *Service) DeleteDiagnosis(ctx context.Context, visitID, id int64) ([]Diagnosis, error) {
	if err := s.diagnoses.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.diagnoses.ListByVisit(ctx, visitID)
}

func (s *Service) ListPrescriptions(ctx context.Context, visitID int64) ([]Prescription, error) {
	return s.prescriptions.ListByVisit(ctx, visitID)
}

func (s *Service) SubmitPrescription(ctx context.Context, visitID int64, draft Prescription) ([]Prescription, error) {
	draft.Visit = visitID
	var err error
	if draft.ID > 0 {
		_, err = s.prescriptions.Update(ctx, draft.ID, &draft)
	} else {
		_, err = s.prescriptions.Create(ctx, &draft)
	}
	if err != nil {
		return nil, err
	}
	return s.prescriptions.ListByVisit(ctx, visitID)
}

func (s *Service) DeletePrescription(ctx context.Context, visitID, id int64) ([]Prescription, error) {
	if err := s.prescriptions.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.prescriptions.ListByVisit(ctx, visitID)
}

// DispensePrescription marks the medication as handed out.
func (s *Service) DispensePrescription(ctx context.Context, visitID, id int64) ([]Prescription, error) {
	if _, err := s.prescriptions.Dispense(ctx, id); err != nil {
		return nil, err
	}
	return s.prescriptions.ListByVisit(ctx, visitID)
}
