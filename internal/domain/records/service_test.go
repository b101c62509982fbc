package records

import (
	"context"
	"fmt"
	"testing"

	"github.com/medgate/medgate/internal/domain/patients"
	"github.com/medgate/medgate/internal/domain/staff"
	"github.com/medgate/medgate/internal/domain/visits"
)

type mockVisitDir struct {
	items []visits.Visit
	err   error
}

func (m *mockVisitDir) List(_ context.Context) ([]visits.Visit, error) {
	return m.items, m.err
}

type mockPatientDir struct {
	items []patients.Patient
	err   error
}

func (m *mockPatientDir) List(_ context.Context) ([]patients.Patient, error) {
	return m.items, m.err
}

type mockUserDir struct {
	users []staff.AuthUser
}

func (m *mockUserDir) ListUsers(_ context.Context) ([]staff.AuthUser, error) {
	return m.users, nil
}

type mockSub[T any] struct {
	items   []T
	err     error
	created []T
	updated []T
	deleted []int64
}

func (m *mockSub[T]) List(_ context.Context) ([]T, error) {
	return m.items, m.err
}

func (m *mockSub[T]) ListByVisit(_ context.Context, _ int64) ([]T, error) {
	return m.items, m.err
}

func (m *mockSub[T]) Create(_ context.Context, item *T) (*T, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = append(m.created, *item)
	m.items = append(m.items, *item)
	return item, nil
}

func (m *mockSub[T]) Update(_ context.Context, _ int64, item *T) (*T, error) {
	m.updated = append(m.updated, *item)
	return item, nil
}

func (m *mockSub[T]) Delete(_ context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	return m.err
}

type mockPrescriptions struct {
	mockSub[visits.Prescription]
	dispensed []int64
}

func (m *mockPrescriptions) Dispense(_ context.Context, id int64) (*visits.Prescription, error) {
	m.dispensed = append(m.dispensed, id)
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].IsDispensed = true
			return &m.items[i], nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func staffID(id int64) *int64 { return &id }

func newFixture() (*Service, *mockPrescriptions, *mockSub[visits.Diagnosis]) {
	visitDir := &mockVisitDir{items: []visits.Visit{
		{ID: 1, PatientID: 7},
		{ID: 2, PatientID: 99}, // dangling patient
	}}
	patientDir := &mockPatientDir{items: []patients.Patient{
		{ID: 7, FirstName: "Jane", LastName: "Doe"},
	}}
	userDir := &mockUserDir{users: []staff.AuthUser{
		{ID: 3, FirstName: "Greg", LastName: "House"},
	}}
	diagnoses := &mockSub[visits.Diagnosis]{items: []visits.Diagnosis{
		{ID: 1, Visit: 1, Code: "I21", IsPrimary: true, DiagnosedByID: staffID(3)},
		{ID: 2, Visit: 2, Code: "J45", IsPrimary: false, DiagnosedByID: staffID(55)},
	}}
	prescriptions := &mockPrescriptions{mockSub: mockSub[visits.Prescription]{items: []visits.Prescription{
		{ID: 1, Visit: 1, Medication: "Aspirin", IsDispensed: false, PrescribedByID: staffID(3)},
		{ID: 2, Visit: 1, Medication: "Heparin", IsDispensed: true},
	}}}
	svc := NewService(
		visitDir, patientDir, userDir,
		&mockSub[visits.VitalSign]{items: []visits.VitalSign{{ID: 1, Visit: 1, RecordedByID: staffID(3)}}},
		&mockSub[visits.Treatment]{items: []visits.Treatment{
			{ID: 1, Visit: 1, TreatmentType: visits.TreatmentMedication, AdministeredByID: staffID(3)},
			{ID: 2, Visit: 2, TreatmentType: visits.TreatmentProcedure},
		}},
		diagnoses,
		prescriptions,
	)
	return svc, prescriptions, diagnoses
}

func TestListVitalsResolvesLabels(t *testing.T) {
	svc, _, _ := newFixture()
	rows, err := svc.ListVitals(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].VisitLabel != "Jane Doe (Visit #1)" {
		t.Errorf("unexpected visit label: %q", rows[0].VisitLabel)
	}
	if rows[0].RecordedByLabel != "Greg House" {
		t.Errorf("unexpected staff label: %q", rows[0].RecordedByLabel)
	}
}

func TestDanglingReferencesFallBackToID(t *testing.T) {
	svc, _, _ := newFixture()
	rows, err := svc.ListDiagnoses(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Visit 2 exists but its patient does not.
	if rows[1].VisitLabel != "ID: 99 (Visit #2)" {
		t.Errorf("unexpected label for dangling patient: %q", rows[1].VisitLabel)
	}
	if rows[1].DiagnosedByLabel != "ID: 55" {
		t.Errorf("unexpected label for dangling staff: %q", rows[1].DiagnosedByLabel)
	}
}

func TestLookupFailureDegradesNotFails(t *testing.T) {
	svc, _, _ := newFixture()
	svc.patients.(*mockPatientDir).err = fmt.Errorf("patients down")
	rows, err := svc.ListVitals(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("lookup failure must not fail the page: %v", err)
	}
	if rows[0].VisitLabel != "ID: 1" {
		t.Errorf("expected id fallback, got %q", rows[0].VisitLabel)
	}
}

func TestDiagnosesIsPrimaryFilter(t *testing.T) {
	svc, _, _ := newFixture()
	primary := true
	rows, _ := svc.ListDiagnoses(context.Background(), Filter{IsPrimary: &primary})
	if len(rows) != 1 || rows[0].Code != "I21" {
		t.Errorf("unexpected result: %v", rows)
	}
}

func TestTreatmentTypeFilter(t *testing.T) {
	svc, _, _ := newFixture()
	rows, _ := svc.ListTreatments(context.Background(), Filter{TreatmentType: visits.TreatmentProcedure})
	if len(rows) != 1 || rows[0].ID != 2 {
		t.Errorf("unexpected result: %v", rows)
	}
}

func TestPrescriptionsDispensedFilterAndStaffFilter(t *testing.T) {
	svc, _, _ := newFixture()
	dispensed := false
	rows, _ := svc.ListPrescriptions(context.Background(), Filter{IsDispensed: &dispensed})
	if len(rows) != 1 || rows[0].Medication != "Aspirin" {
		t.Errorf("unexpected result: %v", rows)
	}
	rows, _ = svc.ListPrescriptions(context.Background(), Filter{StaffID: staffID(3)})
	if len(rows) != 1 || rows[0].Medication != "Aspirin" {
		t.Errorf("staff filter failed: %v", rows)
	}
}

func TestVisitExactFilter(t *testing.T) {
	svc, _, _ := newFixture()
	visit := int64(2)
	rows, _ := svc.ListTreatments(context.Background(), Filter{VisitID: &visit})
	if len(rows) != 1 || rows[0].ID != 2 {
		t.Errorf("unexpected result: %v", rows)
	}
}

func TestDispenseRefreshesPage(t *testing.T) {
	svc, prescriptions, _ := newFixture()
	rows, err := svc.DispensePrescription(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prescriptions.dispensed) != 1 || prescriptions.dispensed[0] != 1 {
		t.Errorf("unexpected dispense calls: %v", prescriptions.dispensed)
	}
	if !rows[0].IsDispensed {
		t.Errorf("page should reflect the dispense: %+v", rows[0])
	}
}

func TestSubmitDiagnosisCreateAndUpdate(t *testing.T) {
	svc, _, diagnoses := newFixture()
	if _, err := svc.SubmitDiagnosis(context.Background(), visits.Diagnosis{Visit: 1, Code: "R07"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diagnoses.created) != 1 {
		t.Errorf("expected create call, got %+v", diagnoses)
	}
	if _, err := svc.SubmitDiagnosis(context.Background(), visits.Diagnosis{ID: 1, Visit: 1, Code: "I21.9"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diagnoses.updated) != 1 {
		t.Errorf("expected update call, got %+v", diagnoses)
	}
}
