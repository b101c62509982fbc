package visits

import "github.com/medgate/medgate/pkg/coerce"

// Triage levels run 1 (resuscitation) to 5 (non-urgent); new visits default
// to 3.
const (
	TriageMin     = 1
	TriageMax     = 5
	TriageDefault = 3
)

// Visit is an emergency visit record. Patient and staff references are
// foreign keys into the other services; nothing here guarantees they still
// resolve.
type Visit struct {
	ID                    int64      `json:"id,omitempty"`
	PatientID             int64      `json:"patient_id"`
	ArrivalTime           string     `json:"arrival_time,omitempty"`
	TriageLevel           coerce.Int `json:"triage_level"`
	ChiefComplaint        string     `json:"chief_complaint"`
	InitialObservation    string     `json:"initial_observation,omitempty"`
	DischargeTime         *string    `json:"discharge_time"`
	DischargeDiagnosis    string     `json:"discharge_diagnosis,omitempty"`
	DischargeInstructions string     `json:"discharge_instructions,omitempty"`
	IsAdmitted            bool       `json:"is_admitted"`
	AttendingPhysicianID  *int64     `json:"attending_physician_id"`
	TriageNurseID         *int64     `json:"triage_nurse_id"`
}

// IsActive reports whether the visit has not been discharged yet.
func (v Visit) IsActive() bool {
	return v.DischargeTime == nil || *v.DischargeTime == ""
}

// VitalSign is one vitals measurement attached to a visit. All measurements
// are optional and arrive from forms as strings or numbers; out-of-range
// values are the backend's problem, not ours.
type VitalSign struct {
	ID                     int64            `json:"id,omitempty"`
	Visit                  int64            `json:"visit"`
	RecordedByID           *int64           `json:"recorded_by_id"`
	RecordedAt             string           `json:"recorded_at,omitempty"`
	Temperature            coerce.NullFloat `json:"temperature"`
	HeartRate              coerce.NullInt   `json:"heart_rate"`
	BloodPressureSystolic  coerce.NullInt   `json:"blood_pressure_systolic"`
	BloodPressureDiastolic coerce.NullInt   `json:"blood_pressure_diastolic"`
	RespiratoryRate        coerce.NullInt   `json:"respiratory_rate"`
	OxygenSaturation       coerce.NullInt   `json:"oxygen_saturation"`
	PainLevel              coerce.NullInt   `json:"pain_level"`
	GCSScore               coerce.NullInt   `json:"gcs_score"`
	Notes                  string           `json:"notes,omitempty"`
}

// Treatment type codes.
const (
	TreatmentMedication = "MED"
	TreatmentProcedure  = "PROC"
	TreatmentTest       = "TEST"
	TreatmentOther      = "OTHER"
)

type Treatment struct {
	ID               int64  `json:"id,omitempty"`
	Visit            int64  `json:"visit"`
	TreatmentType    string `json:"treatment_type"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	AdministeredByID *int64 `json:"administered_by_id"`
	AdministeredAt   string `json:"administered_at,omitempty"`
	Dosage           string `json:"dosage,omitempty"`
	Outcome          string `json:"outcome,omitempty"`
	Complications    string `json:"complications,omitempty"`
}

type Diagnosis struct {
	ID            int64  `json:"id,omitempty"`
	Visit         int64  `json:"visit"`
	Code          string `json:"code"`
	Description   string `json:"description"`
	DiagnosedByID *int64 `json:"diagnosed_by_id"`
	DiagnosedAt   string `json:"diagnosed_at,omitempty"`
	IsPrimary     bool   `json:"is_primary"`
	Notes         string `json:"notes,omitempty"`
}

type Prescription struct {
	ID             int64      `json:"id,omitempty"`
	Visit          int64      `json:"visit"`
	Medication     string     `json:"medication"`
	Dosage         string     `json:"dosage"`
	Frequency      string     `json:"frequency"`
	Duration       string     `json:"duration"`
	PrescribedByID *int64     `json:"prescribed_by_id"`
	PrescribedAt   string     `json:"prescribed_at,omitempty"`
	Instructions   string     `json:"instructions,omitempty"`
	IsDispensed    bool       `json:"is_dispensed"`
	Refills        coerce.Int `json:"refills"`
}

// Admission is the inpatient record attached to an admitted visit; at most
// one exists per visit.
type Admission struct {
	ID                 int64   `json:"id,omitempty"`
	Visit              int64   `json:"visit"`
	Bed                *int64  `json:"bed"`
	AdmittedByID       int64   `json:"admitted_by_id"`
	AdmissionTime      string  `json:"admission_time,omitempty"`
	DischargeTime      *string `json:"discharge_time"`
	AdmittingDiagnosis string  `json:"admitting_diagnosis"`
	Department         string  `json:"department"`
	Notes              string  `json:"notes,omitempty"`
}

// Aggregate is the composite view of one visit: the visit itself, its four
// sub-resource collections and, for admitted visits, the admission record.
type Aggregate struct {
	Visit         Visit          `json:"visit"`
	VitalSigns    []VitalSign    `json:"vital_signs"`
	Treatments    []Treatment    `json:"treatments"`
	Diagnoses     []Diagnosis    `json:"diagnoses"`
	Prescriptions []Prescription `json:"prescriptions"`
	Admission     *Admission     `json:"admission,omitempty"`
}

// AdmissionDetails is the nested admission block of a visit draft. Editing it
// never touches the visit's own fields.
type AdmissionDetails struct {
	ID                 int64  `json:"id,omitempty"`
	BedID              *int64 `json:"bed_id"`
	AdmittedByID       int64  `json:"admitted_by_id,omitempty"`
	AdmittingDiagnosis string `json:"admitting_diagnosis"`
	Department         string `json:"department"`
	Notes              string `json:"notes,omitempty"`
}

// Draft is the visit submit payload.
type Draft struct {
	Visit
	AdmissionDetails *AdmissionDetails `json:"admission_details,omitempty"`
}

// PhaseResult reports the outcome of one write phase of a visit save.
type PhaseResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// SaveResult makes the two-phase, non-atomic nature of a visit save explicit:
// the visit write and the admission write succeed or fail independently, and
// a failed second phase does not roll back the first.
type SaveResult struct {
	Visit     PhaseResult `json:"visit"`
	Admission *PhaseResult `json:"admission,omitempty"`
	Saved     *Visit      `json:"saved,omitempty"`
}

// Stats is the visit backend's summary payload.
type Stats struct {
	Total         int            `json:"total"`
	Active        int            `json:"active"`
	Admitted      int            `json:"admitted"`
	ByTriageLevel map[string]int `json:"by_triage_level"`
}
