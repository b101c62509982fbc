// Package records serves the flat clinical-record pages: every vital sign,
// treatment, diagnosis and prescription across all visits, with foreign keys
// resolved to display labels. Dangling references degrade to an id label,
// never to an error.
package records

import "github.com/medgate/medgate/internal/domain/visits"

// VitalRow is a vital-sign record with display labels.
type VitalRow struct {
	visits.VitalSign
	VisitLabel      string `json:"visit_label"`
	RecordedByLabel string `json:"recorded_by_label,omitempty"`
}

type TreatmentRow struct {
	visits.Treatment
	VisitLabel          string `json:"visit_label"`
	AdministeredByLabel string `json:"administered_by_label,omitempty"`
}

type DiagnosisRow struct {
	visits.Diagnosis
	VisitLabel       string `json:"visit_label"`
	DiagnosedByLabel string `json:"diagnosed_by_label,omitempty"`
}

type PrescriptionRow struct {
	visits.Prescription
	VisitLabel        string `json:"visit_label"`
	PrescribedByLabel string `json:"prescribed_by_label,omitempty"`
}

// Filter narrows a record page. All matches are exact; the enum and boolean
// fields apply only to the pages that have them.
type Filter struct {
	VisitID       *int64
	StaffID       *int64
	IsPrimary     *bool
	TreatmentType string
	IsDispensed   *bool
}
