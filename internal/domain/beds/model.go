package beds

// Status codes used by the visit backend's bed resource.
const (
	StatusAvailable   = "AVAIL"
	StatusOccupied    = "OCCUP"
	StatusMaintenance = "MAINT"
	StatusReserved    = "RESERV"
)

// Bed is a physical bed record. The people attached to it are foreign keys
// into the patient and staff services.
type Bed struct {
	ID               int64  `json:"id,omitempty"`
	PatientID        *int64 `json:"patient_id"`
	DoctorID         *int64 `json:"doctor_id"`
	NurseID          *int64 `json:"nurse_id"`
	BedNumber        string `json:"bed_number"`
	Status           string `json:"status"`
	Location         string `json:"location"`
	IsIsolation      bool   `json:"is_isolation"`
	SpecialEquipment string `json:"special_equipment,omitempty"`
	LastCleaned      string `json:"last_cleaned,omitempty"`
}

// Stats is the backend's bed occupancy summary.
type Stats struct {
	Total      int            `json:"total"`
	Available  int            `json:"available"`
	Occupied   int            `json:"occupied"`
	ByLocation map[string]int `json:"by_location"`
}
