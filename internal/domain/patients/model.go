package patients

import "time"

// Gender codes used by the patient backend.
const (
	GenderMale    = "M"
	GenderFemale  = "F"
	GenderOther   = "O"
	GenderUnknown = "U"
)

type Patient struct {
	ID                    int64  `json:"id,omitempty"`
	FirstName             string `json:"first_name"`
	LastName              string `json:"last_name"`
	DateOfBirth           string `json:"date_of_birth"`
	Gender                string `json:"gender"`
	Address               string `json:"address"`
	PhoneNumber           string `json:"phone_number"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`
	BloodType             string `json:"blood_type,omitempty"`
	Allergies             string `json:"allergies,omitempty"`
	PreExistingConditions string `json:"pre_existing_conditions,omitempty"`
	InsuranceInfo         string `json:"insurance_info,omitempty"`
	CreatedAt             string `json:"created_at,omitempty"`
	UpdatedAt             string `json:"updated_at,omitempty"`
}

func (p Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// AgeAt computes the patient's age in whole years. An unparsable birth date
// yields -1 so range filters exclude the row instead of matching at zero.
func (p Patient) AgeAt(now time.Time) int {
	dob, err := time.Parse("2006-01-02", p.DateOfBirth)
	if err != nil {
		return -1
	}
	years := now.Year() - dob.Year()
	if now.YearDay() < dob.YearDay() {
		years--
	}
	return years
}
