package patient

import (
	"time"

	"github.com/google/uuid"
)

// Discharge status values as they appear in the ward's records. An empty
// status means the patient is still admitted.
const (
	StatusDischarged = "Alta"
	StatusReferred   = "Derivación"
	StatusDeceased   = "Obito"
	StatusTransfer   = "Traslado"
)

// Record maps to the patients table.
//
// Dates are persisted as fixed-width zero-padded ISO-8601 strings
// (YYYY-MM-DD) so that range filters can compare them lexicographically;
// this is a deliberate constraint on the stored representation, not an
// accident. Empty string means the date is unknown. Numeric fields are
// pointers: nil is "unknown" and is never coerced to zero.
type Record struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	BirthDate       string    `db:"birth_date" json:"birth_date,omitempty"`
	WeightGrams     *int      `db:"weight_grams" json:"weight_grams,omitempty"`
	GestationalAge  *float64  `db:"gestational_age" json:"gestational_age,omitempty"`
	Origin          string    `db:"origin" json:"origin,omitempty"`
	AdmissionDate   string    `db:"admission_date" json:"admission_date,omitempty"`
	DischargeDate   string    `db:"discharge_date" json:"discharge_date,omitempty"`
	DischargeStatus string    `db:"discharge_status" json:"discharge_status,omitempty"`
	Diagnoses       []string  `db:"diagnoses" json:"diagnoses"`
	CreatedBy       string    `db:"created_by" json:"created_by,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedBy       string    `db:"updated_by" json:"updated_by,omitempty"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Form carries the caregiver-entered fields of a record. The same form is
// used for creation and update; audit fields are filled by the service.
type Form struct {
	Name            string   `json:"name"`
	BirthDate       string   `json:"birth_date"`
	WeightGrams     *int     `json:"weight_grams"`
	GestationalAge  *float64 `json:"gestational_age"`
	Origin          string   `json:"origin"`
	AdmissionDate   string   `json:"admission_date"`
	DischargeDate   string   `json:"discharge_date"`
	DischargeStatus string   `json:"discharge_status"`
	Diagnoses       []string `json:"diagnoses"`
}
