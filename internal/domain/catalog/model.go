package catalog

import (
	"time"

	"github.com/google/uuid"
)

// CustomDiagnosis maps to the custom_diagnoses table. Entries are created by
// caregivers when the base list is missing a diagnosis; names are stored
// trimmed and non-empty.
type CustomDiagnosis struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedBy string    `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Catalog is the merged catalog returned to clients.
type Catalog struct {
	Diagnoses   []string `json:"diagnoses"`
	BaseCount   int      `json:"base_count"`
	CustomCount int      `json:"custom_count"`
}
