package patient

import (
	"math"
	"strconv"
	"strings"

	"github.com/neoward/neoward/internal/storage"
)

// Constraint field names understood by the record store.
const (
	FieldName           = "name"
	FieldBirthDate      = "birth_date"
	FieldGestationalAge = "gestational_age"
	FieldDiagnoses      = "diagnoses"
)

// PrefixSentinel is appended to a name search term to form the upper bound
// of a prefix range: name >= term AND name <= term+sentinel matches every
// string starting with term. U+F8FF is a maximal private-use code point that
// sorts after any character that occurs in patient names.
const PrefixSentinel = "\uf8ff"

// FilterSpec is the multi-field search form. Gestational-age bounds arrive
// as raw text; input that does not parse to a finite number means "no
// bound", never an error.
type FilterSpec struct {
	NameTerm      string `json:"name_term" query:"q"`
	BirthDateFrom string `json:"birth_date_from" query:"birth_date_from"`
	BirthDateTo   string `json:"birth_date_to" query:"birth_date_to"`
	GestAgeFrom   string `json:"gest_age_from" query:"gest_age_from"`
	GestAgeTo     string `json:"gest_age_to" query:"gest_age_to"`
	Diagnosis     string `json:"diagnosis" query:"diagnosis"`
}

// parseBound returns the parsed bound and whether it is usable.
func parseBound(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Build translates the spec into the store's conjunctive constraint set.
// The second result is false when every field is empty: an empty spec must
// never reach the store, so callers short-circuit to the "use the filters"
// prompt instead of running an unconstrained query.
//
// The store's query model only supports equality and range predicates
// combined with AND, so the general search term is bounded to a prefix
// match on name (two inequality constraints), not a substring search.
func (f FilterSpec) Build() ([]storage.Constraint, bool) {
	var cs []storage.Constraint

	if f.Diagnosis != "" {
		cs = append(cs, storage.Constraint{Field: FieldDiagnoses, Op: storage.OpContains, Value: f.Diagnosis})
	}
	if f.BirthDateFrom != "" {
		cs = append(cs, storage.Constraint{Field: FieldBirthDate, Op: storage.OpGte, Value: f.BirthDateFrom})
	}
	if f.BirthDateTo != "" {
		cs = append(cs, storage.Constraint{Field: FieldBirthDate, Op: storage.OpLte, Value: f.BirthDateTo})
	}
	if v, ok := parseBound(f.GestAgeFrom); ok {
		cs = append(cs, storage.Constraint{Field: FieldGestationalAge, Op: storage.OpGte, Value: v})
	}
	if v, ok := parseBound(f.GestAgeTo); ok {
		cs = append(cs, storage.Constraint{Field: FieldGestationalAge, Op: storage.OpLte, Value: v})
	}
	if term := f.NameTerm; strings.TrimSpace(term) != "" {
		cs = append(cs, storage.Constraint{Field: FieldName, Op: storage.OpGte, Value: term})
		cs = append(cs, storage.Constraint{Field: FieldName, Op: storage.OpLte, Value: term + PrefixSentinel})
	}

	return cs, len(cs) > 0
}

// HasFilters reports whether the spec would produce any constraint.
func (f FilterSpec) HasFilters() bool {
	_, ok := f.Build()
	return ok
}
