package patient

import (
	"encoding/csv"
	"errors"
	"strconv"
	"strings"
)

// ErrNoRows means an export was requested over an empty result set. It is a
// warning, not a failure: no file is produced.
var ErrNoRows = errors.New("no rows to export")

// exportHeader fixes the CSV column order.
var exportHeader = []string{
	"ID", "Nombre", "Fecha Nacimiento", "Peso (gr)", "EG (sem)", "Procedencia",
	"Fecha Internación", "Fecha Egreso", "Status Egreso", "Diagnósticos",
}

// ToTable renders records as CSV text. Fields containing commas, quotes or
// newlines are quoted with internal quotes doubled (RFC 4180). Absent
// values become empty strings — never "N/A", which is a display-only
// rendering (see Project).
func ToTable(rows []*Record) (string, error) {
	if len(rows) == 0 {
		return "", ErrNoRows
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return "", err
	}

	for _, rec := range rows {
		weight := ""
		if rec.WeightGrams != nil {
			weight = strconv.Itoa(*rec.WeightGrams)
		}
		gestAge := ""
		if rec.GestationalAge != nil {
			gestAge = strconv.FormatFloat(*rec.GestationalAge, 'f', -1, 64)
		}
		record := []string{
			rec.ID.String(),
			rec.Name,
			rec.BirthDate,
			weight,
			gestAge,
			rec.Origin,
			rec.AdmissionDate,
			rec.DischargeDate,
			rec.DischargeStatus,
			strings.Join(rec.Diagnoses, "; "),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
