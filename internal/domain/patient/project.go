package patient

import (
	"fmt"
	"strconv"
)

// Badge tones for the discharge column. Presentation-only; derived from the
// stored status without mutating the record.
const (
	ToneGreen  = "green"
	ToneYellow = "yellow"
	ToneRed    = "red"
	ToneGray   = "gray"
)

// Badge is the discharge indicator shown in the roster list.
type Badge struct {
	Label string `json:"label"`
	Tone  string `json:"tone"`
}

// Row is one patient in the display model. Absent values render as "N/A"
// here; the CSV export renders them as empty strings instead — the two
// renderings are intentionally different.
type Row struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	BirthDate      string `json:"birth_date"`
	Weight         string `json:"weight"`
	GestationalAge string `json:"gestational_age"`
	Origin         string `json:"origin"`
	Discharge      Badge  `json:"discharge"`
}

// DisplayModel is what the roster view renders: a count summary line and
// the projected rows.
type DisplayModel struct {
	CountLine string `json:"count_line"`
	Filtered  bool   `json:"filtered"`
	Rows      []Row  `json:"rows"`
}

// DischargeBadge derives the badge for a stored status. Unknown non-empty
// statuses keep their label with a neutral tone; an absent status means the
// patient is still admitted.
func DischargeBadge(status string) Badge {
	switch status {
	case "":
		return Badge{Label: "Internado", Tone: ToneGray}
	case StatusDischarged:
		return Badge{Label: status, Tone: ToneGreen}
	case StatusReferred:
		return Badge{Label: status, Tone: ToneYellow}
	case StatusDeceased:
		return Badge{Label: status, Tone: ToneRed}
	default:
		return Badge{Label: status, Tone: ToneGray}
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// Project builds the display model from query results and the running
// total. totalCount comes from an independent aggregate query and may
// arrive before or after rows; the projection is pure either way.
func Project(rows []*Record, totalCount int, filtered bool) DisplayModel {
	m := DisplayModel{Filtered: filtered}
	if filtered {
		m.CountLine = fmt.Sprintf("Total ingresados: %d paciente(s). Coinciden con la búsqueda: %d", totalCount, len(rows))
	} else {
		m.CountLine = fmt.Sprintf("Total ingresados: %d paciente(s). Use los filtros para buscar.", totalCount)
	}

	m.Rows = make([]Row, 0, len(rows))
	for _, rec := range rows {
		row := Row{
			ID:             rec.ID.String(),
			Name:           rec.Name,
			BirthDate:      orNA(rec.BirthDate),
			Weight:         "N/A",
			GestationalAge: "N/A",
			Origin:         orNA(rec.Origin),
			Discharge:      DischargeBadge(rec.DischargeStatus),
		}
		if rec.WeightGrams != nil {
			row.Weight = fmt.Sprintf("%d gr", *rec.WeightGrams)
		}
		if rec.GestationalAge != nil {
			row.GestationalAge = strconv.FormatFloat(*rec.GestationalAge, 'f', -1, 64) + " sem"
		}
		m.Rows = append(m.Rows, row)
	}
	return m
}
