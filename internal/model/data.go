package model

import (
	"fmt"
	"time"
)

// Layouts aceites para DataLimite. O primeiro é o formato canónico.
var layoutsDataLimite = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDataLimite parses an ISO date string (date-only or full timestamp).
func ParseDataLimite(valor string) (time.Time, error) {
	for _, layout := range layoutsDataLimite {
		if t, err := time.Parse(layout, valor); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("data limite inválida: %q", valor)
}

// DataOnly zeroes out the time-of-day components of t.
func DataOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EstaEmAtraso reports whether a task with the given DataLimite is overdue:
// true iff the due date (date-only) is strictly before agora (date-only).
// Unparseable dates are never considered overdue.
func EstaEmAtraso(dataLimite string, agora time.Time) bool {
	limite, err := ParseDataLimite(dataLimite)
	if err != nil {
		return false
	}
	return DataOnly(limite.In(agora.Location())).Before(DataOnly(agora))
}
