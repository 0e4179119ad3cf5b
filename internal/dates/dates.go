// Package dates computes event dates and formats them in Spanish.
// The weekday and month tables are embedded; nothing here depends on the
// process locale.
package dates

import (
	"fmt"
	"time"
)

var spanishWeekdays = map[time.Weekday]string{
	time.Monday:    "lunes",
	time.Tuesday:   "martes",
	time.Wednesday: "miércoles",
	time.Thursday:  "jueves",
	time.Friday:    "viernes",
	time.Saturday:  "sábado",
	time.Sunday:    "domingo",
}

var spanishMonths = map[time.Month]string{
	time.January:   "enero",
	time.February:  "febrero",
	time.March:     "marzo",
	time.April:     "abril",
	time.May:       "mayo",
	time.June:      "junio",
	time.July:      "julio",
	time.August:    "agosto",
	time.September: "septiembre",
	time.October:   "octubre",
	time.November:  "noviembre",
	time.December:  "diciembre",
}

// Format selects between the full and short Spanish date rendering
type Format int

// Date formats
const (
	// Full renders "lunes 2 de marzo"
	Full Format = iota
	// Short renders "2 de marzo"
	Short
)

// Occurrence describes the next time a weekday comes around
type Occurrence struct {
	Date      time.Time
	Display   string
	IsToday   bool
	DaysUntil int
}

// NextOccurrence returns the next occurrence of the target weekday on or
// after today. When today already is the target weekday the event is
// today and DaysUntil is zero; otherwise DaysUntil is between 1 and 6.
func NextOccurrence(target time.Weekday, today time.Time) Occurrence {
	days := (int(target) - int(today.Weekday()) + 7) % 7
	date := today.AddDate(0, 0, days)

	return Occurrence{
		Date:      date,
		Display:   FormatSpanish(date, Full),
		IsToday:   days == 0,
		DaysUntil: days,
	}
}

// FormatSpanish renders a date in Spanish, e.g. "martes 14 de julio"
func FormatSpanish(t time.Time, f Format) string {
	if f == Short {
		return fmt.Sprintf("%d de %s", t.Day(), spanishMonths[t.Month()])
	}
	return fmt.Sprintf("%s %d de %s", spanishWeekdays[t.Weekday()], t.Day(), spanishMonths[t.Month()])
}

// WeekdaySpanish returns the lowercase Spanish name of a weekday
func WeekdaySpanish(d time.Weekday) string {
	return spanishWeekdays[d]
}
