package availability

import (
	"time"
)

// HolidayCalendar reports whether a calendar date is a holiday. It is a
// collaborator of the engine so movable holidays (Easter-linked dates,
// government bridge days) can be supplied without touching evaluation.
type HolidayCalendar interface {
	IsHoliday(t time.Time) bool
}

type fixedDate struct {
	Month time.Month
	Day   int
}

// ArgentineHolidays covers the fixed-date national holidays: Año Nuevo,
// Día del Trabajador, Revolución de Mayo, Día de la Independencia,
// Inmaculada Concepción and Navidad. Movable holidays are out of scope.
type ArgentineHolidays struct{}

var fixedHolidays = []fixedDate{
	{time.January, 1},
	{time.May, 1},
	{time.May, 25},
	{time.July, 9},
	{time.December, 8},
	{time.December, 25},
}

func (ArgentineHolidays) IsHoliday(t time.Time) bool {
	for _, h := range fixedHolidays {
		if t.Month() == h.Month && t.Day() == h.Day {
			return true
		}
	}
	return false
}
