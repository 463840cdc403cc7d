package availability

import (
	"fmt"
	"time"

	"github.com/oficiosya/oficios-api/models"
)

// Status labels rendered by the discovery badge.
const (
	StatusAvailable   = "Disponible"
	StatusUnavailable = "No disponible"
	StatusUnspecified = "No especificado"
)

// Result is the outcome of evaluating a schedule at a point in time. It is
// derived on every query and never stored.
type Result struct {
	IsAvailable bool   `json:"isAvailable"`
	Status      string `json:"status"`
	Reason      string `json:"reason,omitempty"`
}

// Sunday=0 .. Saturday=6, matching time.Weekday.
var dayNames = [...]string{
	"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado",
}

// Engine evaluates weekly schedules. It is pure: no I/O, no state, safe for
// concurrent use from any number of callers.
type Engine struct {
	Holidays HolidayCalendar
}

func New(holidays HolidayCalendar) *Engine {
	return &Engine{Holidays: holidays}
}

var defaultEngine = New(ArgentineHolidays{})

// Evaluate runs the default engine with the fixed-date Argentine calendar.
func Evaluate(schedule *models.WeeklySchedule, now time.Time) Result {
	return defaultEngine.Evaluate(schedule, now)
}

// Evaluate determines whether a professional is available at now, and if
// not, when the next availability window begins. Evaluation order: absent
// schedule, absent day plan, holiday suppression, full-day override, window
// match, next-opening hint.
func (e *Engine) Evaluate(schedule *models.WeeklySchedule, now time.Time) Result {
	// Professionals who never configured a schedule stay discoverable.
	if schedule == nil {
		return Result{
			IsAvailable: true,
			Status:      StatusAvailable,
			Reason:      "Horarios no configurados",
		}
	}

	today := schedule.DayByWeekday(now.Weekday())
	if today == nil {
		return Result{
			IsAvailable: false,
			Status:      StatusUnspecified,
			Reason:      "Sin horario configurado para hoy",
		}
	}

	if e.Holidays != nil && e.Holidays.IsHoliday(now) && !worksOnHoliday(schedule, today) {
		return Result{
			IsAvailable: false,
			Status:      StatusUnspecified,
			Reason:      "Día feriado",
		}
	}

	if today.FullDay {
		return Result{
			IsAvailable: true,
			Status:      StatusAvailable,
			Reason:      "Disponible 24 horas",
		}
	}

	minutes := now.Hour()*60 + now.Minute()
	for _, window := range []*models.TimeWindow{today.Morning, today.Afternoon} {
		if windowContains(window, minutes) {
			return Result{IsAvailable: true, Status: StatusAvailable}
		}
	}

	return Result{
		IsAvailable: false,
		Status:      StatusUnspecified,
		Reason:      nextOpening(schedule, today, now.Weekday(), minutes),
	}
}

// worksOnHoliday: an explicit true at either the schedule or the day level
// defeats holiday suppression.
func worksOnHoliday(schedule *models.WeeklySchedule, day *models.DayPlan) bool {
	if day.WorkOnHolidays != nil && *day.WorkOnHolidays {
		return true
	}
	return schedule.WorkOnHolidays
}

// parseMinutes converts a strict 24h "HH:MM" string to minutes since
// midnight. Malformed strings report ok=false and the window is treated as
// never matching; Validate at the store boundary keeps those out of
// persisted schedules.
func parseMinutes(s string) (int, bool) {
	return models.ParseClock(s)
}

// windowContains tests membership inclusive on both boundaries. A window
// whose start is after its end wraps past midnight.
func windowContains(w *models.TimeWindow, minutes int) bool {
	if w == nil || !w.Enabled {
		return false
	}
	start, ok := parseMinutes(w.Start)
	if !ok {
		return false
	}
	end, ok := parseMinutes(w.End)
	if !ok {
		return false
	}
	if start > end {
		return minutes >= start || minutes <= end
	}
	return minutes >= start && minutes <= end
}

// nextOpening builds the "next available" hint: remaining windows today
// first, then the first configured day scanning 1..7 days ahead.
func nextOpening(schedule *models.WeeklySchedule, today *models.DayPlan, weekday time.Weekday, minutes int) string {
	if start, ok := earliestUpcomingStart(today, minutes); ok {
		return fmt.Sprintf("Disponible desde las %s", formatMinutes(start))
	}

	for offset := 1; offset <= 7; offset++ {
		next := (int(weekday) + offset) % 7
		plan := schedule.DayByWeekday(time.Weekday(next))
		if plan == nil {
			continue
		}
		if plan.FullDay {
			return fmt.Sprintf("Disponible el %s desde las 00:00", dayNames[next])
		}
		if start, ok := earliestStart(plan); ok {
			return fmt.Sprintf("Disponible el %s desde las %s", dayNames[next], formatMinutes(start))
		}
	}

	return "Fuera de horario"
}

// earliestUpcomingStart finds the earliest enabled window of the day that
// has not started yet.
func earliestUpcomingStart(plan *models.DayPlan, minutes int) (int, bool) {
	best, found := 0, false
	for _, window := range []*models.TimeWindow{plan.Morning, plan.Afternoon} {
		if window == nil || !window.Enabled {
			continue
		}
		start, ok := parseMinutes(window.Start)
		if !ok || minutes >= start {
			continue
		}
		if !found || start < best {
			best, found = start, true
		}
	}
	return best, found
}

// earliestStart finds the earliest enabled window start of a day plan.
func earliestStart(plan *models.DayPlan) (int, bool) {
	best, found := 0, false
	for _, window := range []*models.TimeWindow{plan.Morning, plan.Afternoon} {
		if window == nil || !window.Enabled {
			continue
		}
		start, ok := parseMinutes(window.Start)
		if !ok {
			continue
		}
		if !found || start < best {
			best, found = start, true
		}
	}
	return best, found
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
