package availability

import (
	"testing"
	"time"

	"github.com/oficiosya/oficios-api/models"
)

func window(start, end string) *models.TimeWindow {
	return &models.TimeWindow{Enabled: true, Start: start, End: end}
}

func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.Local)
}

// Monday 2025-09-29
var monday = at(2025, time.September, 29, 10, 0)

func TestNilScheduleAlwaysAvailable(t *testing.T) {
	res := Evaluate(nil, monday)
	if !res.IsAvailable {
		t.Fatalf("expected available, got %+v", res)
	}
	if res.Status != StatusAvailable {
		t.Fatalf("unexpected status %q", res.Status)
	}
	if res.Reason != "Horarios no configurados" {
		t.Fatalf("unexpected reason %q", res.Reason)
	}
}

func TestMissingDayPlan(t *testing.T) {
	schedule := &models.WeeklySchedule{
		Monday: &models.DayPlan{Morning: window("09:00", "12:00")},
	}
	// Tuesday 2025-09-30: only monday is configured
	res := Evaluate(schedule, at(2025, time.September, 30, 10, 0))
	if res.IsAvailable {
		t.Fatalf("expected unavailable, got %+v", res)
	}
	if res.Status != StatusUnspecified {
		t.Fatalf("unexpected status %q", res.Status)
	}
	if res.Reason != "Sin horario configurado para hoy" {
		t.Fatalf("unexpected reason %q", res.Reason)
	}
}

func TestFullDayOverridesWindows(t *testing.T) {
	schedule := &models.WeeklySchedule{
		Monday: &models.DayPlan{
			FullDay: true,
			Morning: &models.TimeWindow{Enabled: false, Start: "09:00", End: "12:00"},
		},
	}
	for _, hour := range []int{0, 3, 12, 23} {
		res := Evaluate(schedule, at(2025, time.September, 29, hour, 30))
		if !res.IsAvailable {
			t.Fatalf("hour %d: expected available, got %+v", hour, res)
		}
		if res.Reason != "Disponible 24 horas" {
			t.Fatalf("hour %d: unexpected reason %q", hour, res.Reason)
		}
	}
}

func TestWindowBoundariesInclusive(t *testing.T) {
	schedule := &models.WeeklySchedule{
		Monday: &models.DayPlan{Morning: window("09:00", "12:00")},
	}

	cases := []struct {
		hour, min int
		available bool
	}{
		{8, 59, false},
		{9, 0, true},
		{10, 30, true},
		{12, 0, true},
		{12, 1, false},
	}
	for _, tc := range cases {
		res := Evaluate(schedule, at(2025, time.September, 29, tc.hour, tc.min))
		if res.IsAvailable != tc.available {
			t.Fatalf("%02d:%02d: expected available=%v, got %+v", tc.hour, tc.min, tc.available, res)
		}
	}
}

func TestPositiveMatchCarriesNoReason(t *testing.T) {
	schedule := &models.WeeklySchedule{
		Tuesday: &models.DayPlan{Afternoon: window("14:00", "18:00")},
	}
	// Tuesday 2025-09-30 15:30
	res := Evaluate(schedule, at(2025, time.September, 30, 15, 30))
	if !res.IsAvailable || res.Status != StatusAvailable {
		t.Fatalf("expected available, got %+v", res)
	}
	if res.Reason != "" {
		t.Fatalf("expected empty reason, got %q", res.Reason)
	}
}

func TestGapBetweenWindows(t *testing.T) {
	schedule := &models.WeeklySchedule{
		Monday: &models.DayPlan{
			Morning:   window("09:00", "12:00"),
			Afternoon: window("14:00", "18:00"),
		},
	}
	res := Evaluate(schedule, at(2025, time.September, 29, 13, 0))
	if res.IsAvailable {
		t.Fatalf("expected unavailable, got %+v", res)
	}
	if res.Reason != "Disponible desde las 14:00" {
		t.Fatalf("unexpected reason %q", res.Reason)
	}
}

func TestBeforeFirstWindow(t *testing.T) {
	schedule := &models.WeeklySchedule{
		Monday: &models.DayPlan{
			Morning:   window("09:00", "12:00"),
			Afternoon: window("14:00", "18:00"),
		},
	}
	res := Evaluate(schedule, at(2025, time.September, 29, 7, 15))
	if res.Reason != "Disponible desde las 09:00" {
		t.Fatalf("unexpected reason %q", res.Reason)
	}
}

func TestCrossMidnightWindow(t *testing.T) {
	schedule := &models.WeeklySchedule{
		Monday: &models.DayPlan{Afternoon: window("22:00", "02:00")},
	}

	cases := []struct {
		hour, min int
		available bool
	}{
		{23, 30, true},
		{1, 59, true},
		{2, 0, true},
		{2, 1, false},
		{21, 59, false},
	}
	for _, tc := range cases {
		res := Evaluate(schedule, at(2025, time.September, 29, tc.hour, tc.min))
		if res.IsAvailable != tc.available {
			t.Fatalf("%02d:%02d: expected available=%v, got %+v", tc.hour, tc.min, tc.available, res)
		}
	}
}

func TestHolidaySuppression(t *testing.T) {
	schedule := &models.WeeklySchedule{
		Thursday:       &models.DayPlan{Morning: window("09:00", "12:00")},
		WorkOnHolidays: false,
	}
	// Thursday 2025-05-01, Día del Trabajador
	res := Evaluate(schedule, at(2025, time.May, 1, 10, 0))
	if res.IsAvailable {
		t.Fatalf("expected unavailable on holiday, got %+v", res)
	}
	if res.Status != StatusUnspecified || res.Reason != "Día feriado" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestScheduleLevelHolidayOverride(t *testing.T) {
	schedule := &models.WeeklySchedule{
		Thursday:       &models.DayPlan{Morning: window("09:00", "12:00")},
		WorkOnHolidays: true,
	}
	res := Evaluate(schedule, at(2025, time.May, 1, 10, 0))
	if !res.IsAvailable {
		t.Fatalf("expected available with workOnHolidays, got %+v", res)
	}
}

func TestDayLevelHolidayOverride(t *testing.T) {
	yes := true
	schedule := &models.WeeklySchedule{
		Thursday: &models.DayPlan{
			Morning:        window("09:00", "12:00"),
			WorkOnHolidays: &yes,
		},
	}
	res := Evaluate(schedule, at(2025, time.May, 1, 10, 0))
	if !res.IsAvailable {
		t.Fatalf("expected available with day-level override, got %+v", res)
	}
}

func TestHolidayOutsideWindowStillUnavailable(t *testing.T) {
	schedule := &models.WeeklySchedule{
		Thursday:       &models.DayPlan{Morning: window("09:00", "12:00")},
		WorkOnHolidays: true,
	}
	// Override only lifts suppression; normal window rules still apply.
	res := Evaluate(schedule, at(2025, time.May, 1, 13, 0))
	if res.IsAvailable {
		t.Fatalf("expected unavailable outside window, got %+v", res)
	}
}

func TestForwardScanFindsNextDay(t *testing.T) {
	schedule := &models.WeeklySchedule{
		Friday: &models.DayPlan{Morning: window("09:00", "12:00")},
	}
	// Wednesday 2025-10-01... wednesday has no plan, so the "missing day"
	// branch wins. Configure wednesday closed-by-windows to reach the scan.
	schedule.Wednesday = &models.DayPlan{
		Morning: &models.TimeWindow{Enabled: false, Start: "09:00", End: "12:00"},
	}
	res := Evaluate(schedule, at(2025, time.October, 1, 10, 0))
	if res.IsAvailable {
		t.Fatalf("expected unavailable, got %+v", res)
	}
	if res.Reason != "Disponible el Viernes desde las 09:00" {
		t.Fatalf("unexpected reason %q", res.Reason)
	}
}

func TestForwardScanFullDayStartsAtMidnight(t *testing.T) {
	schedule := &models.WeeklySchedule{
		Wednesday: &models.DayPlan{Afternoon: window("14:00", "18:00")},
		Saturday:  &models.DayPlan{FullDay: true},
	}
	// Wednesday 19:00, afternoon already over
	res := Evaluate(schedule, at(2025, time.October, 1, 19, 0))
	if res.Reason != "Disponible el Sábado desde las 00:00" {
		t.Fatalf("unexpected reason %q", res.Reason)
	}
}

func TestNoOpeningFallback(t *testing.T) {
	schedule := &models.WeeklySchedule{
		Monday: &models.DayPlan{
			Morning: &models.TimeWindow{Enabled: false, Start: "09:00", End: "12:00"},
		},
	}
	res := Evaluate(schedule, at(2025, time.September, 29, 13, 0))
	if res.Reason != "Fuera de horario" {
		t.Fatalf("unexpected reason %q", res.Reason)
	}
}

func TestMalformedWindowNeverMatches(t *testing.T) {
	cases := []struct {
		name  string
		start string
	}{
		{"not a clock", "9am"},
		{"missing zero padding", "9:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			schedule := &models.WeeklySchedule{
				Monday: &models.DayPlan{Morning: window(tc.start, "12:00")},
			}
			res := Evaluate(schedule, at(2025, time.September, 29, 10, 0))
			if res.IsAvailable {
				t.Fatalf("malformed window must not match, got %+v", res)
			}
		})
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	schedule := &models.WeeklySchedule{
		Monday: &models.DayPlan{Morning: window("09:00", "12:00")},
	}
	first := Evaluate(schedule, monday)
	second := Evaluate(schedule, monday)
	if first != second {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestCustomCalendarInjection(t *testing.T) {
	schedule := &models.WeeklySchedule{
		Monday: &models.DayPlan{Morning: window("09:00", "12:00")},
	}

	// A calendar that declares every day a holiday.
	engine := New(holidayFunc(func(time.Time) bool { return true }))
	res := engine.Evaluate(schedule, monday)
	if res.Reason != "Día feriado" {
		t.Fatalf("unexpected reason %q", res.Reason)
	}

	engine = New(holidayFunc(func(time.Time) bool { return false }))
	res = engine.Evaluate(schedule, monday)
	if !res.IsAvailable {
		t.Fatalf("expected available, got %+v", res)
	}
}

type holidayFunc func(time.Time) bool

func (f holidayFunc) IsHoliday(t time.Time) bool { return f(t) }

// The three end-to-end scenarios the discovery badge renders.
func TestEndToEndScenarios(t *testing.T) {
	cases := []struct {
		name     string
		schedule *models.WeeklySchedule
		now      time.Time
		want     Result
	}{
		{
			name:     "full day monday",
			schedule: &models.WeeklySchedule{Monday: &models.DayPlan{FullDay: true}},
			now:      at(2025, time.September, 29, 10, 0),
			want:     Result{IsAvailable: true, Status: StatusAvailable, Reason: "Disponible 24 horas"},
		},
		{
			name:     "tuesday afternoon match",
			schedule: &models.WeeklySchedule{Tuesday: &models.DayPlan{Afternoon: window("14:00", "18:00")}},
			now:      at(2025, time.September, 30, 15, 30),
			want:     Result{IsAvailable: true, Status: StatusAvailable},
		},
		{
			name: "labor day suppression",
			schedule: &models.WeeklySchedule{
				Thursday:       &models.DayPlan{Morning: window("09:00", "12:00")},
				WorkOnHolidays: false,
			},
			now:  at(2025, time.May, 1, 10, 0),
			want: Result{IsAvailable: false, Status: StatusUnspecified, Reason: "Día feriado"},
		},
	}

	for _, tc := range cases {
		if got := Evaluate(tc.schedule, tc.now); got != tc.want {
			t.Fatalf("%s: got %+v, want %+v", tc.name, got, tc.want)
		}
	}
}
