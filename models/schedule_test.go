package models

import (
	"testing"
	"time"
)

func TestValidateAcceptsWellFormedSchedule(t *testing.T) {
	s := &WeeklySchedule{
		Monday: &DayPlan{
			Morning:   &TimeWindow{Enabled: true, Start: "09:00", End: "12:00"},
			Afternoon: &TimeWindow{Enabled: true, Start: "14:00", End: "18:00"},
		},
		Saturday: &DayPlan{FullDay: true},
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsMalformedTimes(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
	}{
		{"missing zero padding", "9:00", "12:00"},
		{"am/pm suffix", "09:00", "12pm"},
		{"out of range hour", "25:00", "26:00"},
		{"garbage", "mañana", "tarde"},
	}

	for _, tc := range cases {
		s := &WeeklySchedule{
			Monday: &DayPlan{
				Morning: &TimeWindow{Enabled: true, Start: tc.start, End: tc.end},
			},
		}
		if err := s.Validate(); err == nil {
			t.Fatalf("%s: expected validation error for %q-%q", tc.name, tc.start, tc.end)
		}
	}
}

func TestParseClockStrictness(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"9:30", 0, false},
		{"09:3", 0, false},
		{"24:00", 0, false},
		{"09:60", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		minutes, ok := ParseClock(tc.in)
		if ok != tc.ok || minutes != tc.minutes {
			t.Fatalf("ParseClock(%q) = (%d, %v), want (%d, %v)", tc.in, minutes, ok, tc.minutes, tc.ok)
		}
	}
}

func TestValidateIgnoresDisabledWindows(t *testing.T) {
	// Disabled windows never reach evaluation, so their contents are not
	// validated.
	s := &WeeklySchedule{
		Monday: &DayPlan{
			Morning: &TimeWindow{Enabled: false, Start: "not a time", End: "either"},
		},
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestScheduleScanValueRoundTrip(t *testing.T) {
	yes := true
	original := WeeklySchedule{
		Tuesday: &DayPlan{
			Morning:        &TimeWindow{Enabled: true, Start: "08:30", End: "12:00"},
			WorkOnHolidays: &yes,
		},
		WorkOnHolidays: false,
	}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value error: %v", err)
	}

	var restored WeeklySchedule
	if err := restored.Scan(value); err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if restored.Tuesday == nil || restored.Tuesday.Morning == nil {
		t.Fatal("tuesday morning lost in round trip")
	}
	if restored.Tuesday.Morning.Start != "08:30" {
		t.Fatalf("unexpected start %q", restored.Tuesday.Morning.Start)
	}
	if restored.Tuesday.WorkOnHolidays == nil || !*restored.Tuesday.WorkOnHolidays {
		t.Fatal("day-level workOnHolidays lost in round trip")
	}
	if restored.Wednesday != nil {
		t.Fatal("unconfigured day must stay nil")
	}
}

func TestDayByWeekdayMapping(t *testing.T) {
	plans := [7]*DayPlan{{}, {}, {}, {}, {}, {}, {}}
	s := &WeeklySchedule{
		Sunday:    plans[0],
		Monday:    plans[1],
		Tuesday:   plans[2],
		Wednesday: plans[3],
		Thursday:  plans[4],
		Friday:    plans[5],
		Saturday:  plans[6],
	}

	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.DayByWeekday(d) != plans[int(d)] {
			t.Fatalf("weekday %v mapped to the wrong plan", d)
		}
	}
}
