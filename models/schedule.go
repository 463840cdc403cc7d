package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TimeWindow is an enabled/disabled time-of-day range. Start and End are
// 24h "HH:MM" wall-clock strings; when Start > End the window wraps past
// midnight into the next day.
type TimeWindow struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// DayPlan describes one weekday's availability. FullDay overrides the
// morning/afternoon windows. WorkOnHolidays, when set, overrides the
// schedule-level default for that day.
type DayPlan struct {
	FullDay        bool        `json:"fullDay"`
	Morning        *TimeWindow `json:"morning,omitempty"`
	Afternoon      *TimeWindow `json:"afternoon,omitempty"`
	WorkOnHolidays *bool       `json:"workOnHolidays,omitempty"`
}

// WeeklySchedule is a professional's recurring availability, one optional
// DayPlan per weekday. A nil entry means the day was never configured,
// which is not the same as an explicitly disabled window.
type WeeklySchedule struct {
	Sunday         *DayPlan `json:"sunday,omitempty"`
	Monday         *DayPlan `json:"monday,omitempty"`
	Tuesday        *DayPlan `json:"tuesday,omitempty"`
	Wednesday      *DayPlan `json:"wednesday,omitempty"`
	Thursday       *DayPlan `json:"thursday,omitempty"`
	Friday         *DayPlan `json:"friday,omitempty"`
	Saturday       *DayPlan `json:"saturday,omitempty"`
	WorkOnHolidays bool     `json:"workOnHolidays"`
}

// DayByWeekday maps time.Weekday (Sunday=0 .. Saturday=6) to that day's plan.
func (s *WeeklySchedule) DayByWeekday(d time.Weekday) *DayPlan {
	switch d {
	case time.Sunday:
		return s.Sunday
	case time.Monday:
		return s.Monday
	case time.Tuesday:
		return s.Tuesday
	case time.Wednesday:
		return s.Wednesday
	case time.Thursday:
		return s.Thursday
	case time.Friday:
		return s.Friday
	case time.Saturday:
		return s.Saturday
	}
	return nil
}

// Value implements the driver.Valuer interface
func (s WeeklySchedule) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil // Return as string for JSONB type
}

// Scan implements the sql.Scanner interface
func (s *WeeklySchedule) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal WeeklySchedule: unsupported type %T", value)
	}

	return json.Unmarshal(data, s)
}

// ParseClock converts a strict 24h "HH:MM" string to minutes since
// midnight. time.Parse alone accepts lenient forms like "9:00", so the
// round trip back to "15:04" pins the zero-padded shape.
func ParseClock(s string) (int, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil || t.Format("15:04") != s {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// Validate rejects malformed "HH:MM" strings before a schedule is stored,
// so parse failures never reach availability evaluation.
func (s *WeeklySchedule) Validate() error {
	days := map[string]*DayPlan{
		"sunday":    s.Sunday,
		"monday":    s.Monday,
		"tuesday":   s.Tuesday,
		"wednesday": s.Wednesday,
		"thursday":  s.Thursday,
		"friday":    s.Friday,
		"saturday":  s.Saturday,
	}

	for name, plan := range days {
		if plan == nil {
			continue
		}
		for label, window := range map[string]*TimeWindow{"morning": plan.Morning, "afternoon": plan.Afternoon} {
			if window == nil || !window.Enabled {
				continue
			}
			if _, ok := ParseClock(window.Start); !ok {
				return fmt.Errorf("invalid %s start time %q for %s", label, window.Start, name)
			}
			if _, ok := ParseClock(window.End); !ok {
				return fmt.Errorf("invalid %s end time %q for %s", label, window.End, name)
			}
		}
	}

	return nil
}
