package availability

import (
	"testing"
	"time"
)

func TestArgentineHolidays(t *testing.T) {
	cal := ArgentineHolidays{}

	holidays := []time.Time{
		time.Date(2025, time.January, 1, 9, 0, 0, 0, time.Local),
		time.Date(2025, time.May, 1, 9, 0, 0, 0, time.Local),
		time.Date(2025, time.May, 25, 9, 0, 0, 0, time.Local),
		time.Date(2025, time.July, 9, 9, 0, 0, 0, time.Local),
		time.Date(2025, time.December, 8, 9, 0, 0, 0, time.Local),
		time.Date(2025, time.December, 25, 9, 0, 0, 0, time.Local),
	}
	for _, d := range holidays {
		if !cal.IsHoliday(d) {
			t.Fatalf("expected %s to be a holiday", d.Format("2006-01-02"))
		}
	}

	workdays := []time.Time{
		time.Date(2025, time.January, 2, 9, 0, 0, 0, time.Local),
		time.Date(2025, time.May, 24, 9, 0, 0, 0, time.Local),
		time.Date(2025, time.July, 10, 9, 0, 0, 0, time.Local),
	}
	for _, d := range workdays {
		if cal.IsHoliday(d) {
			t.Fatalf("expected %s to be a regular day", d.Format("2006-01-02"))
		}
	}
}
