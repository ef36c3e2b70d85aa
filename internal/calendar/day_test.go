package calendar

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	now := day(2026, time.October, 16)

	y, m, err := ParseMonth("", now)
	if err != nil || y != 2026 || m != time.October {
		t.Errorf("ParseMonth(\"\") = %d, %s, %v", y, m, err)
	}

	y, m, err = ParseMonth("2025-02", now)
	if err != nil || y != 2025 || m != time.February {
		t.Errorf("ParseMonth(2025-02) = %d, %s, %v", y, m, err)
	}

	if _, _, err := ParseMonth("02/2025", now); err == nil {
		t.Error("ParseMonth should reject other layouts")
	}
}

func TestShiftMonth(t *testing.T) {
	tests := []struct {
		year      int
		month     time.Month
		delta     int
		wantYear  int
		wantMonth time.Month
	}{
		{2025, time.December, 1, 2026, time.January},
		{2025, time.January, -1, 2024, time.December},
		{2025, time.May, 0, 2025, time.May},
		{2025, time.March, 12, 2026, time.March},
	}
	for _, tt := range tests {
		y, m := ShiftMonth(tt.year, tt.month, tt.delta)
		if y != tt.wantYear || m != tt.wantMonth {
			t.Errorf("ShiftMonth(%d, %s, %d) = %d, %s", tt.year, tt.month, tt.delta, y, m)
		}
	}
}

func TestMonthBounds(t *testing.T) {
	from, until := MonthBounds(2024, time.February)
	if from != "2024-02-01" || until != "2024-02-29" {
		t.Errorf("MonthBounds(2024-02) = %s, %s", from, until)
	}
}

func TestMidnight(t *testing.T) {
	in := time.Date(2025, time.March, 10, 15, 4, 5, 6, time.Local)
	if got := Midnight(in); !got.Equal(day(2025, time.March, 10)) {
		t.Errorf("Midnight() = %s", got)
	}
}
