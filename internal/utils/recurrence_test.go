package utils

import (
	"testing"
	"time"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.Local)
}

func TestExpandRuleWeekly(t *testing.T) {
	// March 2025: Mondays and Wednesdays
	days, err := ExpandRule("FREQ=WEEKLY;BYDAY=MO,WE", d(2025, time.March, 1), d(2025, time.March, 31))
	if err != nil {
		t.Fatalf("ExpandRule() error = %v", err)
	}

	want := []int{3, 5, 10, 12, 17, 19, 24, 26, 31}
	if len(days) != len(want) {
		t.Fatalf("got %d days, want %d: %v", len(days), len(want), days)
	}
	for i, day := range days {
		if day.Day() != want[i] || day.Month() != time.March {
			t.Errorf("day %d = %s, want March %d", i, day.Format("2006-01-02"), want[i])
		}
		if day.Hour() != 0 || day.Minute() != 0 {
			t.Errorf("day %d is not at midnight: %s", i, day)
		}
	}
}

func TestExpandRuleUntilIsInclusive(t *testing.T) {
	days, err := ExpandRule("RRULE:FREQ=DAILY", d(2025, time.March, 10), d(2025, time.March, 14))
	if err != nil {
		t.Fatalf("ExpandRule() error = %v", err)
	}
	if len(days) != 5 {
		t.Fatalf("got %d days, want 5", len(days))
	}
	if last := days[len(days)-1]; last.Day() != 14 {
		t.Errorf("last day = %s, want 2025-03-14", last.Format("2006-01-02"))
	}
}

func TestExpandRuleCount(t *testing.T) {
	days, err := ExpandRule("FREQ=WEEKLY;BYDAY=TU;COUNT=3", d(2025, time.March, 1), d(2025, time.December, 31))
	if err != nil {
		t.Fatalf("ExpandRule() error = %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("got %d days, want 3", len(days))
	}
}

func TestExpandRuleErrors(t *testing.T) {
	tests := []struct {
		name  string
		rule  string
		from  time.Time
		until time.Time
	}{
		{"empty rule", "", d(2025, time.March, 1), d(2025, time.March, 31)},
		{"bad frequency", "FREQ=SOMETIMES", d(2025, time.March, 1), d(2025, time.March, 31)},
		{"reversed range", "FREQ=DAILY", d(2025, time.March, 31), d(2025, time.March, 1)},
		{"too many days", "FREQ=DAILY", d(2025, time.January, 1), d(2027, time.January, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ExpandRule(tt.rule, tt.from, tt.until); err == nil {
				t.Errorf("ExpandRule(%q) expected error", tt.rule)
			}
		})
	}
}
