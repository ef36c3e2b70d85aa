package state

import (
	"testing"
	"time"

	"github.com/julianstephens/cronograma/internal/scheduling"
)

func TestScheduleFormRequestClampsHours(t *testing.T) {
	tests := []struct {
		period scheduling.Period
		hours  string
		want   int
	}{
		{scheduling.Noturno, "5", 3},
		{scheduling.Matutino, "5", 4},
		{scheduling.Vespertino, "2", 2},
		{scheduling.Noturno, "abc", 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.period)+"/"+tt.hours, func(t *testing.T) {
			f := &ScheduleFormModel{
				Period: tt.period,
				Hours:  tt.hours,
				Days:   []time.Time{time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)},
			}
			req := f.Request()
			if req.Hours != tt.want || req.Period != tt.period {
				t.Errorf("Request() = %d h %s, want %d h %s", req.Hours, req.Period, tt.want, tt.period)
			}
		})
	}
}

func TestScheduleFormClampHours(t *testing.T) {
	f := &ScheduleFormModel{Period: scheduling.Matutino, Hours: "4"}
	if f.ClampHours() {
		t.Error("4h fits Matutino, ClampHours() should not change it")
	}

	f.Period = scheduling.Noturno
	if !f.ClampHours() || f.Hours != "3" {
		t.Errorf("after switching to Noturno hours = %q, want 3", f.Hours)
	}
}
