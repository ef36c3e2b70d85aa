package utils

import (
	"testing"
	"time"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name      string
		window    string
		wantStart string
		wantEnd   string
		wantErr   bool
	}{
		{name: "morning", window: "08:00-12:00", wantStart: "08:00", wantEnd: "12:00"},
		{name: "spaces around dash", window: "19:00 - 22:00", wantStart: "19:00", wantEnd: "22:00"},
		{name: "custom", window: "13:30-15:00", wantStart: "13:30", wantEnd: "15:00"},
		{name: "missing end", window: "08:00", wantErr: true},
		{name: "garbage", window: "manhã-tarde", wantErr: true},
		{name: "reversed", window: "12:00-08:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ParseWindow(tt.window)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWindow(%q) error = %v, wantErr %v", tt.window, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := start.Format("15:04"); got != tt.wantStart {
				t.Errorf("start = %s, want %s", got, tt.wantStart)
			}
			if got := end.Format("15:04"); got != tt.wantEnd {
				t.Errorf("end = %s, want %s", got, tt.wantEnd)
			}
		})
	}
}

func TestCombineDateAndTime(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}
	clock, _ := ParseTime("14:00")

	got, err := CombineDateAndTime("2025-03-10", clock, loc)
	if err != nil {
		t.Fatalf("CombineDateAndTime() error = %v", err)
	}
	want := time.Date(2025, time.March, 10, 14, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("CombineDateAndTime() = %v, want %v", got, want)
	}

	if _, err := CombineDateAndTime("10/03/2025", clock, loc); err == nil {
		t.Error("CombineDateAndTime() expected error for bad date")
	}
}
