package scheduling

import "testing"

func TestPeriodSpecs(t *testing.T) {
	tests := []struct {
		period  Period
		ceiling int
		window  string
	}{
		{Matutino, 4, "08:00-12:00"},
		{Vespertino, 4, "14:00-18:00"},
		{Noturno, 3, "19:00-22:00"},
	}
	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			if got := tt.period.Ceiling(); got != tt.ceiling {
				t.Errorf("Ceiling() = %d, want %d", got, tt.ceiling)
			}
			if got := tt.period.Window(); got != tt.window {
				t.Errorf("Window() = %q, want %q", got, tt.window)
			}
			if p, ok := PeriodForWindow(tt.window); !ok || p != tt.period {
				t.Errorf("PeriodForWindow(%q) = %q, %v", tt.window, p, ok)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	if p, err := ParsePeriod("noturno"); err != nil || p != Noturno {
		t.Errorf("ParsePeriod(noturno) = %q, %v", p, err)
	}
	if _, err := ParsePeriod("madrugada"); err == nil {
		t.Error("ParsePeriod(madrugada) expected error")
	}
}

func TestClampHours(t *testing.T) {
	tests := []struct {
		hours  int
		period Period
		want   int
	}{
		{5, Noturno, 3},
		{3, Noturno, 3},
		{4, Matutino, 4},
		{2, Vespertino, 2},
		{8, Vespertino, 4},
	}
	for _, tt := range tests {
		if got := ClampHours(tt.hours, tt.period); got != tt.want {
			t.Errorf("ClampHours(%d, %s) = %d, want %d", tt.hours, tt.period, got, tt.want)
		}
	}
}
