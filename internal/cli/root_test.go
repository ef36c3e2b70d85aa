package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/cronograma/internal/storage"
)

func TestParseDays(t *testing.T) {
	days, err := ParseDays([]string{"2025-03-10", "2025-03-11, 2025-03-12", ""})
	if err != nil {
		t.Fatalf("ParseDays() error = %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("ParseDays() returned %d days, want 3", len(days))
	}
	if days[2].Day() != 12 || days[2].Hour() != 0 {
		t.Errorf("days[2] = %v, want local midnight of the 12th", days[2])
	}

	if _, err := ParseDays([]string{"10/03/2025"}); err == nil {
		t.Error("ParseDays() accepted a non ISO date")
	}
}

func TestResolveID(t *testing.T) {
	ids := []string{"3f2a9c10-aaaa", "3f2b0000-bbbb", "9e00aaaa-cccc"}

	tests := []struct {
		name    string
		prefix  string
		want    string
		wantErr bool
	}{
		{"exact", "9e00aaaa-cccc", "9e00aaaa-cccc", false},
		{"unique prefix", "3f2a", "3f2a9c10-aaaa", false},
		{"ambiguous", "3f2", "", true},
		{"missing", "ffff", "", true},
		{"empty", " ", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveID(tt.prefix, ids)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ResolveID() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := ResolveID("ffff", ids); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("ResolveID() missing error = %v, want ErrNotFound", err)
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("3f2a9c10-1234-5678"); got != "3f2a9c10" {
		t.Errorf("ShortID() = %q", got)
	}
	if got := ShortID("abc"); got != "abc" {
		t.Errorf("ShortID() = %q", got)
	}
}

func TestContextNationalUsesSpan(t *testing.T) {
	ctx := &Context{
		YearSpan: 4,
		Now:      func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local) },
	}
	national := ctx.National()
	if _, ok := national.Lookup(time.Date(2029, 12, 25, 0, 0, 0, 0, time.Local)); !ok {
		t.Error("expected Christmas 2029 inside a four year span")
	}
	if got := ctx.Today(); got.Hour() != 0 || got.Day() != 1 {
		t.Errorf("Today() = %v, want local midnight", got)
	}
}
