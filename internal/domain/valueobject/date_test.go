package valueobject

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "2026-01-28"},
		{input: "2024-02-29"},
		{input: "2026-02-29", wantErr: true},
		{input: "2026-1-5", wantErr: true},
		{input: "2026-01-28T10:00:00Z", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := ParseDate(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("expected ErrInvalidDate, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.String() != tt.input {
				t.Errorf("expected %s, got %s", tt.input, d)
			}
		})
	}
}

func TestDate_CompareMatchesISOOrdering(t *testing.T) {
	dates := []string{"2025-12-31", "2026-01-01", "2026-01-10", "2026-02-01", "2026-10-01"}
	for i := range dates {
		for j := range dates {
			a, b := MustParseDate(dates[i]), MustParseDate(dates[j])
			want := 0
			if dates[i] < dates[j] {
				want = -1
			} else if dates[i] > dates[j] {
				want = 1
			}
			if got := a.Compare(b); got != want {
				t.Errorf("%s vs %s: expected %d, got %d", a, b, want, got)
			}
		}
	}
}

func TestDate_DaysUntil(t *testing.T) {
	if got := MustParseDate("2026-01-28").DaysUntil(MustParseDate("2026-02-27")); got != 30 {
		t.Errorf("expected 30, got %d", got)
	}
	if got := MustParseDate("2026-03-01").DaysUntil(MustParseDate("2026-02-28")); got != -1 {
		t.Errorf("expected -1, got %d", got)
	}
}

func TestTodayIn(t *testing.T) {
	now := time.Date(2026, time.March, 1, 2, 30, 0, 0, time.UTC)
	saoPaulo := time.FixedZone("BRT", -3*60*60)

	if got := TodayIn(now, saoPaulo).String(); got != "2026-02-28" {
		t.Errorf("expected 2026-02-28, got %s", got)
	}
	if got := TodayIn(now, nil).String(); got != "2026-03-01" {
		t.Errorf("expected 2026-03-01, got %s", got)
	}
}

func TestDate_JSON(t *testing.T) {
	var payload struct {
		Date Date `json:"date"`
	}
	if err := json.Unmarshal([]byte(`{"date":"2026-01-15"}`), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != `{"date":"2026-01-15"}` {
		t.Errorf("unexpected encoding %s", out)
	}
}

func TestDaysIn(t *testing.T) {
	if DaysIn(time.February, 2024) != 29 || DaysIn(time.February, 2100) != 28 || DaysIn(time.December, 2026) != 31 {
		t.Error("unexpected days-in-month result")
	}
}
