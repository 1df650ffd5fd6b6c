package transaction

import (
	"testing"
	"time"
)

func TestParseFilter(t *testing.T) {
	day := time.Date(2023, 4, 30, 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(2023, 4, 30, 23, 59, 59, 999000000, time.UTC)
	mayEnd := time.Date(2023, 5, 10, 23, 59, 59, 999000000, time.UTC)

	nine := 9.0
	fifty := 50.0

	tests := []struct {
		name     string
		params   FilterParams
		wantErr  error
		wantFrom *time.Time
		wantTo   *time.Time
		wantMin  *float64
		wantMax  *float64
	}{
		{
			name:   "empty",
			params: FilterParams{},
		},
		{
			name:     "date expands to the whole day",
			params:   FilterParams{Date: "2023-04-30"},
			wantFrom: &day,
			wantTo:   &dayEnd,
		},
		{
			name:     "from only",
			params:   FilterParams{From: "2023-04-30"},
			wantFrom: &day,
		},
		{
			name:   "upTo includes the whole day",
			params: FilterParams{UpTo: "2023-05-10"},
			wantTo: &mayEnd,
		},
		{
			name:     "from and upTo",
			params:   FilterParams{From: "2023-04-30", UpTo: "2023-05-10"},
			wantFrom: &day,
			wantTo:   &mayEnd,
		},
		{
			name:    "date with interval",
			params:  FilterParams{Date: "2023-04-30", From: "2023-04-01"},
			wantErr: ErrDateAndInterval,
		},
		{
			name:    "date with upTo",
			params:  FilterParams{Date: "2023-04-30", UpTo: "2023-05-10"},
			wantErr: ErrDateAndInterval,
		},
		{
			name:    "bad date format",
			params:  FilterParams{Date: "30-04-2023"},
			wantErr: ErrInvalidDateFormat,
		},
		{
			name:    "bad from format",
			params:  FilterParams{From: "yesterday"},
			wantErr: ErrInvalidDateFormat,
		},
		{
			name:    "month out of range",
			params:  FilterParams{Date: "2023-13-01"},
			wantErr: ErrInvalidDateFormat,
		},
		{
			name:    "min and max",
			params:  FilterParams{Min: "9", Max: "50"},
			wantMin: &nine,
			wantMax: &fifty,
		},
		{
			name:    "min truncates decimals",
			params:  FilterParams{Min: "9.9"},
			wantMin: &nine,
		},
		{
			name:    "min not a number",
			params:  FilterParams{Min: "cheap"},
			wantErr: ErrAmountNotNumber,
		},
		{
			name:    "max not a number",
			params:  FilterParams{Min: "9", Max: "expensive"},
			wantErr: ErrAmountNotNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFilter(tt.params)
			if err != tt.wantErr {
				t.Fatalf("ParseFilter error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}

			checkTime := func(name string, got, want *time.Time) {
				t.Helper()
				if (got == nil) != (want == nil) {
					t.Fatalf("%s = %v, want %v", name, got, want)
				}
				if got != nil && !got.Equal(*want) {
					t.Fatalf("%s = %v, want %v", name, got, want)
				}
			}
			checkTime("DateFrom", f.DateFrom, tt.wantFrom)
			checkTime("DateTo", f.DateTo, tt.wantTo)

			checkFloat := func(name string, got, want *float64) {
				t.Helper()
				if (got == nil) != (want == nil) {
					t.Fatalf("%s = %v, want %v", name, got, want)
				}
				if got != nil && *got != *want {
					t.Fatalf("%s = %v, want %v", name, *got, *want)
				}
			}
			checkFloat("MinAmount", f.MinAmount, tt.wantMin)
			checkFloat("MaxAmount", f.MaxAmount, tt.wantMax)
		})
	}
}

func TestParseFilter_UnanchoredDate(t *testing.T) {
	// The day pattern only has to occur somewhere in the value.
	f, err := ParseFilter(FilterParams{Date: "on 2023-04-30 exactly"})
	if err != nil {
		t.Fatalf("ParseFilter: %v", err)
	}
	if f.DateFrom == nil || f.DateFrom.Day() != 30 {
		t.Fatalf("unexpected DateFrom: %v", f.DateFrom)
	}
}
