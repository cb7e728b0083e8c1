package client

import (
	"errors"
	"strings"
	"testing"
)

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name     string
		request  Request
		wantErrs []string
	}{
		{
			name:    "only last period",
			request: Request{LastPeriod: "2024-01-01"},
		},
		{
			name:    "all parameters at bounds",
			request: Request{LastPeriod: "2024-01-01", CycleLength: 35, PeriodLength: 2, Cycles: 12},
		},
		{
			name:     "missing last period",
			request:  Request{CycleLength: 28},
			wantErrs: []string{"required parameter [last_period] is missing"},
		},
		{
			name:     "malformed last period",
			request:  Request{LastPeriod: "01/01/2024"},
			wantErrs: []string{"parameter [last_period] must be a valid date (yyyy-MM-dd)"},
		},
		{
			name:    "lengths out of range",
			request: Request{LastPeriod: "2024-01-01", CycleLength: 20, PeriodLength: 11, Cycles: 13},
			wantErrs: []string{
				"parameter [cycle_length] must be at least 21",
				"parameter [period_length] must be at most 10",
				"parameter [cycles] must be at most 12",
			},
		},
		{
			name:     "negative cycles",
			request:  Request{LastPeriod: "2024-01-01", Cycles: -1},
			wantErrs: []string{"parameter [cycles] must be at least 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if len(tt.wantErrs) == 0 {
				if err != nil {
					t.Fatalf("expected request to be valid, got %v", err)
				}
				return
			}

			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected *ValidationError, got %T: %v", err, err)
			}
			if strings.Join(validationErr.Errors, "|") != strings.Join(tt.wantErrs, "|") {
				t.Fatalf("expected errors %q, got %q", tt.wantErrs, validationErr.Errors)
			}
		})
	}
}

func TestRequestQueryParamsSkipsZeroValues(t *testing.T) {
	params := Request{LastPeriod: "2024-01-01", PeriodLength: 5}.QueryParams()

	if got := params.Encode(); got != "last_period=2024-01-01&period_length=5" {
		t.Fatalf("unexpected query: %s", got)
	}
}
