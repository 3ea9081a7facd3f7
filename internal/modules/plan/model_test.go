// README: Request validation tests.
package plan

import (
	"errors"
	"strings"
	"testing"
)

func validRequest() PlanRequest {
	return PlanRequest{
		Origin:         "NYC",
		Destination:    "Tokyo",
		DepartTime:     "2025-03-01T00:00:00Z",
		TripLengthDays: 3,
	}
}

func TestValidateDepartTime(t *testing.T) {
	cases := []struct {
		name    string
		depart  string
		wantErr bool
	}{
		{"rfc3339 z shorthand", "2025-03-01T00:00:00Z", false},
		{"rfc3339 offset", "2025-03-01T09:30:00+08:00", false},
		{"no offset", "2025-03-01T09:30:00", false},
		{"minutes only", "2025-03-01T09:30", false},
		{"date only", "2025-03-01", false},
		{"prose", "next tuesday", true},
		{"empty", "", true},
		{"impossible date", "2025-13-45", true},
		{"partial", "2025-03", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			req.DepartTime = tc.depart
			err := req.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
				if !strings.Contains(err.Error(), "depart_time") {
					t.Errorf("error should name depart_time, got %q", err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateTripLengthBounds(t *testing.T) {
	cases := []struct {
		days    int
		wantErr bool
	}{
		{-1, true},
		{0, true},
		{1, false},
		{30, false},
		{31, true},
	}
	for _, tc := range cases {
		req := validRequest()
		req.TripLengthDays = tc.days
		err := req.Validate()
		if tc.wantErr {
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("days=%d: expected ErrValidation, got %v", tc.days, err)
			}
			if !strings.Contains(err.Error(), "trip_length_days") {
				t.Errorf("days=%d: error should name trip_length_days, got %q", tc.days, err.Error())
			}
			continue
		}
		if err != nil {
			t.Fatalf("days=%d: unexpected error: %v", tc.days, err)
		}
	}
}

func TestValidateRequiredFields(t *testing.T) {
	req := validRequest()
	req.Origin = "  "
	if err := req.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("blank origin: expected ErrValidation, got %v", err)
	}

	req = validRequest()
	req.Destination = ""
	if err := req.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty destination: expected ErrValidation, got %v", err)
	}
}

func TestValidateLanguageDefault(t *testing.T) {
	req := validRequest()
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Language != "en" {
		t.Errorf("expected language default en, got %q", req.Language)
	}

	req = validRequest()
	req.Language = "fr"
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Language != "fr" {
		t.Errorf("explicit language should be preserved, got %q", req.Language)
	}
}
