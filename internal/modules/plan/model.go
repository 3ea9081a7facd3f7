// README: Plan request/itinerary schema, validation, and error kinds.
package plan

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Error kinds for the generation pipeline and record access. Callers branch
// with errors.Is; the wrapped message carries the offending field or the
// decoder diagnostic.
var (
	// ErrValidation marks a malformed request (caller's fault). Reported
	// before any external call is made.
	ErrValidation = errors.New("invalid plan request")

	// ErrGeneration marks an unreachable, errored, or empty model reply.
	ErrGeneration = errors.New("plan generation failed")

	// ErrMalformedResponse marks a model reply that is not valid JSON even
	// after brace trimming.
	ErrMalformedResponse = errors.New("malformed model response")

	// ErrSchemaMismatch marks valid JSON whose fields do not fit PlanResponse.
	ErrSchemaMismatch = errors.New("model response schema mismatch")

	// ErrNotFound marks a record lookup or delete on an absent id.
	ErrNotFound = errors.New("record not found")
)

// Preference captures optional free-text trip preferences.
type Preference struct {
	TravelStyle string `json:"travel_style,omitempty"`
	BudgetTier  string `json:"budget_tier,omitempty"`
	Pace        string `json:"pace,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// PlanRequest is one incoming travel-planning request. Immutable once
// validated; constructed per API call and discarded after it completes.
type PlanRequest struct {
	Origin         string      `json:"origin"`
	Destination    string      `json:"destination"`
	DepartTime     string      `json:"depart_time"`
	TripLengthDays int         `json:"trip_length_days"`
	Preferences    *Preference `json:"preferences,omitempty"`
	Language       string      `json:"language"`
}

// Poi is a single visitable place or activity within a day plan.
// Category is free text, conventionally landmark/museum/nature/shopping/other.
type Poi struct {
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	Address            string  `json:"address,omitempty"`
	TimeSuggestedHours float64 `json:"time_suggested_hours,omitempty"`
	Notes              string  `json:"notes,omitempty"`
	CostEstimate       string  `json:"cost_estimate,omitempty"`
	Transport          string  `json:"transport,omitempty"`
}

// Meal is one meal suggestion; Type is breakfast/lunch/dinner/snack.
type Meal struct {
	Name              string `json:"name"`
	Type              string `json:"type"`
	ReservationNeeded *bool  `json:"reservation_needed,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

// DayPlan is one day's schedule within an itinerary.
type DayPlan struct {
	Date      string   `json:"date"`
	Summary   string   `json:"summary"`
	Schedule  []string `json:"schedule"`
	Pois      []Poi    `json:"pois"`
	Meals     []Meal   `json:"meals"`
	Logistics string   `json:"logistics,omitempty"`
	Tips      string   `json:"tips,omitempty"`
}

// PlanResponse is the full structured itinerary. len(Daily) should equal
// TotalDays but the mismatch is tolerated, matching the upstream model's
// occasional looseness.
type PlanResponse struct {
	Destination   string    `json:"destination"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	TotalDays     int       `json:"total_days"`
	Overview      string    `json:"overview"`
	Daily         []DayPlan `json:"daily"`
	PackingList   []string  `json:"packing_list"`
	BudgetSummary string    `json:"budget_summary,omitempty"`
	Disclaimers   string    `json:"disclaimers,omitempty"`
}

// TravelRecord is one persisted request/response pair. Created once per
// successful generation, never mutated, deleted only by explicit request.
type TravelRecord struct {
	ID             int64
	Origin         string
	Destination    string
	DepartTime     string
	TripLengthDays int
	Preferences    string // JSON text
	Response       string // JSON text of the full PlanResponse
	CreatedAt      time.Time
}

// RecordSummary is the listing view of a TravelRecord (no response body).
type RecordSummary struct {
	ID             int64     `json:"id"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	DepartTime     string    `json:"depart_time"`
	TripLengthDays int       `json:"trip_length_days"`
	CreatedAt      time.Time `json:"created_at"`
}

// Accepted depart_time layouts: RFC3339 ("Z" shorthand included), offset-less
// date-times, and date-only.
var departTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDepartTime parses an ISO-8601 departure timestamp.
func ParseDepartTime(v string) (time.Time, error) {
	for _, layout := range departTimeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("not an ISO 8601 timestamp: %q", v)
}

// Validate rejects a malformed request before any external call is made and
// applies the language default. All fields beyond depart_time and
// trip_length_days are free text and not semantically validated.
func (r *PlanRequest) Validate() error {
	if strings.TrimSpace(r.Origin) == "" {
		return fmt.Errorf("%w: origin is required", ErrValidation)
	}
	if strings.TrimSpace(r.Destination) == "" {
		return fmt.Errorf("%w: destination is required", ErrValidation)
	}
	if r.TripLengthDays < 1 || r.TripLengthDays > 30 {
		return fmt.Errorf("%w: trip_length_days must be between 1 and 30", ErrValidation)
	}
	if _, err := ParseDepartTime(r.DepartTime); err != nil {
		return fmt.Errorf("%w: depart_time must be ISO 8601 format", ErrValidation)
	}
	if r.Language == "" {
		r.Language = "en"
	}
	return nil
}
