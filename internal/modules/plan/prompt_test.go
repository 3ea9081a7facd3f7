// README: Prompt synthesis tests (string inspection, determinism).
package plan

import (
	"strings"
	"testing"
)

func TestBuildPromptEmbedsRequestValues(t *testing.T) {
	req := validRequest()
	prompt := BuildPrompt(req)

	for _, want := range []string{
		"Origin: NYC",
		"Destination: Tokyo",
		"Departure: 2025-03-01T00:00:00Z",
		"Trip length: 3 days",
		`"total_days": 3`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPromptPreferences(t *testing.T) {
	req := validRequest()
	prompt := BuildPrompt(req)
	if !strings.Contains(prompt, "Preferences: not specified") {
		t.Errorf("absent preferences should render the not-specified marker")
	}

	req.Preferences = &Preference{TravelStyle: "food", BudgetTier: "mid"}
	prompt = BuildPrompt(req)
	if !strings.Contains(prompt, `"travel_style":"food"`) {
		t.Errorf("prompt missing serialized travel_style: %q", prompt)
	}
	if !strings.Contains(prompt, `"budget_tier":"mid"`) {
		t.Errorf("prompt missing serialized budget_tier")
	}
}

func TestBuildPromptEmbedsOutputTemplate(t *testing.T) {
	prompt := BuildPrompt(validRequest())

	// The literal JSON shape the parser expects must be present as a template.
	for _, field := range []string{
		`"destination"`, `"start_date"`, `"end_date"`, `"overview"`,
		`"daily"`, `"schedule"`, `"pois"`, `"meals"`, `"packing_list"`,
		`"budget_summary"`, `"disclaimers"`, `"time_suggested_hours"`,
		`"reservation_needed"`,
	} {
		if !strings.Contains(prompt, field) {
			t.Errorf("prompt template missing field %s", field)
		}
	}

	if !strings.Contains(prompt, "Return ONLY valid JSON") {
		t.Errorf("prompt missing JSON-only rule")
	}
	if !strings.Contains(prompt, "Do not add comments, markdown, or backticks") {
		t.Errorf("prompt missing no-markdown rule")
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	req := validRequest()
	req.Preferences = &Preference{Pace: "relaxed"}
	if BuildPrompt(req) != BuildPrompt(req) {
		t.Fatal("BuildPrompt must be deterministic for equal requests")
	}
}

func TestBuildPromptLanguage(t *testing.T) {
	req := validRequest()
	req.Language = "ja"
	if !strings.Contains(BuildPrompt(req), "detailed ja travel itinerary") {
		t.Errorf("prompt should carry the target language")
	}
}
