// README: Prompt synthesis for the itinerary model call.
package plan

import (
	"encoding/json"
	"fmt"
)

// promptTemplate carries the instruction text, the input details, and a
// literal example of the exact PlanResponse JSON shape so the model has a
// structural template. Verb order matters to tests: origin, destination,
// departure, trip length, preferences.
const promptTemplate = `You are a professional travel planner.
Generate a detailed %s travel itinerary in pure JSON format only - no explanations or extra text.

Input details:
- Origin: %s
- Destination: %s
- Departure: %s
- Trip length: %d days
- Preferences: %s

Output structure:
{
  "destination": "string",
  "start_date": "YYYY-MM-DD",
  "end_date": "YYYY-MM-DD",
  "total_days": %d,
  "overview": "string",
  "daily": [
    {
      "date": "YYYY-MM-DD",
      "summary": "string",
      "schedule": ["09:00 Depart", "11:00 Arrive downtown"],
      "pois": [
        {
          "name": "string",
          "category": "landmark/museum/nature/shopping/other",
          "address": "string",
          "time_suggested_hours": 1.5,
          "notes": "string",
          "cost_estimate": "string",
          "transport": "string"
        }
      ],
      "meals": [
        {
          "name": "string",
          "type": "breakfast/lunch/dinner/snack",
          "reservation_needed": true,
          "notes": "string"
        }
      ],
      "logistics": "string",
      "tips": "string"
    }
  ],
  "packing_list": ["Passport", "Universal adapter", "..."],
  "budget_summary": "string",
  "disclaimers": "string"
}

Rules:
1. Return ONLY valid JSON.
2. Do not add comments, markdown, or backticks.
3. Ensure every string is properly closed and escaped.
`

// BuildPrompt is a pure function from a validated request to the model
// instruction string. Deterministic: the same request always yields the same
// prompt, so it is unit-testable by string inspection.
func BuildPrompt(req PlanRequest) string {
	prefs := "not specified"
	if req.Preferences != nil {
		if b, err := json.Marshal(req.Preferences); err == nil {
			prefs = string(b)
		}
	}
	language := req.Language
	if language == "" {
		language = "en"
	}
	return fmt.Sprintf(promptTemplate,
		language,
		req.Origin,
		req.Destination,
		req.DepartTime,
		req.TripLengthDays,
		prefs,
		req.TripLengthDays,
	)
}
