// README: JSON repair heuristic and schema mapping for raw model output.
package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ExtractJSON recovers a JSON object span from raw model output that may be
// wrapped in prose or markdown fencing. The heuristic trims to the first '{'
// and the last '}'.
//
// Known limitation: this is best-effort brace trimming, not a full
// JSON-in-text extractor. It does not handle unbalanced braces inside string
// literals or multiple candidate objects in one reply.
func ExtractJSON(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, "{") {
		idx := strings.Index(text, "{")
		if idx == -1 {
			return "", fmt.Errorf("%w: no JSON object in model output", ErrMalformedResponse)
		}
		text = text[idx:]
	}
	if !strings.HasSuffix(text, "}") {
		idx := strings.LastIndex(text, "}")
		if idx == -1 {
			return "", fmt.Errorf("%w: unterminated JSON object in model output", ErrMalformedResponse)
		}
		text = text[:idx+1]
	}
	return text, nil
}

// ParseResponse decodes raw model output into a PlanResponse.
// Invalid JSON is ErrMalformedResponse with the decoder diagnostic and the
// offending span; valid JSON with missing or wrong-typed fields is
// ErrSchemaMismatch naming the field path.
func ParseResponse(raw string) (*PlanResponse, error) {
	text, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var resp PlanResponse
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				field = "(root)"
			}
			return nil, fmt.Errorf("%w: field %s: cannot decode %s into %s",
				ErrSchemaMismatch, field, typeErr.Value, typeErr.Type)
		}
		return nil, fmt.Errorf("%w: %v (near %q)", ErrMalformedResponse, err, truncate(text, 120))
	}

	if err := checkRequired(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// checkRequired enforces presence of the required PlanResponse fields.
// len(Daily) vs TotalDays is deliberately not compared.
func checkRequired(p *PlanResponse) error {
	switch {
	case p.Destination == "":
		return missingField("destination")
	case p.StartDate == "":
		return missingField("start_date")
	case p.EndDate == "":
		return missingField("end_date")
	case p.TotalDays <= 0:
		return missingField("total_days")
	case p.Overview == "":
		return missingField("overview")
	case p.Daily == nil:
		return missingField("daily")
	case p.PackingList == nil:
		return missingField("packing_list")
	}

	for i, day := range p.Daily {
		prefix := fmt.Sprintf("daily[%d]", i)
		switch {
		case day.Date == "":
			return missingField(prefix + ".date")
		case day.Summary == "":
			return missingField(prefix + ".summary")
		case day.Schedule == nil:
			return missingField(prefix + ".schedule")
		case day.Pois == nil:
			return missingField(prefix + ".pois")
		case day.Meals == nil:
			return missingField(prefix + ".meals")
		}
		for j, poi := range day.Pois {
			if poi.Name == "" {
				return missingField(fmt.Sprintf("%s.pois[%d].name", prefix, j))
			}
			if poi.Category == "" {
				return missingField(fmt.Sprintf("%s.pois[%d].category", prefix, j))
			}
		}
		for j, meal := range day.Meals {
			if meal.Name == "" {
				return missingField(fmt.Sprintf("%s.meals[%d].name", prefix, j))
			}
			if meal.Type == "" {
				return missingField(fmt.Sprintf("%s.meals[%d].type", prefix, j))
			}
		}
	}
	return nil
}

func missingField(path string) error {
	return fmt.Errorf("%w: missing required field %s", ErrSchemaMismatch, path)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
