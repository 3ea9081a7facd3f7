// README: End-to-end API tests against a running atlas-api instance with live Gemini.
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

// TestPlanGenerationAndHistory drives the real service: it generates a plan
// through live Gemini, checks the itinerary shape, then finds and deletes the
// persisted record. Gated on ATLAS_API_BASE_URL pointing at a running server.
func TestPlanGenerationAndHistory(t *testing.T) {
	baseURL := strings.TrimRight(os.Getenv("ATLAS_API_BASE_URL"), "/")
	if baseURL == "" {
		t.Skip("ATLAS_API_BASE_URL not set; skipping live API tests")
	}

	client := &http.Client{Timeout: 120 * time.Second}
	marker := fmt.Sprintf("itest-%d", time.Now().UnixNano())

	reqBody, _ := json.Marshal(map[string]any{
		"origin":           marker,
		"destination":      "Tokyo",
		"depart_time":      "2025-03-01T00:00:00Z",
		"trip_length_days": 2,
	})
	resp, err := client.Post(baseURL+"/plan", "application/json", bytes.NewReader(reqBody))
	if err != nil {
		t.Fatalf("POST /plan: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST /plan: expected 200, got %d", resp.StatusCode)
	}

	var planBody struct {
		Destination string           `json:"destination"`
		TotalDays   int              `json:"total_days"`
		Daily       []map[string]any `json:"daily"`
		PackingList []string         `json:"packing_list"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&planBody); err != nil {
		t.Fatalf("decode plan: %v", err)
	}
	if planBody.TotalDays <= 0 || len(planBody.Daily) == 0 || len(planBody.PackingList) == 0 {
		t.Fatalf("implausible itinerary: %+v", planBody)
	}

	histResp, err := client.Get(baseURL + "/history")
	if err != nil {
		t.Fatalf("GET /history: %v", err)
	}
	defer histResp.Body.Close()

	var items []struct {
		ID     int64  `json:"id"`
		Origin string `json:"origin"`
	}
	if err := json.NewDecoder(histResp.Body).Decode(&items); err != nil {
		t.Fatalf("decode history: %v", err)
	}

	var recordID int64
	for _, item := range items {
		if item.Origin == marker {
			recordID = item.ID
			break
		}
	}
	if recordID == 0 {
		t.Fatalf("generated plan not found in history listing")
	}

	delReq, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/history/%d", baseURL, recordID), nil)
	delResp, err := client.Do(delReq)
	if err != nil {
		t.Fatalf("DELETE /history/%d: %v", recordID, err)
	}
	defer delResp.Body.Close()
	if delResp.StatusCode != http.StatusOK {
		t.Fatalf("DELETE: expected 200, got %d", delResp.StatusCode)
	}

	// A second delete of the same id must be a clean 404.
	delResp2, err := client.Do(delReq.Clone(delReq.Context()))
	if err != nil {
		t.Fatalf("second DELETE: %v", err)
	}
	defer delResp2.Body.Close()
	if delResp2.StatusCode != http.StatusNotFound {
		t.Errorf("second DELETE: expected 404, got %d", delResp2.StatusCode)
	}
}
